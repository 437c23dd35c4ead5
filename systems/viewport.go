package systems

import (
	"github.com/BadMagic100/RandoMapCore/components"
	cfg "github.com/BadMagic100/RandoMapCore/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// MapToggler opens and closes the overlay for a session
type MapToggler interface {
	MapOpen() bool
	OpenMap()
	CloseMap()
}

// NewUpdateMapToggle flips the overlay on the toggle action
func NewUpdateMapToggle(t MapToggler) ecs.System {
	return func(e *ecs.ECS) {
		entry, ok := components.Input.First(e.World)
		if !ok {
			return
		}
		if !GetAction(components.Input.Get(entry), cfg.ActionToggleMap).JustPressed {
			return
		}
		if t.MapOpen() {
			t.CloseMap()
		} else {
			t.OpenMap()
		}
	}
}

// UpdateViewport pans and zooms the map while it is open. Zoom keeps the
// screen center fixed.
func UpdateViewport(e *ecs.ECS) {
	vpEntry, ok := components.Viewport.First(e.World)
	if !ok {
		return
	}
	mvEntry, ok := components.MapView.First(e.World)
	if !ok || !components.MapView.Get(mvEntry).Open {
		return
	}
	inEntry, ok := components.Input.First(e.World)
	if !ok {
		return
	}

	vp := components.Viewport.Get(vpEntry)
	input := components.Input.Get(inEntry)
	if vp.Zoom == 0 {
		vp.Zoom = 1
	}

	dx, dy := input.PanX, input.PanY
	if GetAction(input, cfg.ActionPanLeft).Pressed {
		dx--
	}
	if GetAction(input, cfg.ActionPanRight).Pressed {
		dx++
	}
	if GetAction(input, cfg.ActionPanUp).Pressed {
		dy--
	}
	if GetAction(input, cfg.ActionPanDown).Pressed {
		dy++
	}
	vp.Position.X += dx * cfg.Input.PanSpeed / vp.Zoom
	vp.Position.Y += dy * cfg.Input.PanSpeed / vp.Zoom

	zoom := vp.Zoom
	if GetAction(input, cfg.ActionZoomIn).Pressed {
		zoom *= cfg.Input.ZoomStep
	}
	if GetAction(input, cfg.ActionZoomOut).Pressed {
		zoom /= cfg.Input.ZoomStep
	}
	_, wheel := ebiten.Wheel()
	if wheel > 0 {
		zoom *= cfg.Input.ZoomStep
	} else if wheel < 0 {
		zoom /= cfg.Input.ZoomStep
	}
	setZoom(vp, zoom)
}

func setZoom(vp *components.ViewportData, zoom float64) {
	if zoom < cfg.Input.MinZoom {
		zoom = cfg.Input.MinZoom
	}
	if zoom > cfg.Input.MaxZoom {
		zoom = cfg.Input.MaxZoom
	}
	if zoom == vp.Zoom {
		return
	}
	center := ToMap(*vp, math.Vec2{X: vp.Width / 2, Y: vp.Height / 2})
	vp.Zoom = zoom
	vp.Position.X = center.X - vp.Width/2/zoom
	vp.Position.Y = center.Y - vp.Height/2/zoom
}

// ToMap converts a screen-space point back to map space
func ToMap(vp components.ViewportData, s math.Vec2) math.Vec2 {
	zoom := vp.Zoom
	if zoom == 0 {
		zoom = 1
	}
	return math.Vec2{
		X: s.X/zoom + vp.Position.X,
		Y: s.Y/zoom + vp.Position.Y,
	}
}
