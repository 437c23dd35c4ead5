package systems

import (
	"github.com/BadMagic100/RandoMapCore/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/features/math"
)

// ScreenPointer reports a pointer position in screen pixels
type ScreenPointer func() (x, y int)

// MouseCursor selects with the mouse pointer. It has no position while the
// map is closed or the pointer is outside the window.
type MouseCursor struct {
	mapView  func() *components.MapViewData
	viewport func() *components.ViewportData
	pointer  ScreenPointer
}

func NewMouseCursor(mapView func() *components.MapViewData, viewport func() *components.ViewportData) *MouseCursor {
	return &MouseCursor{
		mapView:  mapView,
		viewport: viewport,
		pointer:  ebiten.CursorPosition,
	}
}

// WithPointer replaces the pointer source
func (c *MouseCursor) WithPointer(p ScreenPointer) *MouseCursor {
	c.pointer = p
	return c
}

func (c *MouseCursor) CursorPosition() (math.Vec2, bool) {
	mv := c.mapView()
	vp := c.viewport()
	if mv == nil || vp == nil || !mv.Open {
		return math.Vec2{}, false
	}

	x, y := c.pointer()
	if x < 0 || y < 0 || float64(x) > vp.Width || float64(y) > vp.Height {
		return math.Vec2{}, false
	}
	return ToMap(*vp, math.Vec2{X: float64(x), Y: float64(y)}), true
}
