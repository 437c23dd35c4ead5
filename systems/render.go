package systems

import (
	"image/color"
	"sort"

	"github.com/BadMagic100/RandoMapCore/components"
	cfg "github.com/BadMagic100/RandoMapCore/config"
	"github.com/BadMagic100/RandoMapCore/fonts"
	"github.com/BadMagic100/RandoMapCore/mapscene"
	"github.com/BadMagic100/RandoMapCore/sprites"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
	"golang.org/x/image/font"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// Pins are drawn in map order so overlapping pins stay stable between frames
type drawnPin struct {
	pos    math.Vec2
	visual components.PinVisual
	text   string
	sel    bool
}

var pinQueue []drawnPin

func viewState(e *ecs.ECS) (components.ViewportData, bool) {
	mvEntry, ok := components.MapView.First(e.World)
	if !ok || !components.MapView.Get(mvEntry).Open {
		return components.ViewportData{}, false
	}
	vpEntry, ok := components.Viewport.First(e.World)
	if !ok {
		return components.ViewportData{}, false
	}
	return *components.Viewport.Get(vpEntry), true
}

// DrawPins renders background, sprite and border for every pin on screen,
// then the text of the selected pin on top.
func DrawPins(e *ecs.ECS, screen *ebiten.Image) {
	vp, ok := viewState(e)
	if !ok {
		return
	}

	pinQueue = pinQueue[:0]
	components.Pin.Each(e.World, func(entry *donburi.Entry) {
		pd := components.Pin.Get(entry)
		if !pd.Active || !pd.OnScreen || pd.Visual.Sprite == nil {
			return
		}
		pinQueue = append(pinQueue, drawnPin{
			pos:    vp.ToScreen(pd.Position),
			visual: pd.Visual,
			text:   pd.Def.Text(),
			sel:    pd.Selected,
		})
	})
	sort.SliceStable(pinQueue, func(i, j int) bool {
		if pinQueue[i].sel != pinQueue[j].sel {
			return !pinQueue[i].sel
		}
		if pinQueue[i].pos.Y != pinQueue[j].pos.Y {
			return pinQueue[i].pos.Y < pinQueue[j].pos.Y
		}
		return pinQueue[i].pos.X < pinQueue[j].pos.X
	})

	zoom := vp.Zoom
	if zoom == 0 {
		zoom = 1
	}

	var selected *drawnPin
	for i := range pinQueue {
		p := &pinQueue[i]
		scale := p.visual.Size * zoom

		drawSprite(screen, p.visual.BackgroundSprite, p.pos, scale, p.visual.Color)
		drawSprite(screen, p.visual.Sprite, p.pos, scale, p.visual.Color)
		drawSprite(screen, p.visual.BorderSprite, p.pos, scale, p.visual.BorderColor)

		if p.sel {
			selected = p
		}
	}

	if selected != nil && fonts.PinText.Loaded() {
		offset := cfg.Sprite.BaseSize * selected.visual.Size * zoom / 2
		drawLabel(screen, selected.text, fonts.PinText.Get(), selected.pos.X+offset+4, selected.pos.Y, cfg.White)
	}
}

// drawSprite draws s centered at pos. Missing images draw a placeholder square.
func drawSprite(screen *ebiten.Image, s *sprites.ScaledSprite, pos math.Vec2, scale float64, cs ebiten.ColorScale) {
	if s == nil {
		return
	}
	if s.Image == nil {
		half := float32(cfg.Sprite.BaseSize * scale / 2)
		clr := color.RGBA{R: uint8(255 * cs.R()), G: uint8(255 * cs.G()), B: uint8(255 * cs.B()), A: 96}
		vector.StrokeRect(screen, float32(pos.X)-half, float32(pos.Y)-half, half*2, half*2, 1, clr, false)
		return
	}

	b := s.Image.Bounds()
	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.Filter = ebiten.FilterLinear

	drawOp.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
	drawOp.GeoM.Scale(s.Scale.X*scale, s.Scale.Y*scale)
	drawOp.GeoM.Translate(pos.X, pos.Y)
	drawOp.ColorScale.ScaleWithColorScale(cs)

	screen.DrawImage(s.Image, drawOp)
}

// NewDrawRooms outlines the selectable rooms. The selected room is
// highlighted and labelled.
func NewDrawRooms(registry *mapscene.Registry) func(*ecs.ECS, *ebiten.Image) {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		vp, ok := viewState(e)
		if !ok || registry == nil {
			return
		}
		zoom := vp.Zoom
		if zoom == 0 {
			zoom = 1
		}

		for _, room := range registry.Rooms() {
			if !room.OnScreen {
				continue
			}
			clr := roomOutline
			if room.Selected() {
				clr = cfg.Overlay.RoomTextSelectedColor
			}
			tl := vp.ToScreen(math.Vec2{X: room.Bounds.X, Y: room.Bounds.Y})
			vector.StrokeRect(screen, float32(tl.X), float32(tl.Y),
				float32(room.Bounds.Width*zoom), float32(room.Bounds.Height*zoom), 1, clr, false)

			if room.Selected() && fonts.RoomText.Loaded() {
				drawLabel(screen, room.Label, fonts.RoomText.Get(), tl.X, tl.Y-4, clr)
			}
		}
	}
}

var roomOutline = color.RGBA{R: 90, G: 90, B: 110, A: 255}

// DrawRoomTexts renders the room labels. The selected label is highlighted.
func DrawRoomTexts(e *ecs.ECS, screen *ebiten.Image) {
	vp, ok := viewState(e)
	if !ok {
		return
	}

	components.RoomText.Each(e.World, func(entry *donburi.Entry) {
		rt := components.RoomText.Get(entry)
		if !rt.Active || !rt.OnScreen || rt.Font == nil {
			return
		}

		clr := cfg.Overlay.RoomTextColor
		if rt.Selected {
			clr = cfg.Overlay.RoomTextSelectedColor
		}

		pos := vp.ToScreen(rt.Position)
		width := font.MeasureString(rt.Font, rt.Text).Ceil()
		drawLabel(screen, rt.Text, rt.Font, pos.X-float64(width)/2, pos.Y, clr)
	})
}

func drawLabel(screen *ebiten.Image, s string, face font.Face, x, y float64, clr color.Color) {
	text.Draw(screen, s, face, int(x), int(y), clr)
}
