package pins

import (
	"fmt"

	"github.com/BadMagic100/RandoMapCore/components"
	"github.com/BadMagic100/RandoMapCore/config"
	"github.com/BadMagic100/RandoMapCore/definitions"
	"github.com/BadMagic100/RandoMapCore/sprites"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ActiveModifier is one of the predicates that must all hold for a pin to
// be shown
type ActiveModifier func() bool

// Pin is the handle the systems and the selector use for one pin entity
type Pin struct {
	engine *Engine
	entry  *donburi.Entry
}

func (p *Pin) data() *components.PinData {
	return components.Pin.Get(p.entry)
}

func (p *Pin) Entry() *donburi.Entry {
	return p.entry
}

func (p *Pin) Def() definitions.Definition {
	return p.data().Def
}

func (p *Pin) Visual() components.PinVisual {
	return p.data().Visual
}

func (p *Pin) Key() string {
	return p.data().Def.Name()
}

func (p *Pin) Position() math.Vec2 {
	return p.data().Position
}

func (p *Pin) Text() string {
	return p.data().Def.Text()
}

// ActiveModifiers returns the map check followed by the definition's own
// predicates
func (p *Pin) ActiveModifiers() []ActiveModifier {
	def := p.data().Def
	return []ActiveModifier{
		p.engine.MapOpen,
		def.CorrectMapOpen,
		def.ActiveByCurrentMode,
		def.ActiveBySettings,
		def.ActiveByProgress,
	}
}

func (p *Pin) Active() bool {
	for _, m := range p.ActiveModifiers() {
		if !m() {
			return false
		}
	}
	return true
}

// BeforeMainUpdate stops cycling and refreshes the definition
func (p *Pin) BeforeMainUpdate() {
	p.stopCycling()
	p.data().Def.Update()
}

// OnMainUpdate recomputes the visual state of an active pin. An inactive
// pin keeps its last visual state.
func (p *Pin) OnMainUpdate(active bool) {
	pd := p.data()
	pd.Active = active
	if !active {
		return
	}

	frames := pd.Def.PinSprites()
	if len(frames) == 0 {
		p.engine.logger.Warn().Str("pin", pd.Def.Name()).Msg("Pin is active without any set sprites!")
		return
	}

	s := p.engine.settings.Settings()
	p.startCycling(frames)
	p.updateSize(s)
	p.updateColor()
	p.updateBorderBackground(s)
	p.updateBorderColor()
}

func (p *Pin) Selected() bool {
	if !p.entry.Valid() {
		return false
	}
	return p.data().Selected
}

// SetSelected changes the selection. Only the size of an enabled pin
// depends on it.
func (p *Pin) SetSelected(selected bool) {
	if !p.entry.Valid() {
		return
	}
	pd := p.data()
	if pd.Selected == selected {
		return
	}
	pd.Selected = selected
	if pd.Active {
		p.updateSize(p.engine.settings.Settings())
	}
}

// CanSelect is true while the pin is drawn inside the viewport
func (p *Pin) CanSelect() bool {
	if !p.entry.Valid() {
		return false
	}
	return p.data().OnScreen
}

func (p *Pin) updateSize(s config.Settings) {
	pd := p.data()

	size := config.Pin.MediumScale
	if s.EnableVisualCustomization {
		size = config.Pin.Sizes[s.PinSize]
	}

	if s.PinShapes == config.PinShapesNoBorders {
		size *= config.Pin.NoBorderMultiplier
	}

	if pd.Selected {
		size *= config.Pin.SelectedMultiplier
	} else if pd.Def.ShrinkPin() {
		size *= config.Pin.ShrinkMultiplier
	}

	pd.Visual.Size = size
}

func (p *Pin) updateColor() {
	pd := p.data()

	var c ebiten.ColorScale
	if pd.Def.DarkenPin() {
		darken(&c)
	}
	pd.Visual.Color = c
}

func (p *Pin) updateBorderBackground(s config.Settings) {
	pd := p.data()

	shape := pd.Def.MixedPinShape()
	if s.EnableVisualCustomization {
		if s.PinShapes == config.PinShapesNoBorders {
			pd.Visual.BorderSprite = nil
			pd.Visual.BackgroundSprite = nil
			return
		}
		if fixed, ok := s.PinShapes.Shape(); ok {
			shape = fixed
		}
	}

	pd.Visual.BorderSprite = p.engine.sprites.Sprite(fmt.Sprintf("Border%s", shape))
	pd.Visual.BackgroundSprite = p.engine.sprites.Sprite(fmt.Sprintf("Background%s", shape))
}

func (p *Pin) updateBorderColor() {
	pd := p.data()

	var c ebiten.ColorScale
	if clr := pd.Def.BorderColor(); clr != nil {
		c.ScaleWithColor(clr)
	}
	if pd.Def.DarkenPin() {
		darken(&c)
	}
	pd.Visual.BorderColor = c
}

func darken(c *ebiten.ColorScale) {
	m := config.Pin.DarkenMultiplier
	c.Scale(m, m, m, 1)
}

// startCycling shows the first frame and, for more than one frame, schedules
// a task advancing through a private copy of the sequence.
func (p *Pin) startCycling(frames []*sprites.ScaledSprite) {
	pd := p.data()
	if pd.Cycle != 0 && p.engine.timers.Active(pd.Cycle) {
		return
	}

	pd.Sprites = append([]*sprites.ScaledSprite(nil), frames...)
	pd.Visual.Frame = 0
	pd.Visual.Sprite = pd.Sprites[0]

	if len(pd.Sprites) == 1 {
		return
	}

	entry := p.entry
	pd.Cycle = p.engine.timers.Every(config.Pin.UpdateWait, func() {
		if !entry.Valid() {
			return
		}
		d := components.Pin.Get(entry)
		if len(d.Sprites) == 0 {
			return
		}
		d.Visual.Frame = (d.Visual.Frame + 1) % len(d.Sprites)
		d.Visual.Sprite = d.Sprites[d.Visual.Frame]
	})
}

func (p *Pin) stopCycling() {
	if !p.entry.Valid() {
		return
	}
	pd := p.data()
	if pd.Cycle == 0 {
		return
	}
	p.engine.timers.Cancel(pd.Cycle)
	pd.Cycle = 0
}
