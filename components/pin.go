package components

import (
	"github.com/BadMagic100/RandoMapCore/definitions"
	"github.com/BadMagic100/RandoMapCore/sprites"
	"github.com/BadMagic100/RandoMapCore/timers"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// PinVisual is what the renderer draws for a pin
type PinVisual struct {
	Sprite *sprites.ScaledSprite
	Frame  int
	Size   float64
	Color  ebiten.ColorScale

	// Nil when borders are disabled
	BorderSprite     *sprites.ScaledSprite
	BackgroundSprite *sprites.ScaledSprite
	BorderColor      ebiten.ColorScale
}

type PinData struct {
	Def      definitions.Definition
	Position math.Vec2

	// Sprites is the list being cycled. It is a copy owned by the pin.
	Sprites []*sprites.ScaledSprite
	Cycle   timers.Handle

	Active   bool
	Selected bool
	OnScreen bool

	Visual PinVisual
}

var Pin = donburi.NewComponentType[PinData]()
