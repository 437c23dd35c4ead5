// Package definitions describes what a map pin means: its identity, when it
// is shown, how it looks and which sprites it cycles through.
package definitions

import (
	"image/color"

	"github.com/BadMagic100/RandoMapCore/config"
	"github.com/BadMagic100/RandoMapCore/sprites"
	"github.com/yohamta/donburi/features/math"
)

type Identity interface {
	Name() string
	MapPosition() math.Vec2
}

// Visibility holds the definition owned activity predicates. A pin is shown
// only when all of them and the engine's own map check hold.
type Visibility interface {
	CorrectMapOpen() bool
	ActiveByCurrentMode() bool
	ActiveBySettings() bool
	ActiveByProgress() bool
}

type Appearance interface {
	ShrinkPin() bool
	DarkenPin() bool
	MixedPinShape() config.PinShape
	BorderColor() color.Color
}

type SpriteSource interface {
	// PinSprites returns the sprites to cycle through, in order
	PinSprites() []*sprites.ScaledSprite
}

type TextSource interface {
	Text() string
}

type Updater interface {
	// Update refreshes progress and logic state; called once per tick
	Update()
}

// Definition is everything the pin engine needs from one map location
type Definition interface {
	Identity
	Visibility
	Appearance
	SpriteSource
	TextSource
	Updater
}
