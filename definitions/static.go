package definitions

import (
	"image/color"

	"github.com/BadMagic100/RandoMapCore/config"
	"github.com/BadMagic100/RandoMapCore/sprites"
	"github.com/yohamta/donburi/features/math"
)

// StaticDef is a pin whose state is set directly, such as a bench or a
// developer marker. The zero value is hidden; use NewStaticDef.
type StaticDef struct {
	Key      string
	Position math.Vec2
	Label    string

	MapOpen    bool
	Mode       bool
	BySettings bool
	ByProgress bool

	Shrink bool
	Darken bool
	Shape  config.PinShape
	Border color.Color

	Sprites []*sprites.ScaledSprite

	// Updates counts calls to Update
	Updates int
}

// NewStaticDef returns a definition that is active and shows the given sprites
func NewStaticDef(key string, pos math.Vec2, s ...*sprites.ScaledSprite) *StaticDef {
	return &StaticDef{
		Key:        key,
		Position:   pos,
		Label:      key,
		MapOpen:    true,
		Mode:       true,
		BySettings: true,
		ByProgress: true,
		Shape:      config.PinShapeCircle,
		Border:     config.White,
		Sprites:    s,
	}
}

func (d *StaticDef) Name() string                        { return d.Key }
func (d *StaticDef) MapPosition() math.Vec2              { return d.Position }
func (d *StaticDef) CorrectMapOpen() bool                { return d.MapOpen }
func (d *StaticDef) ActiveByCurrentMode() bool           { return d.Mode }
func (d *StaticDef) ActiveBySettings() bool              { return d.BySettings }
func (d *StaticDef) ActiveByProgress() bool              { return d.ByProgress }
func (d *StaticDef) ShrinkPin() bool                     { return d.Shrink }
func (d *StaticDef) DarkenPin() bool                     { return d.Darken }
func (d *StaticDef) MixedPinShape() config.PinShape      { return d.Shape }
func (d *StaticDef) PinSprites() []*sprites.ScaledSprite { return d.Sprites }
func (d *StaticDef) Text() string                        { return d.Label }
func (d *StaticDef) Update()                             { d.Updates++ }

func (d *StaticDef) BorderColor() color.Color {
	if d.Border == nil {
		return config.White
	}
	return d.Border
}
