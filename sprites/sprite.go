package sprites

import (
	"github.com/BadMagic100/RandoMapCore/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/features/math"
)

// ScaledSprite is a pin sprite together with the scale that normalizes it to
// config.Sprite.BaseSize. Values are shared by every pin that resolves the
// same key or object, so they must not be modified after construction.
type ScaledSprite struct {
	Key   string // empty for inline sprites
	Image *ebiten.Image
	Scale math.Vec2
}

// newKeySprite builds the built-in sprite for key. A nil image (missing
// asset) still yields a usable sprite with unit scale.
func newKeySprite(key string, img *ebiten.Image) *ScaledSprite {
	s := &ScaledSprite{Key: key, Image: img, Scale: math.Vec2{X: 1, Y: 1}}
	if img != nil {
		b := img.Bounds()
		s.Scale = normalizedScale(float64(b.Dx()), float64(b.Dy()))
	}
	return s
}

// NewInlineSprite wraps a sprite supplied through placement metadata. size is
// the pixel size of the sprite artwork; when zero the image bounds are used.
func NewInlineSprite(img *ebiten.Image, size math.Vec2) *ScaledSprite {
	s := &ScaledSprite{Image: img, Scale: math.Vec2{X: 1, Y: 1}}
	switch {
	case size.X > 0 && size.Y > 0:
		s.Scale = normalizedScale(size.X, size.Y)
	case img != nil:
		b := img.Bounds()
		s.Scale = normalizedScale(float64(b.Dx()), float64(b.Dy()))
	}
	return s
}

func normalizedScale(w, h float64) math.Vec2 {
	longest := w
	if h > longest {
		longest = h
	}
	if longest <= 0 {
		return math.Vec2{X: 1, Y: 1}
	}
	f := config.Sprite.BaseSize / longest
	return math.Vec2{X: f, Y: f}
}
