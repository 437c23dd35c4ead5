package fonts

import (
	"fmt"

	"github.com/BadMagic100/RandoMapCore/config"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	RoomText FontName = "room-text"
	PinText  FontName = "pin-text"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

// Loaded reports whether a face is registered under f
func (f FontName) Loaded() bool {
	_, ok := fonts[f]
	return ok
}

var (
	fonts = map[FontName]font.Face{}
)

// LoadDefaults registers the bundled Go font for every name not loaded yet
func LoadDefaults() error {
	for name, size := range map[FontName]float64{
		RoomText: config.Overlay.RoomTextFontSize,
		PinText:  config.Overlay.PinTextFontSize,
	} {
		if name.Loaded() {
			continue
		}
		if err := LoadFontWithSize(name, goregular.TTF, size); err != nil {
			return err
		}
	}
	return nil
}

func LoadFont(name FontName, ttf []byte) error {
	return LoadFontWithSize(name, ttf, 10)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", name, err)
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	return nil
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
