package config

import (
	"image/color"
	"time"
)

// PinConfig contains the pin presentation constants
type PinConfig struct {
	// Base scales by pin size setting
	TinyScale   float64
	SmallScale  float64
	MediumScale float64
	LargeScale  float64
	HugeScale   float64

	// Multipliers
	ShrinkMultiplier   float64 // applied when the definition asks to shrink
	DarkenMultiplier   float32 // uniform RGB scale for darkened pins
	NoBorderMultiplier float64 // compensates for the missing border in NoBorders mode
	SelectedMultiplier float64 // emphasis for the selected pin

	// Sprite cycling
	UpdateWait time.Duration // real time between sprite frames

	// Sizes keyed by setting, filled from the scales above
	Sizes map[PinSize]float64
}

// SpriteConfig contains sprite normalization values
type SpriteConfig struct {
	// BaseSize is the pixel size a pin sprite is normalized to (longest side)
	BaseSize float64
	// Dir is the directory inside the asset FS holding pin sprites
	Dir string
	// Ext is the file extension of pin sprites
	Ext string
}

// SelectorConfig contains room/pin selection values
type SelectorConfig struct {
	Radius   float64 // map pixels around the cursor that count as a hit
	CellSize int     // resolv space cell size
}

// OverlayConfig contains room label rendering values
type OverlayConfig struct {
	RoomTextColor         color.RGBA
	RoomTextSelectedColor color.RGBA
	RoomTextFontSize      float64
	PinTextFontSize       float64
}

// Config holds general overlay configuration
type Config struct {
	Width  int
	Height int
}

// Global configuration instances
var C *Config
var Pin PinConfig
var Sprite SpriteConfig
var Selector SelectorConfig
var Overlay OverlayConfig

// Shared RGBA color constants
var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	LightBlue = color.RGBA{R: 100, G: 180, B: 255, A: 255}
)

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
	}

	Pin = PinConfig{
		TinyScale:   0.47,
		SmallScale:  0.56,
		MediumScale: 0.67,
		LargeScale:  0.8,
		HugeScale:   0.96,

		ShrinkMultiplier:   0.7,
		DarkenMultiplier:   0.5,
		NoBorderMultiplier: 1.3,
		SelectedMultiplier: 1.3,

		UpdateWait: time.Second,
	}
	Pin.Sizes = map[PinSize]float64{
		PinSizeTiny:   Pin.TinyScale,
		PinSizeSmall:  Pin.SmallScale,
		PinSizeMedium: Pin.MediumScale,
		PinSizeLarge:  Pin.LargeScale,
		PinSizeHuge:   Pin.HugeScale,
	}

	Sprite = SpriteConfig{
		BaseSize: 100,
		Dir:      "images/pins",
		Ext:      ".png",
	}

	Selector = SelectorConfig{
		Radius:   24,
		CellSize: 32,
	}

	Overlay = OverlayConfig{
		RoomTextColor:         White,
		RoomTextSelectedColor: LightBlue,
		RoomTextFontSize:      12,
		PinTextFontSize:       10,
	}
}
