package config

// PinSize is the discrete pin size setting
type PinSize int

const (
	PinSizeTiny PinSize = iota
	PinSizeSmall
	PinSizeMedium
	PinSizeLarge
	PinSizeHuge
)

func (s PinSize) String() string {
	switch s {
	case PinSizeTiny:
		return "Tiny"
	case PinSizeSmall:
		return "Small"
	case PinSizeMedium:
		return "Medium"
	case PinSizeLarge:
		return "Large"
	case PinSizeHuge:
		return "Huge"
	}
	return "Unknown"
}

// Next returns the following size, wrapping around
func (s PinSize) Next() PinSize {
	return (s + 1) % (PinSizeHuge + 1)
}

// PinShapeSetting selects how pin borders are drawn
type PinShapeSetting int

const (
	PinShapesMixed PinShapeSetting = iota
	PinShapesCircles
	PinShapesDiamonds
	PinShapesSquares
	PinShapesPentagons
	PinShapesHexagons
	PinShapesNoBorders
)

func (s PinShapeSetting) String() string {
	switch s {
	case PinShapesMixed:
		return "Mixed"
	case PinShapesCircles:
		return "Circles"
	case PinShapesDiamonds:
		return "Diamonds"
	case PinShapesSquares:
		return "Squares"
	case PinShapesPentagons:
		return "Pentagons"
	case PinShapesHexagons:
		return "Hexagons"
	case PinShapesNoBorders:
		return "NoBorders"
	}
	return "Unknown"
}

func (s PinShapeSetting) Next() PinShapeSetting {
	return (s + 1) % (PinShapesNoBorders + 1)
}

// PinShape is a concrete border/background shape. Its name is part of the
// sprite key ("BorderCircle", "BackgroundCircle").
type PinShape int

const (
	PinShapeCircle PinShape = iota
	PinShapeDiamond
	PinShapeSquare
	PinShapePentagon
	PinShapeHexagon
)

func (s PinShape) String() string {
	switch s {
	case PinShapeCircle:
		return "Circle"
	case PinShapeDiamond:
		return "Diamond"
	case PinShapeSquare:
		return "Square"
	case PinShapePentagon:
		return "Pentagon"
	case PinShapeHexagon:
		return "Hexagon"
	}
	return "Circle"
}

// Shape maps a shape setting to a concrete shape. ok is false for Mixed and
// NoBorders, which have no fixed shape.
func (s PinShapeSetting) Shape() (shape PinShape, ok bool) {
	switch s {
	case PinShapesCircles:
		return PinShapeCircle, true
	case PinShapesDiamonds:
		return PinShapeDiamond, true
	case PinShapesSquares:
		return PinShapeSquare, true
	case PinShapesPentagons:
		return PinShapePentagon, true
	case PinShapesHexagons:
		return PinShapeHexagon, true
	}
	return PinShapeCircle, false
}

// QMarkSetting controls whether unrevealed locations show an "unknown" sprite
type QMarkSetting int

const (
	QMarksOff QMarkSetting = iota
	QMarksRed
	QMarksMixed
)

func (q QMarkSetting) String() string {
	switch q {
	case QMarksOff:
		return "Off"
	case QMarksRed:
		return "Red"
	case QMarksMixed:
		return "Mixed"
	}
	return "Unknown"
}

func (q QMarkSetting) Next() QMarkSetting {
	return (q + 1) % (QMarksMixed + 1)
}

// Settings is an immutable snapshot of the user options the overlay reads.
// Pass it by value; a new snapshot replaces the old one between ticks.
type Settings struct {
	PinSize                   PinSize         `json:"pinSize"`
	PinShapes                 PinShapeSetting `json:"pinShapes"`
	QMarks                    QMarkSetting    `json:"qMarks"`
	EnableVisualCustomization bool            `json:"enableVisualCustomization"`
	EnableRoomSelection       bool            `json:"enableRoomSelection"`
}

// DefaultSettings returns the settings used when nothing has been saved
func DefaultSettings() Settings {
	return Settings{
		PinSize:                   PinSizeMedium,
		PinShapes:                 PinShapesMixed,
		QMarks:                    QMarksOff,
		EnableVisualCustomization: true,
		EnableRoomSelection:       true,
	}
}

// Obfuscated reports whether location sprites should be replaced by
// "unknown" placeholders.
func (s Settings) Obfuscated() bool {
	return s.EnableVisualCustomization && s.QMarks != QMarksOff
}
