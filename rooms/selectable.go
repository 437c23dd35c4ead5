package rooms

import (
	"github.com/yohamta/donburi/features/math"
)

// Selectable is anything the selector can highlight: pins, room labels and
// the map's own rooms
type Selectable interface {
	Key() string
	Position() math.Vec2
	CanSelect() bool
	Selected() bool
	SetSelected(selected bool)
}

// Cursor reports where the player is pointing, in map space. ok is false
// while there is no cursor.
type Cursor interface {
	CursorPosition() (pos math.Vec2, ok bool)
}

// CursorFunc adapts a function to Cursor
type CursorFunc func() (math.Vec2, bool)

func (f CursorFunc) CursorPosition() (math.Vec2, bool) {
	return f()
}
