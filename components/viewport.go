package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ViewportData maps map-space coordinates to the screen
type ViewportData struct {
	Position math.Vec2 // map-space point at the top left of the screen
	Zoom     float64
	Width    float64
	Height   float64
}

// ToScreen converts a map-space point to screen space
func (v ViewportData) ToScreen(p math.Vec2) math.Vec2 {
	zoom := v.Zoom
	if zoom == 0 {
		zoom = 1
	}
	return math.Vec2{
		X: (p.X - v.Position.X) * zoom,
		Y: (p.Y - v.Position.Y) * zoom,
	}
}

// Contains reports whether a map-space point falls inside the screen,
// widened by margin screen pixels on every side
func (v ViewportData) Contains(p math.Vec2, margin float64) bool {
	s := v.ToScreen(p)
	return s.X >= -margin && s.Y >= -margin && s.X <= v.Width+margin && s.Y <= v.Height+margin
}

var Viewport = donburi.NewComponentType[ViewportData]()
