package mapscene

import (
	"github.com/yohamta/donburi/features/math"
)

type Rect struct {
	X, Y, Width, Height float64
}

func (r Rect) Center() math.Vec2 {
	return math.Vec2{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Room is a scene drawn by the map itself that can still be selected
type Room struct {
	Scene  string
	Label  string
	Bounds Rect

	// OnScreen is maintained by the culling system
	OnScreen bool
	selected bool
}

func (r *Room) Key() string {
	return r.Scene
}

func (r *Room) Position() math.Vec2 {
	return r.Bounds.Center()
}

func (r *Room) CanSelect() bool {
	return r.OnScreen
}

func (r *Room) Selected() bool {
	return r.selected
}

func (r *Room) SetSelected(selected bool) {
	r.selected = selected
}
