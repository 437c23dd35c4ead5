package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
	"golang.org/x/image/font"
)

type RoomTextData struct {
	SceneName string
	Text      string
	Position  math.Vec2
	Font      font.Face

	Active   bool
	OnScreen bool
	Selected bool

	// Parent is the overlay root entity
	Parent donburi.Entity
}

var RoomText = donburi.NewComponentType[RoomTextData]()
