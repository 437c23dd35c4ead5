package tags

import "github.com/yohamta/donburi"

var (
	Pin          = donburi.NewTag().SetName("Pin")
	RoomText     = donburi.NewTag().SetName("RoomText")
	RoomTextRoot = donburi.NewTag().SetName("RoomTextRoot")
)

// Resolv tags for the selection space
const (
	ResolvSelectable = "selectable"
	ResolvCursor     = "cursor"
)
