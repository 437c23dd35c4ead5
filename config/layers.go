package config

import "github.com/yohamta/donburi/ecs"

// Render layers. Room labels draw above pins.
const (
	Default ecs.LayerID = iota
	LayerRoomTexts
)
