package components

import (
	"github.com/yohamta/donburi"
)

type MapViewData struct {
	Open bool
	// Refresh requests an evaluation pass over every pin on the next update
	Refresh bool
}

var MapView = donburi.NewComponentType[MapViewData]()
