package components

import (
	"github.com/yohamta/donburi"
)

// OverlayRootData groups the entities of one overlay so they can be shown,
// hidden and destroyed together
type OverlayRootData struct {
	Name     string
	Children []donburi.Entity
	Active   bool
}

var OverlayRoot = donburi.NewComponentType[OverlayRootData]()
