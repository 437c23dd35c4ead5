package systems

import (
	"github.com/BadMagic100/RandoMapCore/components"
	"github.com/BadMagic100/RandoMapCore/mapscene"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// cullPadding keeps objects at the screen edge selectable
const cullPadding = 16.0

// NewUpdateCulling marks what is drawn inside the viewport. Only on screen
// objects can be selected.
func NewUpdateCulling(registry *mapscene.Registry) ecs.System {
	return func(e *ecs.ECS) {
		vpEntry, ok := components.Viewport.First(e.World)
		if !ok {
			return
		}
		vp := components.Viewport.Get(vpEntry)

		mapOpen := false
		if mvEntry, ok := components.MapView.First(e.World); ok {
			mapOpen = components.MapView.Get(mvEntry).Open
		}

		components.Pin.Each(e.World, func(entry *donburi.Entry) {
			pd := components.Pin.Get(entry)
			pd.OnScreen = mapOpen && pd.Active && vp.Contains(pd.Position, cullPadding)
		})

		components.RoomText.Each(e.World, func(entry *donburi.Entry) {
			rt := components.RoomText.Get(entry)
			rt.OnScreen = mapOpen && rt.Active && vp.Contains(rt.Position, cullPadding)
		})

		if registry == nil {
			return
		}
		for _, room := range registry.Rooms() {
			room.OnScreen = mapOpen && vp.Contains(room.Position(), cullPadding)
		}
	}
}
