package systems

import (
	"github.com/BadMagic100/RandoMapCore/components"
	cfg "github.com/BadMagic100/RandoMapCore/config"
	"github.com/BadMagic100/RandoMapCore/rooms"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateRooms ticks the room manager and handles selection cycling
func NewUpdateRooms(m *rooms.Manager) ecs.System {
	return func(e *ecs.ECS) {
		m.Tick()

		sel := m.Selector()
		if sel == nil {
			return
		}
		entry, ok := components.Input.First(e.World)
		if !ok {
			return
		}
		if GetAction(components.Input.Get(entry), cfg.ActionCycleSelection).JustPressed {
			sel.Cycle()
		}
	}
}
