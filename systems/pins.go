package systems

import (
	"github.com/BadMagic100/RandoMapCore/components"
	"github.com/BadMagic100/RandoMapCore/pins"
	"github.com/yohamta/donburi/ecs"
)

// refreshPending reports whether an evaluation pass was requested
func refreshPending(e *ecs.ECS) bool {
	entry, ok := components.MapView.First(e.World)
	if !ok {
		return false
	}
	return components.MapView.Get(entry).Refresh
}

// NewUpdatePinsBefore returns the before phase: every pin stops cycling and
// refreshes its definition. Runs only on evaluation passes.
func NewUpdatePinsBefore(engine *pins.Engine) ecs.System {
	return func(e *ecs.ECS) {
		if !refreshPending(e) {
			return
		}
		for _, p := range engine.Pins() {
			p.BeforeMainUpdate()
		}
	}
}

// NewUpdatePins returns the main phase. It must be added after the before
// phase; it completes the evaluation pass.
func NewUpdatePins(engine *pins.Engine) ecs.System {
	return func(e *ecs.ECS) {
		entry, ok := components.MapView.First(e.World)
		if !ok {
			return
		}
		mv := components.MapView.Get(entry)
		if !mv.Refresh {
			return
		}
		for _, p := range engine.Pins() {
			p.OnMainUpdate(p.Active())
		}
		mv.Refresh = false
	}
}
