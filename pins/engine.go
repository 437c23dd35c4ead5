// Package pins computes how each map pin is shown: whether it is active, its
// size, colors, border and the sprite it is currently cycling through.
package pins

import (
	"github.com/BadMagic100/RandoMapCore/archetypes"
	"github.com/BadMagic100/RandoMapCore/components"
	"github.com/BadMagic100/RandoMapCore/definitions"
	"github.com/BadMagic100/RandoMapCore/sprites"
	"github.com/BadMagic100/RandoMapCore/timers"
	"github.com/rs/zerolog"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Engine owns the session resources shared by every pin
type Engine struct {
	sprites  *sprites.Manager
	timers   *timers.Scheduler
	settings sprites.SettingsSource
	logger   zerolog.Logger

	world donburi.World
	pins  []*Pin
	byID  map[donburi.Entity]*Pin
}

func NewEngine(sm *sprites.Manager, sched *timers.Scheduler, settings sprites.SettingsSource, logger zerolog.Logger) *Engine {
	return &Engine{
		sprites:  sm,
		timers:   sched,
		settings: settings,
		logger:   logger.With().Str("component", "pins").Logger(),
		byID:     make(map[donburi.Entity]*Pin),
	}
}

// Create spawns a pin entity bound to def
func (e *Engine) Create(ecs *ecs.ECS, def definitions.Definition) *Pin {
	e.world = ecs.World

	entry := archetypes.Pin.Spawn(ecs)
	components.Pin.SetValue(entry, components.PinData{
		Def:      def,
		Position: def.MapPosition(),
	})

	p := &Pin{engine: e, entry: entry}
	e.pins = append(e.pins, p)
	e.byID[entry.Entity()] = p

	return p
}

// Get returns the pin backed by entity
func (e *Engine) Get(entity donburi.Entity) (*Pin, bool) {
	p, ok := e.byID[entity]
	return p, ok
}

// Pins returns every live pin in creation order
func (e *Engine) Pins() []*Pin {
	return e.pins
}

// Destroy stops cycling and removes every pin
func (e *Engine) Destroy() {
	for _, p := range e.pins {
		p.stopCycling()
		if p.entry.Valid() {
			e.world.Remove(p.entry.Entity())
		}
	}
	e.pins = nil
	e.byID = make(map[donburi.Entity]*Pin)
}

// MapOpen reports whether the map view the pins belong to is open
func (e *Engine) MapOpen() bool {
	if e.world == nil {
		return false
	}
	entry, ok := components.MapView.First(e.world)
	if !ok {
		return false
	}
	return components.MapView.Get(entry).Open
}
