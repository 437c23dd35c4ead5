package archetypes

import (
	"github.com/BadMagic100/RandoMapCore/components"
	cfg "github.com/BadMagic100/RandoMapCore/config"
	"github.com/BadMagic100/RandoMapCore/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Pin = newArchetype(
		cfg.Default,
		tags.Pin,
		components.Pin,
	)
	RoomText = newArchetype(
		cfg.LayerRoomTexts,
		tags.RoomText,
		components.RoomText,
	)
	RoomTextRoot = newArchetype(
		cfg.LayerRoomTexts,
		tags.RoomTextRoot,
		components.OverlayRoot,
	)
	Viewport = newArchetype(
		cfg.Default,
		components.Viewport,
	)
	MapView = newArchetype(
		cfg.Default,
		components.MapView,
	)
)

type archetype struct {
	layer      ecs.LayerID
	components []donburi.IComponentType
}

func newArchetype(layer ecs.LayerID, cs ...donburi.IComponentType) *archetype {
	return &archetype{
		layer:      layer,
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		a.layer,
		append(a.components, cs...)...,
	))
	return e
}
