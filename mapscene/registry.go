// Package mapscene describes the game map the overlay is drawn on: which
// scenes the map already labels itself, the rooms it can select without a
// room label, and the map size. The data comes from a Tiled map.
package mapscene

import (
	"fmt"
	"io/fs"
	"sort"

	"github.com/lafriks/go-tiled"
	"github.com/yohamta/donburi/features/math"
	"github.com/zyedidia/generic/mapset"
)

// Object group names in the map file
const (
	GroupMappedScenes    = "MappedScenes"
	GroupSelectableRooms = "SelectableRooms"
)

// Registry answers questions about the scenes of the map
type Registry struct {
	Width  float64
	Height float64

	mapped mapset.Set[string]
	rooms  []*Room
	byName map[string]*Room
}

// NewRegistry builds a registry directly, for callers without a map file
func NewRegistry(width, height float64, mapped []string, rooms []*Room) *Registry {
	r := &Registry{
		Width:  width,
		Height: height,
		mapped: mapset.New[string](),
		byName: make(map[string]*Room),
	}
	for _, scene := range mapped {
		r.mapped.Put(scene)
	}
	for _, room := range rooms {
		r.addRoom(room)
	}
	return r
}

// Load reads the registry from a Tiled map. Objects in the MappedScenes group
// name natively mapped scenes; objects in the SelectableRooms group are
// built-in selectable rooms.
func Load(fsys fs.FS, tmxPath string) (*Registry, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	r := NewRegistry(
		float64(levelMap.Width*levelMap.TileWidth),
		float64(levelMap.Height*levelMap.TileHeight),
		nil, nil,
	)

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case GroupMappedScenes:
			for _, o := range og.Objects {
				if o.Name == "" {
					continue
				}
				r.mapped.Put(o.Name)
			}
		case GroupSelectableRooms:
			for _, o := range og.Objects {
				if o.Name == "" {
					continue
				}
				label := o.Properties.GetString("label")
				if label == "" {
					label = o.Name
				}
				r.addRoom(&Room{
					Scene:  o.Name,
					Label:  label,
					Bounds: Rect{X: o.X, Y: o.Y, Width: o.Width, Height: o.Height},
				})
			}
		}
	}

	// Keep selection order stable regardless of object order in the file
	sort.SliceStable(r.rooms, func(i, j int) bool {
		return r.rooms[i].Scene < r.rooms[j].Scene
	})

	return r, nil
}

func (r *Registry) addRoom(room *Room) {
	if _, ok := r.byName[room.Scene]; ok {
		return
	}
	r.byName[room.Scene] = room
	r.rooms = append(r.rooms, room)
}

// IsMappedScene reports whether the map already labels scene
func (r *Registry) IsMappedScene(scene string) bool {
	return r.mapped.Has(scene)
}

// MappedScenes returns the natively mapped scenes in sorted order
func (r *Registry) MappedScenes() []string {
	out := make([]string, 0, r.mapped.Size())
	r.mapped.Each(func(scene string) {
		out = append(out, scene)
	})
	sort.Strings(out)
	return out
}

// Rooms returns the built-in selectable rooms
func (r *Registry) Rooms() []*Room {
	return r.rooms
}

func (r *Registry) Room(scene string) (*Room, bool) {
	room, ok := r.byName[scene]
	return room, ok
}

// Contains reports whether p lies on the map
func (r *Registry) Contains(p math.Vec2) bool {
	return p.X >= 0 && p.Y >= 0 && p.X <= r.Width && p.Y <= r.Height
}
