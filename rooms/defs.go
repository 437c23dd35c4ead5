// Package rooms places text labels on rooms the map does not name itself and
// lets the player select rooms with a cursor.
package rooms

import (
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"sort"

	"github.com/yohamta/donburi/features/math"
)

// RoomTextDef is one room label record
type RoomTextDef struct {
	SceneName string  `json:"sceneName"`
	Text      string  `json:"text"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
}

func (d RoomTextDef) Position() math.Vec2 {
	return math.Vec2{X: d.X, Y: d.Y}
}

// DecodeDefs reads a JSON array of room label records
func DecodeDefs(r io.Reader, name string) ([]RoomTextDef, error) {
	var defs []RoomTextDef
	if err := json.NewDecoder(r).Decode(&defs); err != nil {
		return nil, fmt.Errorf("decode room texts %s: %w", name, err)
	}
	return defs, nil
}

// LoadDefs reads a room label file from fsys
func LoadDefs(fsys fs.FS, path string) ([]RoomTextDef, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open room texts %s: %w", path, err)
	}
	defer f.Close()

	return DecodeDefs(f, path)
}

// MappedScenes reports scenes the map already labels
type MappedScenes interface {
	IsMappedScene(scene string) bool
}

// MergeDefs keys base by scene name and overlays additional on top. Records
// for mapped scenes are dropped from both sets. Within one set the last
// record for a scene wins. A nil additional set means it is not installed.
func MergeDefs(mapped MappedScenes, base, additional []RoomTextDef) map[string]RoomTextDef {
	out := make(map[string]RoomTextDef, len(base))

	put := func(defs []RoomTextDef) {
		for _, d := range defs {
			if mapped != nil && mapped.IsMappedScene(d.SceneName) {
				continue
			}
			out[d.SceneName] = d
		}
	}

	put(base)
	put(additional)

	return out
}

// sortedScenes returns the keys of defs in order
func sortedScenes(defs map[string]RoomTextDef) []string {
	scenes := make([]string, 0, len(defs))
	for scene := range defs {
		scenes = append(scenes, scene)
	}
	sort.Strings(scenes)
	return scenes
}
