package rooms

import (
	"github.com/BadMagic100/RandoMapCore/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// RoomText is a room label backed by an entity
type RoomText struct {
	def   RoomTextDef
	entry *donburi.Entry
}

func (r *RoomText) data() *components.RoomTextData {
	return components.RoomText.Get(r.entry)
}

func (r *RoomText) Def() RoomTextDef {
	return r.def
}

func (r *RoomText) Entry() *donburi.Entry {
	return r.entry
}

func (r *RoomText) Key() string {
	return r.def.SceneName
}

func (r *RoomText) Position() math.Vec2 {
	return r.def.Position()
}

func (r *RoomText) Text() string {
	return r.def.Text
}

// CanSelect is true while the label is shown inside the viewport
func (r *RoomText) CanSelect() bool {
	if !r.entry.Valid() {
		return false
	}
	d := r.data()
	return d.Active && d.OnScreen
}

func (r *RoomText) Selected() bool {
	if !r.entry.Valid() {
		return false
	}
	return r.data().Selected
}

func (r *RoomText) SetSelected(selected bool) {
	if !r.entry.Valid() {
		return
	}
	r.data().Selected = selected
}
