package rooms

import (
	stdmath "math"
	"sort"

	"github.com/BadMagic100/RandoMapCore/config"
	"github.com/BadMagic100/RandoMapCore/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/features/math"
)

// Selector highlights the selectable closest to the cursor. Candidates come
// from a resolv space broadphase and are then filtered by distance.
type Selector struct {
	cursor Cursor
	radius float64

	space     *resolv.Space
	cursorObj *resolv.Object
	origin    math.Vec2

	objects []*resolv.Object

	selected   Selectable
	candidates []Selectable
	index      int
}

func NewSelector(selectables []Selectable, cursor Cursor) *Selector {
	s := &Selector{
		cursor: cursor,
		radius: config.Selector.Radius,
	}
	s.build(selectables)
	return s
}

func (s *Selector) build(selectables []Selectable) {
	cell := config.Selector.CellSize
	if cell <= 0 {
		cell = 32
	}

	// The space starts at the smallest position so negative coordinates work
	minX, minY := 0.0, 0.0
	maxX, maxY := 0.0, 0.0
	for i, sel := range selectables {
		p := sel.Position()
		if i == 0 || p.X < minX {
			minX = p.X
		}
		if i == 0 || p.Y < minY {
			minY = p.Y
		}
		if i == 0 || p.X > maxX {
			maxX = p.X
		}
		if i == 0 || p.Y > maxY {
			maxY = p.Y
		}
	}
	pad := s.radius + float64(cell)
	s.origin = math.Vec2{X: minX - pad, Y: minY - pad}

	w := int(maxX-minX+2*pad) + cell
	h := int(maxY-minY+2*pad) + cell
	s.space = resolv.NewSpace(w, h, cell, cell)

	for _, sel := range selectables {
		p := s.local(sel.Position())
		obj := resolv.NewObject(p.X, p.Y, 1, 1, tags.ResolvSelectable)
		obj.Data = sel
		s.space.Add(obj)
		s.objects = append(s.objects, obj)
	}

	d := 2 * s.radius
	s.cursorObj = resolv.NewObject(0, 0, d, d, tags.ResolvCursor)
	s.space.Add(s.cursorObj)
}

func (s *Selector) local(p math.Vec2) math.Vec2 {
	return math.Vec2{X: p.X - s.origin.X, Y: p.Y - s.origin.Y}
}

// Len returns the number of selectables the selector knows about
func (s *Selector) Len() int {
	return len(s.objects)
}

// Selected returns the current selection, or nil
func (s *Selector) Selected() Selectable {
	return s.selected
}

// Candidates returns the selectables under the cursor, nearest first
func (s *Selector) Candidates() []Selectable {
	return s.candidates
}

// MainUpdate re-evaluates the selection from the cursor position
func (s *Selector) MainUpdate() {
	pos, ok := s.cursor.CursorPosition()
	if !ok {
		s.candidates = nil
		s.index = 0
		s.selectItem(nil)
		return
	}

	found := s.query(pos)
	s.index = 0
	if sameSet(found, s.candidates) {
		// Keep a cycled selection while the cursor stays over the same group
		for i, sel := range found {
			if sel == s.selected {
				s.index = i
				break
			}
		}
	}
	s.candidates = found

	if len(found) == 0 {
		s.selectItem(nil)
		return
	}
	s.selectItem(found[s.index])
}

// Cycle moves the selection to the next overlapping candidate
func (s *Selector) Cycle() {
	if len(s.candidates) < 2 {
		return
	}
	s.index = (s.index + 1) % len(s.candidates)
	s.selectItem(s.candidates[s.index])
}

// Deselect clears the selection
func (s *Selector) Deselect() {
	s.candidates = nil
	s.index = 0
	s.selectItem(nil)
}

func (s *Selector) query(pos math.Vec2) []Selectable {
	p := s.local(pos)
	s.cursorObj.X = p.X - s.radius
	s.cursorObj.Y = p.Y - s.radius
	s.cursorObj.Update()

	check := s.cursorObj.Check(0, 0, tags.ResolvSelectable)
	if check == nil {
		return nil
	}

	type hit struct {
		sel  Selectable
		dist float64
	}
	var hits []hit
	seen := make(map[Selectable]bool)
	for _, obj := range check.Objects {
		sel, ok := obj.Data.(Selectable)
		if !ok || seen[sel] || !sel.CanSelect() {
			continue
		}
		seen[sel] = true

		sp := sel.Position()
		dist := stdmath.Hypot(sp.X-pos.X, sp.Y-pos.Y)
		if dist > s.radius {
			continue
		}
		hits = append(hits, hit{sel: sel, dist: dist})
	}

	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].dist != hits[j].dist {
			return hits[i].dist < hits[j].dist
		}
		return hits[i].sel.Key() < hits[j].sel.Key()
	})

	out := make([]Selectable, len(hits))
	for i, h := range hits {
		out[i] = h.sel
	}
	return out
}

func (s *Selector) selectItem(next Selectable) {
	if s.selected == next {
		return
	}
	if s.selected != nil {
		s.selected.SetSelected(false)
	}
	s.selected = next
	if next != nil {
		next.SetSelected(true)
	}
}

// Close deselects and removes every object from the space
func (s *Selector) Close() {
	s.Deselect()
	s.space.Remove(s.objects...)
	s.space.Remove(s.cursorObj)
	s.objects = nil
}

func sameSet(a, b []Selectable) bool {
	if len(a) != len(b) {
		return false
	}
	in := make(map[Selectable]bool, len(b))
	for _, sel := range b {
		in[sel] = true
	}
	for _, sel := range a {
		if !in[sel] {
			return false
		}
	}
	return true
}
