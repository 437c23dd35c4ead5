package definitions

import (
	"fmt"
	"image/color"

	"github.com/BadMagic100/RandoMapCore/config"
	"github.com/BadMagic100/RandoMapCore/sprites"
	"github.com/yohamta/donburi/features/math"
)

// Progress answers logic questions about a location from the world engine
type Progress interface {
	Cleared(location string) bool   // every item at the location is obtained
	Reachable(location string) bool // the location is in logic
	Previewed(location string) bool // the items at the location are known
}

// PoolFilter decides whether a pool group is shown by the user's settings
type PoolFilter func(poolGroup string) bool

// Border colors by logic state
var (
	ReachableBorder   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	UnreachableBorder = color.RGBA{R: 160, G: 160, B: 160, A: 255}
	PreviewedBorder   = color.RGBA{R: 255, G: 215, B: 80, A: 255}
)

// PlacementDef is a randomized location. It shows the placement sprite, or
// cycles through the item sprites once the items have been previewed.
type PlacementDef struct {
	name      string
	position  math.Vec2
	placement sprites.Taggable
	items     []sprites.Taggable

	sprites  *sprites.Manager
	progress Progress
	filter   PoolFilter

	cleared   bool
	reachable bool
	previewed bool
}

func NewPlacementDef(name string, pos math.Vec2, placement sprites.Taggable, items []sprites.Taggable, sm *sprites.Manager, progress Progress) *PlacementDef {
	return &PlacementDef{
		name:      name,
		position:  pos,
		placement: placement,
		items:     items,
		sprites:   sm,
		progress:  progress,
	}
}

// WithPoolFilter sets the settings filter and returns the definition
func (d *PlacementDef) WithPoolFilter(f PoolFilter) *PlacementDef {
	d.filter = f
	return d
}

func (d *PlacementDef) Name() string {
	return d.name
}

func (d *PlacementDef) MapPosition() math.Vec2 {
	return d.position
}

func (d *PlacementDef) Update() {
	d.cleared = d.progress.Cleared(d.name)
	d.reachable = d.progress.Reachable(d.name)
	d.previewed = d.progress.Previewed(d.name)
}

func (d *PlacementDef) CorrectMapOpen() bool {
	return true
}

func (d *PlacementDef) ActiveByCurrentMode() bool {
	return true
}

func (d *PlacementDef) ActiveBySettings() bool {
	if d.filter == nil {
		return true
	}
	group, _ := d.placement.Metadata(sprites.LocationPoolGroup)
	s, _ := group.(string)
	return d.filter(s)
}

func (d *PlacementDef) ActiveByProgress() bool {
	return !d.cleared
}

func (d *PlacementDef) ShrinkPin() bool {
	return !d.reachable
}

func (d *PlacementDef) DarkenPin() bool {
	return !d.reachable
}

func (d *PlacementDef) MixedPinShape() config.PinShape {
	switch {
	case d.previewed:
		return config.PinShapeDiamond
	case !d.reachable:
		return config.PinShapeSquare
	}
	return config.PinShapeCircle
}

func (d *PlacementDef) BorderColor() color.Color {
	switch {
	case d.previewed:
		return PreviewedBorder
	case !d.reachable:
		return UnreachableBorder
	}
	return ReachableBorder
}

func (d *PlacementDef) PinSprites() []*sprites.ScaledSprite {
	if d.previewed && len(d.items) > 0 {
		out := make([]*sprites.ScaledSprite, 0, len(d.items))
		for _, item := range d.items {
			out = append(out, d.sprites.ItemSprite(item))
		}
		return out
	}
	return []*sprites.ScaledSprite{d.sprites.PlacementSprite(d.placement)}
}

func (d *PlacementDef) Text() string {
	status := "out of logic"
	if d.reachable {
		status = "reachable"
	}
	if d.previewed {
		return fmt.Sprintf("%s\n%s, %d previewed", d.name, status, len(d.items))
	}
	return fmt.Sprintf("%s\n%s", d.name, status)
}
