package scenes

import (
	"fmt"

	"github.com/BadMagic100/RandoMapCore/config"
	"github.com/BadMagic100/RandoMapCore/definitions"
	"github.com/BadMagic100/RandoMapCore/session"
	"github.com/BadMagic100/RandoMapCore/sprites"
	"github.com/yohamta/donburi/features/math"
)

// demoProgress is fixed world progress for running the overlay without a
// randomizer attached
type demoProgress struct {
	cleared   map[string]bool
	reachable map[string]bool
	previewed map[string]bool
}

func (p demoProgress) Cleared(l string) bool   { return p.cleared[l] }
func (p demoProgress) Reachable(l string) bool { return p.reachable[l] }
func (p demoProgress) Previewed(l string) bool { return p.previewed[l] }

type demoPlacement struct {
	name  string
	pos   math.Vec2
	group string
	items []string
}

var demoPlacements = []demoPlacement{
	{"Grub-Crossroads_Acid", math.Vec2{X: 470, Y: 200}, "Grubs", []string{"Grub"}},
	{"Salubra", math.Vec2{X: 512, Y: 250}, "Shops", []string{"Charms", "Mask Shards", "Charms"}},
	{"Mask_Shard-Grubfather", math.Vec2{X: 450, Y: 260}, "Mask Shards", []string{"Mask Shards"}},
	{"Geo_Rock-Crossroads_Above_Lever", math.Vec2{X: 600, Y: 190}, "Geo Rocks", []string{"Geo"}},
	{"Charm-Sheo", math.Vec2{X: 170, Y: 320}, "Charms", []string{"Charms"}},
	{"Boss_Geo-Gruz_Mother", math.Vec2{X: 560, Y: 300}, "Boss Geo", []string{"Geo"}},
	{"Grub-Fungus2_14", math.Vec2{X: 260, Y: 440}, "Grubs", []string{"Grub"}},
}

var progress = demoProgress{
	cleared: map[string]bool{
		"Boss_Geo-Gruz_Mother": true,
	},
	reachable: map[string]bool{
		"Grub-Crossroads_Acid":  true,
		"Salubra":               true,
		"Mask_Shard-Grubfather": true,
	},
	previewed: map[string]bool{
		"Salubra": true,
	},
}

func demoDefinitions(s *session.Context) []definitions.Definition {
	defs := make([]definitions.Definition, 0, len(demoPlacements)+2)

	for _, p := range demoPlacements {
		placement := sprites.NewObject(p.name).Set(sprites.LocationPoolGroup, p.group)
		items := make([]sprites.Taggable, 0, len(p.items))
		for i, group := range p.items {
			items = append(items, sprites.NewObject(fmt.Sprintf("%s#%d", p.name, i)).Set(sprites.ItemPoolGroup, group))
		}
		defs = append(defs, definitions.NewPlacementDef(p.name, p.pos, placement, items, s.Sprites, progress))
	}

	bench := definitions.NewStaticDef("Bench-Dirtmouth", math.Vec2{X: 400, Y: 120}, s.Sprites.Sprite("Bench"))
	stag := definitions.NewStaticDef("Stag-Crossroads", math.Vec2{X: 540, Y: 200}, s.Sprites.Sprite("Stag"))
	stag.Shape = config.PinShapeSquare
	defs = append(defs, bench, stag)

	return defs
}
