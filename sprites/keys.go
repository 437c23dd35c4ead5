package sprites

import "github.com/BadMagic100/RandoMapCore/config"

// builtInKeys maps pool group names to the built-in sprite key
var builtInKeys = map[string]string{
	"Dreamers":          "Dreamer",
	"Skills":            "Skill",
	"Charms":            "Charm",
	"Keys":              "Key",
	"Mask Shards":       "Mask",
	"Vessel Fragments":  "Vessel",
	"Charm Notches":     "Notch",
	"Pale Ore":          "Ore",
	"Geo Chests":        "Geo",
	"Rancid Eggs":       "Egg",
	"Relics":            "Relic",
	"Whispering Roots":  "Root",
	"Boss Essence":      "EssenceBoss",
	"Grubs":             "Grub",
	"Mimics":            "Grub",
	"Maps":              "Map",
	"Stags":             "Stag",
	"Lifeblood Cocoons": "Cocoon",
	"Grimmkin Flames":   "Flame",
	"Journal Entries":   "Journal",
	"Geo Rocks":         "Rock",
	"Boss Geo":          "Geo",
	"Soul Totems":       "Totem",
	"Lore Tablets":      "Lore",
	"Shops":             "Shop",
	"Levers":            "Lever",
	"Mr Mushroom":       "Lore",
	"Benches":           "Bench",
	"Other":             "Unknown",
}

// mixedUnknownKeys are the category specific placeholders for QMarksMixed
var mixedUnknownKeys = map[string]string{
	"Grub":   "UnknownGrub",
	"Cocoon": "UnknownLifeblood",
	"Rock":   "UnknownGeoRock",
	"Totem":  "UnknownTotem",
	"Shop":   "Shop",
}

const (
	unknownKey = "Unknown"
	shopKey    = "Shop"
)

func builtInKey(poolGroup string) (string, bool) {
	key, ok := builtInKeys[poolGroup]
	return key, ok
}

// obfuscatedKey replaces a canonical key with its placeholder for the given mode
func obfuscatedKey(key string, mode config.QMarkSetting) string {
	switch mode {
	case config.QMarksRed:
		if key == shopKey {
			return shopKey
		}
		return unknownKey
	case config.QMarksMixed:
		if k, ok := mixedUnknownKeys[key]; ok {
			return k
		}
		return unknownKey
	}
	return key
}
