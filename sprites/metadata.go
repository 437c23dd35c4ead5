package sprites

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/features/math"
)

// MetaTag names a piece of supplemental metadata attached to a placement or item
type MetaTag string

const (
	LocationPinSpriteKey  MetaTag = "LocationPinSpriteKey"  // string
	LocationPinSprite     MetaTag = "LocationPinSprite"     // *ebiten.Image
	LocationPinSpriteSize MetaTag = "LocationPinSpriteSize" // math.Vec2
	LocationPoolGroup     MetaTag = "LocationPoolGroup"     // string

	ItemPinSpriteKey  MetaTag = "ItemPinSpriteKey"
	ItemPinSprite     MetaTag = "ItemPinSprite"
	ItemPinSpriteSize MetaTag = "ItemPinSpriteSize"
	ItemPoolGroup     MetaTag = "ItemPoolGroup"
)

// Taggable is an opaque placement or item carrying metadata. Implementations
// are used as cache keys by identity and must be comparable (pointer types).
type Taggable interface {
	Metadata(tag MetaTag) (any, bool)
}

// Object is a simple Taggable backed by a map.
type Object struct {
	Name string
	meta map[MetaTag]any
}

func NewObject(name string) *Object {
	return &Object{Name: name, meta: make(map[MetaTag]any)}
}

// Set stores a metadata value and returns the object for chaining
func (o *Object) Set(tag MetaTag, value any) *Object {
	o.meta[tag] = value
	return o
}

func (o *Object) Metadata(tag MetaTag) (any, bool) {
	v, ok := o.meta[tag]
	return v, ok
}

func stringMeta(t Taggable, tag MetaTag) (string, bool) {
	v, ok := t.Metadata(tag)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

func imageMeta(t Taggable, tag MetaTag) (*ebiten.Image, bool) {
	v, ok := t.Metadata(tag)
	if !ok {
		return nil, false
	}
	img, ok := v.(*ebiten.Image)
	return img, ok && img != nil
}

func sizeMeta(t Taggable, tag MetaTag) math.Vec2 {
	v, ok := t.Metadata(tag)
	if !ok {
		return math.Vec2{}
	}
	size, _ := v.(math.Vec2)
	return size
}
