package sprites

import (
	"github.com/BadMagic100/RandoMapCore/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// SettingsSource provides the current settings snapshot
type SettingsSource interface {
	Settings() config.Settings
}

// Loader resolves a sprite key to an image. It returns nil when the asset
// cannot be found; the manager still caches a sprite for that key.
type Loader interface {
	Image(key string) *ebiten.Image
}

// Manager resolves semantic keys and tagged objects to cached pin sprites.
// It is owned by a session and is not safe for concurrent use.
type Manager struct {
	settings SettingsSource
	loader   Loader

	builtIn    map[string]*ScaledSprite
	connection map[Taggable]*ScaledSprite
}

func NewManager(settings SettingsSource, loader Loader) *Manager {
	return &Manager{
		settings:   settings,
		loader:     loader,
		builtIn:    make(map[string]*ScaledSprite),
		connection: make(map[Taggable]*ScaledSprite),
	}
}

// LocationSprite resolves a location key. Pool group names are mapped to
// built-in keys first, then the unknown-marker setting may replace the key
// with a placeholder.
func (m *Manager) LocationSprite(key string) *ScaledSprite {
	if other, ok := builtInKey(key); ok {
		return m.LocationSprite(other)
	}

	if s := m.settings.Settings(); s.EnableVisualCustomization {
		key = obfuscatedKey(key, s.QMarks)
	}

	return m.spriteInternal(key)
}

// Sprite resolves a key without applying the unknown-marker setting. Used for
// borders, backgrounds and items.
func (m *Manager) Sprite(key string) *ScaledSprite {
	if other, ok := builtInKey(key); ok {
		return m.spriteInternal(other)
	}
	return m.spriteInternal(key)
}

func (m *Manager) spriteInternal(key string) *ScaledSprite {
	if sprite, ok := m.builtIn[key]; ok {
		return sprite
	}

	var img *ebiten.Image
	if m.loader != nil {
		img = m.loader.Image(key)
	}
	sprite := newKeySprite(key, img)
	m.builtIn[key] = sprite

	return sprite
}

// PlacementSprite resolves the sprite for a placement. While unknown markers
// are on, the pool group placeholder is returned and nothing is cached for
// the placement. Otherwise the first resolution is cached for the session.
func (m *Manager) PlacementSprite(p Taggable) *ScaledSprite {
	if m.settings.Settings().Obfuscated() {
		group, _ := stringMeta(p, LocationPoolGroup)
		return m.LocationSprite(group)
	}

	if sprite, ok := m.connection[p]; ok {
		return sprite
	}

	var sprite *ScaledSprite
	if key, ok := stringMeta(p, LocationPinSpriteKey); ok {
		sprite = m.LocationSprite(key)
	} else if img, ok := imageMeta(p, LocationPinSprite); ok {
		sprite = NewInlineSprite(img, sizeMeta(p, LocationPinSpriteSize))
	} else {
		group, _ := stringMeta(p, LocationPoolGroup)
		sprite = m.LocationSprite(group)
	}

	m.connection[p] = sprite

	return sprite
}

// ItemSprite resolves and caches the sprite for an item
func (m *Manager) ItemSprite(item Taggable) *ScaledSprite {
	if sprite, ok := m.connection[item]; ok {
		return sprite
	}

	var sprite *ScaledSprite
	if key, ok := stringMeta(item, ItemPinSpriteKey); ok {
		sprite = m.Sprite(key)
	} else if img, ok := imageMeta(item, ItemPinSprite); ok {
		sprite = NewInlineSprite(img, sizeMeta(item, ItemPinSpriteSize))
	} else {
		group, _ := stringMeta(item, ItemPoolGroup)
		sprite = m.Sprite(group)
	}

	m.connection[item] = sprite

	return sprite
}

// Cached reports whether a built-in sprite exists for key
func (m *Manager) Cached(key string) bool {
	_, ok := m.builtIn[key]
	return ok
}

// Reset drops every cached sprite
func (m *Manager) Reset() {
	m.builtIn = make(map[string]*ScaledSprite)
	m.connection = make(map[Taggable]*ScaledSprite)
}
