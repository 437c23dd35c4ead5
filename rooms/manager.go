package rooms

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/BadMagic100/RandoMapCore/archetypes"
	"github.com/BadMagic100/RandoMapCore/components"
	"github.com/BadMagic100/RandoMapCore/config"
	"github.com/BadMagic100/RandoMapCore/mapscene"
	"github.com/rs/zerolog"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

type State int

const (
	StateUninitialized State = iota
	StateLoaded
	StateBuilt
	StateActive
	StateTornDown
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "Uninitialized"
	case StateLoaded:
		return "Loaded"
	case StateBuilt:
		return "Built"
	case StateActive:
		return "Active"
	case StateTornDown:
		return "TornDown"
	}
	return "Unknown"
}

var (
	ErrNotLoaded    = errors.New("room texts are not loaded")
	ErrAlreadyBuilt = errors.New("room overlay is already built")
)

// RootName is the name of the overlay root that owns every room label
const RootName = "Room Texts"

// Manager owns the room labels and the selector of one game session
type Manager struct {
	registry *mapscene.Registry
	face     font.Face
	logger   zerolog.Logger

	state    State
	defs     map[string]RoomTextDef
	world    donburi.World
	root     *donburi.Entry
	texts    map[string]*RoomText
	order    []*RoomText
	selector *Selector
}

func NewManager(registry *mapscene.Registry, face font.Face, logger zerolog.Logger) *Manager {
	return &Manager{
		registry: registry,
		face:     face,
		logger:   logger.With().Str("component", "rooms").Logger(),
	}
}

// EnterGame loads the label files from fsys. An empty additionalPath means
// the additional maps set is not installed.
func (m *Manager) EnterGame(fsys fs.FS, basePath, additionalPath string) error {
	base, err := LoadDefs(fsys, basePath)
	if err != nil {
		return err
	}

	var additional []RoomTextDef
	if additionalPath != "" {
		additional, err = LoadDefs(fsys, additionalPath)
		if err != nil {
			return err
		}
	}

	m.EnterGameWithDefs(base, additional)
	return nil
}

// EnterGameWithDefs loads already decoded label records
func (m *Manager) EnterGameWithDefs(base, additional []RoomTextDef) {
	var mapped MappedScenes
	if m.registry != nil {
		mapped = m.registry
	}
	m.defs = MergeDefs(mapped, base, additional)
	m.state = StateLoaded

	m.logger.Debug().
		Int("base", len(base)).
		Int("additional", len(additional)).
		Int("merged", len(m.defs)).
		Msg("Loaded room texts")
}

// Build creates one label entity per record under a shared overlay root and,
// when room selection is enabled, a selector over the built-in rooms, the
// labels and any extra selectables.
func (m *Manager) Build(e *ecs.ECS, settings config.Settings, cursor Cursor, extra ...Selectable) error {
	switch m.state {
	case StateLoaded:
	case StateBuilt, StateActive:
		return ErrAlreadyBuilt
	default:
		return fmt.Errorf("build room overlay in state %s: %w", m.state, ErrNotLoaded)
	}

	m.world = e.World
	m.root = archetypes.RoomTextRoot.Spawn(e)
	root := components.OverlayRootData{Name: RootName, Active: true}

	m.texts = make(map[string]*RoomText, len(m.defs))
	m.order = make([]*RoomText, 0, len(m.defs))
	for _, scene := range sortedScenes(m.defs) {
		def := m.defs[scene]

		entry := archetypes.RoomText.Spawn(e)
		components.RoomText.SetValue(entry, components.RoomTextData{
			SceneName: def.SceneName,
			Text:      def.Text,
			Position:  def.Position(),
			Font:      m.face,
			Active:    true,
			Parent:    m.root.Entity(),
		})
		root.Children = append(root.Children, entry.Entity())

		rt := &RoomText{def: def, entry: entry}
		m.texts[scene] = rt
		m.order = append(m.order, rt)
	}
	components.OverlayRoot.SetValue(m.root, root)

	switch {
	case !settings.EnableRoomSelection:
	case cursor == nil:
		m.logger.Debug().Msg("Room selection is enabled but there is no cursor, selector disabled")
	default:
		m.selector = NewSelector(m.SelectionSet(extra...), cursor)
	}

	m.state = StateBuilt
	return nil
}

// SelectionSet returns the built-in rooms followed by the labels and extra
func (m *Manager) SelectionSet(extra ...Selectable) []Selectable {
	var set []Selectable
	if m.registry != nil {
		for _, room := range m.registry.Rooms() {
			set = append(set, room)
		}
	}
	for _, rt := range m.order {
		set = append(set, rt)
	}
	return append(set, extra...)
}

// Tick advances the selector, if there is one
func (m *Manager) Tick() {
	if m.selector == nil {
		return
	}
	m.selector.MainUpdate()
	if m.state == StateBuilt {
		m.state = StateActive
	}
}

// QuitToMenu drops all session state and removes the label entities
func (m *Manager) QuitToMenu() {
	if m.selector != nil {
		m.selector.Close()
	}
	if m.world != nil {
		for _, rt := range m.order {
			if rt.entry.Valid() {
				m.world.Remove(rt.entry.Entity())
			}
		}
		if m.root != nil && m.root.Valid() {
			m.world.Remove(m.root.Entity())
		}
	}

	m.defs = nil
	m.world = nil
	m.root = nil
	m.texts = nil
	m.order = nil
	m.selector = nil
	m.state = StateTornDown
}

func (m *Manager) State() State {
	return m.state
}

// Defs returns the merged records keyed by scene
func (m *Manager) Defs() map[string]RoomTextDef {
	out := make(map[string]RoomTextDef, len(m.defs))
	for k, v := range m.defs {
		out[k] = v
	}
	return out
}

// RoomTexts returns a copy of the label map keyed by scene
func (m *Manager) RoomTexts() map[string]*RoomText {
	out := make(map[string]*RoomText, len(m.texts))
	for k, v := range m.texts {
		out[k] = v
	}
	return out
}

func (m *Manager) RoomText(scene string) (*RoomText, bool) {
	rt, ok := m.texts[scene]
	return rt, ok
}

// Root returns the overlay root entity, or nil before Build
func (m *Manager) Root() *donburi.Entry {
	return m.root
}

// Selector returns the selector, or nil when room selection is disabled
func (m *Manager) Selector() *Selector {
	return m.selector
}

// SetActive shows or hides every label
func (m *Manager) SetActive(active bool) {
	if m.root == nil || !m.root.Valid() {
		return
	}
	root := components.OverlayRoot.Get(m.root)
	root.Active = active
	for _, rt := range m.order {
		if rt.entry.Valid() {
			components.RoomText.Get(rt.entry).Active = active
		}
	}
}
