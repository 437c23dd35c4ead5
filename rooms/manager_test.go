package rooms

import (
	"bytes"
	"testing"
	"testing/fstest"

	"github.com/BadMagic100/RandoMapCore/components"
	"github.com/BadMagic100/RandoMapCore/config"
	"github.com/BadMagic100/RandoMapCore/mapscene"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

var testFS = fstest.MapFS{
	"data/roomTexts.json": &fstest.MapFile{Data: []byte(`[
		{"sceneName": "Town", "text": "Dirtmouth", "x": 0, "y": 0},
		{"sceneName": "Scene_A", "text": "Text1", "x": 100, "y": 100},
		{"sceneName": "Scene_C", "text": "Text4", "x": 300, "y": 100}
	]`)},
	"data/roomTextsAM.json": &fstest.MapFile{Data: []byte(`[
		{"sceneName": "Scene_A", "text": "Text2", "x": 100, "y": 100},
		{"sceneName": "Scene_B", "text": "Text3", "x": 200, "y": 100}
	]`)},
}

func newTestManager() (*Manager, *mapscene.Registry) {
	registry := mapscene.NewRegistry(1000, 1000, []string{"Town"}, []*mapscene.Room{
		{Scene: "Abyss_01", Bounds: mapscene.Rect{X: 500, Y: 500, Width: 20, Height: 20}},
	})
	return NewManager(registry, nil, zerolog.New(&bytes.Buffer{})), registry
}

func TestManager_EnterGame(t *testing.T) {
	m, _ := newTestManager()
	assert.Equal(t, StateUninitialized, m.State())

	require.NoError(t, m.EnterGame(testFS, "data/roomTexts.json", ""))
	assert.Equal(t, StateLoaded, m.State())

	defs := m.Defs()
	assert.Len(t, defs, 2, "mapped scenes are excluded")
	assert.Equal(t, "Text1", defs["Scene_A"].Text)
}

func TestManager_EnterGameWithAdditionalMaps(t *testing.T) {
	m, _ := newTestManager()

	require.NoError(t, m.EnterGame(testFS, "data/roomTexts.json", "data/roomTextsAM.json"))

	defs := m.Defs()
	assert.Len(t, defs, 3)
	assert.Equal(t, "Text2", defs["Scene_A"].Text)
	assert.Equal(t, "Text3", defs["Scene_B"].Text)
	assert.Equal(t, "Text4", defs["Scene_C"].Text)
}

func TestManager_EnterGameErrors(t *testing.T) {
	m, _ := newTestManager()

	err := m.EnterGame(testFS, "data/missing.json", "")
	require.Error(t, err)
	assert.Equal(t, StateUninitialized, m.State())

	err = m.EnterGame(testFS, "data/roomTexts.json", "data/missingAM.json")
	require.Error(t, err)
}

func TestManager_Build(t *testing.T) {
	m, registry := newTestManager()
	e := ecs.NewECS(donburi.NewWorld())
	require.NoError(t, m.EnterGame(testFS, "data/roomTexts.json", "data/roomTextsAM.json"))

	cursor := CursorFunc(func() (math.Vec2, bool) { return math.Vec2{}, false })
	extra := newFake("pin", 0, 0)
	require.NoError(t, m.Build(e, config.DefaultSettings(), cursor, extra))
	assert.Equal(t, StateBuilt, m.State())

	texts := m.RoomTexts()
	require.Len(t, texts, 3)
	rt, ok := m.RoomText("Scene_B")
	require.True(t, ok)
	assert.Equal(t, "Text3", rt.Text())
	assert.Equal(t, math.Vec2{X: 200, Y: 100}, rt.Position())

	root := components.OverlayRoot.Get(m.Root())
	assert.Equal(t, RootName, root.Name)
	assert.Len(t, root.Children, 3)
	data := components.RoomText.Get(rt.Entry())
	assert.Equal(t, m.Root().Entity(), data.Parent)

	set := m.SelectionSet(extra)
	require.Len(t, set, 5)
	assert.Same(t, registry.Rooms()[0], set[0], "built-in rooms come first")
	assert.Equal(t, "Scene_A", set[1].Key())
	assert.Same(t, extra, set[4])

	require.NotNil(t, m.Selector())
	assert.Equal(t, 5, m.Selector().Len())

	// Returned maps are copies
	delete(texts, "Scene_B")
	assert.Len(t, m.RoomTexts(), 3)
}

func TestManager_BuildRequiresLoad(t *testing.T) {
	m, _ := newTestManager()
	e := ecs.NewECS(donburi.NewWorld())

	err := m.Build(e, config.DefaultSettings(), nil)
	require.ErrorIs(t, err, ErrNotLoaded)

	m.EnterGameWithDefs([]RoomTextDef{{SceneName: "Scene_A"}}, nil)
	require.NoError(t, m.Build(e, config.DefaultSettings(), nil))
	require.ErrorIs(t, m.Build(e, config.DefaultSettings(), nil), ErrAlreadyBuilt)
}

func TestManager_SelectionDisabled(t *testing.T) {
	m, _ := newTestManager()
	e := ecs.NewECS(donburi.NewWorld())
	m.EnterGameWithDefs([]RoomTextDef{{SceneName: "Scene_A"}}, nil)

	settings := config.DefaultSettings()
	settings.EnableRoomSelection = false
	cursor := CursorFunc(func() (math.Vec2, bool) { return math.Vec2{}, true })
	require.NoError(t, m.Build(e, settings, cursor))

	assert.Nil(t, m.Selector())

	m.Tick()
	assert.Equal(t, StateBuilt, m.State(), "tick without a selector is a no-op")
}

func TestManager_TickSelectsRoomText(t *testing.T) {
	m, _ := newTestManager()
	e := ecs.NewECS(donburi.NewWorld())
	m.EnterGameWithDefs([]RoomTextDef{
		{SceneName: "Scene_A", X: 100, Y: 100},
		{SceneName: "Scene_B", X: 400, Y: 100},
	}, nil)

	cursor := CursorFunc(func() (math.Vec2, bool) { return math.Vec2{X: 102, Y: 99}, true })
	require.NoError(t, m.Build(e, config.DefaultSettings(), cursor))

	a, _ := m.RoomText("Scene_A")
	m.Tick()
	assert.Equal(t, StateActive, m.State())
	assert.Nil(t, m.Selector().Selected(), "labels off screen cannot be selected")

	components.RoomText.Get(a.Entry()).OnScreen = true
	m.Tick()
	assert.Same(t, a, m.Selector().Selected())
	assert.True(t, a.Selected())

	m.SetActive(false)
	assert.False(t, a.CanSelect())
	assert.False(t, components.OverlayRoot.Get(m.Root()).Active)
}

func TestManager_QuitToMenu(t *testing.T) {
	m, _ := newTestManager()
	e := ecs.NewECS(donburi.NewWorld())
	m.EnterGameWithDefs([]RoomTextDef{{SceneName: "Scene_A"}}, nil)
	cursor := CursorFunc(func() (math.Vec2, bool) { return math.Vec2{}, false })
	require.NoError(t, m.Build(e, config.DefaultSettings(), cursor))

	rt, _ := m.RoomText("Scene_A")
	root := m.Root()

	m.QuitToMenu()

	assert.Equal(t, StateTornDown, m.State())
	assert.Empty(t, m.Defs())
	assert.Empty(t, m.RoomTexts())
	assert.Nil(t, m.Root())
	assert.Nil(t, m.Selector())
	assert.False(t, rt.Entry().Valid())
	assert.False(t, root.Valid())

	// A new session starts from scratch
	m.EnterGameWithDefs([]RoomTextDef{{SceneName: "Scene_B"}}, nil)
	require.NoError(t, m.Build(e, config.DefaultSettings(), cursor))
	_, ok := m.RoomText("Scene_A")
	assert.False(t, ok)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "TornDown", StateTornDown.String())
	assert.Equal(t, "Unknown", State(42).String())
}
