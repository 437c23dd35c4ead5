package systems

import (
	"io"
	"testing"
	"time"

	"github.com/BadMagic100/RandoMapCore/archetypes"
	"github.com/BadMagic100/RandoMapCore/components"
	cfg "github.com/BadMagic100/RandoMapCore/config"
	"github.com/BadMagic100/RandoMapCore/definitions"
	"github.com/BadMagic100/RandoMapCore/mapscene"
	"github.com/BadMagic100/RandoMapCore/pins"
	"github.com/BadMagic100/RandoMapCore/sprites"
	"github.com/BadMagic100/RandoMapCore/timers"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

type staticSettings struct{}

func (staticSettings) Settings() cfg.Settings { return cfg.DefaultSettings() }

type world struct {
	ecs      *ecs.ECS
	clock    *timers.MockClock
	sched    *timers.Scheduler
	sprites  *sprites.Manager
	engine   *pins.Engine
	mapView  *donburi.Entry
	viewport *donburi.Entry
}

func newWorld() *world {
	w := &world{
		ecs:   ecs.NewECS(donburi.NewWorld()),
		clock: timers.NewMockClock(time.Unix(0, 0)),
	}
	w.sched = timers.NewScheduler(w.clock)
	w.sprites = sprites.NewManager(staticSettings{}, nil)
	w.engine = pins.NewEngine(w.sprites, w.sched, staticSettings{}, zerolog.New(io.Discard))

	w.mapView = archetypes.MapView.Spawn(w.ecs)
	w.viewport = archetypes.Viewport.Spawn(w.ecs)
	components.Viewport.SetValue(w.viewport, components.ViewportData{Zoom: 1, Width: 100, Height: 100})
	return w
}

func (w *world) mv() *components.MapViewData {
	return components.MapView.Get(w.mapView)
}

func (w *world) vp() *components.ViewportData {
	return components.Viewport.Get(w.viewport)
}

func (w *world) step() {
	w.sched.Update()
	NewUpdatePinsBefore(w.engine)(w.ecs)
	NewUpdatePins(w.engine)(w.ecs)
}

func TestUpdatePins_OnlyOnRefresh(t *testing.T) {
	w := newWorld()
	def := definitions.NewStaticDef("Bench", math.Vec2{X: 10, Y: 10}, w.sprites.Sprite("Bench"))
	w.engine.Create(w.ecs, def)

	w.step()
	assert.Equal(t, 0, def.Updates, "no evaluation pass without a refresh")

	w.mv().Open = true
	w.mv().Refresh = true
	w.step()
	assert.Equal(t, 1, def.Updates)
	assert.False(t, w.mv().Refresh, "main phase completes the pass")

	w.step()
	assert.Equal(t, 1, def.Updates)
}

func TestUpdatePins_CyclingAdvancesBetweenPasses(t *testing.T) {
	w := newWorld()
	a, b := w.sprites.Sprite("Grub"), w.sprites.Sprite("Charm")
	p := w.engine.Create(w.ecs, definitions.NewStaticDef("Pair", math.Vec2{}, a, b))

	w.mv().Open = true
	w.mv().Refresh = true
	w.step()
	require.Same(t, a, p.Visual().Sprite)

	w.clock.Advance(cfg.Pin.UpdateWait)
	w.step()
	assert.Same(t, b, p.Visual().Sprite)

	w.clock.Advance(cfg.Pin.UpdateWait)
	w.step()
	assert.Same(t, a, p.Visual().Sprite)
}

func TestUpdatePins_ClosingMapDeactivates(t *testing.T) {
	w := newWorld()
	p := w.engine.Create(w.ecs, definitions.NewStaticDef("Bench", math.Vec2{}, w.sprites.Sprite("Bench")))

	w.mv().Open = true
	w.mv().Refresh = true
	w.step()
	require.True(t, components.Pin.Get(p.Entry()).Active)

	w.mv().Open = false
	w.mv().Refresh = true
	w.step()
	assert.False(t, components.Pin.Get(p.Entry()).Active)
}

func TestUpdateCulling(t *testing.T) {
	w := newWorld()
	inside := w.engine.Create(w.ecs, definitions.NewStaticDef("In", math.Vec2{X: 50, Y: 50}, w.sprites.Sprite("Bench")))
	outside := w.engine.Create(w.ecs, definitions.NewStaticDef("Out", math.Vec2{X: 500, Y: 50}, w.sprites.Sprite("Bench")))

	text := archetypes.RoomText.Spawn(w.ecs)
	components.RoomText.SetValue(text, components.RoomTextData{SceneName: "Town", Position: math.Vec2{X: 20, Y: 20}, Active: true})

	registry := mapscene.NewRegistry(100, 100, nil, []*mapscene.Room{
		{Scene: "Room", Bounds: mapscene.Rect{X: 0, Y: 0, Width: 10, Height: 10}},
	})
	cull := NewUpdateCulling(registry)

	w.mv().Open = true
	w.mv().Refresh = true
	w.step()
	cull(w.ecs)

	assert.True(t, inside.CanSelect())
	assert.False(t, outside.CanSelect())
	assert.True(t, components.RoomText.Get(text).OnScreen)
	assert.True(t, registry.Rooms()[0].CanSelect())

	w.vp().Position = math.Vec2{X: 450}
	cull(w.ecs)
	assert.False(t, inside.CanSelect())
	assert.True(t, outside.CanSelect())
	assert.False(t, registry.Rooms()[0].CanSelect())

	w.mv().Open = false
	cull(w.ecs)
	assert.False(t, outside.CanSelect(), "nothing is on screen while the map is closed")
	assert.False(t, components.RoomText.Get(text).OnScreen)
}

func TestGetAction(t *testing.T) {
	input := &components.InputData{}

	input.Current[cfg.ActionToggleMap] = true
	assert.Equal(t, components.ActionState{Pressed: true, JustPressed: true}, GetAction(input, cfg.ActionToggleMap))

	input.Previous = input.Current
	assert.Equal(t, components.ActionState{Pressed: true}, GetAction(input, cfg.ActionToggleMap))

	input.Current[cfg.ActionToggleMap] = false
	assert.Equal(t, components.ActionState{JustReleased: true}, GetAction(input, cfg.ActionToggleMap))
}

type toggler struct {
	open bool
	ops  []string
}

func (t *toggler) MapOpen() bool { return t.open }
func (t *toggler) OpenMap()      { t.open = true; t.ops = append(t.ops, "open") }
func (t *toggler) CloseMap()     { t.open = false; t.ops = append(t.ops, "close") }

func TestUpdateMapToggle(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	input := getOrCreateInput(e)
	tg := &toggler{}
	sys := NewUpdateMapToggle(tg)

	input.Current[cfg.ActionToggleMap] = true
	sys(e)
	input.Previous = input.Current
	sys(e)
	input.Previous = [cfg.ActionCount]bool{}
	sys(e)

	assert.Equal(t, []string{"open", "close"}, tg.ops)
}

func TestSetZoom_KeepsCenter(t *testing.T) {
	vp := &components.ViewportData{Zoom: 1, Width: 100, Height: 100}
	before := ToMap(*vp, math.Vec2{X: 50, Y: 50})

	setZoom(vp, 2)
	assert.InDelta(t, 2, vp.Zoom, 1e-9)
	after := ToMap(*vp, math.Vec2{X: 50, Y: 50})
	assert.InDelta(t, before.X, after.X, 1e-9)
	assert.InDelta(t, before.Y, after.Y, 1e-9)

	setZoom(vp, 100)
	assert.InDelta(t, cfg.Input.MaxZoom, vp.Zoom, 1e-9)
	setZoom(vp, 0.01)
	assert.InDelta(t, cfg.Input.MinZoom, vp.Zoom, 1e-9)
}

func TestToMap_InvertsToScreen(t *testing.T) {
	vp := components.ViewportData{Position: math.Vec2{X: 30, Y: -10}, Zoom: 1.5, Width: 100, Height: 100}
	p := math.Vec2{X: 42, Y: 17}
	back := ToMap(vp, vp.ToScreen(p))
	assert.InDelta(t, p.X, back.X, 1e-9)
	assert.InDelta(t, p.Y, back.Y, 1e-9)
}

func TestMouseCursor(t *testing.T) {
	w := newWorld()
	x, y := 10, 20
	cursor := NewMouseCursor(w.mv, w.vp).WithPointer(func() (int, int) { return x, y })

	_, ok := cursor.CursorPosition()
	assert.False(t, ok, "no cursor while the map is closed")

	w.mv().Open = true
	w.vp().Position = math.Vec2{X: 100, Y: 100}
	w.vp().Zoom = 2
	pos, ok := cursor.CursorPosition()
	require.True(t, ok)
	assert.InDelta(t, 105, pos.X, 1e-9)
	assert.InDelta(t, 110, pos.Y, 1e-9)

	x = -1
	_, ok = cursor.CursorPosition()
	assert.False(t, ok)
}

type editor struct {
	s   cfg.Settings
	set int
}

func (e *editor) Settings() cfg.Settings     { return e.s }
func (e *editor) SetSettings(s cfg.Settings) { e.s = s; e.set++ }

func TestUpdateSettings(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	input := getOrCreateInput(e)
	ed := &editor{s: cfg.Settings{PinSize: cfg.PinSizeHuge, PinShapes: cfg.PinShapesNoBorders, QMarks: cfg.QMarksRed}}
	sys := NewUpdateSettings(ed, zerolog.New(io.Discard))

	sys(e)
	assert.Equal(t, 0, ed.set, "no change without a hotkey")

	input.Current[cfg.ActionCyclePinSize] = true
	input.Current[cfg.ActionCyclePinShapes] = true
	input.Current[cfg.ActionCycleQMarks] = true
	sys(e)

	assert.Equal(t, 1, ed.set, "one snapshot per frame")
	assert.Equal(t, cfg.PinSizeTiny, ed.s.PinSize)
	assert.Equal(t, cfg.PinShapesMixed, ed.s.PinShapes)
	assert.Equal(t, cfg.QMarksMixed, ed.s.QMarks)
}

func TestPinSelectableEndToEnd(t *testing.T) {
	w := newWorld()
	def := definitions.NewStaticDef("Bench", math.Vec2{X: 50, Y: 50}, w.sprites.Sprite("Bench"))
	p := w.engine.Create(w.ecs, def)
	cull := NewUpdateCulling(nil)

	w.mv().Open = true
	w.mv().Refresh = true
	w.step()
	cull(w.ecs)
	require.True(t, p.CanSelect())

	preds := []*bool{&def.MapOpen, &def.Mode, &def.BySettings, &def.ByProgress}
	for i, pred := range preds {
		*pred = false
		w.mv().Refresh = true
		w.step()
		cull(w.ecs)
		assert.False(t, p.CanSelect(), "predicate %d", i)

		*pred = true
		w.mv().Refresh = true
		w.step()
		cull(w.ecs)
		assert.True(t, p.CanSelect(), "predicate %d restored", i)
	}
}
