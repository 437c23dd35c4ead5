// Package session owns everything that lives from entering a game to
// quitting to the menu: the sprite caches, the cycling scheduler, the pins
// and the room overlay.
package session

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/BadMagic100/RandoMapCore/archetypes"
	"github.com/BadMagic100/RandoMapCore/components"
	"github.com/BadMagic100/RandoMapCore/config"
	"github.com/BadMagic100/RandoMapCore/definitions"
	"github.com/BadMagic100/RandoMapCore/mapscene"
	"github.com/BadMagic100/RandoMapCore/persistence"
	"github.com/BadMagic100/RandoMapCore/pins"
	"github.com/BadMagic100/RandoMapCore/rooms"
	"github.com/BadMagic100/RandoMapCore/sprites"
	"github.com/BadMagic100/RandoMapCore/timers"
	"github.com/rs/zerolog"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

var ErrInGame = errors.New("session already entered a game")

// Options configures a Context. Zero values fall back to defaults where one
// exists.
type Options struct {
	Logger   zerolog.Logger
	Clock    timers.Clock
	Loader   sprites.Loader
	Registry *mapscene.Registry
	Store    *persistence.Store
	Font     font.Face

	// Room label files inside DataFS. An empty AdditionalPath means the
	// additional maps set is not installed.
	DataFS         fs.FS
	BasePath       string
	AdditionalPath string
}

// Context is the session scoped state shared by the systems
type Context struct {
	logger   zerolog.Logger
	store    *persistence.Store
	registry *mapscene.Registry
	opts     Options

	settings config.Settings

	Sprites *sprites.Manager
	Timers  *timers.Scheduler
	Pins    *pins.Engine
	Rooms   *rooms.Manager

	ecs      *ecs.ECS
	mapView  *donburi.Entry
	viewport *donburi.Entry
}

func New(opts Options) *Context {
	c := &Context{
		logger:   opts.Logger,
		store:    opts.Store,
		registry: opts.Registry,
		opts:     opts,
		settings: config.DefaultSettings(),
	}
	if c.store != nil {
		c.settings = c.store.LoadSettings()
	}
	if c.registry == nil {
		c.registry = mapscene.NewRegistry(float64(config.C.Width), float64(config.C.Height), nil, nil)
	}

	c.Sprites = sprites.NewManager(c, opts.Loader)
	c.Timers = timers.NewScheduler(opts.Clock)
	c.Pins = pins.NewEngine(c.Sprites, c.Timers, c, c.logger)
	c.Rooms = rooms.NewManager(c.registry, opts.Font, c.logger)

	return c
}

// Settings returns the current snapshot
func (c *Context) Settings() config.Settings {
	return c.settings
}

// SetSettings replaces the snapshot, saves it and re-evaluates every pin on
// the next update
func (c *Context) SetSettings(s config.Settings) {
	c.settings = s
	if c.store != nil {
		if err := c.store.SaveSettings(s); err != nil {
			c.logger.Warn().Err(err).Msg("Settings were not saved")
		}
	}
	c.Refresh()
}

func (c *Context) Registry() *mapscene.Registry {
	return c.registry
}

func (c *Context) InGame() bool {
	return c.ecs != nil
}

// EnterGame creates the map view, the pins for defs and the room overlay
func (c *Context) EnterGame(e *ecs.ECS, defs []definitions.Definition, cursor rooms.Cursor) error {
	if c.InGame() {
		return ErrInGame
	}

	if c.opts.DataFS != nil {
		if err := c.Rooms.EnterGame(c.opts.DataFS, c.opts.BasePath, c.opts.AdditionalPath); err != nil {
			return fmt.Errorf("enter game: %w", err)
		}
	} else {
		c.Rooms.EnterGameWithDefs(nil, nil)
	}

	c.ecs = e
	c.mapView = archetypes.MapView.Spawn(e)
	c.viewport = archetypes.Viewport.Spawn(e)
	components.Viewport.SetValue(c.viewport, components.ViewportData{
		Zoom:   1,
		Width:  float64(config.C.Width),
		Height: float64(config.C.Height),
	})

	extra := make([]rooms.Selectable, 0, len(defs))
	for _, def := range defs {
		extra = append(extra, c.Pins.Create(e, def))
	}

	if err := c.Rooms.Build(e, c.settings, cursor, extra...); err != nil {
		return fmt.Errorf("enter game: %w", err)
	}
	c.Rooms.SetActive(false)

	c.logger.Info().
		Int("pins", len(defs)).
		Int("roomTexts", len(c.Rooms.RoomTexts())).
		Bool("roomSelection", c.Rooms.Selector() != nil).
		Msg("Entered game")

	return nil
}

// OpenMap shows the overlay and requests an evaluation pass
func (c *Context) OpenMap() {
	c.setMapOpen(true)
}

func (c *Context) CloseMap() {
	c.setMapOpen(false)
}

func (c *Context) setMapOpen(open bool) {
	if c.mapView == nil {
		return
	}
	mv := components.MapView.Get(c.mapView)
	mv.Open = open
	mv.Refresh = true
	c.Rooms.SetActive(open)
	if !open && c.Rooms.Selector() != nil {
		c.Rooms.Selector().Deselect()
	}
}

// MapOpen reports whether the overlay is shown
func (c *Context) MapOpen() bool {
	if c.mapView == nil {
		return false
	}
	return components.MapView.Get(c.mapView).Open
}

// Refresh requests an evaluation pass over every pin, such as after world
// progress changed
func (c *Context) Refresh() {
	if c.mapView == nil {
		return
	}
	components.MapView.Get(c.mapView).Refresh = true
}

// MapView returns the map view component, or nil outside a game
func (c *Context) MapView() *components.MapViewData {
	if c.mapView == nil {
		return nil
	}
	return components.MapView.Get(c.mapView)
}

// Viewport returns the viewport component, or nil outside a game
func (c *Context) Viewport() *components.ViewportData {
	if c.viewport == nil {
		return nil
	}
	return components.Viewport.Get(c.viewport)
}

// QuitToMenu tears down every session resource. No state crosses sessions.
// The selector still holds the pins, so the rooms go first.
func (c *Context) QuitToMenu() {
	c.Rooms.QuitToMenu()
	c.Pins.Destroy()
	c.Timers.Clear()
	c.Sprites.Reset()

	if c.ecs != nil {
		for _, entry := range []*donburi.Entry{c.mapView, c.viewport} {
			if entry != nil && entry.Valid() {
				c.ecs.World.Remove(entry.Entity())
			}
		}
	}
	c.ecs = nil
	c.mapView = nil
	c.viewport = nil

	c.logger.Info().Msg("Quit to menu")
}
