package main

import (
	"image"
	"io"
	"os"

	"github.com/BadMagic100/RandoMapCore/assets"
	"github.com/BadMagic100/RandoMapCore/config"
	"github.com/BadMagic100/RandoMapCore/fonts"
	"github.com/BadMagic100/RandoMapCore/logging"
	"github.com/BadMagic100/RandoMapCore/persistence"
	"github.com/BadMagic100/RandoMapCore/scenes"
	"github.com/BadMagic100/RandoMapCore/session"
	"github.com/BadMagic100/RandoMapCore/timers"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(s *session.Context, logger zerolog.Logger) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewMenuScene(g, s, logger)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func newLogger(rt config.Runtime) (zerolog.Logger, io.Closer) {
	level := logging.ParseLevel(rt.LogLevel)
	if rt.LogFile == "" {
		return logging.New(os.Stderr, level, true), nil
	}

	f, err := os.OpenFile(rt.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		logger := logging.New(os.Stderr, level, true)
		logger.Warn().Err(err).Str("path", rt.LogFile).Msg("Could not open log file")
		return logger, nil
	}
	return logging.MultiConsole(os.Stderr, f, level), f
}

func main() {
	configDir, _ := os.UserConfigDir()
	rt, err := config.LoadRuntime(configDir)

	logger, closer := newLogger(rt)
	if closer != nil {
		defer closer.Close()
	}
	if err != nil {
		logger.Warn().Err(err).Msg("Using default runtime options")
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("RandoMapCore")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := fonts.LoadDefaults(); err != nil {
		logger.Fatal().Err(err).Msg("Could not load fonts")
	}

	// Initialize persistence; the store still works with defaults on failure
	store, err := persistence.Open(rt.AppName, logger)
	if err != nil {
		logger.Warn().Err(err).Msg("Could not initialize persistence")
	}

	registry, err := assets.LoadRegistry()
	if err != nil {
		logger.Fatal().Err(err).Msg("Could not load map scenes")
	}

	additional := ""
	if rt.AdditionalMaps {
		additional = assets.RoomTextsAMPath
	}

	s := session.New(session.Options{
		Logger:         logger,
		Clock:          timers.RealClock{},
		Loader:         assets.NewSpriteLoader(assets.ImageFS(), logger),
		Registry:       registry,
		Store:          store,
		Font:           fonts.RoomText.Get(),
		DataFS:         assets.DataFS(),
		BasePath:       assets.RoomTextsPath,
		AdditionalPath: additional,
	})

	if err := ebiten.RunGame(NewGame(s, logger)); err != nil {
		logger.Fatal().Err(err).Msg("Game exited")
	}
}
