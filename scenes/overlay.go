package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/BadMagic100/RandoMapCore/config"
	"github.com/BadMagic100/RandoMapCore/session"
	"github.com/BadMagic100/RandoMapCore/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var background = color.RGBA{R: 12, G: 12, B: 18, A: 255}

// OverlayScene is an in-game session with the map overlay
type OverlayScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	session      *session.Context
	logger       zerolog.Logger
	once         sync.Once
}

func NewOverlayScene(sc SceneChanger, s *session.Context, logger zerolog.Logger) *OverlayScene {
	return &OverlayScene{sceneChanger: sc, session: s, logger: logger}
}

func (ov *OverlayScene) Update() {
	ov.once.Do(ov.configure)
	ov.ecs.Update()
}

func (ov *OverlayScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(background)

	if ov.ecs == nil {
		return
	}
	ov.ecs.Draw(screen)
}

func (ov *OverlayScene) configure() {
	e := ecs.NewECS(donburi.NewWorld())
	s := ov.session

	createMenuScene := func() interface{} {
		return NewMenuScene(ov.sceneChanger, s, ov.logger)
	}

	// Input and anything that requests an evaluation pass run first
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.NewUpdateQuitToMenu(ov.sceneChanger, s.QuitToMenu, createMenuScene))
	e.AddSystem(systems.NewUpdateMapToggle(s))
	e.AddSystem(systems.NewUpdateSettings(s, ov.logger))
	e.AddSystem(systems.UpdateViewport)

	// Cycling tasks, then the two pin phases in order
	e.AddSystem(systems.NewUpdateTimers(s.Timers))
	e.AddSystem(systems.NewUpdatePinsBefore(s.Pins))
	e.AddSystem(systems.NewUpdatePins(s.Pins))

	// Selection reads on screen state
	e.AddSystem(systems.NewUpdateCulling(s.Registry()))
	e.AddSystem(systems.NewUpdateRooms(s.Rooms))

	e.AddRenderer(cfg.Default, systems.NewDrawRooms(s.Registry()))
	e.AddRenderer(cfg.Default, systems.DrawPins)
	e.AddRenderer(cfg.LayerRoomTexts, systems.DrawRoomTexts)

	ov.ecs = e

	cursor := systems.NewMouseCursor(s.MapView, s.Viewport)
	if err := s.EnterGame(e, demoDefinitions(s), cursor); err != nil {
		ov.logger.Error().Err(err).Msg("Could not enter game")
	}
}
