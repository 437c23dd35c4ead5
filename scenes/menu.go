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

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene is the title screen shown outside a game
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	session      *session.Context
	logger       zerolog.Logger
	once         sync.Once
}

func NewMenuScene(sc SceneChanger, s *session.Context, logger zerolog.Logger) *MenuScene {
	return &MenuScene{sceneChanger: sc, session: s, logger: logger}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	createOverlayScene := func() interface{} {
		return NewOverlayScene(ms.sceneChanger, ms.session, ms.logger)
	}

	ms.ecs.AddSystem(systems.UpdateInput)
	ms.ecs.AddSystem(systems.NewUpdateMenu(ms.sceneChanger, createOverlayScene))

	ms.ecs.AddRenderer(cfg.Default, systems.DrawMenu)
}
