package systems

import (
	cfg "github.com/BadMagic100/RandoMapCore/config"
	"github.com/BadMagic100/RandoMapCore/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// NewUpdateMenu enters a game from the title menu
func NewUpdateMenu(sceneChanger SceneChanger, createOverlayScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		input := getOrCreateInput(e)
		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			sceneChanger.ChangeScene(createOverlayScene())
		}
	}
}

// NewUpdateQuitToMenu tears the session down and returns to the title menu
func NewUpdateQuitToMenu(sceneChanger SceneChanger, quit func(), createMenuScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		input := getOrCreateInput(e)
		if !GetAction(input, cfg.ActionQuitToMenu).JustPressed {
			return
		}
		quit()
		sceneChanger.ChangeScene(createMenuScene())
	}
}

// DrawMenu renders the title menu
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	if !fonts.RoomText.Loaded() {
		return
	}
	face := fonts.RoomText.Get()
	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	drawCentered(screen, "RandoMapCore", face, width/2, height/2-24)
	drawCentered(screen, "Enter to start, M to toggle the map, Tab to cycle selection", face, width/2, height/2+12)
}

func drawCentered(screen *ebiten.Image, s string, face font.Face, x, y float64) {
	w := font.MeasureString(face, s).Ceil()
	text.Draw(screen, s, face, int(x)-w/2, int(y), cfg.White)
}
