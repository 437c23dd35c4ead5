package systems

import (
	"github.com/BadMagic100/RandoMapCore/components"
	cfg "github.com/BadMagic100/RandoMapCore/config"
	"github.com/rs/zerolog"
	"github.com/yohamta/donburi/ecs"
)

// SettingsEditor reads and replaces the settings snapshot
type SettingsEditor interface {
	Settings() cfg.Settings
	SetSettings(cfg.Settings)
}

// NewUpdateSettings cycles pin settings from hotkeys. A change replaces the
// whole snapshot, which re-evaluates every pin.
func NewUpdateSettings(editor SettingsEditor, logger zerolog.Logger) ecs.System {
	return func(e *ecs.ECS) {
		entry, ok := components.Input.First(e.World)
		if !ok {
			return
		}
		input := components.Input.Get(entry)

		s := editor.Settings()
		changed := false
		if GetAction(input, cfg.ActionCyclePinSize).JustPressed {
			s.PinSize = s.PinSize.Next()
			changed = true
		}
		if GetAction(input, cfg.ActionCyclePinShapes).JustPressed {
			s.PinShapes = s.PinShapes.Next()
			changed = true
		}
		if GetAction(input, cfg.ActionCycleQMarks).JustPressed {
			s.QMarks = s.QMarks.Next()
			changed = true
		}
		if !changed {
			return
		}

		editor.SetSettings(s)
		logger.Debug().
			Stringer("pinSize", s.PinSize).
			Stringer("pinShapes", s.PinShapes).
			Stringer("qMarks", s.QMarks).
			Msg("Settings changed")
	}
}
