// Package persistence saves the overlay settings between runs
package persistence

import (
	"encoding/json"
	"fmt"

	"github.com/BadMagic100/RandoMapCore/config"
	"github.com/quasilyte/gdata"
	"github.com/rs/zerolog"
)

const settingsKey = "settings"

// Backend is the item storage used by Store. *gdata.Manager implements it.
type Backend interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// Store reads and writes the settings snapshot. A Store without a backend
// keeps working with defaults and never saves.
type Store struct {
	backend Backend
	logger  zerolog.Logger
}

// Open initializes gdata storage for appName
func Open(appName string, logger zerolog.Logger) (*Store, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return &Store{logger: logger}, fmt.Errorf("open gdata %s: %w", appName, err)
	}
	return NewStore(m, logger), nil
}

func NewStore(backend Backend, logger zerolog.Logger) *Store {
	return &Store{backend: backend, logger: logger}
}

// LoadSettings returns the saved settings, or the defaults when nothing was
// saved or the data cannot be read
func (s *Store) LoadSettings() config.Settings {
	if s.backend == nil {
		return config.DefaultSettings()
	}

	data, err := s.backend.LoadItem(settingsKey)
	if err != nil {
		s.logger.Warn().Err(err).Msg("Could not load settings")
		return config.DefaultSettings()
	}
	if len(data) == 0 {
		return config.DefaultSettings()
	}

	settings := config.DefaultSettings()
	if err := json.Unmarshal(data, &settings); err != nil {
		s.logger.Warn().Err(err).Msg("Could not parse saved settings")
		return config.DefaultSettings()
	}

	return s.sanitize(settings)
}

// sanitize resets enum values outside their range to the default
func (s *Store) sanitize(settings config.Settings) config.Settings {
	def := config.DefaultSettings()
	if settings.PinSize < config.PinSizeTiny || settings.PinSize > config.PinSizeHuge {
		s.logger.Warn().Int("pinSize", int(settings.PinSize)).Msg("Saved pin size out of range")
		settings.PinSize = def.PinSize
	}
	if settings.PinShapes < config.PinShapesMixed || settings.PinShapes > config.PinShapesNoBorders {
		s.logger.Warn().Int("pinShapes", int(settings.PinShapes)).Msg("Saved pin shapes out of range")
		settings.PinShapes = def.PinShapes
	}
	if settings.QMarks < config.QMarksOff || settings.QMarks > config.QMarksMixed {
		s.logger.Warn().Int("qMarks", int(settings.QMarks)).Msg("Saved question marks out of range")
		settings.QMarks = def.QMarks
	}
	return settings
}

func (s *Store) SaveSettings(settings config.Settings) error {
	if s.backend == nil {
		return nil
	}

	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}

	if err := s.backend.SaveItem(settingsKey, data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// ClearSettings removes the saved settings
func (s *Store) ClearSettings() error {
	if s.backend == nil {
		return nil
	}
	if err := s.backend.SaveItem(settingsKey, nil); err != nil {
		return fmt.Errorf("clear settings: %w", err)
	}
	return nil
}
