package persistence

import (
	"bytes"
	"errors"
	"testing"

	"github.com/BadMagic100/RandoMapCore/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memBackend struct {
	items   map[string][]byte
	loadErr error
	saveErr error
}

func newMemBackend() *memBackend {
	return &memBackend{items: map[string][]byte{}}
}

func (m *memBackend) LoadItem(key string) ([]byte, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.items[key], nil
}

func (m *memBackend) SaveItem(key string, data []byte) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.items[key] = data
	return nil
}

func TestStore_DefaultsWhenEmpty(t *testing.T) {
	s := NewStore(newMemBackend(), zerolog.Nop())
	assert.Equal(t, config.DefaultSettings(), s.LoadSettings())
}

func TestStore_SaveLoad(t *testing.T) {
	backend := newMemBackend()
	s := NewStore(backend, zerolog.Nop())

	want := config.Settings{
		PinSize:                   config.PinSizeHuge,
		PinShapes:                 config.PinShapesNoBorders,
		QMarks:                    config.QMarksMixed,
		EnableVisualCustomization: true,
	}
	require.NoError(t, s.SaveSettings(want))

	assert.Contains(t, string(backend.items["settings"]), `"pinShapes":6`)
	assert.Equal(t, want, s.LoadSettings())
}

func TestStore_PartialDataKeepsDefaults(t *testing.T) {
	backend := newMemBackend()
	backend.items["settings"] = []byte(`{"pinSize": 0}`)
	s := NewStore(backend, zerolog.Nop())

	got := s.LoadSettings()
	assert.Equal(t, config.PinSizeTiny, got.PinSize)
	assert.True(t, got.EnableRoomSelection)
}

func TestStore_CorruptData(t *testing.T) {
	backend := newMemBackend()
	backend.items["settings"] = []byte(`{not json`)
	var logs bytes.Buffer
	s := NewStore(backend, zerolog.New(&logs))

	assert.Equal(t, config.DefaultSettings(), s.LoadSettings())
	assert.Contains(t, logs.String(), "Could not parse saved settings")
}

func TestStore_BackendErrors(t *testing.T) {
	backend := newMemBackend()
	backend.loadErr = errors.New("disk gone")
	backend.saveErr = errors.New("read only")
	s := NewStore(backend, zerolog.Nop())

	assert.Equal(t, config.DefaultSettings(), s.LoadSettings())
	err := s.SaveSettings(config.DefaultSettings())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read only")
}

func TestStore_NoBackend(t *testing.T) {
	s := NewStore(nil, zerolog.Nop())
	assert.Equal(t, config.DefaultSettings(), s.LoadSettings())
	assert.NoError(t, s.SaveSettings(config.DefaultSettings()))
	assert.NoError(t, s.ClearSettings())
}

func TestStore_Clear(t *testing.T) {
	backend := newMemBackend()
	s := NewStore(backend, zerolog.Nop())
	require.NoError(t, s.SaveSettings(config.Settings{PinSize: config.PinSizeHuge}))

	require.NoError(t, s.ClearSettings())
	assert.Equal(t, config.DefaultSettings(), s.LoadSettings())
}

func TestStore_OutOfRangeResetToDefaults(t *testing.T) {
	backend := newMemBackend()
	backend.items["settings"] = []byte(`{"pinSize": 9, "pinShapes": -1, "qMarks": 7, "enableRoomSelection": false}`)
	var logs bytes.Buffer
	s := NewStore(backend, zerolog.New(&logs))

	got := s.LoadSettings()
	def := config.DefaultSettings()
	assert.Equal(t, def.PinSize, got.PinSize)
	assert.Equal(t, def.PinShapes, got.PinShapes)
	assert.Equal(t, def.QMarks, got.QMarks)
	assert.False(t, got.Obfuscated())
	assert.False(t, got.EnableRoomSelection, "valid fields are kept")
	assert.Contains(t, logs.String(), "Saved pin size out of range")
}

func TestStore_SaveErrorIsReturnedNotLogged(t *testing.T) {
	backend := newMemBackend()
	backend.saveErr = errors.New("read only")
	var logs bytes.Buffer
	s := NewStore(backend, zerolog.New(&logs))

	require.Error(t, s.SaveSettings(config.DefaultSettings()))
	assert.Empty(t, logs.String())
}
