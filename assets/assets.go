package assets

import (
	"bytes"
	"embed"
	"fmt"
	_ "image/png"
	"io/fs"
	"path"

	"github.com/BadMagic100/RandoMapCore/config"
	"github.com/BadMagic100/RandoMapCore/mapscene"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/rs/zerolog"
)

// Paths inside the embedded FS
const (
	RoomTextsPath   = "data/roomTexts.json"
	RoomTextsAMPath = "data/roomTextsAM.json"
	MapPath         = "maps/map.tmx"
)

var (
	//go:embed all:data all:maps
	dataFS embed.FS

	//go:embed all:images
	imageFS embed.FS
)

// DataFS holds the room label files and the Tiled map
func DataFS() fs.FS {
	return dataFS
}

// ImageFS holds the pin sprites
func ImageFS() fs.FS {
	return imageFS
}

// LoadRegistry reads the embedded map scene registry
func LoadRegistry() (*mapscene.Registry, error) {
	return mapscene.Load(dataFS, MapPath)
}

// SpriteLoader reads pin sprites by key from an FS. Missing or undecodable
// files yield a nil image, which the sprite manager tolerates.
type SpriteLoader struct {
	fsys   fs.FS
	dir    string
	ext    string
	logger zerolog.Logger

	cache map[string]*ebiten.Image
}

func NewSpriteLoader(fsys fs.FS, logger zerolog.Logger) *SpriteLoader {
	return &SpriteLoader{
		fsys:   fsys,
		dir:    config.Sprite.Dir,
		ext:    config.Sprite.Ext,
		logger: logger.With().Str("component", "assets").Logger(),
		cache:  make(map[string]*ebiten.Image),
	}
}

// SpritePath returns where the sprite for key is stored
func (l *SpriteLoader) SpritePath(key string) string {
	return path.Join(l.dir, key+l.ext)
}

func (l *SpriteLoader) Image(key string) *ebiten.Image {
	if img, ok := l.cache[key]; ok {
		return img
	}

	img, err := l.load(key)
	if err != nil {
		l.logger.Debug().Err(err).Str("key", key).Msg("Sprite not available")
	}
	l.cache[key] = img

	return img
}

func (l *SpriteLoader) load(key string) (*ebiten.Image, error) {
	p := l.SpritePath(key)
	imgBytes, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return nil, fmt.Errorf("read sprite %s: %w", p, err)
	}

	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(imgBytes))
	if err != nil {
		return nil, fmt.Errorf("decode sprite %s: %w", p, err)
	}
	return img, nil
}
