// Package assets resolves sprite IDs to images. Sprites are read from PNG
// files in an asset directory when present; anything missing is drawn
// procedurally so the game runs without shipped art.
package assets

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/vovakirdan/star-raid/internal/sim"
)

// Library holds one decoded image per sprite.
type Library struct {
	images  map[string]image.Image
	sprites sim.Sprites
	loaded  []string // IDs read from disk, in load order
}

// Load builds a library. An empty dir means fully procedural art. A
// non-empty dir must exist; files missing from it fall back to procedural
// art, while unreadable or corrupt files are errors.
func Load(dir string) (*Library, error) {
	if dir != "" {
		info, err := os.Stat(dir)
		if err != nil {
			return nil, fmt.Errorf("assets: cannot open directory %s: %w", dir, err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("assets: %s is not a directory", dir)
		}
	}

	lib := &Library{images: make(map[string]image.Image)}
	defaults := sim.DefaultSprites()
	slots := []*sim.Sprite{
		&lib.sprites.Player,
		&lib.sprites.Enemy,
		&lib.sprites.PlayerBullet,
		&lib.sprites.EnemyBullet,
		&lib.sprites.Explosion,
	}

	for i, def := range defaults.All() {
		img, fromDisk, err := loadOne(dir, def)
		if err != nil {
			return nil, err
		}
		if fromDisk {
			lib.loaded = append(lib.loaded, def.ID)
		}
		b := img.Bounds()
		*slots[i] = sim.Sprite{ID: def.ID, W: b.Dx(), H: b.Dy()}
		lib.images[def.ID] = img
	}

	return lib, nil
}

func loadOne(dir string, def sim.Sprite) (image.Image, bool, error) {
	if dir == "" {
		return Generate(def), false, nil
	}

	path := filepath.Join(dir, def.ID+".png")
	f, err := os.Open(path) //#nosec G304 -- path built from a fixed sprite ID
	if errors.Is(err, fs.ErrNotExist) {
		return Generate(def), false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("assets: cannot open %s: %w", path, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, false, fmt.Errorf("assets: cannot decode %s: %w", path, err)
	}
	return img, true, nil
}

// Sprites returns the handles with sizes taken from the loaded images.
func (l *Library) Sprites() sim.Sprites {
	return l.sprites
}

// Image returns the image for a sprite ID, or nil if unknown.
func (l *Library) Image(id string) image.Image {
	return l.images[id]
}

// Loaded returns the IDs that were read from disk.
func (l *Library) Loaded() []string {
	return l.loaded
}
