// Package filestore keeps the rendered wallpaper on the local filesystem.
package filestore

import (
	"context"
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// ErrEmptyPath is returned by New when no output path is configured.
var ErrEmptyPath = errors.New("wallpaper path is required")

// Store writes the wallpaper as a PNG at one fixed path. Every Save
// replaces the file atomically: readers see the old image or the new one,
// never a partial write.
type Store struct {
	path string
}

// New creates a store for path. Relative paths are resolved against the
// working directory so the platform receives an absolute path.
func New(path string) (*Store, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving wallpaper path: %w", err)
	}

	return &Store{path: abs}, nil
}

// Path implements ports.WallpaperStore.
func (s *Store) Path() string {
	return s.path
}

// Save implements ports.WallpaperStore.
func (s *Store) Save(ctx context.Context, img image.Image) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating wallpaper directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".wallpaper-*.png")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}

	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if err := imaging.Encode(tmp, img, imaging.PNG); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("encoding wallpaper: %w", err)
	}

	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("syncing wallpaper: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("closing wallpaper: %w", err)
	}

	if err := os.Chmod(tmpName, 0o644); err != nil {
		return "", fmt.Errorf("setting wallpaper permissions: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		return "", fmt.Errorf("replacing wallpaper: %w", err)
	}

	return s.path, nil
}
