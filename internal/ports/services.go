// Package ports defines the contracts between the wallpaper cycle and the
// outside world. Adapters implement them; the app layer depends only on
// these interfaces and on domain types.
//
// Every method takes a context first and returns domain types. Failures
// are reported with domain errors (domain.ErrUnavailable and friends) so
// callers never see transport details.
package ports

import (
	"context"
	"image"

	"github.com/jsamuelsen/quotewall/internal/domain"
)

// QuoteSource fetches one quote per call.
//
// Returns domain.ErrUnavailable when the service cannot be reached or its
// response carries no usable quote.
type QuoteSource interface {
	RandomQuote(ctx context.Context) (*domain.Quote, error)
}

// PhotoSource fetches one background photo per call, already scaled to
// exactly screen.Width x screen.Height.
type PhotoSource interface {
	RandomPhoto(ctx context.Context, screen domain.Screen) (image.Image, error)
}

// WallpaperStore persists the rendered wallpaper at one fixed location.
// Each Save replaces the previous file.
type WallpaperStore interface {
	// Save encodes img and returns the absolute path it was written to.
	Save(ctx context.Context, img image.Image) (string, error)

	// Path returns where the wallpaper lives, whether or not it exists yet.
	Path() string
}

// Platform applies wallpapers through the host operating system.
// Implementations that cannot perform an action return
// desktop.ErrUnsupported rather than silently succeeding.
type Platform interface {
	// Name identifies the implementation in logs.
	Name() string

	// SetWallpaper sets the desktop background to the image at path.
	SetWallpaper(ctx context.Context, path string) error

	// MinimizeWindows hides open windows so the new wallpaper is visible.
	MinimizeWindows(ctx context.Context) error

	// InstallStartup registers entry to run at login. It reports false
	// without error when an entry already exists.
	InstallStartup(ctx context.Context, entry domain.StartupEntry) (bool, error)
}
