package desktop

import (
	"context"
	"fmt"

	"github.com/jsamuelsen/quotewall/internal/domain"
)

// Unsupported fails every action with ErrUnsupported.
type Unsupported struct {
	OS string
}

// Name implements ports.Platform.
func (u Unsupported) Name() string { return u.OS }

// SetWallpaper implements ports.Platform.
func (u Unsupported) SetWallpaper(context.Context, string) error {
	return fmt.Errorf("setting wallpaper on %s: %w", u.OS, ErrUnsupported)
}

// MinimizeWindows implements ports.Platform.
func (u Unsupported) MinimizeWindows(context.Context) error {
	return fmt.Errorf("minimizing windows on %s: %w", u.OS, ErrUnsupported)
}

// InstallStartup implements ports.Platform.
func (u Unsupported) InstallStartup(context.Context, domain.StartupEntry) (bool, error) {
	return false, fmt.Errorf("startup registration on %s: %w", u.OS, ErrUnsupported)
}
