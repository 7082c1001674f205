package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jsamuelsen/quotewall/internal/domain"
	"github.com/jsamuelsen/quotewall/internal/ports"
)

// CurrentStartupEntry describes the running executable, started from the
// current working directory with args.
func CurrentStartupEntry(name string, args []string) (domain.StartupEntry, error) {
	exe, err := os.Executable()
	if err != nil {
		return domain.StartupEntry{}, fmt.Errorf("locating executable: %w", err)
	}

	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}

	wd, err := os.Getwd()
	if err != nil {
		return domain.StartupEntry{}, fmt.Errorf("reading working directory: %w", err)
	}

	return domain.StartupEntry{
		Name:       name,
		Executable: exe,
		Args:       args,
		WorkingDir: wd,
	}, nil
}

// InstallStartup registers entry with the platform. An existing
// registration is left untouched.
func InstallStartup(ctx context.Context, platform ports.Platform, entry domain.StartupEntry, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	installed, err := platform.InstallStartup(ctx, entry)
	if err != nil {
		return fmt.Errorf("installing startup entry %q: %w", entry.Name, err)
	}

	if installed {
		logger.InfoContext(ctx, "startup entry installed",
			slog.String("name", entry.Name),
			slog.String("platform", platform.Name()),
		)
	} else {
		logger.InfoContext(ctx, "startup entry already present", slog.String("name", entry.Name))
	}

	return nil
}
