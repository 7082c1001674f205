package desktop

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/jsamuelsen/quotewall/internal/domain"
)

const gnomeBackgroundSchema = "org.gnome.desktop.background"

// Linux sets wallpapers on freedesktop desktops: GNOME through gsettings,
// anything else through feh.
type Linux struct {
	runner    Runner
	logger    *slog.Logger
	configDir string
}

// NewLinux creates the Linux platform.
func NewLinux(opts ...Option) *Linux {
	return newLinux(buildOptions(opts))
}

func newLinux(o options) *Linux {
	return &Linux{runner: o.runner, logger: o.logger, configDir: o.configDir}
}

// Name implements ports.Platform.
func (l *Linux) Name() string { return "linux" }

// SetWallpaper implements ports.Platform. Both the light and dark GNOME
// keys are set; when gsettings is missing or fails, feh is tried.
func (l *Linux) SetWallpaper(ctx context.Context, path string) error {
	uri := (&url.URL{Scheme: "file", Path: path}).String()

	gnomeErr := l.runner.Run(ctx, "gsettings", "set", gnomeBackgroundSchema, "picture-uri", uri)
	if gnomeErr == nil {
		if err := l.runner.Run(ctx, "gsettings", "set", gnomeBackgroundSchema, "picture-uri-dark", uri); err != nil {
			l.logger.DebugContext(ctx, "dark wallpaper key not set", slog.String("error", err.Error()))
		}

		return nil
	}

	fehErr := l.runner.Run(ctx, "feh", "--bg-fill", path)
	if fehErr == nil {
		return nil
	}

	return fmt.Errorf("setting wallpaper: %w", errors.Join(gnomeErr, fehErr))
}

// MinimizeWindows implements ports.Platform using the EWMH "show desktop"
// mode.
func (l *Linux) MinimizeWindows(ctx context.Context) error {
	if err := l.runner.Run(ctx, "wmctrl", "-k", "on"); err != nil {
		return fmt.Errorf("minimizing windows: %w", err)
	}

	return nil
}

// InstallStartup implements ports.Platform with an XDG autostart entry.
func (l *Linux) InstallStartup(_ context.Context, entry domain.StartupEntry) (bool, error) {
	dir := l.configDir
	if dir == "" {
		var err error
		if dir, err = os.UserConfigDir(); err != nil {
			return false, fmt.Errorf("locating config directory: %w", err)
		}
	}

	path := filepath.Join(dir, "autostart", entry.Name+".desktop")

	return writeIfAbsent(path, []byte(desktopEntry(entry)), 0o644)
}

func desktopEntry(entry domain.StartupEntry) string {
	args := make([]string, 0, len(entry.Args)+1)
	args = append(args, quoteExecArg(entry.Executable))

	for _, a := range entry.Args {
		args = append(args, quoteExecArg(a))
	}

	var b strings.Builder
	b.WriteString("[Desktop Entry]\n")
	b.WriteString("Type=Application\n")
	b.WriteString("Name=" + entry.Name + "\n")
	b.WriteString("Exec=" + strings.Join(args, " ") + "\n")

	if entry.WorkingDir != "" {
		b.WriteString("Path=" + entry.WorkingDir + "\n")
	}

	b.WriteString("Terminal=false\n")
	b.WriteString("X-GNOME-Autostart-enabled=true\n")

	return b.String()
}

// quoteExecArg quotes an argument for a desktop entry Exec key.
func quoteExecArg(s string) string {
	if s != "" && !strings.ContainsAny(s, " \t\n\"'\\`$<>~|&;*?#()") {
		return s
	}

	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "`", "\\`", `$`, `\$`)

	return `"` + r.Replace(s) + `"`
}
