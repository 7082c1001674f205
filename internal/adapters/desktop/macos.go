package desktop

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/jsamuelsen/quotewall/internal/domain"
)

// Darwin sets wallpapers on macOS through System Events.
type Darwin struct {
	runner  Runner
	logger  *slog.Logger
	homeDir string
}

// NewDarwin creates the macOS platform.
func NewDarwin(opts ...Option) *Darwin {
	return newDarwin(buildOptions(opts))
}

func newDarwin(o options) *Darwin {
	return &Darwin{runner: o.runner, logger: o.logger, homeDir: o.homeDir}
}

// Name implements ports.Platform.
func (d *Darwin) Name() string { return "darwin" }

// SetWallpaper implements ports.Platform on every desktop.
func (d *Darwin) SetWallpaper(ctx context.Context, path string) error {
	script := fmt.Sprintf(`tell application "System Events" to tell every desktop to set picture to %s`, appleScriptString(path))

	if err := d.runner.Run(ctx, "osascript", "-e", script); err != nil {
		return fmt.Errorf("setting wallpaper: %w", err)
	}

	return nil
}

// MinimizeWindows implements ports.Platform by hiding visible applications.
func (d *Darwin) MinimizeWindows(ctx context.Context) error {
	const script = `tell application "System Events" to set visible of every process whose visible is true and name is not "Finder" to false`

	if err := d.runner.Run(ctx, "osascript", "-e", script); err != nil {
		return fmt.Errorf("minimizing windows: %w", err)
	}

	return nil
}

// InstallStartup implements ports.Platform with a per-user LaunchAgent.
func (d *Darwin) InstallStartup(_ context.Context, entry domain.StartupEntry) (bool, error) {
	home := d.homeDir
	if home == "" {
		var err error
		if home, err = os.UserHomeDir(); err != nil {
			return false, fmt.Errorf("locating home directory: %w", err)
		}
	}

	label := launchAgentLabel(entry.Name)
	path := filepath.Join(home, "Library", "LaunchAgents", label+".plist")

	data, err := launchAgentPlist(label, entry)
	if err != nil {
		return false, err
	}

	return writeIfAbsent(path, data, 0o644)
}

func launchAgentLabel(name string) string {
	return "local.quotewall." + strings.ToLower(strings.ReplaceAll(name, " ", "-"))
}

var plistTemplate = template.Must(template.New("plist").Funcs(template.FuncMap{"xml": xmlEscape}).Parse(
	`<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>Label</key>
	<string>{{xml .Label}}</string>
	<key>ProgramArguments</key>
	<array>
		<string>{{xml .Entry.Executable}}</string>
{{- range .Entry.Args}}
		<string>{{xml .}}</string>
{{- end}}
	</array>
{{- if .Entry.WorkingDir}}
	<key>WorkingDirectory</key>
	<string>{{xml .Entry.WorkingDir}}</string>
{{- end}}
	<key>RunAtLoad</key>
	<true/>
</dict>
</plist>
`))

func launchAgentPlist(label string, entry domain.StartupEntry) ([]byte, error) {
	var buf bytes.Buffer

	err := plistTemplate.Execute(&buf, struct {
		Label string
		Entry domain.StartupEntry
	}{label, entry})
	if err != nil {
		return nil, fmt.Errorf("rendering launch agent: %w", err)
	}

	return buf.Bytes(), nil
}

func xmlEscape(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s))

	return b.String()
}

// appleScriptString quotes s as an AppleScript string literal.
func appleScriptString(s string) string {
	return `"` + strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s) + `"`
}
