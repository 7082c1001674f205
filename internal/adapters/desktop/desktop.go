// Package desktop applies wallpapers through the host operating system.
//
// [New] returns the implementation for the running OS in native mode, or a
// [Headless] recorder in "none" mode. Linux and macOS shell out to desktop
// tools through a [Runner]; Windows calls user32 directly.
package desktop

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/jsamuelsen/quotewall/internal/ports"
)

// Platform modes accepted by New.
const (
	ModeNative = "native"
	ModeNone   = "none"
)

// ErrUnsupported is returned for actions the current platform cannot do.
var ErrUnsupported = errors.New("not supported on this platform")

// Runner executes an external command.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) error
}

// ExecRunner runs commands with os/exec, folding their output into errors.
type ExecRunner struct{}

// Run implements Runner.
func (ExecRunner) Run(ctx context.Context, name string, args ...string) error {
	out, err := exec.CommandContext(ctx, name, args...).CombinedOutput()
	if err != nil {
		if msg := bytes.TrimSpace(out); len(msg) > 0 {
			return fmt.Errorf("%s: %w: %s", name, err, msg)
		}

		return fmt.Errorf("%s: %w", name, err)
	}

	return nil
}

type options struct {
	runner    Runner
	logger    *slog.Logger
	configDir string
	homeDir   string
}

// Option configures a platform.
type Option func(*options)

// WithRunner replaces the command runner.
func WithRunner(r Runner) Option {
	return func(o *options) { o.runner = r }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithConfigDir overrides the per-user configuration directory used for
// Linux autostart entries.
func WithConfigDir(dir string) Option {
	return func(o *options) { o.configDir = dir }
}

// WithHomeDir overrides the home directory used for macOS launch agents.
func WithHomeDir(dir string) Option {
	return func(o *options) { o.homeDir = dir }
}

func buildOptions(opts []Option) options {
	o := options{runner: ExecRunner{}, logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// New returns the platform for mode.
func New(mode string, opts ...Option) (ports.Platform, error) {
	o := buildOptions(opts)

	switch mode {
	case ModeNone:
		return NewHeadless(), nil
	case ModeNative, "":
		return native(o), nil
	default:
		return nil, fmt.Errorf("unknown platform mode %q", mode)
	}
}

// writeIfAbsent creates path with data unless it already exists. It
// reports whether the file was written.
func writeIfAbsent(path string, data []byte, perm os.FileMode) (bool, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if errors.Is(err, os.ErrExist) {
		return false, nil
	}

	if err != nil {
		return false, fmt.Errorf("creating %s: %w", path, err)
	}

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(path)

		return false, fmt.Errorf("writing %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return false, fmt.Errorf("closing %s: %w", path, err)
	}

	return true, nil
}

func fileExists(path string) (bool, error) {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, os.ErrNotExist):
		return false, nil
	default:
		return false, fmt.Errorf("checking %s: %w", path, err)
	}
}
