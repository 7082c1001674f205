package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultValues(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "quotewall", cfg.App.Name)
	assert.Equal(t, "local", cfg.App.Environment)
	assert.Equal(t, DefaultScreenWidth, cfg.Screen.Width)
	assert.Equal(t, DefaultScreenHeight, cfg.Screen.Height)
	assert.Equal(t, "fonts", cfg.Render.FontDir)
	assert.InDelta(t, DefaultFontSize, cfg.Render.FontSize, 0)
	assert.Equal(t, DefaultWrapWidth, cfg.Render.WrapWidth)
	assert.Equal(t, DefaultMargin, cfg.Render.Margin)
	assert.Equal(t, DefaultBorderOffset, cfg.Render.BorderOffset)
	assert.Equal(t, DefaultShadowOffset, cfg.Render.ShadowOffset)
	assert.Equal(t, "#FFFFFF", cfg.Render.TextColor)
	assert.Equal(t, "native", cfg.Platform.Mode)
	assert.False(t, cfg.Admin.Enabled)

	require.NoError(t, cfg.Validate())
}

func TestLoad_ServiceDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "https://zenquotes.io", cfg.Services.Quote.BaseURL)
	assert.Equal(t, "/api/random", cfg.Services.Quote.Path)
	assert.Equal(t, "https://api.unsplash.com", cfg.Services.Photo.BaseURL)
	assert.Equal(t, "nature", cfg.Services.Photo.Query)
	assert.Equal(t, "landscape", cfg.Services.Photo.Orientation)
	assert.Equal(t, "stretch", cfg.Services.Photo.Fit)
	assert.Empty(t, cfg.Services.Photo.AccessKey)
}

func TestLoad_DurationParsing(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, time.Hour, cfg.Schedule.Interval)
	assert.Equal(t, 30*time.Second, cfg.Client.Timeout)
	assert.Equal(t, 5*time.Minute, cfg.Client.CircuitBreaker.Timeout)
	assert.Equal(t, 10*time.Second, cfg.Admin.ShutdownTimeout)
}

func TestLoad_EnvVarOverrides(t *testing.T) {
	t.Setenv("APP_SCHEDULE_INTERVAL", "20m")
	t.Setenv("APP_LOG_LEVEL", "warn")
	t.Setenv("APP_RENDER_FONT_DIR", "/usr/share/fonts/truetype")
	t.Setenv("APP_SERVICES_PHOTO_ACCESS_KEY", "key-from-env")
	t.Setenv("APP_SCHEDULE_MINIMIZE_WINDOWS", "false")
	t.Setenv("APP_ADMIN_ENABLED", "true")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 20*time.Minute, cfg.Schedule.Interval)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "/usr/share/fonts/truetype", cfg.Render.FontDir)
	assert.Equal(t, "key-from-env", cfg.Services.Photo.AccessKey)
	assert.False(t, cfg.Schedule.MinimizeWindows)
	assert.True(t, cfg.Admin.Enabled)
}

func TestLoadFrom_ProfileOverridesBase(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "base.yaml"), []byte(`
screen:
  width: 2560
  height: 1440
render:
  font_size: 48
`), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), []byte(`
render:
  font_size: 32
platform:
  mode: none
`), 0o600))

	cfg, err := LoadFrom(dir, "test")
	require.NoError(t, err)

	assert.Equal(t, 2560, cfg.Screen.Width)
	assert.Equal(t, 1440, cfg.Screen.Height)
	assert.InDelta(t, 32, cfg.Render.FontSize, 0)
	assert.Equal(t, "none", cfg.Platform.Mode)
}

func TestLoad_NonExistentProfile(t *testing.T) {
	cfg, err := Load("nonexistent")
	require.NoError(t, err)

	assert.Equal(t, "quotewall", cfg.App.Name)
}

func TestLoadFrom_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "base.yaml"), []byte("screen: [unclosed"), 0o600))

	_, err := LoadFrom(dir, "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading base config")
}

func TestEnvKey(t *testing.T) {
	mapper := envKey([]string{"render.font_dir", "screen.width"})

	assert.Equal(t, "render.font_dir", mapper("APP_RENDER_FONT_DIR"))
	assert.Equal(t, "screen.width", mapper("APP_SCREEN_WIDTH"))
	assert.Equal(t, "custom.nested.key", mapper("APP_CUSTOM_NESTED_KEY"))
}

func TestAdminConfig_Address(t *testing.T) {
	assert.Equal(t, "127.0.0.1:8089", AdminConfig{Host: "127.0.0.1", Port: 8089}.Address())
}
