package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig(t *testing.T) *Config {
	t.Helper()

	cfg, err := LoadFrom(t.TempDir(), "")
	require.NoError(t, err)

	return cfg
}

func TestConfig_Validate_Defaults(t *testing.T) {
	assert.NoError(t, validConfig(t).Validate())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Config)
		contains []string
	}{
		{
			name:     "missing app name",
			mutate:   func(c *Config) { c.App.Name = "" },
			contains: []string{"app.name is required"},
		},
		{
			name:     "invalid environment",
			mutate:   func(c *Config) { c.App.Environment = "staging" },
			contains: []string{"app.environment must be one of"},
		},
		{
			name:     "invalid log level",
			mutate:   func(c *Config) { c.Log.Level = "verbose" },
			contains: []string{"log.level must be one of"},
		},
		{
			name:     "interval too short",
			mutate:   func(c *Config) { c.Schedule.Interval = 500 * time.Millisecond },
			contains: []string{"schedule.interval must be at least 1s"},
		},
		{
			name:     "interval too long",
			mutate:   func(c *Config) { c.Schedule.Interval = 48 * time.Hour },
			contains: []string{"schedule.interval must be at most 24h"},
		},
		{
			name:     "bad colour",
			mutate:   func(c *Config) { c.Render.TextColor = "white" },
			contains: []string{"render.text_color must be a hex colour"},
		},
		{
			name:     "zero font size",
			mutate:   func(c *Config) { c.Render.FontSize = 0 },
			contains: []string{"render.font_size is required"},
		},
		{
			name:     "zero screen width",
			mutate:   func(c *Config) { c.Screen.Width = 0 },
			contains: []string{"screen.width is required"},
		},
		{
			name:     "invalid photo fit",
			mutate:   func(c *Config) { c.Services.Photo.Fit = "tile" },
			contains: []string{"services.photo.fit must be one of: stretch fill"},
		},
		{
			name:     "quote base url not a url",
			mutate:   func(c *Config) { c.Services.Quote.BaseURL = "zenquotes" },
			contains: []string{"services.quote.base_url must be a valid URL"},
		},
		{
			name:     "quote path without slash",
			mutate:   func(c *Config) { c.Services.Quote.Path = "api/random" },
			contains: []string{"services.quote.path must start with"},
		},
		{
			name:     "unknown platform mode",
			mutate:   func(c *Config) { c.Platform.Mode = "x11" },
			contains: []string{"platform.mode must be one of: native none"},
		},
		{
			name: "log file enabled without path",
			mutate: func(c *Config) {
				c.Log.File.Enabled = true
				c.Log.File.Path = ""
			},
			contains: []string{"log.file.path is required when"},
		},
		{
			name: "telemetry enabled without endpoint",
			mutate: func(c *Config) {
				c.Telemetry.Enabled = true
				c.Telemetry.Endpoint = ""
			},
			contains: []string{"telemetry.endpoint is required when"},
		},
		{
			name: "multiple errors reported together",
			mutate: func(c *Config) {
				c.Admin.Port = 70000
				c.Output.Path = ""
			},
			contains: []string{"admin.port must be at most 65535", "output.path is required"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig(t)
			tt.mutate(cfg)

			err := cfg.Validate()

			require.Error(t, err)
			assert.Contains(t, err.Error(), "config validation failed")
			for _, s := range tt.contains {
				assert.Contains(t, err.Error(), s)
			}
		})
	}
}

func TestFormatFieldPath(t *testing.T) {
	assert.Equal(t, "render.font_dir", formatFieldPath("Config.render.font_dir"))
	assert.Equal(t, "config", formatFieldPath("Config"))
}
