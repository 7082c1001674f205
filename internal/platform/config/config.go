// Package config loads quotewall configuration using koanf.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Default configuration values.
const (
	DefaultAdminPort = 8089

	DefaultScreenWidth  = 1920
	DefaultScreenHeight = 1080

	DefaultFontSize     = 60
	DefaultWrapWidth    = 40
	DefaultMargin       = 40
	DefaultBorderOffset = 7
	DefaultShadowOffset = 2
	DefaultLineSpacing  = 4

	DefaultInterval = time.Hour

	// DefaultPhotoMaxBytes caps a downloaded photo at 32MB.
	DefaultPhotoMaxBytes = 32 << 20

	DefaultClientCircuitMaxFailures   = 3
	DefaultClientCircuitHalfOpenLimit = 1

	DefaultTransportMaxIdleConns        = 10
	DefaultTransportMaxIdleConnsPerHost = 2

	DefaultLogFileMaxSizeMB  = 10
	DefaultLogFileMaxBackups = 3
	DefaultLogFileMaxAgeDays = 28
)

// Config is the root configuration structure.
type Config struct {
	App       AppConfig       `koanf:"app"       validate:"required"`
	Log       LogConfig       `koanf:"log"       validate:"required"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
	Client    ClientConfig    `koanf:"client"    validate:"required"`
	Services  ServicesConfig  `koanf:"services"  validate:"required"`
	Screen    ScreenConfig    `koanf:"screen"    validate:"required"`
	Render    RenderConfig    `koanf:"render"    validate:"required"`
	Output    OutputConfig    `koanf:"output"    validate:"required"`
	Schedule  ScheduleConfig  `koanf:"schedule"  validate:"required"`
	Platform  PlatformConfig  `koanf:"platform"  validate:"required"`
	Startup   StartupConfig   `koanf:"startup"`
	Admin     AdminConfig     `koanf:"admin"     validate:"required"`
}

// AppConfig contains application-level settings.
type AppConfig struct {
	Name        string `koanf:"name"        validate:"required"`
	Version     string `koanf:"version"     validate:"required"`
	Environment string `koanf:"environment" validate:"required,oneof=local dev prod test"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string        `koanf:"level"  validate:"required,oneof=trace debug info warn error"`
	Format string        `koanf:"format" validate:"required,oneof=json text pretty"`
	File   LogFileConfig `koanf:"file"`
}

// LogFileConfig contains rolling log file settings.
type LogFileConfig struct {
	Enabled    bool   `koanf:"enabled"`
	Path       string `koanf:"path"        validate:"required_if=Enabled true"`
	MaxSizeMB  int    `koanf:"max_size"    validate:"omitempty,min=1,max=1024"`
	MaxBackups int    `koanf:"max_backups" validate:"omitempty,min=0,max=100"`
	MaxAgeDays int    `koanf:"max_age"     validate:"omitempty,min=0,max=365"`
	Compress   bool   `koanf:"compress"`
}

// TelemetryConfig contains OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled      bool    `koanf:"enabled"`
	Endpoint     string  `koanf:"endpoint"      validate:"required_if=Enabled true"`
	ServiceName  string  `koanf:"service_name"  validate:"required_if=Enabled true"`
	SamplingRate float64 `koanf:"sampling_rate" validate:"min=0,max=1"`
}

// ClientConfig contains HTTP client settings for the quote and photo services.
type ClientConfig struct {
	// Timeout bounds every request, including the photo download.
	Timeout        time.Duration        `koanf:"timeout"         validate:"required,min=100ms"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker" validate:"required"`
	Transport      TransportConfig      `koanf:"transport"       validate:"required"`
}

// CircuitBreakerConfig contains circuit breaker settings for HTTP clients.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"    validate:"required,min=1"`
	Timeout       time.Duration `koanf:"timeout"         validate:"required,min=1s"`
	HalfOpenLimit int           `koanf:"half_open_limit" validate:"required,min=1"`
}

// TransportConfig contains HTTP transport pool settings.
type TransportConfig struct {
	MaxIdleConns        int           `koanf:"max_idle_conns"          validate:"required,min=1"`
	MaxIdleConnsPerHost int           `koanf:"max_idle_conns_per_host" validate:"required,min=1"`
	IdleConnTimeout     time.Duration `koanf:"idle_conn_timeout"       validate:"required,min=1s"`
}

// ServicesConfig contains the downstream services.
type ServicesConfig struct {
	Quote QuoteServiceConfig `koanf:"quote" validate:"required"`
	Photo PhotoServiceConfig `koanf:"photo" validate:"required"`
}

// QuoteServiceConfig configures the ZenQuotes client.
type QuoteServiceConfig struct {
	BaseURL string `koanf:"base_url" validate:"required,url"`
	Name    string `koanf:"name"     validate:"required"`
	Path    string `koanf:"path"     validate:"required,startswith=/"`
}

// PhotoServiceConfig configures the Unsplash client.
type PhotoServiceConfig struct {
	BaseURL string `koanf:"base_url" validate:"required,url"`
	Name    string `koanf:"name"     validate:"required"`

	// AccessKey is the Unsplash access key. When empty, every photo fetch
	// falls back to the black background.
	AccessKey   string `koanf:"access_key"`
	Query       string `koanf:"query"       validate:"required"`
	Orientation string `koanf:"orientation" validate:"required,oneof=landscape portrait squarish"`
	Fit         string `koanf:"fit"         validate:"required,oneof=stretch fill"`
	MaxBytes    int64  `koanf:"max_bytes"   validate:"required,min=1024"`
}

// ScreenConfig is the target wallpaper size.
type ScreenConfig struct {
	Width  int `koanf:"width"  validate:"required,min=1,max=16384"`
	Height int `koanf:"height" validate:"required,min=1,max=16384"`
}

// RenderConfig controls fonts, text layout and colours.
type RenderConfig struct {
	FontDir        string  `koanf:"font_dir"`
	FontSize       float64 `koanf:"font_size"       validate:"required,gt=0,max=1000"`
	WrapWidth      int     `koanf:"wrap_width"      validate:"required,min=1"`
	Margin         int     `koanf:"margin"          validate:"min=0"`
	VerticalOffset int     `koanf:"vertical_offset"`
	LineSpacing    int     `koanf:"line_spacing"    validate:"min=0"`
	TextColor      string  `koanf:"text_color"      validate:"required,hexcolor"`
	BorderColor    string  `koanf:"border_color"    validate:"required,hexcolor"`
	ShadowColor    string  `koanf:"shadow_color"    validate:"required,hexcolor"`
	BorderOffset   int     `koanf:"border_offset"   validate:"min=0,max=100"`
	ShadowOffset   int     `koanf:"shadow_offset"   validate:"min=0,max=100"`

	// Seed makes font selection reproducible. Zero seeds from the clock.
	Seed uint64 `koanf:"seed"`
}

// OutputConfig is where the wallpaper is written.
type OutputConfig struct {
	Path string `koanf:"path" validate:"required"`
}

// ScheduleConfig controls the refresh loop.
type ScheduleConfig struct {
	Interval        time.Duration `koanf:"interval"         validate:"required,min=1s,max=24h"`
	MinimizeWindows bool          `koanf:"minimize_windows"`
}

// PlatformConfig selects how wallpapers are applied.
type PlatformConfig struct {
	// Mode is "native" for the host OS or "none" to only write the file.
	Mode string `koanf:"mode" validate:"required,oneof=native none"`
}

// StartupConfig controls login registration.
type StartupConfig struct {
	Install bool   `koanf:"install"`
	Name    string `koanf:"name"    validate:"required_if=Install true"`
}

// AdminConfig contains the optional admin HTTP server settings.
type AdminConfig struct {
	Enabled         bool          `koanf:"enabled"`
	Port            int           `koanf:"port"             validate:"required,min=1,max=65535"`
	Host            string        `koanf:"host"             validate:"required"`
	ReadTimeout     time.Duration `koanf:"read_timeout"     validate:"required,min=1s"`
	WriteTimeout    time.Duration `koanf:"write_timeout"    validate:"required,min=1s"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"     validate:"required,min=1s"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"required,min=1s"`
}

// Address returns host:port for the admin listener.
func (a AdminConfig) Address() string {
	return fmt.Sprintf("%s:%d", a.Host, a.Port)
}

func defaults() map[string]any {
	return map[string]any{
		"app.name":        "quotewall",
		"app.version":     "dev",
		"app.environment": "local",

		"log.level":            "info",
		"log.format":           "json",
		"log.file.enabled":     false,
		"log.file.path":        "./logs/quotewall.log",
		"log.file.max_size":    DefaultLogFileMaxSizeMB,
		"log.file.max_backups": DefaultLogFileMaxBackups,
		"log.file.max_age":     DefaultLogFileMaxAgeDays,
		"log.file.compress":    true,

		"telemetry.enabled":       false,
		"telemetry.endpoint":      "",
		"telemetry.service_name":  "quotewall",
		"telemetry.sampling_rate": 1.0,

		"client.timeout":                           "30s",
		"client.circuit_breaker.max_failures":      DefaultClientCircuitMaxFailures,
		"client.circuit_breaker.timeout":           "5m",
		"client.circuit_breaker.half_open_limit":   DefaultClientCircuitHalfOpenLimit,
		"client.transport.max_idle_conns":          DefaultTransportMaxIdleConns,
		"client.transport.max_idle_conns_per_host": DefaultTransportMaxIdleConnsPerHost,
		"client.transport.idle_conn_timeout":       "90s",

		"services.quote.base_url": "https://zenquotes.io",
		"services.quote.name":     "zenquotes",
		"services.quote.path":     "/api/random",

		"services.photo.base_url":    "https://api.unsplash.com",
		"services.photo.name":        "unsplash",
		"services.photo.access_key":  "",
		"services.photo.query":       "nature",
		"services.photo.orientation": "landscape",
		"services.photo.fit":         "stretch",
		"services.photo.max_bytes":   DefaultPhotoMaxBytes,

		"screen.width":  DefaultScreenWidth,
		"screen.height": DefaultScreenHeight,

		"render.font_dir":        "fonts",
		"render.font_size":       DefaultFontSize,
		"render.wrap_width":      DefaultWrapWidth,
		"render.margin":          DefaultMargin,
		"render.vertical_offset": 0,
		"render.line_spacing":    DefaultLineSpacing,
		"render.text_color":      "#FFFFFF",
		"render.border_color":    "#000000",
		"render.shadow_color":    "#000000",
		"render.border_offset":   DefaultBorderOffset,
		"render.shadow_offset":   DefaultShadowOffset,
		"render.seed":            0,

		"output.path": "wallpapers/centered_quote_image_with_shadow_and_border.png",

		"schedule.interval":         DefaultInterval.String(),
		"schedule.minimize_windows": true,

		"platform.mode": "native",

		"startup.install": false,
		"startup.name":    "SetWallpaper",

		"admin.enabled":          false,
		"admin.port":             DefaultAdminPort,
		"admin.host":             "127.0.0.1",
		"admin.read_timeout":     "10s",
		"admin.write_timeout":    "30s",
		"admin.idle_timeout":     "60s",
		"admin.shutdown_timeout": "10s",
	}
}

// Load loads configuration with the following precedence (highest to lowest):
//  1. Environment variables (APP_ prefix)
//  2. Profile config file (configs/{profile}.yaml)
//  3. Base config file (configs/base.yaml)
//  4. Default values
func Load(profile string) (*Config, error) {
	return LoadFrom("configs", profile)
}

// LoadFrom is Load with an explicit config directory.
func LoadFrom(dir, profile string) (*Config, error) {
	k := koanf.New(".")

	err := k.Load(confmap.Provider(defaults(), "."), nil)
	if err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	err = loadFileIfExists(k, dir+"/base.yaml")
	if err != nil {
		return nil, fmt.Errorf("loading base config: %w", err)
	}

	if profile != "" {
		err := loadFileIfExists(k, fmt.Sprintf("%s/%s.yaml", dir, profile))
		if err != nil {
			return nil, fmt.Errorf("loading profile config %q: %w", profile, err)
		}
	}

	err = k.Load(env.Provider("APP_", ".", envKey(k.Keys())), nil)
	if err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	var cfg Config

	err = k.Unmarshal("", &cfg)
	if err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return &cfg, nil
}

// envKey maps APP_RENDER_FONT_DIR to render.font_dir. Keys already known
// from defaults or files resolve exactly, so underscores inside a key
// survive; unknown variables split on every underscore.
func envKey(known []string) func(string) string {
	index := make(map[string]string, len(known))
	for _, key := range known {
		index[strings.ReplaceAll(key, ".", "_")] = key
	}

	return func(s string) string {
		flat := strings.ToLower(strings.TrimPrefix(s, "APP_"))
		if key, ok := index[flat]; ok {
			return key
		}

		return strings.ReplaceAll(flat, "_", ".")
	}
}

// loadFileIfExists loads a YAML config file if it exists.
func loadFileIfExists(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	return k.Load(file.Provider(path), yaml.Parser())
}
