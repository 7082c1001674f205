// Package main is the entry point for quotewall.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"github.com/jsamuelsen/quotewall/internal/adapters/clients"
	"github.com/jsamuelsen/quotewall/internal/adapters/clients/acl"
	"github.com/jsamuelsen/quotewall/internal/adapters/desktop"
	"github.com/jsamuelsen/quotewall/internal/adapters/filestore"
	"github.com/jsamuelsen/quotewall/internal/adapters/http"
	"github.com/jsamuelsen/quotewall/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quotewall/internal/app"
	"github.com/jsamuelsen/quotewall/internal/compositor"
	"github.com/jsamuelsen/quotewall/internal/domain"
	"github.com/jsamuelsen/quotewall/internal/platform/config"
	"github.com/jsamuelsen/quotewall/internal/platform/logging"
	"github.com/jsamuelsen/quotewall/internal/platform/telemetry"
	"github.com/jsamuelsen/quotewall/internal/ports"
)

// Build-time variables, injected via ldflags.
// Example: go build -ldflags "-X main.Version=1.0.0 -X main.Commit=$(git rev-parse HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

type options struct {
	profile        string
	once           bool
	installStartup bool
}

func main() {
	if err := run(parseFlags(os.Args[1:])); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags(args []string) options {
	profile := os.Getenv("APP_ENVIRONMENT")
	if profile == "" {
		profile = "local"
	}

	var opts options

	fs := flag.NewFlagSet("quotewall", flag.ExitOnError)
	fs.StringVar(&opts.profile, "profile", profile, "configuration profile (local, dev, prod, test)")
	fs.BoolVar(&opts.once, "once", false, "run a single cycle and exit")
	fs.BoolVar(&opts.installStartup, "install-startup", false, "register quotewall to start at login")
	_ = fs.Parse(args)

	return opts
}

func run(opts options) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(opts.profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger := logging.New(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	})
	logging.SetDefault(logger)

	logger.Info("starting quotewall",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("environment", cfg.App.Environment),
		slog.String("platform_mode", cfg.Platform.Mode),
	)

	telProvider, err := telemetry.New(ctx, telemetry.FromConfig(cfg.App, cfg.Telemetry))
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	defer func() {
		if shutdownErr := telProvider.Shutdown(context.WithoutCancel(ctx)); shutdownErr != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", shutdownErr))
		}
	}()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	metrics, err := telemetry.NewCycleMetrics(registry)
	if err != nil {
		return fmt.Errorf("registering cycle metrics: %w", err)
	}

	healthRegistry := ports.NewHealthRegistry(cfg.Client.Timeout)

	quotes, photos, err := newSources(cfg, logger)
	if err != nil {
		return err
	}

	if err := healthRegistry.Register(quotes); err != nil {
		return fmt.Errorf("registering quote health check: %w", err)
	}

	if err := healthRegistry.Register(photos); err != nil {
		return fmt.Errorf("registering photo health check: %w", err)
	}

	store, err := filestore.New(cfg.Output.Path)
	if err != nil {
		return fmt.Errorf("creating wallpaper store: %w", err)
	}

	platform, err := desktop.New(cfg.Platform.Mode, desktop.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("selecting platform: %w", err)
	}

	if opts.installStartup || cfg.Startup.Install {
		if err := installStartup(ctx, platform, cfg.Startup.Name, opts.profile, logger); err != nil {
			return err
		}
	}

	renderer, err := newRenderer(cfg.Render)
	if err != nil {
		return err
	}

	service := app.NewWallpaperService(app.WallpaperServiceConfig{
		Quotes:          quotes,
		Photos:          photos,
		Store:           store,
		Platform:        platform,
		Fonts:           compositor.NewFontSelector(cfg.Render.FontDir, cfg.Render.FontSize, cfg.Render.Seed, logger),
		Renderer:        renderer,
		Screen:          domain.Screen{Width: cfg.Screen.Width, Height: cfg.Screen.Height},
		MinimizeWindows: cfg.Schedule.MinimizeWindows,
		Metrics:         metrics,
		Logger:          logger,
	})

	runner := app.NewRunner(app.RunnerConfig{
		Cycler:   service,
		Interval: cfg.Schedule.Interval,
		Logger:   logger,
	})

	if opts.once {
		_, err := runner.RunOnce(ctx)
		return err
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return runner.Run(gctx)
	})

	if cfg.Admin.Enabled {
		server := http.New(&cfg.Admin, logger)
		http.SetupRouter(server.Engine(), http.RouterConfig{
			Logger:           logger,
			ServiceName:      cfg.App.Name,
			HealthHandler:    handlers.NewHealthHandler(healthRegistry, handlers.NewBuildInfo(Version, Commit, BuildTime), registry),
			WallpaperHandler: handlers.NewWallpaperHandler(runner.Status(), runner, store.Path()),
		})

		g.Go(func() error {
			return server.Serve(gctx)
		})
	}

	err = g.Wait()

	logger.Info("shutdown complete")

	if errors.Is(err, context.Canceled) {
		return nil
	}

	return err
}

// newSources builds the ZenQuotes and Unsplash adapters, each on its own
// client so one service's circuit never blocks the other.
func newSources(cfg *config.Config, logger *slog.Logger) (*acl.QuoteClient, *acl.PhotoClient, error) {
	userAgent := cfg.App.Name + "/" + Version

	quoteHTTP, err := clients.New(&clients.Config{
		BaseURL:     cfg.Services.Quote.BaseURL,
		ServiceName: cfg.Services.Quote.Name,
		UserAgent:   userAgent,
		Timeout:     cfg.Client.Timeout,
		Circuit:     cfg.Client.CircuitBreaker,
		Transport:   cfg.Client.Transport,
		Logger:      logger,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("creating quote client: %w", err)
	}

	photoHTTP, err := clients.New(&clients.Config{
		BaseURL:     cfg.Services.Photo.BaseURL,
		ServiceName: cfg.Services.Photo.Name,
		UserAgent:   userAgent,
		Timeout:     cfg.Client.Timeout,
		Circuit:     cfg.Client.CircuitBreaker,
		Transport:   cfg.Client.Transport,
		Logger:      logger,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("creating photo client: %w", err)
	}

	quotes := acl.NewQuoteClient(acl.QuoteClientConfig{
		Client: quoteHTTP,
		Path:   cfg.Services.Quote.Path,
		Logger: logger,
	})

	photos := acl.NewPhotoClient(acl.PhotoClientConfig{
		Client:      photoHTTP,
		AccessKey:   cfg.Services.Photo.AccessKey,
		Query:       cfg.Services.Photo.Query,
		Orientation: cfg.Services.Photo.Orientation,
		Fit:         cfg.Services.Photo.Fit,
		MaxBytes:    cfg.Services.Photo.MaxBytes,
		Logger:      logger,
	})

	return quotes, photos, nil
}

func newRenderer(r config.RenderConfig) (*compositor.Compositor, error) {
	text, err := compositor.ParseHexColor(r.TextColor)
	if err != nil {
		return nil, fmt.Errorf("render.text_color: %w", err)
	}

	border, err := compositor.ParseHexColor(r.BorderColor)
	if err != nil {
		return nil, fmt.Errorf("render.border_color: %w", err)
	}

	shadow, err := compositor.ParseHexColor(r.ShadowColor)
	if err != nil {
		return nil, fmt.Errorf("render.shadow_color: %w", err)
	}

	return compositor.New(compositor.Config{
		Margin:         r.Margin,
		VerticalOffset: r.VerticalOffset,
		WrapWidth:      r.WrapWidth,
		LineSpacing:    r.LineSpacing,
		Style: compositor.Style{
			TextColor:    text,
			BorderColor:  border,
			ShadowColor:  shadow,
			BorderOffset: r.BorderOffset,
			ShadowOffset: r.ShadowOffset,
		},
	}), nil
}

func installStartup(ctx context.Context, platform ports.Platform, name, profile string, logger *slog.Logger) error {
	entry, err := app.CurrentStartupEntry(name, []string{"-profile", profile})
	if err != nil {
		return fmt.Errorf("resolving startup entry: %w", err)
	}

	return app.InstallStartup(ctx, platform, entry, logger)
}
