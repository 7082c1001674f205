// Package app runs the wallpaper cycle. It coordinates the quote and photo
// sources, the compositor, the wallpaper store and the platform through
// ports, and owns the fallback policy: acquisition failures never end a
// cycle.
package app

import (
	"context"
	"image"
	"image/color"
	"log/slog"
	"time"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/image/font"

	"github.com/jsamuelsen/quotewall/internal/compositor"
	"github.com/jsamuelsen/quotewall/internal/domain"
	"github.com/jsamuelsen/quotewall/internal/platform/logging"
	"github.com/jsamuelsen/quotewall/internal/ports"
)

const tracerName = "github.com/jsamuelsen/quotewall/app"

// Cycle outcomes reported to Metrics.
const (
	outcomeSuccess = "success"
	outcomeFailure = "failure"
)

// FontSource picks the font for a cycle. It must always return a usable
// font.
type FontSource interface {
	Select() *compositor.Font
}

// Renderer draws text over a background.
type Renderer interface {
	Render(bg image.Image, text string, face font.Face) (*image.RGBA, compositor.Layout)
}

// Metrics receives cycle measurements.
type Metrics interface {
	CycleFinished(outcome string, took time.Duration, at time.Time)
	FallbackUsed(source string)
}

type noopMetrics struct{}

func (noopMetrics) CycleFinished(string, time.Duration, time.Time) {}
func (noopMetrics) FallbackUsed(string)                            {}

// WallpaperServiceConfig contains the dependencies of a WallpaperService.
type WallpaperServiceConfig struct {
	Quotes   ports.QuoteSource
	Photos   ports.PhotoSource
	Store    ports.WallpaperStore
	Platform ports.Platform
	Fonts    FontSource
	Renderer Renderer

	// Screen is the size of the rendered wallpaper.
	Screen domain.Screen

	// MinimizeWindows hides open windows after the wallpaper is applied.
	MinimizeWindows bool

	Metrics Metrics
	Logger  *slog.Logger

	// Now overrides the clock in tests.
	Now func() time.Time
}

// WallpaperService produces and applies one wallpaper per RunCycle call.
type WallpaperService struct {
	quotes   ports.QuoteSource
	photos   ports.PhotoSource
	store    ports.WallpaperStore
	platform ports.Platform
	fonts    FontSource
	renderer Renderer
	screen   domain.Screen
	minimize bool
	metrics  Metrics
	logger   *slog.Logger
	tracer   trace.Tracer
	now      func() time.Time
}

// NewWallpaperService creates a WallpaperService.
// Panics if a source, the store, the platform, the font source or the
// renderer is nil.
func NewWallpaperService(cfg WallpaperServiceConfig) *WallpaperService {
	switch {
	case cfg.Quotes == nil, cfg.Photos == nil:
		panic("WallpaperService: quote and photo sources are required")
	case cfg.Store == nil, cfg.Platform == nil:
		panic("WallpaperService: store and platform are required")
	case cfg.Fonts == nil, cfg.Renderer == nil:
		panic("WallpaperService: fonts and renderer are required")
	}

	s := &WallpaperService{
		quotes:   cfg.Quotes,
		photos:   cfg.Photos,
		store:    cfg.Store,
		platform: cfg.Platform,
		fonts:    cfg.Fonts,
		renderer: cfg.Renderer,
		screen:   cfg.Screen,
		minimize: cfg.MinimizeWindows,
		metrics:  cfg.Metrics,
		logger:   cfg.Logger,
		tracer:   otel.Tracer(tracerName),
		now:      cfg.Now,
	}

	if s.metrics == nil {
		s.metrics = noopMetrics{}
	}

	if s.logger == nil {
		s.logger = slog.Default()
	}

	if s.now == nil {
		s.now = time.Now
	}

	s.logger = s.logger.With(slog.String("component", "app.WallpaperService"))

	return s
}

// RunCycle fetches a quote and a photo, renders the wallpaper, saves it and
// applies it. The report is returned even when the cycle fails; the error
// is then a *CycleError naming the failed stage.
func (s *WallpaperService) RunCycle(ctx context.Context) (*domain.CycleReport, error) {
	report := &domain.CycleReport{
		CycleID:   uuid.NewString(),
		StartedAt: s.now(),
	}

	ctx, span := s.tracer.Start(ctx, "wallpaper.cycle",
		trace.WithAttributes(attribute.String("cycle.id", report.CycleID)))
	defer span.End()

	ctx = logging.WithCycleID(logging.WithContext(ctx, s.logger), report.CycleID)
	if sc := span.SpanContext(); sc.HasTraceID() {
		ctx = logging.WithTraceID(ctx, sc.TraceID().String())
	}

	logger := logging.FromContext(ctx)
	logger.InfoContext(ctx, "wallpaper cycle started")

	err := s.cycle(ctx, logger, report)

	end := s.now()
	report.Duration = end.Sub(report.StartedAt)
	span.SetAttributes(
		attribute.StringSlice("cycle.fallbacks", report.Fallbacks),
		attribute.String("cycle.font", report.Font),
	)

	if err != nil {
		report.Error = err.Error()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.metrics.CycleFinished(outcomeFailure, report.Duration, end)

		return report, err
	}

	s.metrics.CycleFinished(outcomeSuccess, report.Duration, end)

	logger.InfoContext(ctx, "wallpaper cycle finished",
		slog.String("author", report.Author),
		slog.String("font", report.Font),
		slog.Any("fallbacks", report.Fallbacks),
		slog.Duration("duration", report.Duration),
	)

	return report, nil
}

func (s *WallpaperService) cycle(ctx context.Context, logger *slog.Logger, report *domain.CycleReport) error {
	quote := s.acquireQuote(ctx, logger, report)
	bg := s.acquirePhoto(ctx, logger, report)

	report.Quote = quote.Text
	report.Author = quote.Author

	f := s.fonts.Select()
	defer func() { _ = f.Close() }()

	report.Font = f.Name
	if f.Fallback {
		s.fallback(report, domain.SourceFont)
	}

	img, layout := s.renderer.Render(bg, quote.Compose(), f.Face)

	logger.DebugContext(ctx, "wallpaper rendered",
		slog.Int("lines", len(layout.Lines)),
		slog.Int("x", layout.Position.X),
		slog.Int("y", layout.Position.Y),
		slog.Int("block_width", layout.BlockWidth),
		slog.Int("block_height", layout.BlockHeight),
	)

	path, err := runStage(ctx, logger, StageSave, func(ctx context.Context) (string, error) {
		return s.store.Save(ctx, img)
	})
	if err != nil {
		return err
	}

	report.OutputPath = path

	_, err = runStage(ctx, logger, StageApply, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, s.platform.SetWallpaper(ctx, path)
	})
	if err != nil {
		return err
	}

	report.Applied = true

	if s.minimize {
		if err := s.platform.MinimizeWindows(ctx); err != nil {
			logger.WarnContext(ctx, "minimizing windows failed", slog.Any("error", err))
		}
	}

	return nil
}

// acquireQuote returns the fetched quote, or the fallback quote on any
// failure.
func (s *WallpaperService) acquireQuote(ctx context.Context, logger *slog.Logger, report *domain.CycleReport) *domain.Quote {
	q, err := s.quotes.RandomQuote(ctx)
	if err == nil && !q.IsEmpty() {
		return q
	}

	if err != nil {
		logger.WarnContext(ctx, "quote unavailable, using fallback", slog.Any("error", err))
	} else {
		logger.WarnContext(ctx, "quote source returned an empty quote, using fallback")
	}

	s.fallback(report, domain.SourceQuote)

	return domain.FallbackQuote()
}

// acquirePhoto returns the fetched photo at exactly the screen size, or a
// solid black raster on any failure.
func (s *WallpaperService) acquirePhoto(ctx context.Context, logger *slog.Logger, report *domain.CycleReport) image.Image {
	img, err := s.photos.RandomPhoto(ctx, s.screen)
	if err == nil && img != nil {
		b := img.Bounds()
		if b.Dx() != s.screen.Width || b.Dy() != s.screen.Height {
			img = imaging.Resize(img, s.screen.Width, s.screen.Height, imaging.Lanczos)
		}

		return img
	}

	logger.WarnContext(ctx, "photo unavailable, using black background", slog.Any("error", err))
	s.fallback(report, domain.SourcePhoto)

	return BlankBackground(s.screen)
}

func (s *WallpaperService) fallback(report *domain.CycleReport, source string) {
	report.Fallbacks = append(report.Fallbacks, source)
	s.metrics.FallbackUsed(source)
}

// BlankBackground returns the solid black raster used when no photo could
// be fetched.
func BlankBackground(screen domain.Screen) *image.NRGBA {
	return imaging.New(screen.Width, screen.Height, color.Black)
}
