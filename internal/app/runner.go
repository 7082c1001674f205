package app

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jsamuelsen/quotewall/internal/domain"
)

// Cycler runs one wallpaper cycle.
type Cycler interface {
	RunCycle(ctx context.Context) (*domain.CycleReport, error)
}

// RunnerConfig contains configuration for a Runner.
type RunnerConfig struct {
	Cycler Cycler

	// Interval is the pause between the end of one cycle and the start of
	// the next.
	Interval time.Duration

	// Status receives cycle results. A new one is created when nil.
	Status *Status

	Logger *slog.Logger
}

// Runner repeats wallpaper cycles on a fixed interval. Cycles never
// overlap: Trigger only shortens the current wait.
type Runner struct {
	cycler   Cycler
	interval time.Duration
	status   *Status
	logger   *slog.Logger
	trigger  chan struct{}
	mu       sync.Mutex
}

// NewRunner creates a Runner.
// Panics if Cycler is nil or Interval is not positive.
func NewRunner(cfg RunnerConfig) *Runner {
	if cfg.Cycler == nil {
		panic("Runner: Cycler is required")
	}

	if cfg.Interval <= 0 {
		panic("Runner: Interval must be positive")
	}

	r := &Runner{
		cycler:   cfg.Cycler,
		interval: cfg.Interval,
		status:   cfg.Status,
		logger:   cfg.Logger,
		trigger:  make(chan struct{}, 1),
	}

	if r.status == nil {
		r.status = NewStatus()
	}

	if r.logger == nil {
		r.logger = slog.Default()
	}

	r.logger = r.logger.With(slog.String("component", "app.Runner"))

	return r
}

// Status returns the runner's status tracker.
func (r *Runner) Status() *Status {
	return r.status
}

// Run loops until ctx is cancelled: run a cycle, then wait for the interval
// or a Trigger. Cycle failures are logged and the loop continues. Run
// returns nil on cancellation.
func (r *Runner) Run(ctx context.Context) error {
	r.logger.InfoContext(ctx, "wallpaper loop started", slog.Duration("interval", r.interval))

	for {
		_, _ = r.RunOnce(ctx)

		if ctx.Err() != nil {
			break
		}

		next := time.Now().Add(r.interval)
		r.status.scheduled(next)

		if !r.wait(ctx) {
			break
		}
	}

	r.logger.InfoContext(ctx, "wallpaper loop stopped")

	return nil
}

func (r *Runner) wait(ctx context.Context) bool {
	timer := time.NewTimer(r.interval)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	case <-r.trigger:
		r.logger.InfoContext(ctx, "wallpaper refresh requested")
		return true
	}
}

// RunOnce runs a single cycle, waiting for any cycle already in progress.
func (r *Runner) RunOnce(ctx context.Context) (*domain.CycleReport, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.status.begin()

	report, err := r.cycler.RunCycle(ctx)

	r.status.record(report, err)

	if err != nil {
		r.logger.ErrorContext(ctx, "wallpaper cycle failed", slog.Any("error", err))
	}

	return report, err
}

// Trigger asks a running loop to start the next cycle now. It reports false
// when a refresh is already pending.
func (r *Runner) Trigger() bool {
	select {
	case r.trigger <- struct{}{}:
		return true
	default:
		return false
	}
}
