package telemetry

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "quotewall"

// Cycle outcomes recorded by CycleMetrics.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// CycleMetrics are the Prometheus collectors describing wallpaper cycles.
type CycleMetrics struct {
	cycles      *prometheus.CounterVec
	fallbacks   *prometheus.CounterVec
	duration    prometheus.Histogram
	lastSuccess prometheus.Gauge
}

// NewCycleMetrics creates the cycle collectors and registers them with reg.
// Registering twice with the same registry reuses the existing collectors.
func NewCycleMetrics(reg prometheus.Registerer) (*CycleMetrics, error) {
	m := &CycleMetrics{
		cycles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "cycles_total",
			Help:      "Wallpaper cycles run, by outcome.",
		}, []string{"outcome"}),
		fallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "fallbacks_total",
			Help:      "Cycles that used a fallback value, by source.",
		}, []string{"source"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "cycle_duration_seconds",
			Help:      "Wall time of one wallpaper cycle.",
			Buckets:   []float64{0.25, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
		}),
		lastSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "last_success_timestamp_seconds",
			Help:      "Unix time of the last cycle that applied a wallpaper.",
		}),
	}

	var err error
	if m.cycles, err = register(reg, m.cycles); err != nil {
		return nil, err
	}

	if m.fallbacks, err = register(reg, m.fallbacks); err != nil {
		return nil, err
	}

	if m.duration, err = register(reg, m.duration); err != nil {
		return nil, err
	}

	if m.lastSuccess, err = register(reg, m.lastSuccess); err != nil {
		return nil, err
	}

	return m, nil
}

func register[T prometheus.Collector](reg prometheus.Registerer, c T) (T, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
		}

		return c, fmt.Errorf("registering cycle metrics: %w", err)
	}

	return c, nil
}

// CycleFinished records one cycle.
func (m *CycleMetrics) CycleFinished(outcome string, took time.Duration, at time.Time) {
	m.cycles.WithLabelValues(outcome).Inc()
	m.duration.Observe(took.Seconds())

	if outcome == OutcomeSuccess {
		m.lastSuccess.Set(float64(at.Unix()))
	}
}

// FallbackUsed records that source degraded to its fallback value.
func (m *CycleMetrics) FallbackUsed(source string) {
	m.fallbacks.WithLabelValues(source).Inc()
}
