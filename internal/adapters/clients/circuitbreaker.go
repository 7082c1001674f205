package clients

import (
	"sync"
	"time"
)

// State is the circuit breaker state.
type State int

const (
	// StateClosed lets requests through.
	StateClosed State = iota

	// StateOpen blocks requests until the open timeout passes.
	StateOpen

	// StateHalfOpen lets probes through; enough successes close the circuit.
	StateHalfOpen
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

// CircuitBreakerConfig configures the circuit breaker behavior.
type CircuitBreakerConfig struct {
	// MaxFailures is the number of consecutive failures that opens the circuit.
	MaxFailures int

	// Timeout is how long the circuit stays open before probing.
	Timeout time.Duration

	// HalfOpenLimit is the number of successful probes that close it again.
	HalfOpenLimit int
}

// CircuitBreaker stops calling a service that keeps failing. With an hourly
// cycle this means a dead service is skipped straight to its fallback
// instead of waiting out a full request timeout every cycle.
//
// Transitions:
//   - Closed -> Open after MaxFailures consecutive failures
//   - Open -> HalfOpen once Timeout has passed
//   - HalfOpen -> Closed after HalfOpenLimit successes
//   - HalfOpen -> Open on any failure
type CircuitBreaker struct {
	mu        sync.Mutex
	state     State
	failures  int
	successes int
	openedAt  time.Time
	cfg       CircuitBreakerConfig

	onStateChange func(from, to State)

	now func() time.Time
}

// NewCircuitBreaker creates a closed circuit breaker.
func NewCircuitBreaker(cfg CircuitBreakerConfig) *CircuitBreaker {
	if cfg.MaxFailures < 1 {
		cfg.MaxFailures = 1
	}

	if cfg.HalfOpenLimit < 1 {
		cfg.HalfOpenLimit = 1
	}

	return &CircuitBreaker{
		state: StateClosed,
		cfg:   cfg,
		now:   time.Now,
	}
}

// OnStateChange registers a callback run after every transition, outside
// the breaker lock.
func (cb *CircuitBreaker) OnStateChange(fn func(from, to State)) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.onStateChange = fn
}

// Allow reports whether a request may proceed. An open circuit whose
// timeout has passed moves to half-open and allows the probe.
func (cb *CircuitBreaker) Allow() bool {
	cb.mu.Lock()

	if cb.state == StateOpen {
		if cb.now().Sub(cb.openedAt) < cb.cfg.Timeout {
			cb.mu.Unlock()
			return false
		}

		notify := cb.transitionTo(StateHalfOpen)
		cb.mu.Unlock()
		notify()

		return true
	}

	cb.mu.Unlock()

	return true
}

// RecordSuccess records a successful request.
func (cb *CircuitBreaker) RecordSuccess() {
	cb.mu.Lock()

	notify := func() {}

	switch cb.state {
	case StateClosed:
		cb.failures = 0
	case StateHalfOpen:
		cb.successes++
		if cb.successes >= cb.cfg.HalfOpenLimit {
			notify = cb.transitionTo(StateClosed)
		}
	}

	cb.mu.Unlock()
	notify()
}

// RecordFailure records a failed request.
func (cb *CircuitBreaker) RecordFailure() {
	cb.mu.Lock()

	notify := func() {}

	switch cb.state {
	case StateClosed:
		cb.failures++
		if cb.failures >= cb.cfg.MaxFailures {
			notify = cb.transitionTo(StateOpen)
		}
	case StateHalfOpen:
		notify = cb.transitionTo(StateOpen)
	}

	cb.mu.Unlock()
	notify()
}

// State returns the current state.
func (cb *CircuitBreaker) State() State {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	return cb.state
}

// RetryIn returns how long an open circuit keeps blocking, or zero.
func (cb *CircuitBreaker) RetryIn() time.Duration {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.state != StateOpen {
		return 0
	}

	return max(cb.cfg.Timeout-cb.now().Sub(cb.openedAt), 0)
}

// transitionTo changes state and returns the callback invocation to run
// once the lock is released. Must be called with the lock held.
func (cb *CircuitBreaker) transitionTo(next State) func() {
	prev := cb.state
	if prev == next {
		return func() {}
	}

	cb.state = next
	cb.failures = 0
	cb.successes = 0

	if next == StateOpen {
		cb.openedAt = cb.now()
	}

	fn := cb.onStateChange
	if fn == nil {
		return func() {}
	}

	return func() { fn(prev, next) }
}
