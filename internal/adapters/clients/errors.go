// Package clients provides the instrumented HTTP client used to reach the
// quote and photo services.
package clients

import "errors"

// Client errors describe transport failures. Adapters translate them into
// domain errors.
var (
	// ErrCircuitOpen is returned without a network call while the breaker
	// for a service is open.
	ErrCircuitOpen = errors.New("circuit breaker open")

	// ErrRequestFailed wraps transport failures such as refused connections
	// and timeouts.
	ErrRequestFailed = errors.New("request failed")
)
