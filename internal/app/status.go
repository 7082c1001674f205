package app

import (
	"sync"
	"time"

	"github.com/jsamuelsen/quotewall/internal/domain"
)

// StatusSnapshot is a point-in-time copy of the runner's state.
type StatusSnapshot struct {
	Running  bool                `json:"running"`
	Cycles   int                 `json:"cycles"`
	Failures int                 `json:"failures"`
	NextRun  time.Time           `json:"nextRun,omitzero"`
	Last     *domain.CycleReport `json:"last,omitempty"`
}

// Status tracks cycle history for the admin API. It is safe for concurrent
// use.
type Status struct {
	mu   sync.RWMutex
	snap StatusSnapshot
}

// NewStatus creates an empty status.
func NewStatus() *Status {
	return &Status{}
}

// Snapshot returns a copy of the current state.
func (s *Status) Snapshot() StatusSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snap
	if snap.Last != nil {
		last := *snap.Last
		last.Fallbacks = append([]string(nil), last.Fallbacks...)
		snap.Last = &last
	}

	return snap
}

func (s *Status) begin() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snap.Running = true
	s.snap.NextRun = time.Time{}
}

func (s *Status) record(report *domain.CycleReport, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snap.Running = false
	s.snap.Cycles++

	if err != nil {
		s.snap.Failures++
	}

	if report != nil {
		s.snap.Last = report
	}
}

func (s *Status) scheduled(next time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snap.NextRun = next
}
