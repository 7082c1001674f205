package dto

import (
	"time"

	"github.com/jsamuelsen/quotewall/internal/domain"
)

// StatusResponse is the body of GET /api/v1/wallpaper.
type StatusResponse struct {
	Running   bool       `json:"running"`
	Cycles    int        `json:"cycles"`
	Failures  int        `json:"failures"`
	NextRun   *time.Time `json:"nextRun,omitempty"`
	ImagePath string     `json:"imagePath"`
	Last      *CycleView `json:"last,omitempty"`
}

// CycleView is the public form of a finished cycle.
type CycleView struct {
	ID         string    `json:"id"`
	Quote      string    `json:"quote"`
	Author     string    `json:"author"`
	Font       string    `json:"font"`
	Fallbacks  []string  `json:"fallbacks"`
	Applied    bool      `json:"applied"`
	Error      string    `json:"error,omitempty"`
	StartedAt  time.Time `json:"startedAt"`
	DurationMS int64     `json:"durationMs"`
}

// NewCycleView converts a cycle report. A nil report yields nil.
func NewCycleView(r *domain.CycleReport) *CycleView {
	if r == nil {
		return nil
	}

	fallbacks := r.Fallbacks
	if fallbacks == nil {
		fallbacks = []string{}
	}

	return &CycleView{
		ID:         r.CycleID,
		Quote:      r.Quote,
		Author:     r.Author,
		Font:       r.Font,
		Fallbacks:  fallbacks,
		Applied:    r.Applied,
		Error:      r.Error,
		StartedAt:  r.StartedAt,
		DurationMS: r.Duration.Milliseconds(),
	}
}

// RefreshResponse is the body of POST /api/v1/wallpaper/refresh.
type RefreshResponse struct {
	// Accepted is false when a refresh was already pending.
	Accepted bool `json:"accepted"`
}
