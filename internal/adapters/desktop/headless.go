package desktop

import (
	"context"
	"slices"
	"sync"

	"github.com/jsamuelsen/quotewall/internal/domain"
)

// Headless is a platform that changes nothing and remembers what it was
// asked to do. It backs "none" mode for servers and CI.
type Headless struct {
	mu        sync.Mutex
	applied   []string
	minimized int
	entries   map[string]domain.StartupEntry
}

// NewHeadless creates a headless platform.
func NewHeadless() *Headless {
	return &Headless{entries: make(map[string]domain.StartupEntry)}
}

// Name implements ports.Platform.
func (h *Headless) Name() string { return "headless" }

// SetWallpaper implements ports.Platform.
func (h *Headless) SetWallpaper(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.applied = append(h.applied, path)

	return nil
}

// MinimizeWindows implements ports.Platform.
func (h *Headless) MinimizeWindows(context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.minimized++

	return nil
}

// InstallStartup implements ports.Platform.
func (h *Headless) InstallStartup(_ context.Context, entry domain.StartupEntry) (bool, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.entries[entry.Name]; ok {
		return false, nil
	}

	h.entries[entry.Name] = entry

	return true, nil
}

// Applied returns every path passed to SetWallpaper, oldest first.
func (h *Headless) Applied() []string {
	h.mu.Lock()
	defer h.mu.Unlock()

	return slices.Clone(h.applied)
}

// Minimized returns how many times MinimizeWindows was called.
func (h *Headless) Minimized() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.minimized
}
