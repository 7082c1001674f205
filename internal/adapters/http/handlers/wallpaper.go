package handlers

import (
	"errors"
	"io/fs"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotewall/internal/adapters/http/dto"
	"github.com/jsamuelsen/quotewall/internal/app"
	"github.com/jsamuelsen/quotewall/internal/domain"
	"github.com/jsamuelsen/quotewall/internal/platform/logging"
)

// StatusReader exposes the runner state.
type StatusReader interface {
	Snapshot() app.StatusSnapshot
}

// Refresher requests an early cycle. Trigger reports false when one is
// already pending.
type Refresher interface {
	Trigger() bool
}

// WallpaperHandler serves the current wallpaper and its status.
type WallpaperHandler struct {
	status    StatusReader
	refresher Refresher
	imagePath string
}

// NewWallpaperHandler creates a wallpaper handler. imagePath is the fixed
// output file written by every cycle.
func NewWallpaperHandler(status StatusReader, refresher Refresher, imagePath string) *WallpaperHandler {
	return &WallpaperHandler{
		status:    status,
		refresher: refresher,
		imagePath: imagePath,
	}
}

// Status handles GET /api/v1/wallpaper.
func (h *WallpaperHandler) Status(c *gin.Context) {
	snap := h.status.Snapshot()

	resp := dto.StatusResponse{
		Running:   snap.Running,
		Cycles:    snap.Cycles,
		Failures:  snap.Failures,
		ImagePath: h.imagePath,
		Last:      dto.NewCycleView(snap.Last),
	}

	if !snap.NextRun.IsZero() {
		next := snap.NextRun
		resp.NextRun = &next
	}

	c.JSON(http.StatusOK, resp)
}

// Image handles GET /api/v1/wallpaper/image by streaming the last written
// PNG. It responds 404 before the first successful save.
func (h *WallpaperHandler) Image(c *gin.Context) {
	info, err := os.Stat(h.imagePath)
	if err != nil || info.IsDir() {
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			logging.FromContext(c.Request.Context()).Warn("wallpaper stat failed", "error", err.Error())
		}

		dto.HandleError(c, domain.NewNotFoundError("wallpaper", h.imagePath))
		return
	}

	c.Header("Cache-Control", "no-store")
	c.File(h.imagePath)
}

// Refresh handles POST /api/v1/wallpaper/refresh. The cycle runs on the
// runner goroutine; the request returns immediately.
func (h *WallpaperHandler) Refresh(c *gin.Context) {
	accepted := h.refresher.Trigger()

	logging.FromContext(c.Request.Context()).Info("refresh requested", "accepted", accepted)

	c.JSON(http.StatusAccepted, dto.RefreshResponse{Accepted: accepted})
}

// RegisterRoutes registers the wallpaper routes on rg.
func (h *WallpaperHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/wallpaper", h.Status)
	rg.GET("/wallpaper/image", h.Image)
	rg.POST("/wallpaper/refresh", h.Refresh)
}
