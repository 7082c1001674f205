package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotewall/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quotewall/internal/adapters/http/middleware"
	"github.com/jsamuelsen/quotewall/internal/platform/telemetry"
)

// RouterConfig contains configuration for setting up the router.
type RouterConfig struct {
	Logger *slog.Logger

	// ServiceName names the server in trace spans.
	ServiceName string

	HealthHandler    *handlers.HealthHandler
	WallpaperHandler *handlers.WallpaperHandler
}

// SetupRouter configures middleware and routes on the engine.
// Middleware order:
//  1. Recovery
//  2. Request ID
//  3. OpenTelemetry tracing and HTTP metrics
//  4. Logging (skips /-/ probes)
//
// Routes:
//   - /-/        probes, build info and Prometheus metrics
//   - /api/v1/   wallpaper status, image and refresh
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	engine.HandleMethodNotAllowed = true

	engine.Use(
		middleware.Recovery(cfg.Logger),
		middleware.RequestID(),
		telemetry.TracingMiddleware(cfg.ServiceName),
		telemetry.Middleware(),
		middleware.Logging(cfg.Logger),
	)

	engine.NoRoute(noRoute)
	engine.NoMethod(noMethod)

	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterHealthRoutesOnEngine(engine)
	}

	if cfg.WallpaperHandler != nil {
		cfg.WallpaperHandler.RegisterRoutes(engine.Group("/api/v1"))
	}
}
