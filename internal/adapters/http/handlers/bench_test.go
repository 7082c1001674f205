package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/jsamuelsen/quotewall/internal/app"
	"github.com/jsamuelsen/quotewall/internal/ports"
)

func createGinContext(w http.ResponseWriter, r *http.Request) *gin.Context {
	c, _ := gin.CreateTestContext(w)
	c.Request = r
	return c
}

func BenchmarkLivenessHandler(b *testing.B) {
	handler := NewHealthHandler(ports.NewHealthRegistry(time.Second), BuildInfo{}, prometheus.NewRegistry())
	req := httptest.NewRequest(http.MethodGet, "/-/live", http.NoBody)

	b.ReportAllocs()

	for b.Loop() {
		handler.Liveness(createGinContext(httptest.NewRecorder(), req))
	}
}

// BenchmarkReadinessHandler includes running the registered checks.
func BenchmarkReadinessHandler(b *testing.B) {
	registry := ports.NewHealthRegistry(time.Second)
	_ = registry.Register(ports.CheckerFunc{CheckName: "zenquotes", Fn: func(context.Context) error { return nil }})

	handler := NewHealthHandler(registry, BuildInfo{}, prometheus.NewRegistry())
	req := httptest.NewRequest(http.MethodGet, "/-/ready", http.NoBody)

	b.ReportAllocs()

	for b.Loop() {
		handler.Readiness(createGinContext(httptest.NewRecorder(), req))
	}
}

func BenchmarkWallpaperStatus(b *testing.B) {
	handler := NewWallpaperHandler(app.NewStatus(), &stubRefresher{}, "/tmp/wallpaper.png")
	req := httptest.NewRequest(http.MethodGet, "/api/v1/wallpaper", http.NoBody)

	b.ReportAllocs()

	for b.Loop() {
		handler.Status(createGinContext(httptest.NewRecorder(), req))
	}
}
