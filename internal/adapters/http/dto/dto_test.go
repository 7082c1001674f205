package dto

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quotewall/internal/domain"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestFromError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{
			name:       "not found",
			err:        domain.NewNotFoundError("wallpaper", "current"),
			wantStatus: http.StatusNotFound,
			wantCode:   ErrorCodeNotFound,
			wantMsg:    `wallpaper with id "current" not found`,
		},
		{
			name:       "wrapped validation",
			err:        fmt.Errorf("refresh: %w", domain.NewValidationError("interval", "too short")),
			wantStatus: http.StatusBadRequest,
			wantCode:   ErrorCodeValidation,
		},
		{
			name:       "forbidden",
			err:        domain.NewForbiddenError("set wallpaper", "denied"),
			wantStatus: http.StatusForbidden,
			wantCode:   ErrorCodeForbidden,
		},
		{
			name:       "unavailable",
			err:        domain.NewUnavailableError("unsplash", "timeout"),
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   ErrorCodeUnavailable,
		},
		{
			name:       "unknown hides message",
			err:        errors.New("disk on fire"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   ErrorCodeInternal,
			wantMsg:    internalMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, resp := FromError(tt.err)

			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, resp.Error.Message)
			}
		})
	}
}

func TestHandleError_Aborts(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/wallpaper/image", nil)

	HandleError(c, domain.NewNotFoundError("wallpaper", "current"))

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"code":"NOT_FOUND"`)
	assert.NotContains(t, w.Body.String(), "traceId")
}

func TestAbort(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodDelete, "/api/v1/wallpaper", nil)

	Abort(c, ErrorCodeMethodNotAllowed, "method not allowed")

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.JSONEq(t, `{"error":{"code":"METHOD_NOT_ALLOWED","message":"method not allowed"}}`, w.Body.String())
}

func TestHTTPStatusFromCode_Unknown(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, HTTPStatusFromCode("SOMETHING_ELSE"))
}

func TestNewCycleView(t *testing.T) {
	assert.Nil(t, NewCycleView(nil))

	started := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	view := NewCycleView(&domain.CycleReport{
		CycleID:   "abc",
		Quote:     "Test quote",
		Author:    "Tester",
		Font:      "Go Regular",
		Applied:   true,
		StartedAt: started,
		Duration:  1500 * time.Millisecond,
	})

	require.NotNil(t, view)
	assert.Equal(t, "abc", view.ID)
	assert.Equal(t, int64(1500), view.DurationMS)
	assert.NotNil(t, view.Fallbacks, "fallbacks serialise as an empty list")
	assert.Empty(t, view.Fallbacks)
}
