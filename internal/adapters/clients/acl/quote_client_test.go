package acl

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quotewall/internal/domain"
)

func setupQuoteClient(t *testing.T, handler http.HandlerFunc) *QuoteClient {
	t.Helper()

	client, _ := newTestClient(t, "zenquotes", handler)

	return NewQuoteClient(QuoteClientConfig{
		Client: client,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func TestNewQuoteClient_PanicsWithoutClient(t *testing.T) {
	assert.Panics(t, func() {
		NewQuoteClient(QuoteClientConfig{})
	})
}

func TestQuoteClient_Name(t *testing.T) {
	c := setupQuoteClient(t, func(http.ResponseWriter, *http.Request) {})

	assert.Equal(t, "zenquotes", c.Name())
	assert.NoError(t, c.Check(context.Background()))
}

func TestRandomQuote_Success(t *testing.T) {
	var gotPath string

	c := setupQuoteClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `[{"q":"  The best way out is always through. ","a":"Robert Frost","h":"<blockquote/>"}]`)
	})

	q, err := c.RandomQuote(context.Background())

	require.NoError(t, err)
	assert.Equal(t, DefaultQuotePath, gotPath)
	assert.Equal(t, "The best way out is always through.", q.Text)
	assert.Equal(t, "Robert Frost", q.Author)
}

func TestRandomQuote_Failures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		check   func(error) bool
		message string
	}{
		{
			name:    "server error",
			status:  http.StatusInternalServerError,
			check:   domain.IsUnavailable,
			message: "get random quote failed with status 500",
		},
		{
			name:    "service unavailable",
			status:  http.StatusServiceUnavailable,
			check:   domain.IsUnavailable,
			message: "temporarily unavailable",
		},
		{
			name:    "rate limited status",
			status:  http.StatusTooManyRequests,
			check:   domain.IsUnavailable,
			message: "rate limit exceeded",
		},
		{
			name:    "malformed json",
			status:  http.StatusOK,
			body:    `{not json`,
			check:   domain.IsUnavailable,
			message: "decoding response",
		},
		{
			name:    "empty array",
			status:  http.StatusOK,
			body:    `[]`,
			check:   domain.IsUnavailable,
			message: "no quotes",
		},
		{
			name:    "blank quote text",
			status:  http.StatusOK,
			body:    `[{"q":"   ","a":"Nobody"}]`,
			check:   domain.IsUnavailable,
			message: "empty",
		},
		{
			name:    "rate limit placeholder",
			status:  http.StatusOK,
			body:    `[{"q":"Too many requests. Obtain an auth key for unlimited access.","a":"zenquotes.io"}]`,
			check:   domain.IsUnavailable,
			message: "rate limit exceeded",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := setupQuoteClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})

			q, err := c.RandomQuote(context.Background())

			require.Error(t, err)
			assert.Nil(t, q)
			assert.True(t, tt.check(err), "unexpected error kind: %v", err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestRandomQuote_CustomPath(t *testing.T) {
	var gotPath string

	client, _ := newTestClient(t, "zenquotes", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = io.WriteString(w, `[{"q":"Today","a":"Someone"}]`)
	}))

	c := NewQuoteClient(QuoteClientConfig{Client: client, Path: "/api/today"})

	_, err := c.RandomQuote(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "/api/today", gotPath)
}
