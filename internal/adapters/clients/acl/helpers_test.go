package acl

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quotewall/internal/adapters/clients"
	"github.com/jsamuelsen/quotewall/internal/platform/config"
)

// newTestClient starts handler on an httptest server and returns a client
// pointed at it.
func newTestClient(t *testing.T, name string, handler http.Handler) (*clients.Client, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := clients.New(&clients.Config{
		ServiceName: name,
		BaseURL:     server.URL,
		Timeout:     5 * time.Second,
		Circuit: config.CircuitBreakerConfig{
			MaxFailures:   10,
			Timeout:       30 * time.Second,
			HalfOpenLimit: 1,
		},
	})
	require.NoError(t, err)

	return client, server
}
