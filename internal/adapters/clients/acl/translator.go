package acl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/jsamuelsen/quotewall/internal/adapters/clients"
	"github.com/jsamuelsen/quotewall/internal/domain"
)

// BaseAdapter holds what every service adapter shares: the instrumented
// client and error mapping.
type BaseAdapter struct {
	client      *clients.Client
	serviceName string
}

// NewBaseAdapter creates a base adapter for the named service.
func NewBaseAdapter(client *clients.Client, serviceName string) BaseAdapter {
	return BaseAdapter{
		client:      client,
		serviceName: serviceName,
	}
}

// ServiceName returns the external service name.
func (a *BaseAdapter) ServiceName() string {
	return a.serviceName
}

// Name implements ports.HealthChecker.
func (a *BaseAdapter) Name() string {
	return a.serviceName
}

// Check implements ports.HealthChecker. It reports unhealthy while the
// service's circuit is open and never calls the service itself.
func (a *BaseAdapter) Check(context.Context) error {
	if err := a.client.CheckCircuit(); err != nil {
		return domain.NewUnavailableError(a.serviceName, err.Error())
	}

	return nil
}

// Get performs a GET relative to the service base URL. On success the body
// is returned for the caller to close; failures come back as domain errors.
func (a *BaseAdapter) Get(ctx context.Context, path string, query url.Values, operation string) (io.ReadCloser, error) {
	resp, err := a.client.Get(ctx, path, query)

	return a.result(resp, err, operation)
}

// GetURL performs a GET of an absolute URL.
func (a *BaseAdapter) GetURL(ctx context.Context, rawURL, operation string) (io.ReadCloser, error) {
	resp, err := a.client.GetURL(ctx, rawURL)

	return a.result(resp, err, operation)
}

func (a *BaseAdapter) result(resp *http.Response, err error, operation string) (io.ReadCloser, error) {
	if err != nil {
		return nil, MapHTTPError(nil, err, a.serviceName, operation)
	}

	if resp.StatusCode >= http.StatusMultipleChoices {
		defer func() { _ = resp.Body.Close() }()

		return nil, MapHTTPError(resp, nil, a.serviceName, operation)
	}

	return resp.Body, nil
}

// DecodeResponse decodes a JSON body into T and closes it.
func DecodeResponse[T any](body io.ReadCloser) (*T, error) {
	if body == nil {
		return nil, errors.New("response body is nil")
	}
	defer func() { _ = body.Close() }()

	var result T
	if err := json.NewDecoder(body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	return &result, nil
}

// ValidateRequired returns a domain.ValidationError when value is empty.
func ValidateRequired(value, fieldName string) error {
	if value == "" {
		return domain.NewValidationError(fieldName, "is required")
	}

	return nil
}
