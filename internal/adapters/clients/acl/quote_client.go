package acl

import (
	"context"
	"log/slog"
	"strings"

	"github.com/jsamuelsen/quotewall/internal/adapters/clients"
	"github.com/jsamuelsen/quotewall/internal/domain"
	"github.com/jsamuelsen/quotewall/internal/platform/logging"
)

// DefaultQuotePath is the ZenQuotes random quote endpoint.
const DefaultQuotePath = "/api/random"

// zenQuotesRateLimitAuthor marks the placeholder ZenQuotes returns, with a
// 200 status, once the anonymous rate limit is hit.
const zenQuotesRateLimitAuthor = "zenquotes.io"

// QuoteClientConfig contains configuration for the quote client.
type QuoteClientConfig struct {
	// Client is the HTTP client; its BaseURL points at ZenQuotes.
	Client *clients.Client

	// Path is the random quote endpoint. Defaults to DefaultQuotePath.
	Path string

	Logger *slog.Logger
}

// QuoteClient implements ports.QuoteSource against the ZenQuotes API.
type QuoteClient struct {
	BaseAdapter

	path   string
	logger *slog.Logger
}

// NewQuoteClient creates a new quote client adapter.
// Panics if Client is nil.
func NewQuoteClient(cfg QuoteClientConfig) *QuoteClient {
	if cfg.Client == nil {
		panic("QuoteClient: Client is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	path := cfg.Path
	if path == "" {
		path = DefaultQuotePath
	}

	return &QuoteClient{
		BaseAdapter: NewBaseAdapter(cfg.Client, cfg.Client.ServiceName()),
		path:        path,
		logger:      logger,
	}
}

// zenQuote is one element of the ZenQuotes response array.
type zenQuote struct {
	Q string `json:"q"`
	A string `json:"a"`
	H string `json:"h,omitempty"`
}

// RandomQuote fetches one quote. Implements ports.QuoteSource.
func (c *QuoteClient) RandomQuote(ctx context.Context) (*domain.Quote, error) {
	c.logger.Log(ctx, logging.LevelTrace, "fetching random quote", slog.String("path", c.path))

	body, err := c.Get(ctx, c.path, nil, "get random quote")
	if err != nil {
		return nil, err
	}

	quotes, err := DecodeResponse[[]zenQuote](body)
	if err != nil {
		return nil, domain.NewUnavailableError(c.ServiceName(), err.Error())
	}

	if len(*quotes) == 0 {
		return nil, domain.NewUnavailableError(c.ServiceName(), "response contained no quotes")
	}

	return c.translate(&(*quotes)[0])
}

// translate validates the external quote and converts it to the domain type.
func (c *QuoteClient) translate(ext *zenQuote) (*domain.Quote, error) {
	q := &domain.Quote{
		Text:   strings.TrimSpace(ext.Q),
		Author: strings.TrimSpace(ext.A),
	}

	if q.IsEmpty() {
		return nil, domain.NewUnavailableError(c.ServiceName(), "response quote text is empty")
	}

	if strings.EqualFold(q.Author, zenQuotesRateLimitAuthor) {
		return nil, domain.NewUnavailableError(c.ServiceName(), "rate limit exceeded: "+q.Text)
	}

	return q, nil
}
