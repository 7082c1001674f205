package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

var (
	jwtPattern    = regexp.MustCompile(`^eyJ[A-Za-z0-9_-]*\.eyJ[A-Za-z0-9_-]*\.[A-Za-z0-9_-]*$`)
	bearerPattern = regexp.MustCompile(`(?i)^bearer\s+.+$`)

	// Unsplash sends keys as "Client-ID <key>" in the Authorization header.
	clientIDPattern = regexp.MustCompile(`(?i)^client-id\s+.+$`)
)

// DefaultRedactOptions lists the fields and value shapes that never reach
// a log sink in clear text.
func DefaultRedactOptions() []masq.Option {
	return []masq.Option{
		masq.WithFieldName("password"),
		masq.WithFieldName("secret"),
		masq.WithFieldName("token"),
		masq.WithFieldName("apiKey"),
		masq.WithFieldName("api_key"),
		masq.WithFieldName("accessKey"),
		masq.WithFieldName("access_key"),
		masq.WithFieldName("AccessKey"),
		masq.WithFieldName("client_id"),
		masq.WithFieldName("clientID"),
		masq.WithFieldName("authorization"),
		masq.WithFieldName("Authorization"),
		masq.WithFieldName("cookie"),

		masq.WithFieldPrefix("secret"),
		masq.WithFieldPrefix("private"),

		masq.WithRegex(jwtPattern),
		masq.WithRegex(bearerPattern),
		masq.WithRegex(clientIDPattern),
	}
}

// NewReplaceAttr returns a slog ReplaceAttr func that redacts secrets.
// Extra masq options extend the defaults.
func NewReplaceAttr(opts ...masq.Option) func(groups []string, a slog.Attr) slog.Attr {
	return masq.New(append(DefaultRedactOptions(), opts...)...)
}
