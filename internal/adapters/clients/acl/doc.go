// Package acl translates the quote and photo services' wire formats into
// domain types.
//
// Each adapter embeds [BaseAdapter], keeps its DTOs unexported and returns
// only domain values or domain errors. Callers never see an HTTP status or a
// JSON shape from ZenQuotes or Unsplash.
//
// # Adapters
//
//   - [QuoteClient]: ZenQuotes /api/random, returning a [domain.Quote]
//   - [PhotoClient]: Unsplash /photos/random plus the image download,
//     returning a background already scaled to the screen
//
// # Error Handling
//
// [MapHTTPError] turns transport failures and non-2xx responses into domain
// errors:
//   - 404 Not Found → [domain.ErrNotFound]
//   - 401/403 → [domain.ErrForbidden]
//   - 429, 5xx, timeouts, open circuit → [domain.ErrUnavailable]
//   - other 4xx → [domain.ErrValidation]
//
// The application layer treats every one of these as a reason to use its
// fallback quote or background; the distinction only matters for logs and
// the readiness report.
package acl
