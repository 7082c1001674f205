// Package domain contains core business entities and rules.
package domain

import "strings"

// Fallback attribution used when no quote could be fetched.
const (
	// FallbackQuoteText is shown when the quote source is unreachable.
	FallbackQuoteText = "No quote available"

	// FallbackQuoteAuthor is the attribution paired with FallbackQuoteText.
	FallbackQuoteAuthor = "ZenQuotes"
)

// Quote represents a quotation with its author.
// It is used for exactly one wallpaper and then discarded.
type Quote struct {
	// Text is the body of the quote.
	Text string

	// Author is who said or wrote the quote.
	Author string
}

// FallbackQuote returns the placeholder quote used when acquisition fails.
func FallbackQuote() *Quote {
	return &Quote{Text: FallbackQuoteText, Author: FallbackQuoteAuthor}
}

// IsEmpty reports whether the quote has no usable text.
func (q *Quote) IsEmpty() bool {
	return q == nil || strings.TrimSpace(q.Text) == ""
}

// Compose returns the text block drawn on the wallpaper: the quoted text,
// a blank line, then the attribution.
func (q *Quote) Compose() string {
	text := strings.TrimSpace(q.Text)

	author := strings.TrimSpace(q.Author)
	if author == "" {
		return `"` + text + `"`
	}

	return `"` + text + "\"\n\n-" + author
}
