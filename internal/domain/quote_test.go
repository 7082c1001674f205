package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFallbackQuote(t *testing.T) {
	q := FallbackQuote()

	assert.Equal(t, "No quote available", q.Text)
	assert.Equal(t, "ZenQuotes", q.Author)
	assert.False(t, q.IsEmpty())
}

func TestQuote_Compose(t *testing.T) {
	tests := []struct {
		name     string
		quote    Quote
		expected string
	}{
		{
			name:     "quote with author",
			quote:    Quote{Text: "Test quote", Author: "Tester"},
			expected: "\"Test quote\"\n\n-Tester",
		},
		{
			name:     "surrounding whitespace trimmed",
			quote:    Quote{Text: "  Stay hungry. ", Author: " Steve Jobs\n"},
			expected: "\"Stay hungry.\"\n\n-Steve Jobs",
		},
		{
			name:     "missing author",
			quote:    Quote{Text: "Anonymous words"},
			expected: `"Anonymous words"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.quote.Compose())
		})
	}
}

func TestQuote_IsEmpty(t *testing.T) {
	var nilQuote *Quote

	assert.True(t, nilQuote.IsEmpty())
	assert.True(t, (&Quote{Text: "   "}).IsEmpty())
	assert.False(t, (&Quote{Text: "x"}).IsEmpty())
}

func TestCycleReport_UsedFallback(t *testing.T) {
	r := &CycleReport{Fallbacks: []string{SourcePhoto}}

	assert.True(t, r.UsedFallback(SourcePhoto))
	assert.False(t, r.UsedFallback(SourceQuote))
}

func TestScreen_Valid(t *testing.T) {
	assert.True(t, Screen{Width: 1920, Height: 1080}.Valid())
	assert.False(t, Screen{Width: 0, Height: 1080}.Valid())
}
