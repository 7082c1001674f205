package compositor

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Wrap breaks text into lines of at most width characters.
//
// Wrapping counts runes, not pixels. Each explicit line of the input is
// wrapped on its own, so blank separator lines are kept. Runs of whitespace
// inside a line collapse to single spaces and words longer than width are
// split across lines. A non-positive width returns the text unchanged.
func Wrap(text string, width int) string {
	if width <= 0 {
		return text
	}

	text = norm.NFC.String(strings.ReplaceAll(text, "\r\n", "\n"))

	var out []string
	for _, line := range strings.Split(text, "\n") {
		out = append(out, wrapLine(line, width)...)
	}

	return strings.Join(out, "\n")
}

// wrapLine greedily fills lines with whole words. A word that cannot fit on
// any line is split, its head filling what is left of the current line.
func wrapLine(line string, width int) []string {
	words := strings.Fields(line)
	if len(words) == 0 {
		return []string{""}
	}

	var (
		lines []string
		cur   []rune
	)

	for _, w := range words {
		word := []rune(w)

		switch {
		case len(cur) == 0 && len(word) <= width:
			cur = append(cur, word...)

		case len(cur) > 0 && len(cur)+1+len(word) <= width:
			cur = append(cur, ' ')
			cur = append(cur, word...)

		case len(word) <= width:
			lines = append(lines, string(cur))
			cur = append([]rune(nil), word...)

		default:
			if len(cur) > 0 {
				if room := width - len(cur) - 1; room > 0 {
					cur = append(cur, ' ')
					cur = append(cur, word[:room]...)
					word = word[room:]
				}

				lines = append(lines, string(cur))
			}

			for len(word) > width {
				lines = append(lines, string(word[:width]))
				word = word[width:]
			}

			cur = append([]rune(nil), word...)
		}
	}

	if len(cur) > 0 {
		lines = append(lines, string(cur))
	}

	return lines
}
