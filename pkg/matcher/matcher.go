// Package matcher selects the lines of a text that contain a query.
package matcher

import (
	"strings"

	"github.com/Veraticus/minigrep/pkg/fold"
	"github.com/Veraticus/minigrep/pkg/types"
)

// LineMatcher finds matching lines using a fixed case mode
type LineMatcher struct {
	caseSensitive bool
}

// NewMatcher creates a new line matcher
func NewMatcher(caseSensitive bool) *LineMatcher {
	return &LineMatcher{
		caseSensitive: caseSensitive,
	}
}

// Match returns every line of text that contains query
func (m *LineMatcher) Match(query, text string) []types.Line {
	return FindMatchingLines(query, text, m.caseSensitive)
}

// CaseSensitive reports the configured case mode
func (m *LineMatcher) CaseSensitive() bool {
	return m.caseSensitive
}

// FindMatchingLines returns the lines of text containing query, in source
// order. In case-insensitive mode the comparison is done on folded copies but
// the returned lines carry the original text. An empty query matches every
// line.
func FindMatchingLines(query, text string, caseSensitive bool) []types.Line {
	lines := SplitLines(text)

	contains := func(line string) bool {
		return strings.Contains(line, query)
	}
	if !caseSensitive {
		folded := fold.String(query)
		contains = func(line string) bool {
			return strings.Contains(fold.String(line), folded)
		}
	}

	var results []types.Line
	for _, line := range lines {
		if contains(line.Text) {
			results = append(results, line)
		}
	}
	return results
}

// SplitLines splits text on "\n", "\r\n" and lone "\r". A final line without
// a terminator is still a line; a trailing terminator does not start a new
// empty one.
func SplitLines(text string) []types.Line {
	var lines []types.Line
	start := 0

	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\n':
			lines = append(lines, newLine(text, len(lines)+1, start, i))
			start = i + 1
		case '\r':
			lines = append(lines, newLine(text, len(lines)+1, start, i))
			if i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
			start = i + 1
		}
	}

	if start < len(text) {
		lines = append(lines, newLine(text, len(lines)+1, start, len(text)))
	}
	return lines
}

func newLine(text string, number, start, end int) types.Line {
	return types.Line{
		Number: number,
		Start:  start,
		End:    end,
		Text:   text[start:end],
	}
}
