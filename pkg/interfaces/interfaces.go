// Package interfaces defines the core interfaces used throughout the application.
package interfaces

import "github.com/Veraticus/minigrep/pkg/types"

// LineMatcher selects the lines of a text that contain a query.
type LineMatcher interface {
	Match(query, text string) []types.Line
}

// LineRenderer splits a matched line into matched and unmatched segments.
type LineRenderer interface {
	Render(line, query string) []types.Segment
}

// Styler decorates matched text for display.
type Styler interface {
	Emphasize(text string) string
}

// LinePrinter writes a rendered line.
type LinePrinter interface {
	PrintLine(line types.Line, segments []types.Segment) error
}
