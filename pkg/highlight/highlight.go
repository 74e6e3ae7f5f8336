// Package highlight locates query occurrences inside a line and partitions the
// line into matched and unmatched segments.
package highlight

import (
	"strings"

	"github.com/Veraticus/minigrep/pkg/fold"
	"github.com/Veraticus/minigrep/pkg/types"
)

// Highlighter renders lines using a fixed case mode
type Highlighter struct {
	caseSensitive bool
}

// NewHighlighter creates a new highlighter
func NewHighlighter(caseSensitive bool) *Highlighter {
	return &Highlighter{
		caseSensitive: caseSensitive,
	}
}

// Render partitions line into segments
func (h *Highlighter) Render(line, query string) []types.Segment {
	return Render(line, query, h.caseSensitive)
}

// Spans returns every non-overlapping occurrence of query in line, scanning
// left to right and resuming at the end of each match. Offsets always refer to
// the original line. An empty query has no occurrences.
func Spans(line, query string, caseSensitive bool) []types.MatchSpan {
	if query == "" {
		return nil
	}
	if caseSensitive {
		return scan(line, query)
	}

	folded := fold.New(line)
	needle := fold.String(query)
	if needle == "" {
		return nil
	}

	var spans []types.MatchSpan
	pos := 0
	for pos < len(folded.Text) {
		idx := strings.Index(folded.Text[pos:], needle)
		if idx < 0 {
			break
		}
		start, end := folded.Original(pos+idx, pos+idx+len(needle))
		spans = append(spans, types.MatchSpan{Start: start, End: end})
		pos = folded.Position(end)
	}
	return spans
}

func scan(line, query string) []types.MatchSpan {
	var spans []types.MatchSpan
	pos := 0
	for pos < len(line) {
		idx := strings.Index(line[pos:], query)
		if idx < 0 {
			break
		}
		start := pos + idx
		end := start + len(query)
		spans = append(spans, types.MatchSpan{Start: start, End: end})
		pos = end
	}
	return spans
}

// Render splits line into alternating unmatched and matched segments.
// Concatenating the segment texts gives back line. A line without matches,
// including every line for an empty query, is a single unmatched segment.
func Render(line, query string, caseSensitive bool) []types.Segment {
	spans := Spans(line, query, caseSensitive)
	if len(spans) == 0 {
		return []types.Segment{{Text: line}}
	}

	segments := make([]types.Segment, 0, len(spans)*2+1)
	cursor := 0
	for _, span := range spans {
		if span.Start > cursor {
			segments = append(segments, types.Segment{Text: line[cursor:span.Start]})
		}
		segments = append(segments, types.Segment{Text: line[span.Start:span.End], Matched: true})
		cursor = span.End
	}
	if cursor < len(line) {
		segments = append(segments, types.Segment{Text: line[cursor:]})
	}
	return segments
}

// Join concatenates segment texts
func Join(segments []types.Segment) string {
	var b strings.Builder
	for _, s := range segments {
		b.WriteString(s.Text)
	}
	return b.String()
}
