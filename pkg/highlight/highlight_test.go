package highlight

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Veraticus/minigrep/pkg/fold"
	"github.com/Veraticus/minigrep/pkg/interfaces"
	"github.com/Veraticus/minigrep/pkg/types"
)

func TestSpans(t *testing.T) {
	tests := []struct {
		name          string
		line          string
		query         string
		caseSensitive bool
		expected      []types.MatchSpan
	}{
		{
			name:          "single occurrence",
			line:          "safe, fast, productive.",
			query:         "duct",
			caseSensitive: true,
			expected:      []types.MatchSpan{{Start: 15, End: 19}},
		},
		{
			name:          "multiple occurrences",
			line:          "Duct tape.",
			query:         "t",
			caseSensitive: true,
			expected:      []types.MatchSpan{{Start: 3, End: 4}, {Start: 5, End: 6}},
		},
		{
			name:          "resume after match end",
			line:          "aaaa",
			query:         "aa",
			caseSensitive: true,
			expected:      []types.MatchSpan{{Start: 0, End: 2}, {Start: 2, End: 4}},
		},
		{
			name:          "overlapping candidates skipped",
			line:          "aaa",
			query:         "aa",
			caseSensitive: true,
			expected:      []types.MatchSpan{{Start: 0, End: 2}},
		},
		{
			name:          "case sensitive misses other case",
			line:          "Duct tape.",
			query:         "duct",
			caseSensitive: true,
			expected:      nil,
		},
		{
			name:          "case insensitive",
			line:          "Trust me, RUST is rusty",
			query:         "rUsT",
			caseSensitive: false,
			expected:      []types.MatchSpan{{Start: 1, End: 5}, {Start: 10, End: 14}, {Start: 18, End: 22}},
		},
		{
			name:          "empty query",
			line:          "anything",
			query:         "",
			caseSensitive: true,
			expected:      nil,
		},
		{
			name:          "empty query insensitive",
			line:          "anything",
			query:         "",
			caseSensitive: false,
			expected:      nil,
		},
		{
			name:          "empty line",
			line:          "",
			query:         "x",
			caseSensitive: false,
			expected:      nil,
		},
		{
			name:          "match at end",
			line:          "end",
			query:         "nd",
			caseSensitive: true,
			expected:      []types.MatchSpan{{Start: 1, End: 3}},
		},
		{
			name:          "multibyte insensitive",
			line:          "L'ÉCOLE et l'école",
			query:         "école",
			caseSensitive: false,
			expected:      []types.MatchSpan{{Start: 2, End: 8}, {Start: 14, End: 20}},
		},
		{
			name:          "fold changes byte length",
			line:          "5 K or 5 k",
			query:         "K",
			caseSensitive: false,
			expected:      []types.MatchSpan{{Start: 2, End: 5}, {Start: 11, End: 12}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Spans(tt.line, tt.query, tt.caseSensitive)
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("Spans() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRender(t *testing.T) {
	tests := []struct {
		name          string
		line          string
		query         string
		caseSensitive bool
		expected      []types.Segment
	}{
		{
			name:          "every occurrence highlighted",
			line:          "Duct tape.",
			query:         "t",
			caseSensitive: true,
			expected: []types.Segment{
				{Text: "Duc"},
				{Text: "t", Matched: true},
				{Text: " "},
				{Text: "t", Matched: true},
				{Text: "ape."},
			},
		},
		{
			name:          "original casing echoed",
			line:          "Rust: trust",
			query:         "RUST",
			caseSensitive: false,
			expected: []types.Segment{
				{Text: "Rust", Matched: true},
				{Text: ": t"},
				{Text: "rust", Matched: true},
			},
		},
		{
			name:          "whole line matched",
			line:          "abc",
			query:         "abc",
			caseSensitive: true,
			expected:      []types.Segment{{Text: "abc", Matched: true}},
		},
		{
			name:          "adjacent matches",
			line:          "abab",
			query:         "ab",
			caseSensitive: true,
			expected: []types.Segment{
				{Text: "ab", Matched: true},
				{Text: "ab", Matched: true},
			},
		},
		{
			name:          "empty query is one unmatched segment",
			line:          "Duct tape.",
			query:         "",
			caseSensitive: true,
			expected:      []types.Segment{{Text: "Duct tape."}},
		},
		{
			name:          "no match",
			line:          "Pick three.",
			query:         "duct",
			caseSensitive: true,
			expected:      []types.Segment{{Text: "Pick three."}},
		},
		{
			name:          "empty line",
			line:          "",
			query:         "",
			caseSensitive: false,
			expected:      []types.Segment{{Text: ""}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Render(tt.line, tt.query, tt.caseSensitive)
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("Render() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRender_RoundTrip(t *testing.T) {
	lines := []string{
		"",
		"Rust:",
		"safe, fast, productive.",
		"Duct tape.",
		"aaaaaaa",
		"L'ÉCOLE et l'école",
		"tabs\tand\tspaces  ",
		"K kelvin K",
		"bad \xff bytes \xfe",
	}
	queries := []string{"t", "T", "aa", "a", "école", "\t", "k", " ", "xyz", "\xff"}

	for _, line := range lines {
		for _, query := range queries {
			for _, caseSensitive := range []bool{true, false} {
				segments := Render(line, query, caseSensitive)
				if got := Join(segments); got != line {
					t.Errorf("Render(%q, %q, %v) joined to %q", line, query, caseSensitive, got)
				}

				for i, s := range segments {
					if s.Text == "" && line != "" {
						t.Errorf("Render(%q, %q, %v): empty segment at %d", line, query, caseSensitive, i)
					}
					if i > 0 && !s.Matched && !segments[i-1].Matched {
						t.Errorf("Render(%q, %q, %v): consecutive unmatched segments at %d", line, query, caseSensitive, i)
					}
					if !s.Matched {
						continue
					}
					if caseSensitive && s.Text != query {
						t.Errorf("matched segment %q does not equal query %q", s.Text, query)
					}
					if !caseSensitive && fold.String(s.Text) != fold.String(query) {
						t.Errorf("matched segment %q does not fold to query %q", s.Text, query)
					}
				}
			}
		}
	}
}

func TestRender_MatchedCountEqualsOccurrences(t *testing.T) {
	line := "the theme of the thesis"
	segments := Render(line, "the", true)

	matched := 0
	for _, s := range segments {
		if s.Matched {
			matched++
		}
	}
	if expected := strings.Count(line, "the"); matched != expected {
		t.Errorf("expected %d matched segments but got %d", expected, matched)
	}
}

func TestHighlighter(t *testing.T) {
	h := NewHighlighter(false)

	// Verify it implements the LineRenderer interface
	var _ interfaces.LineRenderer = h

	got := h.Render("Trust me.", "rUsT")
	expected := []types.Segment{
		{Text: "T"},
		{Text: "rust", Matched: true},
		{Text: " me."},
	}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("Render() mismatch (-want +got):\n%s", diff)
	}
}
