package fold

import (
	"testing"
)

func TestString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "ascii", input: "Rust: Safe, FAST", expected: "rust: safe, fast"},
		{name: "already folded", input: "trust me.", expected: "trust me."},
		{name: "empty", input: "", expected: ""},
		{name: "latin accents", input: "ÉCOLE", expected: "école"},
		{name: "kelvin sign", input: "K", expected: "k"},
		{name: "invalid utf8 kept", input: "A\xffB", expected: "a\xffb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := String(tt.input)
			if got != tt.expected {
				t.Errorf("expected %q but got %q", tt.expected, got)
			}
		})
	}
}

func TestNew_MatchesString(t *testing.T) {
	inputs := []string{"", "Hello", "ÉCOLE Normale", "Kelvin", "x\xffy"}
	for _, in := range inputs {
		f := New(in)
		if f.Text != String(in) {
			t.Errorf("New(%q).Text = %q but String gave %q", in, f.Text, String(in))
		}
	}
}

func TestFolded_Original(t *testing.T) {
	// "K" is three bytes and folds to the single byte "k".
	line := "aKb"
	f := New(line)
	if f.Text != "akb" {
		t.Fatalf("expected folded text %q but got %q", "akb", f.Text)
	}

	tests := []struct {
		name               string
		start, end         int
		wantStart, wantEnd int
	}{
		{name: "first byte", start: 0, end: 1, wantStart: 0, wantEnd: 1},
		{name: "expanded rune", start: 1, end: 2, wantStart: 1, wantEnd: 4},
		{name: "after expanded rune", start: 2, end: 3, wantStart: 4, wantEnd: 5},
		{name: "whole line", start: 0, end: 3, wantStart: 0, wantEnd: 5},
		{name: "empty range", start: 1, end: 1, wantStart: 1, wantEnd: 1},
		{name: "past end", start: 3, end: 3, wantStart: 5, wantEnd: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := f.Original(tt.start, tt.end)
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("expected [%d,%d) but got [%d,%d)", tt.wantStart, tt.wantEnd, start, end)
			}
			if line[start:end] == "" && tt.wantEnd > tt.wantStart {
				t.Errorf("mapped range is empty")
			}
		})
	}
}

func TestFolded_Position(t *testing.T) {
	f := New("aKb")

	tests := []struct {
		orig     int
		expected int
	}{
		{orig: 0, expected: 0},
		{orig: 1, expected: 1},
		{orig: 4, expected: 2},
		{orig: 5, expected: 3},
	}

	for _, tt := range tests {
		if got := f.Position(tt.orig); got != tt.expected {
			t.Errorf("Position(%d): expected %d but got %d", tt.orig, tt.expected, got)
		}
	}
}
