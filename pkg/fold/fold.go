// Package fold builds case-folded views of text for case-insensitive comparison.
//
// Folding may change the byte length of a string (for example the Kelvin sign
// U+212A folds to the single byte "k"), so a Folded value remembers which
// original rune every folded byte came from. Offsets found in the folded text
// can then be mapped back onto the original bytes.
package fold

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

// Unicode case folding; the Caser returned by cases.Fold is stateless.
var folder = cases.Fold()

// Folded is the folded form of a string plus the mapping back to it
type Folded struct {
	Text string

	// For every byte of Text, the byte range of the original rune that
	// produced it.
	starts []int
	ends   []int
	origin int
}

// String returns the folded form of s
func String(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		b.WriteString(foldRune(s[i:i+size], r, size))
		i += size
	}
	return b.String()
}

// New folds s and records the offset mapping
func New(s string) Folded {
	var b strings.Builder
	b.Grow(len(s))
	f := Folded{
		starts: make([]int, 0, len(s)),
		ends:   make([]int, 0, len(s)),
		origin: len(s),
	}

	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		folded := foldRune(s[i:i+size], r, size)
		b.WriteString(folded)
		for j := 0; j < len(folded); j++ {
			f.starts = append(f.starts, i)
			f.ends = append(f.ends, i+size)
		}
		i += size
	}

	f.Text = b.String()
	return f
}

// Original maps the folded range [start, end) onto the original text.
// A range that begins or ends inside the expansion of one original rune is
// widened to cover that whole rune.
func (f Folded) Original(start, end int) (int, int) {
	if start >= len(f.starts) {
		return f.origin, f.origin
	}
	origStart := f.starts[start]
	if end <= start {
		return origStart, origStart
	}
	if end > len(f.ends) {
		end = len(f.ends)
	}
	return origStart, f.ends[end-1]
}

// Position returns the first folded offset produced at or after the original
// offset orig.
func (f Folded) Position(orig int) int {
	// starts is non-decreasing
	lo, hi := 0, len(f.starts)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if f.starts[mid] < orig {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

func foldRune(raw string, r rune, size int) string {
	if r < utf8.RuneSelf {
		c := raw[0]
		if 'A' <= c && c <= 'Z' {
			return string(rune(c + 'a' - 'A'))
		}
		return raw
	}
	// Invalid encodings are compared byte for byte.
	if r == utf8.RuneError && size == 1 {
		return raw
	}
	return folder.String(raw)
}
