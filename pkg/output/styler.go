// Package output turns rendered segments into text on a writer.
package output

import (
	"fmt"
	"io"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/Veraticus/minigrep/pkg/interfaces"
)

// DefaultMatchColor is the color used for matches unless configured otherwise
const DefaultMatchColor = "dark-green"

// Color names map onto the 16 basic ANSI colors.
var ansiColorMap = map[string]string{
	"dark-red": "1",
	"red":      "9",

	"dark-green": "2",
	"green":      "10",

	"dark-yellow": "3",
	"yellow":      "11",

	"dark-blue": "4",
	"blue":      "12",

	"dark-magenta": "5",
	"magenta":      "13",

	"dark-cyan": "6",
	"cyan":      "14",

	"white": "15",
}

// IsKnownColor reports whether name can be used as a match color.
// "none" keeps the text color and relies on bold alone.
func IsKnownColor(name string) bool {
	if name == "none" {
		return true
	}
	_, ok := ansiColorMap[name]
	return ok
}

// ColorNames returns the supported color names, sorted
func ColorNames() []string {
	names := make([]string, 0, len(ansiColorMap)+1)
	for name := range ansiColorMap {
		names = append(names, name)
	}
	names = append(names, "none")
	sort.Strings(names)
	return names
}

// PlainStyler leaves text untouched
type PlainStyler struct{}

// Emphasize returns text unchanged
func (PlainStyler) Emphasize(text string) string {
	return text
}

// LipglossStyler wraps matches in ANSI color and bold sequences
type LipglossStyler struct {
	style lipgloss.Style
}

// NewLipglossStyler creates a styler rendering for w
func NewLipglossStyler(w io.Writer, color string, bold bool) (*LipglossStyler, error) {
	renderer := lipgloss.NewRenderer(w)
	renderer.SetColorProfile(termenv.ANSI)

	// Tabs inside a match must reach the terminal as tabs.
	style := renderer.NewStyle().
		Bold(bold).
		TabWidth(lipgloss.NoTabConversion)

	if color != "" && color != "none" {
		code, ok := ansiColorMap[color]
		if !ok {
			return nil, fmt.Errorf("unsupported color: %s", color)
		}
		style = style.Foreground(lipgloss.Color(code))
	}

	return &LipglossStyler{style: style}, nil
}

// Emphasize renders text with the match style
func (s *LipglossStyler) Emphasize(text string) string {
	if text == "" {
		return text
	}
	return s.style.Render(text)
}

// NewStyler picks the styler for w: lipgloss when color is enabled for w,
// plain text otherwise. The color name is validated either way.
func NewStyler(w io.Writer, mode ColorMode, color string, bold bool) (interfaces.Styler, error) {
	if color != "" && !IsKnownColor(color) {
		return nil, fmt.Errorf("unsupported color: %s", color)
	}
	if !mode.Enabled(w) {
		return PlainStyler{}, nil
	}
	return NewLipglossStyler(w, color, bold)
}
