package output

import (
	"io"
	"strconv"
	"strings"

	"github.com/Veraticus/minigrep/pkg/interfaces"
	"github.com/Veraticus/minigrep/pkg/types"
)

// Printer writes rendered lines, one per call, each followed by a newline
type Printer struct {
	writer      io.Writer
	styler      interfaces.Styler
	lineNumbers bool
}

// NewPrinter creates a new printer. A nil styler prints plain text.
func NewPrinter(w io.Writer, styler interfaces.Styler, lineNumbers bool) *Printer {
	if styler == nil {
		styler = PlainStyler{}
	}
	return &Printer{
		writer:      w,
		styler:      styler,
		lineNumbers: lineNumbers,
	}
}

// PrintLine writes segments with matched ones emphasized
func (p *Printer) PrintLine(line types.Line, segments []types.Segment) error {
	var b strings.Builder
	b.Grow(len(line.Text) + 16)

	if p.lineNumbers {
		b.WriteString(strconv.Itoa(line.Number))
		b.WriteByte(':')
	}
	for _, s := range segments {
		if s.Matched {
			b.WriteString(p.styler.Emphasize(s.Text))
		} else {
			b.WriteString(s.Text)
		}
	}
	b.WriteByte('\n')

	_, err := io.WriteString(p.writer, b.String())
	return err
}
