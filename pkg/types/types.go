// Package types contains shared data structures used across the application.
package types

// Line is a read-only view of one line of the source text.
// Text is always Source[Start:End]; the line terminator is not included.
type Line struct {
	Number int // 1-based
	Start  int
	End    int
	Text   string
}

// MatchSpan is a half-open byte range [Start, End) within a line
type MatchSpan struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the span
func (s MatchSpan) Len() int {
	return s.End - s.Start
}

// Segment is a contiguous piece of a rendered line
type Segment struct {
	Text    string
	Matched bool
}

// SourceKind says where the text to search comes from
type SourceKind int

const (
	SourceStdin SourceKind = iota
	SourceFile
)

// String returns a human readable name for the source kind
func (k SourceKind) String() string {
	switch k {
	case SourceStdin:
		return "stdin"
	case SourceFile:
		return "file"
	default:
		return "unknown"
	}
}

// Source identifies the text origin. Path is only set for SourceFile.
type Source struct {
	Kind SourceKind
	Path string
}

// String returns the path for files and "(standard input)" otherwise
func (s Source) String() string {
	if s.Kind == SourceFile {
		return s.Path
	}
	return "(standard input)"
}

// Search is the fully resolved request handed to the matcher and highlighter.
// It is built once at startup and never modified.
type Search struct {
	Query         string
	Source        Source
	CaseSensitive bool
}
