package testutil

import (
	"errors"
	"sync"

	"github.com/Veraticus/minigrep/pkg/types"
)

// ErrWrite is returned by FailingWriter
var ErrWrite = errors.New("write failed")

// BracketStyler is a Styler that wraps emphasized text in square brackets,
// which keeps expected output readable in tests
type BracketStyler struct {
	mu    sync.Mutex
	calls []string
}

// NewBracketStyler creates a new bracket styler
func NewBracketStyler() *BracketStyler {
	return &BracketStyler{}
}

// Emphasize implements the Styler interface
func (s *BracketStyler) Emphasize(text string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, text)
	return "[" + text + "]"
}

// GetCalls returns a copy of every text passed to Emphasize
func (s *BracketStyler) GetCalls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]string, len(s.calls))
	copy(result, s.calls)
	return result
}

// PrintedLine is one call recorded by MockPrinter
type PrintedLine struct {
	Line     types.Line
	Segments []types.Segment
}

// MockPrinter records printed lines instead of writing them
type MockPrinter struct {
	mu      sync.Mutex
	lines   []PrintedLine
	err     error
	attempt int
}

// NewMockPrinter creates a new mock printer
func NewMockPrinter() *MockPrinter {
	return &MockPrinter{
		lines: []PrintedLine{},
	}
}

// PrintLine implements the LinePrinter interface
func (m *MockPrinter) PrintLine(line types.Line, segments []types.Segment) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.attempt++
	if m.err != nil {
		return m.err
	}
	m.lines = append(m.lines, PrintedLine{Line: line, Segments: segments})
	return nil
}

// GetLines returns a copy of successfully printed lines
func (m *MockPrinter) GetLines() []PrintedLine {
	m.mu.Lock()
	defer m.mu.Unlock()

	result := make([]PrintedLine, len(m.lines))
	copy(result, m.lines)
	return result
}

// GetAttempts returns how many times PrintLine was called
func (m *MockPrinter) GetAttempts() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.attempt
}

// SetError sets the error to return on PrintLine calls
func (m *MockPrinter) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// FailingWriter is an io.Writer whose writes always fail
type FailingWriter struct{}

// Write implements io.Writer
func (FailingWriter) Write(p []byte) (int, error) {
	return 0, ErrWrite
}
