package testutil

import (
	"os"
	"testing"

	"github.com/creack/pty"
)

// OpenTerminal opens a pseudo-terminal and returns its slave end, which
// reports as a terminal to isatty checks. The test is skipped on systems
// without pty support. Both ends are closed when the test finishes.
func OpenTerminal(t *testing.T) *os.File {
	t.Helper()

	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("pty not available: %v", err)
	}
	t.Cleanup(func() {
		_ = tty.Close()
		_ = ptmx.Close()
	})
	return tty
}
