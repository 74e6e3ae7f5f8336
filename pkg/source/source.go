// Package source resolves and reads the text to search.
package source

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/Veraticus/minigrep/pkg/types"
)

// ErrSourceNotFound is returned when the named file does not exist and there
// is no piped input to fall back to
var ErrSourceNotFound = errors.New("source not found")

// ErrNoStdin is returned when standard input is selected but unavailable
var ErrNoStdin = errors.New("standard input not available")

// Resolve decides where to read from:
//   - no path: standard input
//   - an existing path: that file
//   - a missing path with piped standard input: standard input
//   - a missing path otherwise: ErrSourceNotFound
func Resolve(path string, stdinPiped bool) (types.Source, error) {
	if path == "" {
		return types.Source{Kind: types.SourceStdin}, nil
	}

	info, err := os.Stat(path)
	if err == nil {
		if info.IsDir() {
			return types.Source{}, fmt.Errorf("%s is a directory", path)
		}
		return types.Source{Kind: types.SourceFile, Path: path}, nil
	}

	if errors.Is(err, fs.ErrNotExist) {
		if stdinPiped {
			return types.Source{Kind: types.SourceStdin}, nil
		}
		return types.Source{}, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
	}

	return types.Source{}, fmt.Errorf("failed to stat %s: %w", path, err)
}

// Read loads the whole source into memory
func Read(src types.Source, stdin io.Reader) (string, error) {
	switch src.Kind {
	case types.SourceFile:
		// #nosec G304 - reading the user-named file is the point of the tool
		data, err := os.ReadFile(src.Path)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", src.Path, err)
		}
		return string(data), nil
	case types.SourceStdin:
		if stdin == nil {
			return "", ErrNoStdin
		}
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read standard input: %w", err)
		}
		return string(data), nil
	default:
		return "", fmt.Errorf("unknown source kind %d", src.Kind)
	}
}

// StdinPiped returns true if f is open and not a terminal, meaning input was
// piped or redirected into the program
func StdinPiped(f *os.File) bool {
	if f == nil {
		return false
	}
	fd := f.Fd()
	return !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd)
}
