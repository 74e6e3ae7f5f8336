package main

import (
	"bufio"
	"fmt"
	"io"
	"log"

	"github.com/Veraticus/minigrep/pkg/config"
	"github.com/Veraticus/minigrep/pkg/highlight"
	"github.com/Veraticus/minigrep/pkg/interfaces"
	"github.com/Veraticus/minigrep/pkg/logging"
	"github.com/Veraticus/minigrep/pkg/matcher"
	"github.com/Veraticus/minigrep/pkg/output"
	"github.com/Veraticus/minigrep/pkg/source"
	"github.com/Veraticus/minigrep/pkg/types"
)

// Dependencies holds all the dependencies for the application
type Dependencies struct {
	Config      *config.Config
	Logger      *log.Logger
	Matcher     interfaces.LineMatcher
	Highlighter interfaces.LineRenderer
	Styler      interfaces.Styler
	Printer     interfaces.LinePrinter
	Stdin       io.Reader

	out       *bufio.Writer
	logCloser io.Closer
}

// NewDependencies creates all dependencies for one search
func NewDependencies(cfg *config.Config, search types.Search, stdout io.Writer, stdin io.Reader, stderr io.Writer) (*Dependencies, error) {
	deps := &Dependencies{
		Config: cfg,
		Stdin:  stdin,
	}

	logConfig := logging.DefaultLogConfig(cfg.LogFile, cfg.Debug)
	logConfig.Stderr = stderr
	logger, closer, err := logging.Setup(logConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logging: %w", err)
	}
	deps.Logger = logger
	deps.logCloser = closer

	mode, err := output.ParseColorMode(cfg.Color)
	if err != nil {
		_ = closer.Close()
		return nil, err
	}

	// Terminal detection needs the real stdout, not the buffer in front of it
	styler, err := output.NewStyler(stdout, mode, cfg.MatchColor, cfg.Bold)
	if err != nil {
		_ = closer.Close()
		return nil, err
	}
	deps.Styler = styler

	deps.out = bufio.NewWriter(stdout)
	deps.Printer = output.NewPrinter(deps.out, styler, cfg.LineNumbers)
	deps.Matcher = matcher.NewMatcher(search.CaseSensitive)
	deps.Highlighter = highlight.NewHighlighter(search.CaseSensitive)

	logger.Printf("color=%s match_color=%s bold=%v styler=%T", mode, cfg.MatchColor, cfg.Bold, styler)

	return deps, nil
}

// Flush writes any buffered output
func (d *Dependencies) Flush() error {
	if d.out == nil {
		return nil
	}
	return d.out.Flush()
}

// Close cleans up all dependencies
func (d *Dependencies) Close() {
	_ = d.Flush() // Best effort

	if d.logCloser != nil {
		_ = d.logCloser.Close()
		d.logCloser = nil
	}
}

// Application represents the main application
type Application struct {
	deps *Dependencies
}

// NewApplication creates a new application with the given dependencies
func NewApplication(deps *Dependencies) *Application {
	return &Application{
		deps: deps,
	}
}

// Run reads the source once, then prints every matching line with its
// matches highlighted. Finding nothing is not an error.
func (a *Application) Run(search types.Search) error {
	logger := a.deps.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	logger.Printf("searching %s for %q (case-sensitive=%v)", search.Source, search.Query, search.CaseSensitive)

	text, err := source.Read(search.Source, a.deps.Stdin)
	if err != nil {
		return err
	}
	logger.Printf("read %d bytes", len(text))

	lines := a.deps.Matcher.Match(search.Query, text)
	for _, line := range lines {
		segments := a.deps.Highlighter.Render(line.Text, search.Query)
		if err := a.deps.Printer.PrintLine(line, segments); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}

	if err := a.deps.Flush(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	logger.Printf("found %d matching lines", len(lines))
	return nil
}
