package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Veraticus/minigrep/pkg/config"
	"github.com/Veraticus/minigrep/pkg/source"
	"github.com/Veraticus/minigrep/pkg/types"
	flag "github.com/spf13/pflag"
)

const (
	exitOK    = 0
	exitError = 1
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type options struct {
	configPath  string
	ignoreCase  bool
	lineNumbers bool
	color       string
	matchColor  string
	verbose     bool
	help        bool

	query    string
	hasQuery bool
	path     string
}

func newFlagSet(opts *options) *flag.FlagSet {
	fs := flag.NewFlagSet("minigrep", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&opts.configPath, "config", "", "Path to config file")
	fs.BoolVarP(&opts.ignoreCase, "ignore-case", "i", false, "Case-insensitive search")
	fs.BoolVarP(&opts.lineNumbers, "line-number", "n", false, "Prefix each match with its line number")
	fs.StringVar(&opts.color, "color", "", "Highlight matches: auto, always or never")
	fs.StringVar(&opts.matchColor, "color-match", "", "Color of highlighted matches (e.g. green, dark-red, none)")
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "Write debug output to stderr")
	fs.BoolVarP(&opts.help, "help", "h", false, "Show help message")
	return fs
}

// parseArgs parses flags and the QUERY [FILE] positionals. A third
// positional "i" is the legacy spelling of -i.
func parseArgs(args []string) (*options, *flag.FlagSet, error) {
	opts := &options{}
	fs := newFlagSet(opts)
	if err := fs.Parse(args); err != nil {
		return opts, fs, err
	}

	rest := fs.Args()
	if len(rest) == 3 && rest[2] == "i" {
		opts.ignoreCase = true
		rest = rest[:2]
	}
	if len(rest) > 2 {
		return opts, fs, fmt.Errorf("too many arguments: %s", strings.Join(rest[2:], " "))
	}
	if len(rest) >= 1 {
		opts.query = rest[0]
		opts.hasQuery = true
	}
	if len(rest) == 2 {
		opts.path = rest[1]
	}
	return opts, fs, nil
}

// applyFlags overrides configuration with command line flags.
// Flags can only turn case-insensitive matching on.
func applyFlags(cfg *config.Config, opts *options) {
	if opts.ignoreCase {
		cfg.CaseInsensitive = true
	}
	if opts.lineNumbers {
		cfg.LineNumbers = true
	}
	if opts.color != "" {
		cfg.Color = opts.color
	}
	if opts.matchColor != "" {
		cfg.MatchColor = opts.matchColor
	}
	if opts.verbose {
		cfg.Debug = true
	}
}

func run(args []string, stdin *os.File, stdout, stderr io.Writer) int {
	opts, fs, err := parseArgs(args)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n\n", err)
		printUsage(stderr, fs)
		return exitError
	}

	// Help wins over everything else, no search is run
	if opts.help {
		printUsage(stdout, fs)
		return exitOK
	}

	if !opts.hasQuery {
		fmt.Fprintf(stderr, "Error: %v\n\n", config.ErrMissingQuery)
		printUsage(stderr, fs)
		return exitError
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error loading config: %v\n", err)
		return exitError
	}
	applyFlags(cfg, opts)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}

	src, err := source.Resolve(opts.path, source.StdinPiped(stdin))
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}

	search := types.Search{
		Query:         opts.query,
		Source:        src,
		CaseSensitive: !cfg.CaseInsensitive,
	}

	var in io.Reader
	if stdin != nil {
		in = stdin
	}

	deps, err := NewDependencies(cfg, search, stdout, in, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error creating dependencies: %v\n", err)
		return exitError
	}
	defer deps.Close()

	app := NewApplication(deps)
	if err := app.Run(search); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}

	return exitOK
}

func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, "minigrep - print lines of a text that contain a query")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage: minigrep [OPTIONS] QUERY [FILE]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Reads standard input when FILE is omitted, or when FILE does not exist")
	fmt.Fprintln(w, "and input is piped in. Every occurrence of QUERY is highlighted.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fmt.Fprint(w, fs.FlagUsages())
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment Variables:")
	fmt.Fprintln(w, "  CASE_INSENSITIVE            Search case-insensitively when set")
	fmt.Fprintln(w, "  MINIGREP_CASE_INSENSITIVE   Search case-insensitively (true/false)")
	fmt.Fprintln(w, "  MINIGREP_COLOR              Highlight mode: auto, always or never")
	fmt.Fprintln(w, "  MINIGREP_MATCH_COLOR        Color of highlighted matches")
	fmt.Fprintln(w, "  MINIGREP_LINE_NUMBERS       Prefix matches with line numbers (true/false)")
	fmt.Fprintln(w, "  MINIGREP_LOG_FILE           Write debug log to this file")
	fmt.Fprintln(w, "  MINIGREP_DEBUG              Write debug output to stderr (true/false)")
	fmt.Fprintln(w, "  MINIGREP_CONFIG             Path to config file")
	fmt.Fprintln(w, "  NO_COLOR                    Disable highlighting")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Configuration file: ~/.config/minigrep/config.yaml")
}
