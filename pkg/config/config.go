package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Veraticus/minigrep/pkg/output"
)

// ErrMissingQuery is returned when no query argument was given
var ErrMissingQuery = errors.New("missing query")

// Config holds all configuration for minigrep
type Config struct {
	// Matching
	CaseInsensitive bool `yaml:"case_insensitive" env:"MINIGREP_CASE_INSENSITIVE"`

	// Output
	Color       string `yaml:"color" env:"MINIGREP_COLOR"`
	MatchColor  string `yaml:"match_color" env:"MINIGREP_MATCH_COLOR"`
	Bold        bool   `yaml:"bold"`
	LineNumbers bool   `yaml:"line_numbers" env:"MINIGREP_LINE_NUMBERS"`

	// Diagnostics
	LogFile string `yaml:"log_file" env:"MINIGREP_LOG_FILE"`
	Debug   bool   `yaml:"debug" env:"MINIGREP_DEBUG"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Color:      string(output.ColorAuto),
		MatchColor: output.DefaultMatchColor,
		Bold:       true,
	}
}

// Load loads configuration from file and environment.
// An explicit path must exist; the default locations are optional.
func Load(explicitPath string) (*Config, error) {
	cfg := DefaultConfig()

	if explicitPath != "" {
		if err := loadFromFile(cfg, explicitPath); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	} else if configPath := getConfigPath(); configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	// Override with environment variables
	if err := loadFromEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// getConfigPath returns the config file path
func getConfigPath() string {
	if path := os.Getenv("MINIGREP_CONFIG"); path != "" {
		return path
	}

	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "minigrep", "config.yaml")
	}

	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", "minigrep", "config.yaml")
	}

	return ""
}

// loadFromFile loads configuration from a YAML file
func loadFromFile(cfg *Config, path string) error {
	// #nosec G304 - The config file path comes from trusted sources (flag, env var or standard locations)
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return yaml.Unmarshal(data, cfg)
}

// loadFromEnv loads configuration from environment variables
func loadFromEnv(cfg *Config) error {
	// Any value, even an empty one, turns on case-insensitive matching.
	if _, ok := os.LookupEnv("CASE_INSENSITIVE"); ok {
		cfg.CaseInsensitive = true
	}

	if v := os.Getenv("MINIGREP_CASE_INSENSITIVE"); v != "" {
		b, err := parseBool("MINIGREP_CASE_INSENSITIVE", v)
		if err != nil {
			return err
		}
		cfg.CaseInsensitive = cfg.CaseInsensitive || b
	}

	// https://no-color.org
	if os.Getenv("NO_COLOR") != "" {
		cfg.Color = string(output.ColorNever)
	}

	if color := os.Getenv("MINIGREP_COLOR"); color != "" {
		cfg.Color = color
	}

	if matchColor := os.Getenv("MINIGREP_MATCH_COLOR"); matchColor != "" {
		cfg.MatchColor = matchColor
	}

	if v := os.Getenv("MINIGREP_LINE_NUMBERS"); v != "" {
		b, err := parseBool("MINIGREP_LINE_NUMBERS", v)
		if err != nil {
			return err
		}
		cfg.LineNumbers = b
	}

	if logFile := os.Getenv("MINIGREP_LOG_FILE"); logFile != "" {
		cfg.LogFile = logFile
	}

	if v := os.Getenv("MINIGREP_DEBUG"); v != "" {
		b, err := parseBool("MINIGREP_DEBUG", v)
		if err != nil {
			return err
		}
		cfg.Debug = b
	}

	return nil
}

func parseBool(name, value string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "1", "yes":
		return true, nil
	case "false", "0", "no":
		return false, nil
	default:
		return false, fmt.Errorf("invalid %s value: %q (use true/false)", name, value)
	}
}

// validate validates the configuration
func validate(cfg *Config) error {
	if _, err := output.ParseColorMode(cfg.Color); err != nil {
		return fmt.Errorf("color: %w", err)
	}

	if cfg.MatchColor != "" && !output.IsKnownColor(cfg.MatchColor) {
		return fmt.Errorf("match_color: unsupported color %q (use one of: %s)",
			cfg.MatchColor, strings.Join(output.ColorNames(), ", "))
	}

	return nil
}

// Validate checks a configuration after command-line overrides were applied
func (c *Config) Validate() error {
	return validate(c)
}
