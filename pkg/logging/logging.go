// Package logging sets up the diagnostic logger. It is silent unless debug
// output or a log file is configured.
package logging

import (
	"io"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

const prefix = "minigrep: "

type LogConfig struct {
	LogFile    string // Log file path, empty to disable
	MaxSize    int    // Max size in megabytes
	MaxBackups int    // Max number of backups
	MaxAge     int    // Max age in days
	Compress   bool   // Compress backups

	Debug  bool      // Also write to Stderr
	Stderr io.Writer // Defaults to os.Stderr
}

func DefaultLogConfig(logFile string, debug bool) LogConfig {
	return LogConfig{
		LogFile:    logFile,
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     30,
		Compress:   true,
		Debug:      debug,
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Setup builds the logger. The returned closer releases the log file.
func Setup(config LogConfig) (*log.Logger, io.Closer, error) {
	var writers []io.Writer
	var closer io.Closer = nopCloser{}

	if config.Debug {
		stderr := config.Stderr
		if stderr == nil {
			stderr = os.Stderr
		}
		writers = append(writers, stderr)
	}

	if config.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(config.LogFile), 0o755); err != nil {
			return nil, nil, err
		}

		rotating := &lumberjack.Logger{
			Filename:   config.LogFile,
			MaxSize:    config.MaxSize,
			MaxBackups: config.MaxBackups,
			MaxAge:     config.MaxAge,
			Compress:   config.Compress,
		}
		writers = append(writers, rotating)
		closer = rotating
	}

	var out io.Writer
	switch len(writers) {
	case 0:
		out = io.Discard
	case 1:
		out = writers[0]
	default:
		out = io.MultiWriter(writers...)
	}

	return log.New(out, prefix, log.LstdFlags), closer, nil
}
