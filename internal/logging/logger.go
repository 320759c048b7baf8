// Package logging builds the zerolog loggers used across splitview.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logging configuration.
type Config struct {
	Level      zerolog.Level
	Format     string // "json" or "console"
	File       string // empty discards output; "-" writes to stderr
	TimeFormat string
}

// DefaultConfig returns the settings used when nothing is configured.
// The terminal UI owns stderr, so logs are discarded unless a file is set.
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.InfoLevel,
		Format:     "console",
		TimeFormat: time.RFC3339,
	}
}

// ParseLevel maps a level name to a zerolog level. Empty means info.
func ParseLevel(s string) (zerolog.Level, error) {
	if s == "" {
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(strings.ToLower(s))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}

// New creates a logger for cfg. The returned closer releases the log file,
// if one was opened.
func New(cfg Config) (zerolog.Logger, io.Closer, error) {
	out, closer, err := open(cfg.File)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, err
	}

	if cfg.Format == "console" {
		out = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: cfg.TimeFormat,
			NoColor:    cfg.File != "-",
		}
	}

	logger := zerolog.New(out).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
	return logger, closer, nil
}

func open(path string) (io.Writer, io.Closer, error) {
	switch path {
	case "":
		return io.Discard, nopCloser{}, nil
	case "-":
		return os.Stderr, nopCloser{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	return f, f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
