// Package logger builds the application's *slog.Logger on top of zerolog.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	slogzerolog "github.com/samber/slog-zerolog/v2"
)

// Opts configures New.
type Opts struct {
	Console bool   // human-readable lines instead of JSON
	Level   string // debug, info, warn, error
	Output  io.Writer
}

// New returns a logger writing to opts.Output. A nil Output discards logs.
func New(opts Opts) *slog.Logger {
	out := opts.Output
	if out == nil {
		out = io.Discard
	}
	if opts.Console {
		out = zerolog.ConsoleWriter{Out: out, NoColor: true, TimeFormat: "15:04:05"}
	}
	zl := zerolog.New(out)

	handler := slogzerolog.Option{
		Level:  ParseLevel(opts.Level),
		Logger: &zl,
	}.NewZerologHandler()
	return slog.New(handler)
}

// ParseLevel maps a level name to slog.Level, defaulting to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// OpenFile opens path for appending, creating its directory. The TUI owns
// stdout, so logs always go to a file.
func OpenFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("creating log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	return f, nil
}
