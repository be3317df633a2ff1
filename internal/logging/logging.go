// Package logging builds the process logger of the hashi command.
//
// Records go to stderr, or to a rotating file when Config.File is set.
// The libraries below never log on their own: they receive this logger
// through core.WithLogger and solver.WithLogger.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/natefinch/lumberjack"
)

// Config selects the level, format and destination of log records.
type Config struct {
	// Level is one of debug, info, warn, error. Empty means info.
	Level string
	// File, if set, receives the records instead of stderr.
	File string
	// MaxSize is the rotation size of File in megabytes.
	MaxSize int
	// MaxAge is the number of days rotated files are kept.
	MaxAge int
	// JSON selects the JSON handler instead of text.
	JSON bool
}

// ParseLevel converts a level name to a slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("logging: unknown level %q", name)
	}
}

// nopCloser is returned when the sink is stderr.
type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New returns a logger for config and the closer of its sink.
// The closer must be called before exit to flush a log file.
func New(config Config) (*slog.Logger, io.Closer, error) {
	level, err := ParseLevel(config.Level)
	if err != nil {
		return nil, nil, err
	}

	var (
		out    io.Writer = os.Stderr
		closer io.Closer = nopCloser{}
	)
	if config.File != "" {
		l := &lumberjack.Logger{
			Filename: config.File,
			MaxSize:  config.MaxSize, // megabytes
			MaxAge:   config.MaxAge,  // days
		}
		out, closer = l, l
	}

	return slog.New(newHandler(out, level, config.JSON)), closer, nil
}

// newHandler picks the text or JSON handler for w.
func newHandler(w io.Writer, level slog.Level, json bool) slog.Handler {
	opts := &slog.HandlerOptions{Level: level}
	if json {
		return slog.NewJSONHandler(w, opts)
	}

	return slog.NewTextHandler(w, opts)
}
