// Package logging builds the application's slog logger and carries
// request-scoped loggers through contexts.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/lepinkainen/humanlog"
)

// Options configures New.
type Options struct {
	Level  slog.Level
	Writer io.Writer
	// Fluent, when set, receives a copy of every record.
	Fluent Poster
}

// New creates a logger writing human-readable lines to opts.Writer and,
// optionally, forwarding records to Fluent Bit.
func New(opts Options) *slog.Logger {
	level := opts.Level
	var handler slog.Handler = humanlog.NewHandler(opts.Writer, &humanlog.Options{
		Level: level,
	})

	if opts.Fluent != nil {
		handler = NewFanoutHandler(handler, NewFluentHandler(opts.Fluent, level))
	}

	return slog.New(handler)
}

// ParseLevel converts a level name into a slog.Level.
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
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", name)
	}
}

type loggerKey struct{}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext returns the logger stored in ctx, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return slog.Default()
}
