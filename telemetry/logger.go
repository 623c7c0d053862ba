// SPDX-License-Identifier: MIT

package telemetry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// ErrUnknownFormat is returned by New for a log format other than text or json.
var ErrUnknownFormat = errors.New("telemetry: unknown log format")

// Logger wraps slog.Logger with symnmf field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler.
// If handler is nil, uses a text handler to stderr at info level.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that writes human-readable text to stderr.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NewJSONLogger creates a Logger that writes JSON lines to stderr.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NoopLogger discards everything.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // unreachable
	}))
}

// New builds a Logger writing to w from config strings.
// level is any slog level name ("debug", "info", "warn", "error");
// format is "text" or "json".
func New(w io.Writer, level, format string) (*Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: lvl}
	switch strings.ToLower(format) {
	case "", "text":
		return NewLogger(slog.NewTextHandler(w, opts)), nil
	case "json":
		return NewLogger(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}
}

// ParseLevel parses a slog level name; the empty string means info.
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if s == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("telemetry: log level: %w", err)
	}

	return lvl, nil
}

// WithK adds the cluster count.
func (l *Logger) WithK(k int) *Logger {
	return &Logger{Logger: l.Logger.With("k", k)}
}

// WithGoal adds the command goal.
func (l *Logger) WithGoal(goal string) *Logger {
	return &Logger{Logger: l.Logger.With("goal", goal)}
}

// WithSource adds the input source.
func (l *Logger) WithSource(src string) *Logger {
	return &Logger{Logger: l.Logger.With("source", src)}
}

// WithShape adds point count and dimension.
func (l *Logger) WithShape(n, d int) *Logger {
	return &Logger{Logger: l.Logger.With("n", n, "d", d)}
}

// LogRead logs a matrix load.
func (l *Logger) LogRead(ctx context.Context, src string, rows, cols int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "read failed",
			"source", src,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "read completed",
			"source", src,
			"rows", rows,
			"cols", cols,
		)
	}
}

// LogSolve logs a symNMF factorization.
func (l *Logger) LogSolve(ctx context.Context, k, iterations int, converged bool, err error) {
	if err != nil {
		l.ErrorContext(ctx, "symnmf failed",
			"k", k,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "symnmf completed",
			"k", k,
			"iterations", iterations,
			"converged", converged,
		)
	}
}

// LogRefine logs a K-means refinement.
func (l *Logger) LogRefine(ctx context.Context, k, iterations int, converged bool, err error) {
	if err != nil {
		l.ErrorContext(ctx, "kmeans failed",
			"k", k,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "kmeans completed",
			"k", k,
			"iterations", iterations,
			"converged", converged,
		)
	}
}

// LogScore logs a silhouette score.
func (l *Logger) LogScore(ctx context.Context, method string, score float64) {
	l.InfoContext(ctx, "silhouette",
		"method", method,
		"score", score,
	)
}
