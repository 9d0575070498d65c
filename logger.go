package bitradix

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with bitradix-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
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

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithBases adds source and destination base fields to the logger.
func (l *Logger) WithBases(from, to int) *Logger {
	return &Logger{
		Logger: l.Logger.With("from", from, "to", to),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogConvert logs a single conversion.
func (l *Logger) LogConvert(input string, from, to int, output string, err error) {
	if err != nil {
		l.Warn("conversion rejected",
			"input", input,
			"from", from,
			"to", to,
			"error", err,
		)
	} else {
		l.Debug("conversion completed",
			"input", input,
			"from", from,
			"to", to,
			"output", output,
		)
	}
}

// LogBatch logs a batch conversion.
func (l *Logger) LogBatch(ctx context.Context, count, failed int, elapsed time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "batch conversion aborted",
			"count", count,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "batch conversion completed",
			"count", count,
			"failed", failed,
			"elapsed", elapsed,
		)
	}
}
