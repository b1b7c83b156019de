package oddsieve

import (
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with oddsieve-specific context.
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
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithLimit adds an upper limit field to the logger.
func (l *Logger) WithLimit(limit uint64) *Logger {
	return &Logger{
		Logger: l.Logger.With("limit", limit),
	}
}

// LogBuild logs a completed or failed sieve build.
func (l *Logger) LogBuild(limit uint64, words int, duration time.Duration, err error) {
	if err != nil {
		l.Error("sieve build failed",
			"limit", limit,
			"error", err,
		)
		return
	}
	l.Debug("sieve build completed",
		"limit", limit,
		"words", words,
		"duration", duration,
	)
}

// LogOutput logs a completed or failed emit of the prime list or count.
func (l *Logger) LogOutput(mode Mode, duration time.Duration, err error) {
	if err != nil {
		l.Error("output failed",
			"mode", mode.String(),
			"error", err,
		)
		return
	}
	l.Debug("output completed",
		"mode", mode.String(),
		"duration", duration,
	)
}
