package healpix

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with healpix-specific context.
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

// WithFaceResolution adds an nside field to the logger.
func (l *Logger) WithFaceResolution(nside uint32) *Logger {
	return &Logger{
		Logger: l.Logger.With("nside", nside),
	}
}

// WithScheme adds a numbering scheme field to the logger.
func (l *Logger) WithScheme(scheme string) *Logger {
	return &Logger{
		Logger: l.Logger.With("scheme", scheme),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogDescriptor logs the construction of a grid descriptor.
func (l *Logger) LogDescriptor(ctx context.Context, nside uint32, err error) {
	if err != nil {
		l.WarnContext(ctx, "grid descriptor rejected",
			"nside", nside,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "grid descriptor created",
			"nside", nside,
			"total_pixels", Faces*uint64(nside)*uint64(nside),
		)
	}
}

// LogBatch logs a batch conversion.
func (l *Logger) LogBatch(ctx context.Context, op string, count int, duration time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "batch conversion failed",
			"op", op,
			"count", count,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "batch conversion completed",
			"op", op,
			"count", count,
			"duration", duration,
		)
	}
}
