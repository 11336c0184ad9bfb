package bitfield

import (
	"log/slog"
	"os"
)

// Severity classifies an error reported through an ErrorSink.
type Severity int

const (
	// SeverityInformation marks purely informational reports.
	SeverityInformation Severity = iota

	// SeverityWarning marks recoverable anomalies.
	SeverityWarning

	// SeverityError marks failed operations.
	SeverityError

	// SeverityFatal marks failures the caller cannot recover from.
	SeverityFatal
)

// String returns a human-readable name for the severity.
func (s Severity) String() string {
	switch s {
	case SeverityInformation:
		return "information"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// ErrorInfo is the structured record handed to an ErrorSink.
type ErrorInfo struct {
	Severity Severity
	Op       string
	Err      error
}

// ErrorSink is a pure-sink callback invoked when a copy fails. It receives
// the structured error record and a description string and must not retain
// either beyond the call.
type ErrorSink func(info ErrorInfo, description string)

// Logger wraps slog.Logger with bitfield-specific context.
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
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithWidth adds a field width (in bits) to the logger.
func (l *Logger) WithWidth(width uint8) *Logger {
	return &Logger{
		Logger: l.Logger.With("width", width),
	}
}

// WithOffset adds a bit offset to the logger.
func (l *Logger) WithOffset(offset uint64) *Logger {
	return &Logger{
		Logger: l.Logger.With("offset", offset),
	}
}

// LogCopy logs the outcome of a field copy.
func (l *Logger) LogCopy(dst, src *Field, err error) {
	if err != nil {
		l.Error("copy failed",
			"dst_offset", dst.Bit,
			"dst_width", dst.Width,
			"src_offset", src.Bit,
			"src_width", src.Width,
			"error", err,
		)
	} else {
		l.Debug("copy completed",
			"dst_offset", dst.Bit,
			"dst_width", dst.Width,
			"src_offset", src.Bit,
			"src_width", src.Width,
		)
	}
}
