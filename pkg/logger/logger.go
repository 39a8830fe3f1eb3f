// Package logger provides the structured logger shared by every layer of the service
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/go-chi/chi/v5/middleware"
)

// LoggerInterface defines the interface for logging operations
type LoggerInterface interface {
	Log(ctx context.Context, level slog.Level, msg string, args ...any)
	Info(msg string, args ...any)
	Error(msg string, args ...any)
	Warn(msg string, args ...any)
	Debug(msg string, args ...any)
	InfoContext(ctx context.Context, msg string, args ...any)
	ErrorContext(ctx context.Context, msg string, args ...any)
	WarnContext(ctx context.Context, msg string, args ...any)
	DebugContext(ctx context.Context, msg string, args ...any)
}

// Logger wraps slog.Logger
type Logger struct {
	*slog.Logger
}

// Config holds logger configuration
type Config struct {
	Level     slog.Level
	Output    io.Writer
	Format    string // "json" or "text"
	AddSource bool
	// RequestID adds the chi request id of the context to every record logged with a context
	RequestID bool
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		Level:     slog.LevelInfo,
		Output:    os.Stdout,
		Format:    "json",
		AddSource: false,
		RequestID: true,
	}
}

// New creates a new logger instance with the given configuration
func New(config Config) LoggerInterface {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level:     config.Level,
		AddSource: config.AddSource,
	}

	switch config.Format {
	case "text":
		handler = slog.NewTextHandler(config.Output, opts)
	default:
		handler = slog.NewJSONHandler(config.Output, opts)
	}

	if config.RequestID {
		handler = &requestIDHandler{handler: handler}
	}

	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewWithOptions creates a new logger with options
func NewWithOptions(opts ...Option) LoggerInterface {
	config := DefaultConfig()
	for _, opt := range opts {
		opt(&config)
	}
	return New(config)
}

// NewJSON creates a new JSON logger
func NewJSON(output io.Writer, level slog.Level) LoggerInterface {
	return NewWithOptions(WithOutput(output), WithLevel(level), WithJSONFormat())
}

// NewText creates a new text logger
func NewText(output io.Writer, level slog.Level) LoggerInterface {
	return NewWithOptions(WithOutput(output), WithLevel(level), WithTextFormat())
}

// NewJSONDefault creates a new JSON logger with default settings
func NewJSONDefault() LoggerInterface {
	return New(DefaultConfig())
}

// ParseLevel maps a configuration level name to a slog level.
// Unknown names fall back to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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

// InfoContext logs at the info level with context
func (l *Logger) InfoContext(ctx context.Context, msg string, args ...any) {
	l.Logger.Log(ctx, slog.LevelInfo, msg, args...)
}

// ErrorContext logs at the error level with context
func (l *Logger) ErrorContext(ctx context.Context, msg string, args ...any) {
	l.Logger.Log(ctx, slog.LevelError, msg, args...)
}

// WarnContext logs at the warn level with context
func (l *Logger) WarnContext(ctx context.Context, msg string, args ...any) {
	l.Logger.Log(ctx, slog.LevelWarn, msg, args...)
}

// DebugContext logs at the debug level with context
func (l *Logger) DebugContext(ctx context.Context, msg string, args ...any) {
	l.Logger.Log(ctx, slog.LevelDebug, msg, args...)
}

// NoOpLogger returns a logger that does nothing - useful for testing
func NoOpLogger() LoggerInterface {
	return &Logger{
		Logger: slog.New(noOpHandler{}),
	}
}

// requestIDHandler decorates records with the request id carried by the context
type requestIDHandler struct {
	handler slog.Handler
}

func (h *requestIDHandler) Handle(ctx context.Context, r slog.Record) error {
	if ctx != nil {
		if reqID := middleware.GetReqID(ctx); reqID != "" {
			r.AddAttrs(slog.String("request_id", reqID))
		}
	}
	return h.handler.Handle(ctx, r)
}

func (h *requestIDHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

func (h *requestIDHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &requestIDHandler{handler: h.handler.WithAttrs(attrs)}
}

func (h *requestIDHandler) WithGroup(name string) slog.Handler {
	return &requestIDHandler{handler: h.handler.WithGroup(name)}
}

type noOpHandler struct{}

func (h noOpHandler) Handle(_ context.Context, _ slog.Record) error {
	return nil
}

func (h noOpHandler) Enabled(_ context.Context, _ slog.Level) bool {
	return false
}

func (h noOpHandler) WithAttrs(_ []slog.Attr) slog.Handler {
	return h
}

func (h noOpHandler) WithGroup(_ string) slog.Handler {
	return h
}
