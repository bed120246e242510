package logger

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
)

type ctxKey string

const (
	requestIDKey ctxKey = "requestID"
	reloadIDKey  ctxKey = "reloadID"
)

// InitLogger installs the default slog logger writing to stdout.
func InitLogger(config Config) {
	InitLoggerWithWriter(config, os.Stdout)
}

// InitLoggerWithWriter installs the default slog logger writing to w.
func InitLoggerWithWriter(config Config, w io.Writer) {
	opts := &slog.HandlerOptions{
		Level:     config.LogLevel(),
		AddSource: config.AddSource,
	}

	var handler slog.Handler
	if config.IsJSON() {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	handler = handler.WithAttrs(config.BaseAttributes())

	slog.SetDefault(slog.New(handler))
}

// Info logs at info level on the default logger.
func Info(msg string, args ...any) {
	slog.Default().Info(msg, args...)
}

// GenerateRequestID creates a new UUID for tracing requests.
func GenerateRequestID() string {
	return uuid.NewString()
}

// WithRequestID returns a new context containing the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// RequestIDFromContext extracts the request ID from the context, if present.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey).(string)
	return id, ok
}

// GetRequestID returns the request ID or "" when absent.
func GetRequestID(ctx context.Context) string {
	id, _ := RequestIDFromContext(ctx)
	return id
}

// WithReloadID tags every log line of one reload pass.
func WithReloadID(ctx context.Context, reloadID string) context.Context {
	return context.WithValue(ctx, reloadIDKey, reloadID)
}

// ReloadIDFromContext extracts the reload ID from the context, if present.
func ReloadIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(reloadIDKey).(string)
	return id, ok
}

// FromContext returns a logger that includes the request_id and reload_id
// attributes when present.
func FromContext(ctx context.Context) *slog.Logger {
	log := slog.Default()
	if ctx == nil {
		return log
	}
	if id, ok := RequestIDFromContext(ctx); ok {
		log = log.With(AttrKeyRequestID, id)
	}
	if id, ok := ReloadIDFromContext(ctx); ok {
		log = log.With(AttrKeyReloadID, id)
	}
	return log
}
