// Package logging carries an operation-scoped slog.Logger through
// context.Context so services log with consistent correlation fields.
package logging

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// contextKey is unexported to prevent collisions with other context values.
type contextKey string

const loggerKey = contextKey("logger")

// WithLogger returns a context carrying the given logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// WithOperation derives an operation-scoped logger with a fresh operation ID
// and stores it in the context.
func WithOperation(ctx context.Context, base *slog.Logger, operation string) (context.Context, *slog.Logger) {
	if base == nil {
		base = slog.Default()
	}
	logger := base.With(
		slog.String("operation_id", uuid.NewString()),
		slog.String("operation", operation),
	)
	return WithLogger(ctx, logger), logger
}

// FromContext retrieves the logger from the context, falling back to the
// default logger when none was stored.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return slog.Default()
}
