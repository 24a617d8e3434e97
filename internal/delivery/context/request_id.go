// Package context threads request-scoped values (the request id and the
// request-scoped logger) from the delivery layer down to the services, which
// never see the echo context.
package context

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is the header the request id travels in, both on the way
// in (client-supplied) and on the way out (echoed or generated).
const HeaderXRequestID = "X-Request-Id"

type ctxKey string

const (
	ctxKeyRequestID ctxKey = "request_id"
	ctxKeyLogger    ctxKey = "logger"
)

// SetRequestID stores the request id on the echo context for the response path.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(ctxKeyRequestID), requestID)
}

// WithRequestID attaches the request id to a context.Context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ctxKeyRequestID, requestID)
}

// RequestIDFromContext returns the attached request id, or "" when the
// context never passed through the middleware.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKeyRequestID).(string)

	return id
}

// WithLogger attaches the request-scoped logger to a context.Context.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKeyLogger, logger)
}

// GetLoggerOrDefault returns the request-scoped logger when one was attached,
// otherwise the given fallback.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(ctxKeyLogger).(*slog.Logger); ok {
		return logger
	}

	return fallback
}
