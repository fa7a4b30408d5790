// Package context carries request-scoped values between the transports and
// the use cases: the request id, the request logger and the guest being served.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is the HTTP header name for request ID.
const HeaderXRequestID = "X-Request-Id"

type scopeKey int

const (
	requestIDKey scopeKey = iota
	loggerKey
	guestIDKey
)

// echo.Context store key for the request id
const echoRequestIDKey = "request_id"

// GetRequestID returns the request id set by the middleware, or a fresh one.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(echoRequestIDKey).(string); ok && id != "" {
		return id
	}

	return uuid.New().String()
}

func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoRequestIDKey, requestID)
}

// GetRequestIDFromContext returns "" outside of a request.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetLogger returns nil when no request logger is attached.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, _ := ctx.Value(loggerKey).(*slog.Logger)

	return logger
}

// GetLoggerOrDefault prefers the request logger. A fallback still gets the
// guest_id attribute when the guest is known.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	if guestID, ok := GuestIDFromContext(ctx); ok && fallback != nil {
		return fallback.With(slog.String("guest_id", guestID.String()))
	}

	return fallback
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// WithGuestID records the guest a request resolved to. An attached request
// logger is replaced by one carrying guest_id.
func WithGuestID(ctx context.Context, guestID uuid.UUID) context.Context {
	ctx = context.WithValue(ctx, guestIDKey, guestID)
	if logger := GetLogger(ctx); logger != nil {
		ctx = WithLogger(ctx, logger.With(slog.String("guest_id", guestID.String())))
	}

	return ctx
}

func GuestIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	guestID, ok := ctx.Value(guestIDKey).(uuid.UUID)

	return guestID, ok
}
