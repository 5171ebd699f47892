// Package context carries request-scoped values through the console: the
// request id, its logger and the admitted operator session.
package context

import (
	"context"
	"log/slog"

	"blogpilot/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is read from console requests and forwarded to the backend.
const HeaderXRequestID = "X-Request-Id"

type scopeKey int

const (
	requestIDKey scopeKey = iota
	loggerKey
)

// echo.Context keys.
const (
	echoRequestID = "blogpilot.request_id"
	echoSession   = "blogpilot.session"
)

// SetRequestID records the request id on the echo context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoRequestID, requestID)
}

// GetRequestID returns the id assigned by the request id middleware, or "".
func GetRequestID(c echo.Context) string {
	id, _ := c.Get(echoRequestID).(string)

	return id
}

// WithRequestID returns ctx carrying requestID for outgoing backend calls.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetRequestIDFromContext returns the id stored by WithRequestID, or "".
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

// WithLogger returns ctx carrying a request-scoped logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// GetLogger returns the request-scoped logger, or nil.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, _ := ctx.Value(loggerKey).(*slog.Logger)

	return logger
}

// GetLoggerOrDefault returns the request-scoped logger, falling back to fallback.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

// SetSession stores the session admitted by the session gate.
func SetSession(c echo.Context, session entity.Session) {
	c.Set(echoSession, session)
}

// GetSession returns the admitted session, if the route is gated.
func GetSession(c echo.Context) (entity.Session, bool) {
	session, ok := c.Get(echoSession).(entity.Session)

	return session, ok
}
