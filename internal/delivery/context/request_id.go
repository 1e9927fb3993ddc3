// Package context carries request-scoped values between the HTTP layer and the usecases:
// the request id, the request logger and the authenticated operator.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type contextKey string

const (
	keyRequestID  contextKey = "request_id"
	keyLogger     contextKey = "logger"
	keyOperatorID contextKey = "operator_id"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"
)

// GetRequestID returns the request ID stored in echo.Context, or "" before the request id middleware ran.
func GetRequestID(c echo.Context) string {
	id, _ := c.Get(string(keyRequestID)).(string)

	return id
}

func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(keyRequestID), requestID)
}

// GetRequestIDFromContext is GetRequestID for code below the HTTP layer, such as outgoing calls.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(keyRequestID).(string)

	return id
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, keyRequestID, requestID)
}

// GetLogger returns the request-scoped logger, or nil.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, _ := ctx.Value(keyLogger).(*slog.Logger)

	return logger
}

// GetLoggerOrDefault returns the request-scoped logger, or fallback outside a request.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, keyLogger, logger)
}

// SetOperatorID stores the authenticated operator in echo.Context.
func SetOperatorID(c echo.Context, operatorID uuid.UUID) {
	c.Set(string(keyOperatorID), operatorID)
}

// GetOperatorID returns the authenticated operator, if the request passed authentication.
func GetOperatorID(c echo.Context) (uuid.UUID, bool) {
	operatorID, ok := c.Get(string(keyOperatorID)).(uuid.UUID)

	return operatorID, ok && operatorID != uuid.Nil
}
