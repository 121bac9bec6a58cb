package context

import (
	"context"
	"log/slog"

	"chorechart/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	// KeyRequestID is the key for storing request ID in context.
	KeyRequestID ContextKey = "request_id"

	// KeyLogger is the key for storing request-scoped logger in context.
	KeyLogger ContextKey = "logger"

	// KeyUserID is the key for the authenticated user's ID.
	KeyUserID ContextKey = "userID"

	// KeyRoles is the key for the roles carried by the access token.
	KeyRoles ContextKey = "roles"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"
)

// GetRequestID extracts the request ID from echo.Context.
// If not found, generates a new UUID.
func GetRequestID(c echo.Context) string {
	val := c.Get(string(KeyRequestID))
	if id, ok := val.(string); ok && id != "" {
		return id
	}

	return uuid.New().String()
}

// SetRequestID sets the request ID in echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestIDFromContext extracts the request ID from standard context.Context.
// If not found, returns empty string.
func GetRequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(KeyRequestID).(string); ok {
		return id
	}

	return ""
}

// WithRequestID returns a new context with the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// GetLogger extracts the request-scoped logger from context.Context.
// If not found, returns nil.
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok {
		return logger
	}

	return nil
}

// GetLoggerOrDefault extracts the request-scoped logger from context.Context.
// If not found, returns the provided fallback logger.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

// WithLogger returns a new context with the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// SetPrincipal stores the authenticated user in echo.Context and adds user_id to the request logger.
func SetPrincipal(c echo.Context, userID uuid.UUID, roles entity.Roles) {
	c.Set(string(KeyUserID), userID)
	c.Set(string(KeyRoles), roles)

	ctx := c.Request().Context()
	if logger := GetLogger(ctx); logger != nil {
		ctx = WithLogger(ctx, logger.With(slog.String("user_id", userID.String())))
		c.SetRequest(c.Request().WithContext(ctx))
	}
}

// GetUserID returns the authenticated user's ID, if any.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(string(KeyUserID)).(uuid.UUID)

	return id, ok && id != uuid.Nil
}

// GetRoles returns the roles of the authenticated user's access token.
func GetRoles(c echo.Context) entity.Roles {
	roles, _ := c.Get(string(KeyRoles)).(entity.Roles)

	return roles
}
