package contextutil

import (
	"context"

	"go.uber.org/zap"
)

// contextKey is private so keys cannot collide with other packages
type contextKey string

const (
	requestIDKey    contextKey = "request_id"
	employeeIDKey   contextKey = "employee_id"
	employeeRoleKey contextKey = "role"
	loggerKey       contextKey = "logger"
)

// --- Request ID helpers ---

func WithRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, requestIDKey, rid)
}

func GetRequestID(ctx context.Context) string {
	if rid, ok := ctx.Value(requestIDKey).(string); ok {
		return rid
	}
	return ""
}

// --- Actor helpers ---

func WithEmployeeID(ctx context.Context, id uint) context.Context {
	return context.WithValue(ctx, employeeIDKey, id)
}

func GetEmployeeID(ctx context.Context) uint {
	if id, ok := ctx.Value(employeeIDKey).(uint); ok {
		return id
	}
	return 0
}

func WithRole(ctx context.Context, role string) context.Context {
	return context.WithValue(ctx, employeeRoleKey, role)
}

func GetRole(ctx context.Context) string {
	if role, ok := ctx.Value(employeeRoleKey).(string); ok {
		return role
	}
	return ""
}

// --- Logger helpers ---

func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// GetLogger returns the request-scoped logger, falling back to
// defaultLogger and finally a nop logger so callers never get nil.
func GetLogger(ctx context.Context, defaultLogger *zap.Logger) *zap.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey).(*zap.Logger); ok && l != nil {
			return l
		}
	}

	if defaultLogger != nil {
		return defaultLogger
	}

	return zap.NewNop()
}
