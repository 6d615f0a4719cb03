// Package ctxutil propagates caller identity through context.
// The core trusts the transport layer to populate these values; it performs
// only the ownership and role checks described by the business rules.
package ctxutil

import (
	"context"

	"github.com/google/uuid"

	"github.com/closetswap/closetswap-backend/internal/domain"
)

type ctxKey string

const (
	userIDKey    ctxKey = "user_id"
	roleKey      ctxKey = "role"
	requestIDKey ctxKey = "request_id"
)

// WithUserID stores the acting user's ID in the context.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// UserIDFromCtx extracts the acting user's ID from the context.
// Returns uuid.Nil and false if the value is missing, nil UUID, or wrong type.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// WithRole stores the acting user's role in the context.
func WithRole(ctx context.Context, role domain.UserRole) context.Context {
	return context.WithValue(ctx, roleKey, role)
}

// RoleFromCtx extracts the acting user's role from the context.
// Returns UserRoleUser when absent: callers are never implicitly admin.
func RoleFromCtx(ctx context.Context) domain.UserRole {
	role, ok := ctx.Value(roleKey).(domain.UserRole)
	if !ok || !role.IsValid() {
		return domain.UserRoleUser
	}
	return role
}

// IsAdminFromCtx reports whether the acting user has the admin role.
func IsAdminFromCtx(ctx context.Context) bool {
	return RoleFromCtx(ctx).IsAdmin()
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
