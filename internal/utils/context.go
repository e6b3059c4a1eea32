package utils

import (
	"context"

	"TASK_MANAGER_API/internal/models"
)

type contextKey string

const identityContextKey contextKey = "identity"

// ContextWithIdentity returns a copy of ctx carrying the authenticated identity
func ContextWithIdentity(ctx context.Context, id models.Identity) context.Context {
	return context.WithValue(ctx, identityContextKey, id)
}

// IdentityFromContext extracts the authenticated identity set by the auth
// middleware. ok is false on routes where no valid token was presented.
func IdentityFromContext(ctx context.Context) (models.Identity, bool) {
	id, ok := ctx.Value(identityContextKey).(models.Identity)
	return id, ok
}
