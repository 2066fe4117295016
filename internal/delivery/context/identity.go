package context

import (
	"context"

	"github.com/google/uuid"
)

// KeyIdentity is the key for storing the authenticated caller in context.
const KeyIdentity ContextKey = "identity"

// Identity is the authenticated caller extracted from token claims by the
// auth middleware. Handlers and the persistence layer trust it as the acting
// user; it is never taken from request payloads.
type Identity struct {
	UserID uuid.UUID
	Email  string
	Roles  []string
}

// WithIdentity returns a new context carrying the caller identity.
func WithIdentity(ctx context.Context, identity *Identity) context.Context {
	return context.WithValue(ctx, KeyIdentity, identity)
}

// GetIdentity extracts the caller identity from context.
// Returns nil for anonymous requests.
func GetIdentity(ctx context.Context) *Identity {
	if identity, ok := ctx.Value(KeyIdentity).(*Identity); ok {
		return identity
	}

	return nil
}

// GetActor returns the caller's user id string for audit stamping, or empty
// for anonymous requests.
func GetActor(ctx context.Context) string {
	identity := GetIdentity(ctx)
	if identity == nil {
		return ""
	}

	return identity.UserID.String()
}
