package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

// identityKey is the key used to store the authenticated identity (user handle
// or the administrator sentinel) in the request context.
const identityKey = contextKey("identity")

// WithIdentity returns a copy of ctx carrying the caller identity.
func WithIdentity(ctx context.Context, identity string) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// GetIdentityFromContext retrieves the authenticated identity from the Gin context.
// It returns the identity and a boolean indicating if it was found.
func GetIdentityFromContext(c *gin.Context) (string, bool) {
	identity, ok := c.Request.Context().Value(identityKey).(string)
	if !ok || identity == "" {
		return "", false
	}
	return identity, true
}
