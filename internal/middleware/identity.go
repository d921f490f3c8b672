package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sarthak-bhojane/multi-tenant-project-management/internal/auth"
	"github.com/sarthak-bhojane/multi-tenant-project-management/internal/domain"
)

// ContextKeyIdentity is the gin context key the verified identity is stored under
const ContextKeyIdentity = "identity"

// Identity creates a middleware that verifies the bearer token and, when it
// is valid, attaches the caller identity to the request context.
//
// It never aborts: absent, malformed, and expired tokens all pass through as
// an unauthenticated request. Whether anonymity is acceptable for a given
// operation is the service's policy decision, not the transport's.
func Identity(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader("Authorization")
		raw = strings.TrimPrefix(raw, "Bearer ")

		if identity := tokens.Verify(raw); identity != nil {
			c.Set(ContextKeyIdentity, identity)
		}
		c.Next()
	}
}

// IdentityFrom extracts the caller identity from the gin context. Returns
// nil for unauthenticated requests.
func IdentityFrom(c *gin.Context) *domain.Identity {
	value, exists := c.Get(ContextKeyIdentity)
	if !exists {
		return nil
	}
	identity, ok := value.(*domain.Identity)
	if !ok {
		return nil
	}
	return identity
}
