package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fruitstand/backend/internal/model"
)

// Identity headers. The id header is the caller's whole claim; no
// signature or token backs it. This is a development stand-in for real
// authentication and the resolver interface is the seam where a real
// one plugs in.
const (
	HeaderUserID     = "X-User-ID"
	HeaderUserHandle = "X-User-Handle"
)

const identityKey = "identity"

// IdentityResolver extracts a caller identity from request metadata.
// A nil result means the request carried no identity.
type IdentityResolver interface {
	Resolve(r *http.Request) *model.Identity
}

// HeaderResolver reads the identity from the two plain request headers.
type HeaderResolver struct{}

// Resolve implements IdentityResolver.
func (HeaderResolver) Resolve(r *http.Request) *model.Identity {
	id := r.Header.Get(HeaderUserID)
	if id == "" {
		return nil
	}
	return &model.Identity{
		ID:     id,
		Handle: r.Header.Get(HeaderUserHandle),
	}
}

// Identity stores the resolved caller identity in the gin context for
// handlers to pick up. It never rejects a request; operations that need
// an identity fail at the service with AUTH_REQUIRED.
func Identity(resolver IdentityResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		if ident := resolver.Resolve(c.Request); ident != nil {
			c.Set(identityKey, ident)
		}
		c.Next()
	}
}

// IdentityFrom returns the caller identity stored by Identity, or nil.
func IdentityFrom(c *gin.Context) *model.Identity {
	if v, ok := c.Get(identityKey); ok {
		if ident, ok := v.(*model.Identity); ok {
			return ident
		}
	}
	return nil
}
