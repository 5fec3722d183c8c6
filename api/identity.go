package api

import (
	"log/slog"
	"strconv"

	"github.com/gin-gonic/gin"
	"weatherhub.app/models"
)

const currentUserKey = "currentUser"

// IdentityProvider resolves the current user of a request. A nil user with
// a nil error means the request is anonymous.
type IdentityProvider interface {
	Resolve(c *gin.Context) (*models.User, error)
}

// UserFinder is the slice of the user repository the identity layer needs
type UserFinder interface {
	FindByID(id uint) (*models.User, error)
}

// HeaderIdentityProvider resolves identity from the X-User-ID header set by
// the fronting auth infrastructure. Unknown or malformed values resolve to
// anonymous rather than failing the request.
type HeaderIdentityProvider struct {
	users UserFinder
}

// NewHeaderIdentityProvider creates a header-based identity provider
func NewHeaderIdentityProvider(users UserFinder) *HeaderIdentityProvider {
	return &HeaderIdentityProvider{users: users}
}

// Resolve looks up the user named by the X-User-ID header
func (p *HeaderIdentityProvider) Resolve(c *gin.Context) (*models.User, error) {
	raw := c.GetHeader("X-User-ID")
	if raw == "" {
		return nil, nil
	}

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		slog.Warn("Malformed X-User-ID header", "value", raw)
		return nil, nil
	}

	user, err := p.users.FindByID(uint(id))
	if err != nil {
		slog.Warn("Unknown user in X-User-ID header", "id", id, "error", err)
		return nil, nil
	}

	return user, nil
}

// identityMiddleware resolves the current user once per request and stores
// it on the gin context for the handlers.
func (s *Server) identityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := s.identity.Resolve(c)
		if err != nil {
			slog.Error("Identity resolution error", "error", err)
		}
		if user != nil {
			c.Set(currentUserKey, user)
		}
		c.Next()
	}
}

// currentUser returns the resolved user of the request, or nil when anonymous
func currentUser(c *gin.Context) *models.User {
	value, exists := c.Get(currentUserKey)
	if !exists {
		return nil
	}
	user, ok := value.(*models.User)
	if !ok {
		return nil
	}
	return user
}
