package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/petrosur/ordenes/internal/auth"
	"github.com/petrosur/ordenes/internal/models"
)

// principalKey is the gin context key carrying the authenticated principal.
const principalKey = "principal"

// AuthMiddleware authenticates requests from either the session cookie or a
// bearer token.
type AuthMiddleware struct {
	sessions *auth.SessionStore
	tokens   *auth.Service
}

// NewAuthMiddleware creates a new authentication middleware.
func NewAuthMiddleware(sessions *auth.SessionStore, tokens *auth.Service) *AuthMiddleware {
	return &AuthMiddleware{
		sessions: sessions,
		tokens:   tokens,
	}
}

// Authenticate resolves the caller's principal and aborts with 401 when
// neither a valid session nor a valid bearer token is present.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		if p, ok := m.sessions.Principal(c.Request); ok {
			c.Set(principalKey, *p)
			c.Next()
			return
		}

		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			token, err := m.tokens.ExtractTokenFromHeader(authHeader)
			if err == nil {
				if p, err := m.tokens.ValidateToken(token); err == nil {
					c.Set(principalKey, *p)
					c.Next()
					return
				}
			}
		}

		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "no autenticado"})
	}
}

// RequireRole allows only the given roles. Admin always passes.
func RequireRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := GetPrincipal(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "no autenticado"})
			return
		}
		if p.Rol == models.RoleAdmin {
			c.Next()
			return
		}
		for _, rol := range roles {
			if p.Rol == rol {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "no autorizado"})
	}
}

// GetPrincipal extracts the principal stored by Authenticate.
func GetPrincipal(c *gin.Context) (models.Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return models.Principal{}, false
	}
	p, ok := v.(models.Principal)
	return p, ok
}

// SetPrincipal is a test hook for handlers exercised without the middleware.
func SetPrincipal(c *gin.Context, p models.Principal) {
	c.Set(principalKey, p)
}
