package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/docforge/docforge/internal/auth"
	apierrors "github.com/docforge/docforge/internal/errors"
	"github.com/docforge/docforge/internal/repository"
)

// AuthenticatedUser is the request-scoped identity stored in the gin
// context by RequireAuth.
type AuthenticatedUser struct {
	ID       uint64
	Email    string
	Username string
}

const contextUserKey = "current_user"

// RequireAuth validates the bearer token and resolves it to a user
// before any protected handler runs. Missing, malformed, expired, or
// unresolvable tokens all end the request with 401.
func RequireAuth(issuer *auth.TokenIssuer, users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			apierrors.Unauthorized(c, "Authorization token is required")
			c.Abort()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			apierrors.Unauthorized(c, "Authorization header format must be Bearer {token}")
			c.Abort()
			return
		}

		username, err := issuer.Parse(parts[1])
		if err != nil {
			apierrors.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		user, err := users.FindByUsername(username)
		if err != nil {
			apierrors.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(contextUserKey, AuthenticatedUser{
			ID:       user.ID,
			Email:    user.Email,
			Username: user.Username,
		})
		c.Next()
	}
}

// GetCurrentUser retrieves the authenticated user from the context.
func GetCurrentUser(c *gin.Context) (AuthenticatedUser, bool) {
	value, exists := c.Get(contextUserKey)
	if !exists {
		return AuthenticatedUser{}, false
	}

	user, ok := value.(AuthenticatedUser)
	if !ok {
		return AuthenticatedUser{}, false
	}
	return user, true
}

// GetUserID retrieves the current user ID from the context.
func GetUserID(c *gin.Context) (uint64, bool) {
	user, ok := GetCurrentUser(c)
	if !ok {
		return 0, false
	}
	return user.ID, true
}
