package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/taskmate/daily-task-backend/internal/auth"
	"github.com/taskmate/daily-task-backend/internal/constants"
	apierrors "github.com/taskmate/daily-task-backend/internal/errors"
)

const bearerPrefix = "Bearer "

// ExtractIdentity attaches the user identity from a bearer token when one is
// present and valid. It never rejects: a missing, malformed, or expired token
// leaves the request anonymous and lets the route decide.
func ExtractIdentity(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			c.Next()
			return
		}

		claims, err := tokens.Verify(strings.TrimPrefix(header, bearerPrefix))
		if err != nil {
			// Invalid token falls through to anonymous
			c.Next()
			return
		}

		c.Set(constants.ContextKeyUserID, claims.UserID)
		c.Set(constants.ContextKeyUserEmail, claims.Email)
		c.Next()
	}
}

// RequireIdentity rejects requests that carry no identity.
func RequireIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := GetUserID(c); !exists {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (uint64, bool) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}

	switch v := userID.(type) {
	case uint64:
		return v, true
	case uint:
		return uint64(v), true
	case int:
		if v < 0 {
			return 0, false
		}
		return uint64(v), true
	default:
		return 0, false
	}
}
