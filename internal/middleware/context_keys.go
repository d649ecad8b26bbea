package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/assetverse/assetverse_backend/internal/core/domain"
)

// userIDKey is the key used to store the authenticated user's ID in the
// request context. authUserKey holds the loaded domain user once a role
// guard has resolved it.
const (
	userIDKey   = contextKey("userID")
	authUserKey = contextKey("authUser")
)

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userIDVal := c.Request.Context().Value(userIDKey)
	if userIDVal == nil {
		return "", false
	}
	userID, ok := userIDVal.(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}

// GetAuthUserFromContext retrieves the resolved domain user stored by a
// role guard. Handlers behind RequireRole can rely on it being present.
func GetAuthUserFromContext(c *gin.Context) (*domain.User, bool) {
	userVal := c.Request.Context().Value(authUserKey)
	if userVal == nil {
		return nil, false
	}
	user, ok := userVal.(*domain.User)
	if !ok {
		return nil, false
	}
	return user, true
}
