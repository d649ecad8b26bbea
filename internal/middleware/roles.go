package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/assetverse/assetverse_backend/internal/core/domain"
	portssvc "github.com/assetverse/assetverse_backend/internal/core/ports/services"
)

// RequireRole loads the authenticated user and aborts with 403 unless they
// hold the given role. The resolved user is stored in the request context
// for handlers to pick up via GetAuthUserFromContext.
func RequireRole(userSvc portssvc.UserReaderSvc, role domain.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		userID, ok := GetUserIDFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		user, err := userSvc.GetUserByID(c.Request.Context(), userID)
		if err != nil {
			logger.Warn("Failed to load user for role check", "error", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		if user.Role != role {
			logger.Warn("Role check failed", "required_role", string(role), "actual_role", string(user.Role))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			return
		}

		ctx := context.WithValue(c.Request.Context(), authUserKey, user)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
