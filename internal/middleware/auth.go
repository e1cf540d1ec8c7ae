package middleware

import (
	"strings"

	"photostudio_backend/internal/auth"
	"photostudio_backend/internal/models"
	"photostudio_backend/internal/repositories"
	"photostudio_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	ContextUserIDKey = "userID"
	ContextUserKey   = "user"
)

// AuthMiddleware validates the bearer token and loads the user record into
// the request context.
func AuthMiddleware(tokens *auth.TokenManager, users repositories.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			abortWith(c, apperrors.NewUnauthorizedError("Authorization header missing or invalid"))
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := tokens.ParseToken(tokenStr)
		if err != nil {
			abortWith(c, apperrors.NewUnauthorizedError("Invalid token"))
			return
		}

		user, err := users.FindByID(c.Request.Context(), claims.UserID)
		if err != nil {
			if apperrors.Is(err, gorm.ErrRecordNotFound) {
				abortWith(c, apperrors.NewUnauthorizedError("Invalid token"))
				return
			}
			abortWith(c, apperrors.ErrDatabase(err))
			return
		}

		c.Set(ContextUserIDKey, user.ID)
		c.Set(ContextUserKey, user)
		c.Next()
	}
}

// EnsureApproved gates authenticated routes behind the approval flag.
// Superadmins always pass; approval is re-read from the user record on every
// request, so revoking it takes effect immediately.
func EnsureApproved() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := GetUser(c)
		if user == nil {
			abortWith(c, apperrors.NewUnauthorizedError("Authentication required"))
			return
		}

		if !user.CanAccess() {
			abortWith(c, apperrors.ErrPendingApproval)
			return
		}

		c.Next()
	}
}

// GetUserID extracts the authenticated user id from the context.
func GetUserID(c *gin.Context) string {
	id, exists := c.Get(ContextUserIDKey)
	if !exists {
		return ""
	}

	userID, ok := id.(string)
	if !ok {
		return ""
	}
	return userID
}

// GetUser extracts the authenticated user from the context.
func GetUser(c *gin.Context) *models.User {
	val, exists := c.Get(ContextUserKey)
	if !exists {
		return nil
	}

	user, ok := val.(*models.User)
	if !ok {
		return nil
	}
	return user
}

func abortWith(c *gin.Context, err *apperrors.AppError) {
	c.AbortWithStatusJSON(err.HTTPCode, apperrors.ErrorResponse{Error: err})
}
