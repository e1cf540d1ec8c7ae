package routes

import (
	"photostudio_backend/internal/auth"
	"photostudio_backend/internal/handlers"
	"photostudio_backend/internal/middleware"
	"photostudio_backend/internal/repositories"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts all HTTP routes. The public group carries the gallery
// and contact endpoints; the admin group sits behind authentication and the
// per-request approval check.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	tokens *auth.TokenManager,
	userRepo repositories.UserRepository,
) {
	api := ginRouter.Group("/api")
	{
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.GalleryHandler.RegisterRoutes(api)
		appHandlers.ContactHandler.RegisterRoutes(api)
	}

	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware(tokens, userRepo))
	admin.Use(middleware.EnsureApproved())
	{
		appHandlers.MediaHandler.RegisterRoutes(admin)
		appHandlers.AdminHandler.RegisterRoutes(admin)
	}
}
