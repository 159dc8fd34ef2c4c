package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/nhadat/marketplace/internal/interfaces/http/handlers"
	"github.com/nhadat/marketplace/internal/interfaces/http/middleware"
)

// AuthRouteConfig holds dependencies for authentication routes.
type AuthRouteConfig struct {
	AuthHandler    *handlers.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupAuthRoutes configures authentication routes.
func SetupAuthRoutes(api *gin.RouterGroup, cfg *AuthRouteConfig) {
	auth := api.Group("/auth")
	{
		auth.POST("/google", cfg.AuthHandler.GoogleSignIn)
		auth.GET("/google/login", cfg.AuthHandler.GoogleLogin)
		auth.GET("/google/callback", cfg.AuthHandler.GoogleCallback)

		auth.GET("/me", cfg.AuthMiddleware.RequireAuth(), cfg.AuthHandler.Me)
		auth.POST("/logout", cfg.AuthHandler.Logout)
	}
}
