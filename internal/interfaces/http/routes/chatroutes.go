package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/nhadat/marketplace/internal/interfaces/http/handlers"
	"github.com/nhadat/marketplace/internal/interfaces/http/middleware"
)

// ChatRouteConfig holds dependencies for conversation routes.
type ChatRouteConfig struct {
	ChatHandler    *handlers.ChatHandler
	AuthMiddleware *middleware.AuthMiddleware
	SendLimiter    *middleware.RateLimiter
}

// SetupChatRoutes configures conversation routes. Every route requires a session.
func SetupChatRoutes(api *gin.RouterGroup, cfg *ChatRouteConfig) {
	h := cfg.ChatHandler

	chat := api.Group("/chat")
	chat.Use(cfg.AuthMiddleware.RequireAuth())
	{
		chat.GET("/ws", h.Connect)
		chat.GET("/me", h.ListMine)
		chat.GET("/property/:propertyId", h.GetOrCreate)
		chat.GET("/:chatId", h.Get)
		chat.GET("/:chatId/messages", h.Messages)
		chat.POST("/:chatId/messages", cfg.SendLimiter.Limit(), h.Send)
	}
}
