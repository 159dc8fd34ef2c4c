package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/nhadat/marketplace/internal/interfaces/http/handlers"
	"github.com/nhadat/marketplace/internal/interfaces/http/middleware"
	"github.com/nhadat/marketplace/internal/shared/authorization"
)

// PropertyRouteConfig holds dependencies for listing routes.
type PropertyRouteConfig struct {
	PropertyHandler      *handlers.PropertyHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupPropertyRoutes configures listing search, posting and moderation routes.
func SetupPropertyRoutes(api *gin.RouterGroup, cfg *PropertyRouteConfig) {
	h := cfg.PropertyHandler
	requireAuth := cfg.AuthMiddleware.RequireAuth()
	moderate := cfg.PermissionMiddleware.RequirePermission(authorization.ResourceProperty, authorization.ActionModerate)

	properties := api.Group("/properties")
	{
		properties.GET("", cfg.AuthMiddleware.OptionalAuth(), h.List)
		properties.GET("/me", requireAuth, h.ListMine)
		properties.POST("", requireAuth, h.Create)
		properties.GET("/:id", cfg.AuthMiddleware.OptionalAuth(), h.Get)
		properties.PATCH("/:id", requireAuth, h.Update)
		properties.DELETE("/:id", requireAuth, h.Delete)
		properties.POST("/:id/sold", requireAuth, h.MarkSold)

		properties.POST("/:id/approve", requireAuth, moderate, h.Approve)
		properties.POST("/:id/reject", requireAuth, moderate, h.Reject)
	}
}
