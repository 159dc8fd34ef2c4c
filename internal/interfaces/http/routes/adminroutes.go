package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/nhadat/marketplace/internal/interfaces/http/handlers"
	"github.com/nhadat/marketplace/internal/interfaces/http/middleware"
	"github.com/nhadat/marketplace/internal/shared/authorization"
)

// AdminRouteConfig holds dependencies for back-office routes.
type AdminRouteConfig struct {
	AdminHandler         *handlers.AdminHandler
	OrderHandler         *handlers.OrderHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupAdminRoutes configures staff and admin routes. Each route is gated
// by its own policy entry.
func SetupAdminRoutes(api *gin.RouterGroup, cfg *AdminRouteConfig) {
	perm := cfg.PermissionMiddleware.RequirePermission

	admin := api.Group("/admin")
	admin.Use(cfg.AuthMiddleware.RequireAuth())
	{
		admin.GET("/stats", perm(authorization.ResourceStats, authorization.ActionRead), cfg.AdminHandler.Stats)

		admin.GET("/orders", perm(authorization.ResourceOrder, authorization.ActionList), cfg.OrderHandler.List)
		admin.POST("/orders/:id/mark-paid", perm(authorization.ResourceOrder, authorization.ActionMarkPaid), cfg.OrderHandler.MarkPaid)

		admin.GET("/users", perm(authorization.ResourceUser, authorization.ActionList), cfg.AdminHandler.ListUsers)
		admin.PATCH("/users/:id/toggle", perm(authorization.ResourceUser, authorization.ActionToggle), cfg.AdminHandler.ToggleUserLock)
	}
}
