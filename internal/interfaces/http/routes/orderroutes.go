package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/nhadat/marketplace/internal/interfaces/http/handlers"
	"github.com/nhadat/marketplace/internal/interfaces/http/middleware"
)

// OrderRouteConfig holds dependencies for package and order routes.
type OrderRouteConfig struct {
	OrderHandler   *handlers.OrderHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupOrderRoutes configures the public catalog and the buyer's order routes.
func SetupOrderRoutes(api *gin.RouterGroup, cfg *OrderRouteConfig) {
	api.GET("/packages", cfg.OrderHandler.ListPackages)

	orders := api.Group("/orders")
	orders.Use(cfg.AuthMiddleware.RequireAuth())
	{
		orders.POST("", cfg.OrderHandler.Create)
		orders.GET("/me", cfg.OrderHandler.ListMine)
	}
}
