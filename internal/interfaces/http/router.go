package http

import (
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/nhadat/marketplace/internal/interfaces/http/middleware"
	"github.com/nhadat/marketplace/internal/interfaces/http/routes"

	_ "github.com/nhadat/marketplace/docs"
)

// maxMultipartMemory bounds the in-memory part of listing uploads; the rest
// spills to temporary files.
const maxMultipartMemory = 16 << 20

// SetupRoutes configures global middleware and every route group.
func (c *Container) SetupRoutes() {
	cfg := c.cfg
	engine := c.engine

	engine.MaxMultipartMemory = maxMultipartMemory

	engine.Use(middleware.RequestID())
	engine.Use(middleware.Logger(c.log))
	engine.Use(middleware.Recovery(c.log))
	engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	engine.Use(middleware.SecurityHeaders(cfg.Server.IsProduction()))

	engine.NoRoute(middleware.NotFound())

	engine.GET("/health", c.hdlrs.healthHandler.Check)
	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	engine.Static(cfg.Upload.PublicPath, cfg.Upload.Dir)

	api := engine.Group("/api")
	if c.apiLimiter != nil {
		api.Use(c.apiLimiter.Limit())
	}

	routes.SetupAuthRoutes(api, &routes.AuthRouteConfig{
		AuthHandler:    c.hdlrs.authHandler,
		AuthMiddleware: c.authMiddleware,
	})

	routes.SetupPropertyRoutes(api, &routes.PropertyRouteConfig{
		PropertyHandler:      c.hdlrs.propertyHandler,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})

	routes.SetupOrderRoutes(api, &routes.OrderRouteConfig{
		OrderHandler:   c.hdlrs.orderHandler,
		AuthMiddleware: c.authMiddleware,
	})

	routes.SetupChatRoutes(api, &routes.ChatRouteConfig{
		ChatHandler:    c.hdlrs.chatHandler,
		AuthMiddleware: c.authMiddleware,
		SendLimiter:    c.chatLimiter,
	})

	routes.SetupAdminRoutes(api, &routes.AdminRouteConfig{
		AdminHandler:         c.hdlrs.adminHandler,
		OrderHandler:         c.hdlrs.orderHandler,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})

	c.log.Infow("routes registered", "routes", len(engine.Routes()))
}
