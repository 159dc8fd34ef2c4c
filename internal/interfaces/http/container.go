package http

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	orderUsecases "github.com/nhadat/marketplace/internal/application/order/usecases"
	userUsecases "github.com/nhadat/marketplace/internal/application/user/usecases"
	"github.com/nhadat/marketplace/internal/infrastructure/config"
	"github.com/nhadat/marketplace/internal/interfaces/http/middleware"
	"github.com/nhadat/marketplace/internal/shared/logger"
)

// Container holds infrastructure components, repositories, use cases and
// handlers, wires them together and exposes the gin engine.
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	repos *repositories
	svcs  *services
	ucs   *allUseCases
	hdlrs *allHandlers

	// Middlewares
	authMiddleware       *middleware.AuthMiddleware
	permissionMiddleware *middleware.PermissionMiddleware
	apiLimiter           *middleware.RateLimiter
	chatLimiter          *middleware.RateLimiter
}

// NewContainer wires the application. redisClient may be nil, which turns
// off the package cache, the OAuth code flow and per-IP rate limiting.
func NewContainer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, log logger.Interface) (*Container, error) {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}

	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
		redis:  redisClient,
	}

	// Section 1: Infrastructure - Repositories, Auth, Storage, Caches
	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}

	// Section 2: Middlewares
	c.initMiddlewares()

	// Section 3: Use cases
	c.initUseCases()

	// Section 4: Handlers
	if err := c.initHandlers(); err != nil {
		return nil, fmt.Errorf("failed to initialize handlers: %w", err)
	}

	return c, nil
}

// Engine returns the gin engine. SetupRoutes must be called first.
func (c *Container) Engine() *gin.Engine {
	return c.engine
}

// Bootstrap loads the default access policy, ensures the configured
// administrator exists and seeds the built-in package catalog when it is
// empty. It is safe to run on every start.
func (c *Container) Bootstrap(ctx context.Context) error {
	if err := c.svcs.enforcer.SeedDefaults(); err != nil {
		return fmt.Errorf("failed to seed access policies: %w", err)
	}

	admin := c.cfg.Admin
	if admin.Email != "" && admin.Password != "" {
		if _, err := c.ucs.seedAdminUC.Execute(ctx, userUsecases.SeedAdminCommand{
			Email:    admin.Email,
			Password: admin.Password,
			Name:     admin.Name,
		}); err != nil {
			return err
		}
	}

	active, err := c.repos.packageRepo.ListActive(ctx)
	if err != nil {
		return fmt.Errorf("failed to read package catalog: %w", err)
	}
	if len(active) == 0 {
		if err := c.ucs.seedPackagesUC.Execute(ctx, orderUsecases.DefaultCatalog()); err != nil {
			return fmt.Errorf("failed to seed package catalog: %w", err)
		}
	}

	return nil
}

// Shutdown closes open websocket connections. The database and Redis
// clients belong to the caller.
func (c *Container) Shutdown() {
	c.log.Infow("shutting down http container")
	c.svcs.hub.CloseAll()
}
