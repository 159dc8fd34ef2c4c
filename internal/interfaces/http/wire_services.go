package http

import (
	"fmt"

	"github.com/nhadat/marketplace/internal/application/order/usecases"
	"github.com/nhadat/marketplace/internal/infrastructure/auth"
	"github.com/nhadat/marketplace/internal/infrastructure/cache"
	"github.com/nhadat/marketplace/internal/infrastructure/email"
	"github.com/nhadat/marketplace/internal/infrastructure/permission"
	"github.com/nhadat/marketplace/internal/infrastructure/ratelimit"
	"github.com/nhadat/marketplace/internal/infrastructure/realtime"
	"github.com/nhadat/marketplace/internal/infrastructure/storage"
	"github.com/nhadat/marketplace/internal/interfaces/http/middleware"
	"github.com/nhadat/marketplace/internal/shared/services/markdown"
)

// services groups infrastructure adapters shared by use cases and middleware.
type services struct {
	sessions     *auth.SessionService
	google       *auth.GoogleClient
	hasher       *auth.BcryptHasher
	enforcer     *permission.Enforcer
	renderer     markdown.Renderer
	notifier     *email.ModerationNotifier
	images       *storage.LocalImageStore
	hub          *realtime.Hub
	stateStore   *cache.RedisStateStore
	packageCache usecases.PackageCache
}

// ============================================================
// Section 1: Infrastructure - Repositories, Auth, Storage, Caches
// ============================================================

func (c *Container) initInfrastructure() error {
	cfg := c.cfg
	log := c.log

	c.repos = newRepositories(c.db, log)

	enforcer, err := permission.NewEnforcer(c.db, log)
	if err != nil {
		return fmt.Errorf("failed to create policy enforcer: %w", err)
	}

	images, err := storage.NewLocalImageStore(cfg.Upload.Dir, cfg.Upload.PublicPath, cfg.Upload.MaxFileBytes, log)
	if err != nil {
		return fmt.Errorf("failed to prepare upload directory: %w", err)
	}

	renderer := markdown.NewRenderer()

	c.svcs = &services{
		sessions: auth.NewSessionService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.SessionTTL()),
		google: auth.NewGoogleClient(auth.GoogleConfig{
			ClientID:     cfg.OAuth.Google.ClientID,
			ClientSecret: cfg.OAuth.Google.ClientSecret,
			RedirectURL:  cfg.OAuth.Google.RedirectURL,
		}),
		hasher:   auth.NewBcryptHasher(0),
		enforcer: enforcer,
		renderer: renderer,
		notifier: email.NewModerationNotifier(cfg.Email, renderer, log),
		images:   images,
		hub:      realtime.NewHub(log),
	}

	// Redis-backed pieces stay unset (untyped nil) without Redis so the
	// consumers see a nil interface.
	if c.redis != nil {
		c.svcs.stateStore = cache.NewRedisStateStore(c.redis)
		c.svcs.packageCache = cache.NewRedisPackageCache(c.redis)
	} else {
		log.Warnw("redis disabled: package cache, oauth code flow and ip rate limiting are off")
	}

	if !c.svcs.google.Configured() {
		log.Warnw("google oauth client is not configured, sign-in will fail")
	}

	return nil
}

// ============================================================
// Section 2: Middlewares
// ============================================================

func (c *Container) initMiddlewares() {
	cfg := c.cfg
	log := c.log

	c.authMiddleware = middleware.NewAuthMiddleware(c.svcs.sessions, c.repos.userRepo, cfg.Auth.Cookie, log)
	c.permissionMiddleware = middleware.NewPermissionMiddleware(c.svcs.enforcer, log)

	c.chatLimiter = middleware.NewRateLimiter(
		ratelimit.NewLocalLimiter(cfg.RateLimit.ChatPerMinute, cfg.RateLimit.ChatBurst),
		middleware.ByUser,
		"Sending messages too quickly, slow down",
		log,
	)

	if c.redis != nil {
		c.apiLimiter = middleware.NewRateLimiter(
			ratelimit.NewRedisLimiter(c.redis, "ratelimit:api", cfg.RateLimit.RequestsPerWindow, cfg.RateLimit.Window()),
			middleware.ByClientIP,
			"Too many requests, please try again later",
			log,
		)
	}
}
