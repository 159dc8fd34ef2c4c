package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/nhadat/marketplace/internal/infrastructure/config"
	"github.com/nhadat/marketplace/internal/infrastructure/database"
	"github.com/nhadat/marketplace/internal/infrastructure/migration"
	httpRouter "github.com/nhadat/marketplace/internal/interfaces/http"
	"github.com/nhadat/marketplace/internal/shared/constants"
	"github.com/nhadat/marketplace/internal/shared/logger"
)

const shutdownTimeout = 30 * time.Second

var (
	env         string
	autoMigrate bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the marketplace HTTP API with the specified configuration.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Apply pending SQL migrations on startup")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg.Server.Mode = mapEnvToGinMode(cfg.Server.Environment)

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode == gin.DebugMode); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	log.Infow("starting server",
		"environment", cfg.Server.Environment,
		"auto_migrate", autoMigrate)

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := database.Close(); err != nil {
			log.Errorw("failed to close database", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if autoMigrate {
		if err := runMigrations(ctx, log); err != nil {
			return err
		}
	}

	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient, err = database.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer redisClient.Close()
	}

	container, err := httpRouter.NewContainer(cfg, database.Get(), redisClient, log)
	if err != nil {
		return fmt.Errorf("failed to build application: %w", err)
	}
	if err := container.Bootstrap(ctx); err != nil {
		return fmt.Errorf("failed to bootstrap data: %w", err)
	}
	container.SetupRoutes()

	srv := &http.Server{
		Addr:              cfg.Server.GetAddr(),
		Handler:           container.Engine(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Infow("server listening", "address", srv.Addr, "mode", cfg.Server.Mode)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Infow("shutting down server...")

		container.Shutdown()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Errorw("server forced to shutdown", "error", err)
			return err
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	log.Infow("server exited gracefully")
	return nil
}

func runMigrations(ctx context.Context, log logger.Interface) error {
	sqlDB, err := database.Get().DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}
	migrator, err := migration.NewMigrator(sqlDB, log)
	if err != nil {
		return err
	}
	if err := migrator.Up(ctx); err != nil {
		return fmt.Errorf("auto-migration failed: %w", err)
	}
	return nil
}

func mapEnvToGinMode(environment string) string {
	switch environment {
	case "production", "prod", "release":
		return gin.ReleaseMode
	case "test", "testing":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}
