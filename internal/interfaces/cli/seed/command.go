package seed

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	orderUsecases "github.com/nhadat/marketplace/internal/application/order/usecases"
	userUsecases "github.com/nhadat/marketplace/internal/application/user/usecases"
	"github.com/nhadat/marketplace/internal/infrastructure/auth"
	"github.com/nhadat/marketplace/internal/infrastructure/cache"
	"github.com/nhadat/marketplace/internal/infrastructure/config"
	"github.com/nhadat/marketplace/internal/infrastructure/database"
	"github.com/nhadat/marketplace/internal/infrastructure/permission"
	"github.com/nhadat/marketplace/internal/infrastructure/repository"
	"github.com/nhadat/marketplace/internal/shared/constants"
	"github.com/nhadat/marketplace/internal/shared/logger"
)

var (
	env          string
	packagesFile string
	skipAdmin    bool
)

// catalogFile is the layout of the --packages YAML file.
type catalogFile struct {
	Packages []orderUsecases.PackageSeed `yaml:"packages"`
}

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed reference data",
		Long:  `Load the default access policies, create the configured administrator and upsert the package catalog.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")
	cmd.Flags().StringVarP(&packagesFile, "packages", "p", "", "YAML file with the package catalog (default: built-in catalog)")
	cmd.Flags().BoolVar(&skipAdmin, "skip-admin", false, "Do not create the default administrator")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.Init(&cfg.Logger, false); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	seeds := orderUsecases.DefaultCatalog()
	if packagesFile != "" {
		seeds, err = loadCatalog(packagesFile)
		if err != nil {
			return err
		}
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()
	db := database.Get()

	enforcer, err := permission.NewEnforcer(db, log)
	if err != nil {
		return err
	}
	if err := enforcer.SeedDefaults(); err != nil {
		return err
	}

	if !skipAdmin {
		userRepo := repository.NewUserRepository(db, log)
		seedAdmin := userUsecases.NewSeedAdminUseCase(userRepo, auth.NewBcryptHasher(0), log)
		created, err := seedAdmin.Execute(ctx, userUsecases.SeedAdminCommand{
			Email:    cfg.Admin.Email,
			Password: cfg.Admin.Password,
			Name:     cfg.Admin.Name,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "admin %s: created=%t\n", cfg.Admin.Email, created)
	}

	var packageCache orderUsecases.PackageCache
	if cfg.Redis.Enabled {
		client, err := database.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			log.Warnw("redis unreachable, cached package list will expire on its own", "error", err)
		} else {
			defer client.Close()
			packageCache = cache.NewRedisPackageCache(client)
		}
	}

	seedPackages := orderUsecases.NewSeedPackagesUseCase(repository.NewPackageRepository(db), packageCache, log)
	if err := seedPackages.Execute(ctx, seeds); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "packages seeded: %d\n", len(seeds))
	return nil
}

func loadCatalog(path string) ([]orderUsecases.PackageSeed, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read package catalog: %w", err)
	}
	var file catalogFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse package catalog: %w", err)
	}
	if len(file.Packages) == 0 {
		return nil, fmt.Errorf("package catalog %s is empty", path)
	}
	return file.Packages, nil
}
