package migrate

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nhadat/marketplace/internal/infrastructure/config"
	"github.com/nhadat/marketplace/internal/infrastructure/database"
	"github.com/nhadat/marketplace/internal/infrastructure/migration"
	"github.com/nhadat/marketplace/internal/shared/constants"
	"github.com/nhadat/marketplace/internal/shared/logger"
)

// NewCommand groups the schema tools: goose-backed up/down/status, a file
// generator and a GORM AutoMigrate escape hatch for local databases.
func NewCommand() *cobra.Command {
	var env string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the marketplace schema",
	}
	cmd.PersistentFlags().StringVarP(&env, "env", "e", constants.EnvDevelopment, "config environment to load")

	cmd.AddCommand(
		upCommand(&env),
		downCommand(&env),
		statusCommand(&env),
		createCommand(),
		autoCommand(&env),
	)
	return cmd
}

func upCommand(env *string) *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply every pending migration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withMigrator(*env, func(log logger.Interface, m *migration.Migrator) error {
				if err := m.Up(cmd.Context()); err != nil {
					return fmt.Errorf("migrate up: %w", err)
				}
				log.Infow("schema is up to date", "environment", *env)
				return nil
			})
		},
	}
}

func downCommand(env *string) *cobra.Command {
	var steps int
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Roll back the most recent migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withMigrator(*env, func(log logger.Interface, m *migration.Migrator) error {
				if err := m.Down(cmd.Context(), steps); err != nil {
					return fmt.Errorf("migrate down: %w", err)
				}
				log.Infow("rolled back", "environment", *env, "steps", steps)
				return nil
			})
		},
	}
	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "how many migrations to roll back")
	return cmd
}

func statusCommand(env *string) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "List migrations and whether they are applied",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withMigrator(*env, func(_ logger.Interface, m *migration.Migrator) error {
				return printStatus(cmd, m, *env)
			})
		},
	}
}

func printStatus(cmd *cobra.Command, m *migration.Migrator, env string) error {
	rows, err := m.Status(cmd.Context())
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "schema status (%s)\n", env)
	for _, r := range rows {
		mark := " "
		if r.Applied {
			mark = "x"
		}
		fmt.Fprintf(out, "[%s] %05d %s\n", mark, r.Version, r.File)
	}
	return nil
}

func createCommand() *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Write an empty SQL migration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := migration.Create(migration.ScriptsDir, name); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created %q in %s\n", name, migration.ScriptsDir)
			return nil
		},
	}
	cmd.Flags().StringVarP(&name, "name", "n", "", "migration name")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func autoCommand(env *string) *cobra.Command {
	return &cobra.Command{
		Use:   "auto",
		Short: "Create or alter tables straight from the GORM models",
		RunE: func(cmd *cobra.Command, _ []string) error {
			log, err := connect(*env)
			if err != nil {
				return err
			}
			defer database.Close()

			if *env == constants.EnvProduction {
				log.Warnw("auto-migrating a production database, prefer `migrate up`")
			}
			if err := migration.AutoMigrate(database.Get(), log); err != nil {
				return fmt.Errorf("auto-migrate: %w", err)
			}
			log.Infow("models synced")
			return nil
		},
	}
}

func withMigrator(env string, fn func(logger.Interface, *migration.Migrator) error) error {
	log, err := connect(env)
	if err != nil {
		return err
	}
	defer database.Close()

	sqlDB, err := database.Get().DB()
	if err != nil {
		return fmt.Errorf("unwrap sql.DB: %w", err)
	}
	m, err := migration.NewMigrator(sqlDB, log)
	if err != nil {
		return err
	}
	return fn(log, m)
}

func connect(env string) (logger.Interface, error) {
	cfg, err := config.Load(env)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := logger.Init(&cfg.Logger, false); err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	if err := database.Init(&cfg.Database); err != nil {
		return nil, err
	}
	return logger.NewLogger(), nil
}

