package migration

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"

	"github.com/pressly/goose/v3"

	"github.com/nhadat/marketplace/internal/infrastructure/migration/scripts"
	"github.com/nhadat/marketplace/internal/shared/logger"
)

// ScriptsDir is where `migrate create` writes new migration files.
var ScriptsDir = filepath.Join("internal", "infrastructure", "migration", "scripts")

// Migrator applies the embedded SQL scripts with goose.
type Migrator struct {
	provider *goose.Provider
	logger   logger.Interface
}

func NewMigrator(db *sql.DB, log logger.Interface) (*Migrator, error) {
	provider, err := goose.NewProvider(goose.DialectMySQL, db, scripts.FS)
	if err != nil {
		return nil, fmt.Errorf("failed to create goose provider: %w", err)
	}
	return &Migrator{
		provider: provider,
		logger:   log.With("component", "migration.goose"),
	}, nil
}

func (m *Migrator) Up(ctx context.Context) error {
	current, err := m.provider.GetDBVersion(ctx)
	if err != nil {
		return fmt.Errorf("failed to get current migration version: %w", err)
	}
	m.logger.Infow("starting goose migration", "current_version", current)

	results, err := m.provider.Up(ctx)
	if err != nil {
		m.logger.Errorw("migration failed", "error", err)
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	for _, r := range results {
		m.logger.Infow("migration applied", "version", r.Source.Version, "file", filepath.Base(r.Source.Path), "duration", r.Duration)
	}

	final, err := m.provider.GetDBVersion(ctx)
	if err != nil {
		return fmt.Errorf("failed to get final migration version: %w", err)
	}
	m.logger.Infow("goose migration completed", "from_version", current, "to_version", final)
	return nil
}

// Down rolls back the given number of migrations.
func (m *Migrator) Down(ctx context.Context, steps int) error {
	if steps < 1 {
		steps = 1
	}
	for i := 0; i < steps; i++ {
		result, err := m.provider.Down(ctx)
		if err != nil {
			return fmt.Errorf("failed to roll back migration: %w", err)
		}
		if result == nil || result.Empty {
			break
		}
		m.logger.Infow("migration rolled back", "version", result.Source.Version)
	}
	return nil
}

type Status struct {
	Version int64
	File    string
	Applied bool
}

func (m *Migrator) Status(ctx context.Context) ([]Status, error) {
	statuses, err := m.provider.Status(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get migration status: %w", err)
	}
	out := make([]Status, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, Status{
			Version: s.Source.Version,
			File:    filepath.Base(s.Source.Path),
			Applied: s.State == goose.StateApplied,
		})
	}
	return out, nil
}

// Create writes a new timestamped SQL migration into dir.
func Create(dir, name string) error {
	if name == "" {
		return fmt.Errorf("migration name is required")
	}
	if err := goose.Create(nil, dir, name, "sql"); err != nil {
		return fmt.Errorf("failed to create migration: %w", err)
	}
	return nil
}
