package migration

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/nhadat/marketplace/internal/infrastructure/persistence/models"
	"github.com/nhadat/marketplace/internal/shared/logger"
)

// AutoMigrate syncs the schema from the gorm models. Development only; other
// environments run the versioned scripts.
func AutoMigrate(db *gorm.DB, log logger.Interface) error {
	all := models.All()
	log.Infow("starting gorm auto migrate", "models_count", len(all))
	if err := db.AutoMigrate(all...); err != nil {
		return fmt.Errorf("auto migrate failed: %w", err)
	}
	log.Infow("gorm auto migrate completed")
	return nil
}
