package migration

import (
	"fmt"

	"gorm.io/gorm"

	"helpdesk/internal/shared/logger"
)

// Run applies the schema via gorm AutoMigrate.
func Run(db *gorm.DB, log logger.Interface) error {
	models := AutoMigrateModels()

	log.Infow("starting database migration", "models_count", len(models))

	if err := db.AutoMigrate(models...); err != nil {
		log.Errorw("migration failed", "error", err)
		return fmt.Errorf("migration failed: %w", err)
	}

	log.Infow("database migration completed")
	return nil
}
