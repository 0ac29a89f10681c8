package migration

import (
	"fmt"

	"gorm.io/gorm"

	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/logger"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

// Seed inserts the baseline reference data: the three roles the
// authorization tiers map onto and the default workflow entries.
// Existing rows are left alone, so seeding is idempotent.
func Seed(db *gorm.DB, log logger.Interface) error {
	roles := []models.RoleModel{
		{ID: 1, Name: "admin", Description: strPtr("Full administrative access")},
		{ID: 2, Name: "technician", Description: strPtr("Handles assigned tickets")},
		{ID: 3, Name: "user", Description: strPtr("Files and tracks own tickets")},
	}
	for i := range roles {
		role := roles[i]
		if err := db.Where("id = ?", role.ID).FirstOrCreate(&role).Error; err != nil {
			return fmt.Errorf("failed to seed role %q: %w", role.Name, err)
		}
	}

	statuses := []models.StatusModel{
		{ID: 1, Name: "New", DisplayOrder: intPtr(1), IsFinal: false},
		{ID: 2, Name: "In Progress", DisplayOrder: intPtr(2), IsFinal: false},
		{ID: 3, Name: "Closed", DisplayOrder: intPtr(3), IsFinal: true},
	}
	for i := range statuses {
		status := statuses[i]
		if err := db.Where("id = ?", status.ID).FirstOrCreate(&status).Error; err != nil {
			return fmt.Errorf("failed to seed status %q: %w", status.Name, err)
		}
	}

	priorities := []models.PriorityModel{
		{ID: 1, Name: "Low", DisplayOrder: intPtr(1)},
		{ID: 2, Name: "Medium", DisplayOrder: intPtr(2)},
		{ID: 3, Name: "High", DisplayOrder: intPtr(3)},
	}
	for i := range priorities {
		priority := priorities[i]
		if err := db.Where("id = ?", priority.ID).FirstOrCreate(&priority).Error; err != nil {
			return fmt.Errorf("failed to seed priority %q: %w", priority.Name, err)
		}
	}

	log.Infow("reference data seeded",
		"roles", len(roles), "statuses", len(statuses), "priorities", len(priorities))
	return nil
}
