package migration

import (
	"helpdesk/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.RoleModel{},
		&models.UserModel{},
		&models.DeviceTypeModel{},
		&models.DeviceModel{},
		&models.PriorityModel{},
		&models.StatusModel{},
		&models.TicketModel{},
		&models.TechnicianAssignmentModel{},
		&models.FileModel{},
	}
}
