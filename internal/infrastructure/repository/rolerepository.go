package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/logger"
)

// RoleRepository implements the user role repository on gorm.
type RoleRepository struct {
	db     *gorm.DB
	mapper mappers.UserMapper
	logger logger.Interface
}

func NewRoleRepository(db *gorm.DB, logger logger.Interface) user.RoleRepository {
	return &RoleRepository{
		db:     db,
		mapper: mappers.NewUserMapper(),
		logger: logger,
	}
}

func (r *RoleRepository) Create(ctx context.Context, role *user.Role) error {
	model := r.mapper.RoleToModel(role)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create role", "name", model.Name, "error", err)
		return fmt.Errorf("failed to create role: %w", err)
	}

	if err := role.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set role ID: %w", err)
	}

	return nil
}

func (r *RoleRepository) GetByID(ctx context.Context, id uint) (*user.Role, error) {
	var model models.RoleModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get role by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get role: %w", err)
	}

	return r.mapper.RoleToDomain(&model)
}

func (r *RoleRepository) GetByName(ctx context.Context, name string) (*user.Role, error) {
	var model models.RoleModel

	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get role by name", "name", name, "error", err)
		return nil, fmt.Errorf("failed to get role: %w", err)
	}

	return r.mapper.RoleToDomain(&model)
}

func (r *RoleRepository) Update(ctx context.Context, role *user.Role) error {
	model := r.mapper.RoleToModel(role)

	result := r.db.WithContext(ctx).Model(&models.RoleModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"name":        model.Name,
			"description": model.Description,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update role", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update role: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *RoleRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.RoleModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete role", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete role: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *RoleRepository) List(ctx context.Context, skip, limit int) ([]*user.Role, error) {
	var roleModels []*models.RoleModel

	if err := r.db.WithContext(ctx).Order("id ASC").
		Offset(skip).Limit(limit).
		Find(&roleModels).Error; err != nil {
		r.logger.Errorw("failed to list roles", "error", err)
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}

	roles := make([]*user.Role, 0, len(roleModels))
	for _, model := range roleModels {
		role, err := r.mapper.RoleToDomain(model)
		if err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	return roles, nil
}
