package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"helpdesk/internal/domain/catalog"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/logger"
)

// The three reference data repositories share the same gorm plumbing;
// they differ only in model and ordering.

type DeviceTypeRepository struct {
	db     *gorm.DB
	mapper mappers.CatalogMapper
	logger logger.Interface
}

func NewDeviceTypeRepository(db *gorm.DB, logger logger.Interface) catalog.DeviceTypeRepository {
	return &DeviceTypeRepository{
		db:     db,
		mapper: mappers.NewCatalogMapper(),
		logger: logger,
	}
}

func (r *DeviceTypeRepository) Create(ctx context.Context, deviceType *catalog.DeviceType) error {
	model := r.mapper.DeviceTypeToModel(deviceType)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create device type", "name", model.Name, "error", err)
		return fmt.Errorf("failed to create device type: %w", err)
	}

	if err := deviceType.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set device type ID: %w", err)
	}
	return nil
}

func (r *DeviceTypeRepository) GetByID(ctx context.Context, id uint) (*catalog.DeviceType, error) {
	var model models.DeviceTypeModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get device type: %w", err)
	}

	return r.mapper.DeviceTypeToDomain(&model)
}

func (r *DeviceTypeRepository) GetByName(ctx context.Context, name string) (*catalog.DeviceType, error) {
	var model models.DeviceTypeModel

	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get device type: %w", err)
	}

	return r.mapper.DeviceTypeToDomain(&model)
}

func (r *DeviceTypeRepository) Update(ctx context.Context, deviceType *catalog.DeviceType) error {
	model := r.mapper.DeviceTypeToModel(deviceType)

	result := r.db.WithContext(ctx).Model(&models.DeviceTypeModel{}).
		Where("id = ?", model.ID).
		Update("name", model.Name)
	if result.Error != nil {
		return fmt.Errorf("failed to update device type: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *DeviceTypeRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.DeviceTypeModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete device type: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *DeviceTypeRepository) List(ctx context.Context, skip, limit int) ([]*catalog.DeviceType, error) {
	var typeModels []*models.DeviceTypeModel

	if err := r.db.WithContext(ctx).Order("name ASC").
		Offset(skip).Limit(limit).
		Find(&typeModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list device types: %w", err)
	}

	types := make([]*catalog.DeviceType, 0, len(typeModels))
	for _, model := range typeModels {
		entity, err := r.mapper.DeviceTypeToDomain(model)
		if err != nil {
			return nil, err
		}
		types = append(types, entity)
	}
	return types, nil
}

type PriorityRepository struct {
	db     *gorm.DB
	mapper mappers.CatalogMapper
	logger logger.Interface
}

func NewPriorityRepository(db *gorm.DB, logger logger.Interface) catalog.PriorityRepository {
	return &PriorityRepository{
		db:     db,
		mapper: mappers.NewCatalogMapper(),
		logger: logger,
	}
}

func (r *PriorityRepository) Create(ctx context.Context, priority *catalog.Priority) error {
	model := r.mapper.PriorityToModel(priority)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create priority", "name", model.Name, "error", err)
		return fmt.Errorf("failed to create priority: %w", err)
	}

	if err := priority.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set priority ID: %w", err)
	}
	return nil
}

func (r *PriorityRepository) GetByID(ctx context.Context, id uint) (*catalog.Priority, error) {
	var model models.PriorityModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get priority: %w", err)
	}

	return r.mapper.PriorityToDomain(&model)
}

func (r *PriorityRepository) GetByName(ctx context.Context, name string) (*catalog.Priority, error) {
	var model models.PriorityModel

	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get priority: %w", err)
	}

	return r.mapper.PriorityToDomain(&model)
}

func (r *PriorityRepository) Update(ctx context.Context, priority *catalog.Priority) error {
	model := r.mapper.PriorityToModel(priority)

	result := r.db.WithContext(ctx).Model(&models.PriorityModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"name":          model.Name,
			"display_order": model.DisplayOrder,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update priority: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *PriorityRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.PriorityModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete priority: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *PriorityRepository) List(ctx context.Context, skip, limit int) ([]*catalog.Priority, error) {
	var priorityModels []*models.PriorityModel

	if err := r.db.WithContext(ctx).
		Order("display_order IS NULL, display_order ASC, name ASC").
		Offset(skip).Limit(limit).
		Find(&priorityModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list priorities: %w", err)
	}

	priorities := make([]*catalog.Priority, 0, len(priorityModels))
	for _, model := range priorityModels {
		entity, err := r.mapper.PriorityToDomain(model)
		if err != nil {
			return nil, err
		}
		priorities = append(priorities, entity)
	}
	return priorities, nil
}

type StatusRepository struct {
	db     *gorm.DB
	mapper mappers.CatalogMapper
	logger logger.Interface
}

func NewStatusRepository(db *gorm.DB, logger logger.Interface) catalog.StatusRepository {
	return &StatusRepository{
		db:     db,
		mapper: mappers.NewCatalogMapper(),
		logger: logger,
	}
}

func (r *StatusRepository) Create(ctx context.Context, status *catalog.Status) error {
	model := r.mapper.StatusToModel(status)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create status", "name", model.Name, "error", err)
		return fmt.Errorf("failed to create status: %w", err)
	}

	if err := status.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set status ID: %w", err)
	}
	return nil
}

func (r *StatusRepository) GetByID(ctx context.Context, id uint) (*catalog.Status, error) {
	var model models.StatusModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get status: %w", err)
	}

	return r.mapper.StatusToDomain(&model)
}

func (r *StatusRepository) GetByName(ctx context.Context, name string) (*catalog.Status, error) {
	var model models.StatusModel

	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get status: %w", err)
	}

	return r.mapper.StatusToDomain(&model)
}

func (r *StatusRepository) Update(ctx context.Context, status *catalog.Status) error {
	model := r.mapper.StatusToModel(status)

	result := r.db.WithContext(ctx).Model(&models.StatusModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"name":          model.Name,
			"display_order": model.DisplayOrder,
			"is_final":      model.IsFinal,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *StatusRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.StatusModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *StatusRepository) List(ctx context.Context, skip, limit int) ([]*catalog.Status, error) {
	var statusModels []*models.StatusModel

	if err := r.db.WithContext(ctx).
		Order("display_order IS NULL, display_order ASC, name ASC").
		Offset(skip).Limit(limit).
		Find(&statusModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list statuses: %w", err)
	}

	statuses := make([]*catalog.Status, 0, len(statusModels))
	for _, model := range statusModels {
		entity, err := r.mapper.StatusToDomain(model)
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, entity)
	}
	return statuses, nil
}
