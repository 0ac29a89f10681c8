package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"helpdesk/internal/domain/device"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/logger"
)

// DeviceRepository implements the device registry on gorm.
type DeviceRepository struct {
	db     *gorm.DB
	mapper mappers.DeviceMapper
	logger logger.Interface
}

func NewDeviceRepository(db *gorm.DB, logger logger.Interface) device.Repository {
	return &DeviceRepository{
		db:     db,
		mapper: mappers.NewDeviceMapper(),
		logger: logger,
	}
}

func (r *DeviceRepository) Create(ctx context.Context, deviceEntity *device.Device) error {
	model := r.mapper.ToModel(deviceEntity)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create device", "id", model.ID, "error", err)
		return fmt.Errorf("failed to create device: %w", err)
	}

	r.logger.Infow("device created", "id", model.ID, "name", model.Name)
	return nil
}

func (r *DeviceRepository) GetByID(ctx context.Context, id uint) (*device.Device, error) {
	var model models.DeviceModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get device by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get device: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *DeviceRepository) GetByInventoryNumber(ctx context.Context, inventoryNumber string) (*device.Device, error) {
	var model models.DeviceModel

	if err := r.db.WithContext(ctx).Where("inventory_number = ?", inventoryNumber).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get device: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *DeviceRepository) Update(ctx context.Context, deviceEntity *device.Device) error {
	model := r.mapper.ToModel(deviceEntity)

	result := r.db.WithContext(ctx).Model(&models.DeviceModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"name":             model.Name,
			"device_type_id":   model.DeviceTypeID,
			"inventory_number": model.InventoryNumber,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update device", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update device: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *DeviceRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.DeviceModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete device", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete device: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *DeviceRepository) List(ctx context.Context, filter device.ListFilter) ([]*device.Device, int64, error) {
	var deviceModels []*models.DeviceModel
	var total int64

	query := r.db.WithContext(ctx).Model(&models.DeviceModel{})

	if filter.Name != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filter.Name)+"%")
	}
	if filter.DeviceTypeID != nil {
		query = query.Where("device_type_id = ?", *filter.DeviceTypeID)
	}

	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count devices", "error", err)
		return nil, 0, fmt.Errorf("failed to count devices: %w", err)
	}

	query = query.Order("id ASC").Offset(filter.Skip).Limit(filter.Limit)

	if err := query.Find(&deviceModels).Error; err != nil {
		r.logger.Errorw("failed to list devices", "error", err)
		return nil, 0, fmt.Errorf("failed to list devices: %w", err)
	}

	devices := make([]*device.Device, 0, len(deviceModels))
	for _, model := range deviceModels {
		entity, err := r.mapper.ToDomain(model)
		if err != nil {
			return nil, 0, err
		}
		devices = append(devices, entity)
	}

	return devices, total, nil
}

func (r *DeviceRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.DeviceModel{}).
		Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check device existence: %w", err)
	}
	return count > 0, nil
}

func (r *DeviceRepository) CountByDeviceTypeID(ctx context.Context, deviceTypeID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.DeviceModel{}).
		Where("device_type_id = ?", deviceTypeID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count devices by type: %w", err)
	}
	return count, nil
}
