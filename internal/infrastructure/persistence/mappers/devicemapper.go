package mappers

import (
	"fmt"

	"helpdesk/internal/domain/device"
	"helpdesk/internal/infrastructure/persistence/models"
)

// DeviceMapper handles the conversion between device entities and persistence models.
type DeviceMapper interface {
	ToModel(d *device.Device) *models.DeviceModel
	ToDomain(model *models.DeviceModel) (*device.Device, error)
}

type DeviceMapperImpl struct{}

func NewDeviceMapper() DeviceMapper {
	return &DeviceMapperImpl{}
}

func (m *DeviceMapperImpl) ToModel(d *device.Device) *models.DeviceModel {
	return &models.DeviceModel{
		ID:              d.ID(),
		Name:            d.Name(),
		DeviceTypeID:    d.DeviceTypeID(),
		InventoryNumber: d.InventoryNumber(),
	}
}

func (m *DeviceMapperImpl) ToDomain(model *models.DeviceModel) (*device.Device, error) {
	entity, err := device.ReconstructDevice(model.ID, model.Name, model.DeviceTypeID, model.InventoryNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct device: %w", err)
	}
	return entity, nil
}
