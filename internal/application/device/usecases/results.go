package usecases

import "helpdesk/internal/domain/device"

type DeviceResult struct {
	ID              uint
	Name            string
	DeviceTypeID    *uint
	InventoryNumber *string
}

func newDeviceResult(d *device.Device) *DeviceResult {
	return &DeviceResult{
		ID:              d.ID(),
		Name:            d.Name(),
		DeviceTypeID:    d.DeviceTypeID(),
		InventoryNumber: d.InventoryNumber(),
	}
}
