// Package device models registry entries for the hardware tickets are
// filed against.
package device

import (
	"fmt"
	"strings"
)

// Device is a registry row. The ID comes from the asset system and is
// supplied by the caller, never generated.
type Device struct {
	id              uint
	name            string
	deviceTypeID    *uint
	inventoryNumber *string
}

func NewDevice(id uint, name string, deviceTypeID *uint, inventoryNumber *string) (*Device, error) {
	if id == 0 {
		return nil, fmt.Errorf("device ID is required")
	}
	name = strings.TrimSpace(name)
	if len(name) == 0 {
		return nil, fmt.Errorf("device name is required")
	}
	if len(name) > 255 {
		return nil, fmt.Errorf("device name exceeds maximum length of 255 characters")
	}
	if inventoryNumber != nil && len(*inventoryNumber) > 100 {
		return nil, fmt.Errorf("inventory number exceeds maximum length of 100 characters")
	}

	return &Device{
		id:              id,
		name:            name,
		deviceTypeID:    deviceTypeID,
		inventoryNumber: normalizeInventoryNumber(inventoryNumber),
	}, nil
}

func ReconstructDevice(id uint, name string, deviceTypeID *uint, inventoryNumber *string) (*Device, error) {
	if id == 0 {
		return nil, fmt.Errorf("device ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("device name is required")
	}

	return &Device{
		id:              id,
		name:            name,
		deviceTypeID:    deviceTypeID,
		inventoryNumber: inventoryNumber,
	}, nil
}

func (d *Device) ID() uint {
	return d.id
}

func (d *Device) Name() string {
	return d.name
}

func (d *Device) DeviceTypeID() *uint {
	return d.deviceTypeID
}

func (d *Device) InventoryNumber() *string {
	return d.inventoryNumber
}

func (d *Device) Update(name string, deviceTypeID *uint, inventoryNumber *string) error {
	name = strings.TrimSpace(name)
	if len(name) == 0 {
		return fmt.Errorf("device name is required")
	}
	if len(name) > 255 {
		return fmt.Errorf("device name exceeds maximum length of 255 characters")
	}
	if inventoryNumber != nil && len(*inventoryNumber) > 100 {
		return fmt.Errorf("inventory number exceeds maximum length of 100 characters")
	}

	d.name = name
	d.deviceTypeID = deviceTypeID
	d.inventoryNumber = normalizeInventoryNumber(inventoryNumber)
	return nil
}

// normalizeInventoryNumber maps empty strings to nil so the unique
// index only applies to real values.
func normalizeInventoryNumber(inv *string) *string {
	if inv == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*inv)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
