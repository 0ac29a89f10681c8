// Package catalog holds the reference data entities: device types,
// priorities and statuses. They share the same shape (small lookup
// rows with unique names) and the same lifecycle rules.
package catalog

import (
	"fmt"
	"strings"
)

type DeviceType struct {
	id   uint
	name string
}

func NewDeviceType(name string) (*DeviceType, error) {
	name = strings.TrimSpace(name)
	if len(name) == 0 {
		return nil, fmt.Errorf("device type name is required")
	}
	if len(name) > 255 {
		return nil, fmt.Errorf("device type name exceeds maximum length of 255 characters")
	}

	return &DeviceType{name: name}, nil
}

func ReconstructDeviceType(id uint, name string) (*DeviceType, error) {
	if id == 0 {
		return nil, fmt.Errorf("device type ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("device type name is required")
	}

	return &DeviceType{id: id, name: name}, nil
}

func (d *DeviceType) ID() uint {
	return d.id
}

func (d *DeviceType) Name() string {
	return d.name
}

func (d *DeviceType) SetID(id uint) error {
	if d.id != 0 {
		return fmt.Errorf("device type ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("device type ID cannot be zero")
	}
	d.id = id
	return nil
}

func (d *DeviceType) Rename(name string) error {
	name = strings.TrimSpace(name)
	if len(name) == 0 {
		return fmt.Errorf("device type name is required")
	}
	if len(name) > 255 {
		return fmt.Errorf("device type name exceeds maximum length of 255 characters")
	}
	d.name = name
	return nil
}
