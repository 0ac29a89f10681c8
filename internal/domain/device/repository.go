package device

import "context"

// Repository defines the interface for device registry operations.
// Lookups return (nil, nil) when no row matches.
type Repository interface {
	Create(ctx context.Context, device *Device) error
	GetByID(ctx context.Context, id uint) (*Device, error)
	GetByInventoryNumber(ctx context.Context, inventoryNumber string) (*Device, error)
	Update(ctx context.Context, device *Device) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter ListFilter) ([]*Device, int64, error)
	Exists(ctx context.Context, id uint) (bool, error)
	// CountByDeviceTypeID counts devices referencing the given type.
	CountByDeviceTypeID(ctx context.Context, deviceTypeID uint) (int64, error)
}

// ListFilter represents filtering and pagination options for device list
type ListFilter struct {
	Skip         int    `json:"skip"`
	Limit        int    `json:"limit"`
	Name         string `json:"name,omitempty"`
	DeviceTypeID *uint  `json:"device_type_id,omitempty"`
}
