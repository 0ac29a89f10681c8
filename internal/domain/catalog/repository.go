package catalog

import "context"

// Lookups return (nil, nil) when no row matches.

type DeviceTypeRepository interface {
	Create(ctx context.Context, deviceType *DeviceType) error
	GetByID(ctx context.Context, id uint) (*DeviceType, error)
	GetByName(ctx context.Context, name string) (*DeviceType, error)
	Update(ctx context.Context, deviceType *DeviceType) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, skip, limit int) ([]*DeviceType, error)
}

type PriorityRepository interface {
	Create(ctx context.Context, priority *Priority) error
	GetByID(ctx context.Context, id uint) (*Priority, error)
	GetByName(ctx context.Context, name string) (*Priority, error)
	Update(ctx context.Context, priority *Priority) error
	Delete(ctx context.Context, id uint) error
	// List returns priorities ordered by display_order, then name.
	List(ctx context.Context, skip, limit int) ([]*Priority, error)
}

type StatusRepository interface {
	Create(ctx context.Context, status *Status) error
	GetByID(ctx context.Context, id uint) (*Status, error)
	GetByName(ctx context.Context, name string) (*Status, error)
	Update(ctx context.Context, status *Status) error
	Delete(ctx context.Context, id uint) error
	// List returns statuses ordered by display_order, then name.
	List(ctx context.Context, skip, limit int) ([]*Status, error)
}
