package usecases

import (
	"context"

	"helpdesk/internal/domain/catalog"
	"helpdesk/internal/domain/device"
	"helpdesk/internal/domain/ticket"
)

type mockDeviceTypeRepository struct {
	CreateFunc    func(ctx context.Context, dt *catalog.DeviceType) error
	GetByIDFunc   func(ctx context.Context, id uint) (*catalog.DeviceType, error)
	GetByNameFunc func(ctx context.Context, name string) (*catalog.DeviceType, error)
	UpdateFunc    func(ctx context.Context, dt *catalog.DeviceType) error
	DeleteFunc    func(ctx context.Context, id uint) error
	ListFunc      func(ctx context.Context, skip, limit int) ([]*catalog.DeviceType, error)
}

func (m *mockDeviceTypeRepository) Create(ctx context.Context, dt *catalog.DeviceType) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, dt)
	}
	return nil
}

func (m *mockDeviceTypeRepository) GetByID(ctx context.Context, id uint) (*catalog.DeviceType, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockDeviceTypeRepository) GetByName(ctx context.Context, name string) (*catalog.DeviceType, error) {
	if m.GetByNameFunc != nil {
		return m.GetByNameFunc(ctx, name)
	}
	return nil, nil
}

func (m *mockDeviceTypeRepository) Update(ctx context.Context, dt *catalog.DeviceType) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, dt)
	}
	return nil
}

func (m *mockDeviceTypeRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockDeviceTypeRepository) List(ctx context.Context, skip, limit int) ([]*catalog.DeviceType, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, skip, limit)
	}
	return nil, nil
}

type mockPriorityRepository struct {
	CreateFunc    func(ctx context.Context, p *catalog.Priority) error
	GetByIDFunc   func(ctx context.Context, id uint) (*catalog.Priority, error)
	GetByNameFunc func(ctx context.Context, name string) (*catalog.Priority, error)
	UpdateFunc    func(ctx context.Context, p *catalog.Priority) error
	DeleteFunc    func(ctx context.Context, id uint) error
	ListFunc      func(ctx context.Context, skip, limit int) ([]*catalog.Priority, error)
}

func (m *mockPriorityRepository) Create(ctx context.Context, p *catalog.Priority) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, p)
	}
	return nil
}

func (m *mockPriorityRepository) GetByID(ctx context.Context, id uint) (*catalog.Priority, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockPriorityRepository) GetByName(ctx context.Context, name string) (*catalog.Priority, error) {
	if m.GetByNameFunc != nil {
		return m.GetByNameFunc(ctx, name)
	}
	return nil, nil
}

func (m *mockPriorityRepository) Update(ctx context.Context, p *catalog.Priority) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, p)
	}
	return nil
}

func (m *mockPriorityRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockPriorityRepository) List(ctx context.Context, skip, limit int) ([]*catalog.Priority, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, skip, limit)
	}
	return nil, nil
}

type mockStatusRepository struct {
	CreateFunc    func(ctx context.Context, s *catalog.Status) error
	GetByIDFunc   func(ctx context.Context, id uint) (*catalog.Status, error)
	GetByNameFunc func(ctx context.Context, name string) (*catalog.Status, error)
	UpdateFunc    func(ctx context.Context, s *catalog.Status) error
	DeleteFunc    func(ctx context.Context, id uint) error
	ListFunc      func(ctx context.Context, skip, limit int) ([]*catalog.Status, error)
}

func (m *mockStatusRepository) Create(ctx context.Context, s *catalog.Status) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, s)
	}
	return nil
}

func (m *mockStatusRepository) GetByID(ctx context.Context, id uint) (*catalog.Status, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockStatusRepository) GetByName(ctx context.Context, name string) (*catalog.Status, error) {
	if m.GetByNameFunc != nil {
		return m.GetByNameFunc(ctx, name)
	}
	return nil, nil
}

func (m *mockStatusRepository) Update(ctx context.Context, s *catalog.Status) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, s)
	}
	return nil
}

func (m *mockStatusRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockStatusRepository) List(ctx context.Context, skip, limit int) ([]*catalog.Status, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, skip, limit)
	}
	return nil, nil
}

type mockDeviceRepository struct {
	CreateFunc               func(ctx context.Context, d *device.Device) error
	GetByIDFunc              func(ctx context.Context, id uint) (*device.Device, error)
	GetByInventoryNumberFunc func(ctx context.Context, inventoryNumber string) (*device.Device, error)
	UpdateFunc               func(ctx context.Context, d *device.Device) error
	DeleteFunc               func(ctx context.Context, id uint) error
	ListFunc                 func(ctx context.Context, filter device.ListFilter) ([]*device.Device, int64, error)
	ExistsFunc               func(ctx context.Context, id uint) (bool, error)
	CountByDeviceTypeIDFunc  func(ctx context.Context, deviceTypeID uint) (int64, error)
}

func (m *mockDeviceRepository) Create(ctx context.Context, d *device.Device) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, d)
	}
	return nil
}

func (m *mockDeviceRepository) GetByID(ctx context.Context, id uint) (*device.Device, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockDeviceRepository) GetByInventoryNumber(ctx context.Context, inventoryNumber string) (*device.Device, error) {
	if m.GetByInventoryNumberFunc != nil {
		return m.GetByInventoryNumberFunc(ctx, inventoryNumber)
	}
	return nil, nil
}

func (m *mockDeviceRepository) Update(ctx context.Context, d *device.Device) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, d)
	}
	return nil
}

func (m *mockDeviceRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockDeviceRepository) List(ctx context.Context, filter device.ListFilter) ([]*device.Device, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockDeviceRepository) Exists(ctx context.Context, id uint) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, id)
	}
	return false, nil
}

func (m *mockDeviceRepository) CountByDeviceTypeID(ctx context.Context, deviceTypeID uint) (int64, error) {
	if m.CountByDeviceTypeIDFunc != nil {
		return m.CountByDeviceTypeIDFunc(ctx, deviceTypeID)
	}
	return 0, nil
}

type mockTicketRepository struct {
	SaveFunc              func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc            func(ctx context.Context, t *ticket.Ticket) error
	DeleteFunc            func(ctx context.Context, ticketID uint) error
	GetByIDFunc           func(ctx context.Context, ticketID uint) (*ticket.Ticket, error)
	GetDetailFunc         func(ctx context.Context, ticketID uint) (*ticket.Detail, error)
	ListFunc              func(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error)
	ListDetailsFunc       func(ctx context.Context, filter ticket.Filter) ([]*ticket.Detail, int64, error)
	CountByDeviceIDFunc   func(ctx context.Context, deviceID uint) (int64, error)
	CountByStatusIDFunc   func(ctx context.Context, statusID uint) (int64, error)
	CountByPriorityIDFunc func(ctx context.Context, priorityID uint) (int64, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Delete(ctx context.Context, ticketID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, ticketID)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockTicketRepository) GetDetail(ctx context.Context, ticketID uint) (*ticket.Detail, error) {
	if m.GetDetailFunc != nil {
		return m.GetDetailFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockTicketRepository) ListDetails(ctx context.Context, filter ticket.Filter) ([]*ticket.Detail, int64, error) {
	if m.ListDetailsFunc != nil {
		return m.ListDetailsFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockTicketRepository) CountByDeviceID(ctx context.Context, deviceID uint) (int64, error) {
	if m.CountByDeviceIDFunc != nil {
		return m.CountByDeviceIDFunc(ctx, deviceID)
	}
	return 0, nil
}

func (m *mockTicketRepository) CountByStatusID(ctx context.Context, statusID uint) (int64, error) {
	if m.CountByStatusIDFunc != nil {
		return m.CountByStatusIDFunc(ctx, statusID)
	}
	return 0, nil
}

func (m *mockTicketRepository) CountByPriorityID(ctx context.Context, priorityID uint) (int64, error) {
	if m.CountByPriorityIDFunc != nil {
		return m.CountByPriorityIDFunc(ctx, priorityID)
	}
	return 0, nil
}
