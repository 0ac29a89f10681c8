package usecases

import (
	"context"
	"io"

	"helpdesk/internal/domain/catalog"
	"helpdesk/internal/domain/device"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/domain/user"
)

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

type mockAssignmentRepository struct {
	SaveFunc                        func(ctx context.Context, a *ticket.TechnicianAssignment) error
	DeleteFunc                      func(ctx context.Context, assignmentID uint) error
	DeleteByTicketAndTechnicianFunc func(ctx context.Context, ticketID, technicianID uint) error
	GetByTicketAndTechnicianFunc    func(ctx context.Context, ticketID, technicianID uint) (*ticket.TechnicianAssignment, error)
	ListByTicketIDFunc              func(ctx context.Context, ticketID uint) ([]*ticket.TechnicianAssignment, error)
}

func (m *mockAssignmentRepository) Save(ctx context.Context, a *ticket.TechnicianAssignment) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, a)
	}
	return nil
}

func (m *mockAssignmentRepository) Delete(ctx context.Context, assignmentID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, assignmentID)
	}
	return nil
}

func (m *mockAssignmentRepository) DeleteByTicketAndTechnician(ctx context.Context, ticketID, technicianID uint) error {
	if m.DeleteByTicketAndTechnicianFunc != nil {
		return m.DeleteByTicketAndTechnicianFunc(ctx, ticketID, technicianID)
	}
	return nil
}

func (m *mockAssignmentRepository) GetByTicketAndTechnician(ctx context.Context, ticketID, technicianID uint) (*ticket.TechnicianAssignment, error) {
	if m.GetByTicketAndTechnicianFunc != nil {
		return m.GetByTicketAndTechnicianFunc(ctx, ticketID, technicianID)
	}
	return nil, nil
}

func (m *mockAssignmentRepository) ListByTicketID(ctx context.Context, ticketID uint) ([]*ticket.TechnicianAssignment, error) {
	if m.ListByTicketIDFunc != nil {
		return m.ListByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

type mockFileRepository struct {
	SaveFunc           func(ctx context.Context, f *ticket.File) error
	GetByIDFunc        func(ctx context.Context, fileID uint) (*ticket.File, error)
	ListByTicketIDFunc func(ctx context.Context, ticketID uint) ([]*ticket.File, error)
	DeleteFunc         func(ctx context.Context, fileID uint) error
}

func (m *mockFileRepository) Save(ctx context.Context, f *ticket.File) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, f)
	}
	return nil
}

func (m *mockFileRepository) GetByID(ctx context.Context, fileID uint) (*ticket.File, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, fileID)
	}
	return nil, nil
}

func (m *mockFileRepository) ListByTicketID(ctx context.Context, ticketID uint) ([]*ticket.File, error) {
	if m.ListByTicketIDFunc != nil {
		return m.ListByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockFileRepository) Delete(ctx context.Context, fileID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, fileID)
	}
	return nil
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

type mockUserRepository struct {
	CreateFunc           func(ctx context.Context, u *user.User) error
	GetByIDFunc          func(ctx context.Context, id uint) (*user.User, error)
	GetByIDsFunc         func(ctx context.Context, ids []uint) ([]*user.User, error)
	GetByUsernameFunc    func(ctx context.Context, username string) (*user.User, error)
	GetByEmailFunc       func(ctx context.Context, email string) (*user.User, error)
	UpdateFunc           func(ctx context.Context, u *user.User) error
	DeleteFunc           func(ctx context.Context, id uint) error
	ListFunc             func(ctx context.Context, filter user.ListFilter) ([]*user.User, int64, error)
	ExistsByUsernameFunc func(ctx context.Context, username string) (bool, error)
	ExistsByEmailFunc    func(ctx context.Context, email string) (bool, error)
	CountByRoleIDFunc    func(ctx context.Context, roleID uint) (int64, error)
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByIDs(ctx context.Context, ids []uint) ([]*user.User, error) {
	if m.GetByIDsFunc != nil {
		return m.GetByIDsFunc(ctx, ids)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	if m.GetByUsernameFunc != nil {
		return m.GetByUsernameFunc(ctx, username)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockUserRepository) List(ctx context.Context, filter user.ListFilter) ([]*user.User, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	if m.ExistsByUsernameFunc != nil {
		return m.ExistsByUsernameFunc(ctx, username)
	}
	return false, nil
}

func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.ExistsByEmailFunc != nil {
		return m.ExistsByEmailFunc(ctx, email)
	}
	return false, nil
}

func (m *mockUserRepository) CountByRoleID(ctx context.Context, roleID uint) (int64, error) {
	if m.CountByRoleIDFunc != nil {
		return m.CountByRoleIDFunc(ctx, roleID)
	}
	return 0, nil
}

type mockRoleRepository struct {
	CreateFunc    func(ctx context.Context, r *user.Role) error
	GetByIDFunc   func(ctx context.Context, id uint) (*user.Role, error)
	GetByNameFunc func(ctx context.Context, name string) (*user.Role, error)
	UpdateFunc    func(ctx context.Context, r *user.Role) error
	DeleteFunc    func(ctx context.Context, id uint) error
	ListFunc      func(ctx context.Context, skip, limit int) ([]*user.Role, error)
}

func (m *mockRoleRepository) Create(ctx context.Context, r *user.Role) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, r)
	}
	return nil
}

func (m *mockRoleRepository) GetByID(ctx context.Context, id uint) (*user.Role, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockRoleRepository) GetByName(ctx context.Context, name string) (*user.Role, error) {
	if m.GetByNameFunc != nil {
		return m.GetByNameFunc(ctx, name)
	}
	return nil, nil
}

func (m *mockRoleRepository) Update(ctx context.Context, r *user.Role) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, r)
	}
	return nil
}

func (m *mockRoleRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockRoleRepository) List(ctx context.Context, skip, limit int) ([]*user.Role, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, skip, limit)
	}
	return nil, nil
}

type mockStore struct {
	SaveFunc   func(ctx context.Context, ticketID uint, originalName string, content io.Reader) (string, int64, error)
	RemoveFunc func(ctx context.Context, storedPath string) error
	RootFunc   func() string
}

func (m *mockStore) Save(ctx context.Context, ticketID uint, originalName string, content io.Reader) (string, int64, error) {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, ticketID, originalName, content)
	}
	return "", 0, nil
}

func (m *mockStore) Remove(ctx context.Context, storedPath string) error {
	if m.RemoveFunc != nil {
		return m.RemoveFunc(ctx, storedPath)
	}
	return nil
}

func (m *mockStore) Root() string {
	if m.RootFunc != nil {
		return m.RootFunc()
	}
	return ""
}
