package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"helpdesk/internal/domain/device"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/infrastructure/migration"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	log := logger.NewLogger()
	require.NoError(t, migration.Run(db, log))
	require.NoError(t, migration.Seed(db, log))

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string, roleID uint) *user.User {
	t.Helper()

	u, err := user.NewUser(username, "$2a$04$testhash", roleID)
	require.NoError(t, err)
	require.NoError(t, NewUserRepository(db, logger.NewLogger()).Create(context.Background(), u))
	return u
}

func createTestDevice(t *testing.T, db *gorm.DB, id uint, name string) *device.Device {
	t.Helper()

	d, err := device.NewDevice(id, name, nil, nil)
	require.NoError(t, err)
	require.NoError(t, NewDeviceRepository(db, logger.NewLogger()).Create(context.Background(), d))
	return d
}

func createTestTicket(t *testing.T, db *gorm.DB, deviceID, userID uint) *ticket.Ticket {
	t.Helper()

	tk, err := ticket.NewTicket(deviceID, userID, "the printer keeps jamming", 2, 1)
	require.NoError(t, err)
	require.NoError(t, NewTicketRepository(db, logger.NewLogger()).Save(context.Background(), tk))
	return tk
}

func TestTicketRepository_SaveAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db, logger.NewLogger())
	ctx := context.Background()

	author := createTestUser(t, db, "author", 3)
	createTestDevice(t, db, 1001, "Printer HP")

	tk := createTestTicket(t, db, 1001, author.ID())
	assert.NotZero(t, tk.ID())

	found, err := repo.GetByID(ctx, tk.ID())
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, tk.Description(), found.Description())
	assert.Equal(t, author.ID(), found.UserID())

	missing, err := repo.GetByID(ctx, 9999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestTicketRepository_GetDetail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db, logger.NewLogger())
	ctx := context.Background()

	author := createTestUser(t, db, "author", 3)
	tech := createTestUser(t, db, "tech", 2)
	createTestDevice(t, db, 1001, "Printer HP")
	tk := createTestTicket(t, db, 1001, author.ID())

	assignment, err := ticket.NewTechnicianAssignment(tk.ID(), tech.ID())
	require.NoError(t, err)
	require.NoError(t, NewAssignmentRepository(db, logger.NewLogger()).Save(ctx, assignment))

	file, err := ticket.NewFile(tk.ID(), "photo.jpg", "ticket_1/abc.jpg", "image/jpeg", 100)
	require.NoError(t, err)
	require.NoError(t, NewFileRepository(db, logger.NewLogger()).Save(ctx, file))

	detail, err := repo.GetDetail(ctx, tk.ID())
	require.NoError(t, err)
	require.NotNil(t, detail)

	assert.Equal(t, "author", detail.AuthorUsername)
	assert.Equal(t, "Printer HP", detail.DeviceName)
	assert.Equal(t, "New", detail.StatusName)
	assert.False(t, detail.StatusIsFinal)
	assert.Equal(t, "Medium", detail.PriorityName)
	require.Len(t, detail.Assignments, 1)
	assert.Equal(t, "tech", detail.Assignments[0].TechnicianUsername)
	require.Len(t, detail.Files, 1)
	assert.Equal(t, "photo.jpg", detail.Files[0].FileName())
}

func TestTicketRepository_ListFilters(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db, logger.NewLogger())
	ctx := context.Background()

	alice := createTestUser(t, db, "alice", 3)
	bob := createTestUser(t, db, "bob", 3)
	createTestDevice(t, db, 1001, "Printer")
	createTestDevice(t, db, 1002, "Laptop")

	createTestTicket(t, db, 1001, alice.ID())
	createTestTicket(t, db, 1002, alice.ID())
	createTestTicket(t, db, 1001, bob.ID())

	aliceID := alice.ID()
	results, total, err := repo.List(ctx, ticket.Filter{UserID: &aliceID, Limit: 100})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, results, 2)

	deviceID := uint(1001)
	_, total, err = repo.List(ctx, ticket.Filter{DeviceID: &deviceID, Limit: 100})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)

	results, total, err = repo.List(ctx, ticket.Filter{Search: "PRINTER", Limit: 100})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total, "search is case-insensitive over descriptions")
	assert.Len(t, results, 3)

	_, total, err = repo.List(ctx, ticket.Filter{Skip: 2, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
}

func TestTicketRepository_ListSortColumns(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db, logger.NewLogger())
	ctx := context.Background()

	alice := createTestUser(t, db, "alice", 3)
	bob := createTestUser(t, db, "bob", 3)
	createTestDevice(t, db, 1001, "Printer")
	createTestDevice(t, db, 1002, "Laptop")

	createTestTicket(t, db, 1002, bob.ID())
	createTestTicket(t, db, 1001, alice.ID())

	results, _, err := repo.List(ctx, ticket.Filter{SortBy: "user_id", SortOrder: "asc", Limit: 100})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, alice.ID(), results[0].UserID())
	assert.Equal(t, bob.ID(), results[1].UserID())

	results, _, err = repo.List(ctx, ticket.Filter{SortBy: "device_id", SortOrder: "desc", Limit: 100})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, uint(1002), results[0].DeviceID())

	results, _, err = repo.List(ctx, ticket.Filter{SortBy: "ticket_id", SortOrder: "asc", Limit: 100})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Less(t, results[0].ID(), results[1].ID())

	// unknown columns fall back to newest-first rather than erroring
	_, _, err = repo.List(ctx, ticket.Filter{SortBy: "description; DROP TABLE tickets", Limit: 100})
	require.NoError(t, err)
}

func TestTicketRepository_UpdateClose(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db, logger.NewLogger())
	ctx := context.Background()

	author := createTestUser(t, db, "author", 3)
	createTestDevice(t, db, 1001, "Printer")
	tk := createTestTicket(t, db, 1001, author.ID())

	notes := "swapped the fuser unit"
	require.NoError(t, tk.ChangeStatus(3, true, &notes))
	require.NoError(t, repo.Update(ctx, tk))

	found, err := repo.GetByID(ctx, tk.ID())
	require.NoError(t, err)
	assert.True(t, found.IsClosed())
	assert.Equal(t, notes, *found.ResolutionNotes())
	assert.NotNil(t, found.ClosedAt())
}

func TestTicketRepository_DeleteCascades(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db, logger.NewLogger())
	fileRepo := NewFileRepository(db, logger.NewLogger())
	ctx := context.Background()

	author := createTestUser(t, db, "author", 3)
	createTestDevice(t, db, 1001, "Printer")
	tk := createTestTicket(t, db, 1001, author.ID())

	file, err := ticket.NewFile(tk.ID(), "a.txt", "ticket_1/a.txt", "text/plain", 1)
	require.NoError(t, err)
	require.NoError(t, fileRepo.Save(ctx, file))

	require.NoError(t, repo.Delete(ctx, tk.ID()))

	found, err := repo.GetByID(ctx, tk.ID())
	require.NoError(t, err)
	assert.Nil(t, found)

	files, err := fileRepo.ListByTicketID(ctx, tk.ID())
	require.NoError(t, err)
	assert.Empty(t, files)

	assert.Equal(t, gorm.ErrRecordNotFound, repo.Delete(ctx, tk.ID()))
}

func TestAssignmentRepository_DuplicateRejected(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAssignmentRepository(db, logger.NewLogger())
	ctx := context.Background()

	author := createTestUser(t, db, "author", 3)
	tech := createTestUser(t, db, "tech", 2)
	createTestDevice(t, db, 1001, "Printer")
	tk := createTestTicket(t, db, 1001, author.ID())

	first, err := ticket.NewTechnicianAssignment(tk.ID(), tech.ID())
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, first))

	second, err := ticket.NewTechnicianAssignment(tk.ID(), tech.ID())
	require.NoError(t, err)
	err = repo.Save(ctx, second)
	require.Error(t, err)
	assert.True(t, errors.IsDuplicateError(err), "unique index violation should look like a duplicate")
}

func TestUserRepository_DuplicateUsername(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db, logger.NewLogger())
	ctx := context.Background()

	createTestUser(t, db, "jsmith", 3)

	dup, err := user.NewUser("jsmith", "$2a$04$other", 3)
	require.NoError(t, err)
	err = repo.Create(ctx, dup)
	require.Error(t, err)
	assert.True(t, errors.IsDuplicateError(err))
}

func TestUserRepository_CountByRoleID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db, logger.NewLogger())
	ctx := context.Background()

	createTestUser(t, db, "a", 3)
	createTestUser(t, db, "b", 3)
	createTestUser(t, db, "c", 2)

	count, err := repo.CountByRoleID(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	count, err = repo.CountByRoleID(ctx, 1)
	require.NoError(t, err)
	assert.Zero(t, count)
}
