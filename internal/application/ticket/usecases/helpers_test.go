package usecases

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/authorization"
)

func strPtr(v string) *string { return &v }
func uintPtr(v uint) *uint    { return &v }
func boolPtr(v bool) *bool    { return &v }

var (
	adminActor = authorization.Actor{UserID: 1, Username: "root", Role: authorization.RoleAdmin}
	techActor  = authorization.Actor{UserID: 2, Username: "tech", Role: authorization.RoleTechnician}
	userActor  = authorization.Actor{UserID: 3, Username: "alice", Role: authorization.RoleUser}
)

func openTicket(t *testing.T, id, authorID uint) *ticket.Ticket {
	t.Helper()
	now := time.Now()
	tk, err := ticket.ReconstructTicket(id, 10, authorID, "printer does not print", 2, 1, nil, now, now, nil)
	require.NoError(t, err)
	return tk
}

func closedTicket(t *testing.T, id, authorID uint) *ticket.Ticket {
	t.Helper()
	now := time.Now()
	closed := now
	tk, err := ticket.ReconstructTicket(id, 10, authorID, "printer does not print", 2, 3,
		strPtr("replaced toner"), now, now, &closed)
	require.NoError(t, err)
	return tk
}

func detailFor(t *testing.T, tk *ticket.Ticket) *ticket.Detail {
	t.Helper()
	return &ticket.Detail{
		Ticket:         tk,
		AuthorUsername: "alice",
		AuthorFullName: "Alice Cooper",
		DeviceName:     "HP LaserJet",
		StatusName:     "New",
		PriorityName:   "Medium",
	}
}

func technicianUser(t *testing.T, id uint) *user.User {
	t.Helper()
	now := time.Now()
	u, err := user.ReconstructUser(id, "tech", "$2a$04$hash", nil, nil, nil, nil, nil, nil, 2, now, now)
	require.NoError(t, err)
	return u
}

func plainUser(t *testing.T, id uint) *user.User {
	t.Helper()
	now := time.Now()
	u, err := user.ReconstructUser(id, "alice", "$2a$04$hash", nil, nil, nil, nil, nil, nil, 3, now, now)
	require.NoError(t, err)
	return u
}

func technicianRole(t *testing.T) *user.Role {
	t.Helper()
	r, err := user.ReconstructRole(2, "technician", nil)
	require.NoError(t, err)
	return r
}

func userRole(t *testing.T) *user.Role {
	t.Helper()
	r, err := user.ReconstructRole(3, "user", nil)
	require.NoError(t, err)
	return r
}
