package usecases

import (
	"time"

	"helpdesk/internal/domain/user"
)

// UserResult is the application-level view of an account returned to
// handlers.
type UserResult struct {
	ID          uint
	Username    string
	Email       *string
	FirstName   *string
	LastName    *string
	PhoneNumber *string
	Department  *string
	AvatarURL   *string
	RoleID      uint
	RoleName    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func newUserResult(u *user.User, roleName string) *UserResult {
	return &UserResult{
		ID:          u.ID(),
		Username:    u.Username(),
		Email:       u.Email(),
		FirstName:   u.FirstName(),
		LastName:    u.LastName(),
		PhoneNumber: u.PhoneNumber(),
		Department:  u.Department(),
		AvatarURL:   u.AvatarURL(),
		RoleID:      u.RoleID(),
		RoleName:    roleName,
		CreatedAt:   u.CreatedAt(),
		UpdatedAt:   u.UpdatedAt(),
	}
}

// RoleResult is the application-level view of a user role.
type RoleResult struct {
	ID          uint
	Name        string
	Description *string
}

func newRoleResult(r *user.Role) *RoleResult {
	return &RoleResult{
		ID:          r.ID(),
		Name:        r.Name(),
		Description: r.Description(),
	}
}
