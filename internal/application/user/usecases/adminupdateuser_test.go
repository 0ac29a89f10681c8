package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

func strPtr(s string) *string { return &s }

func uintPtr(v uint) *uint { return &v }

func TestAdminUpdateUserRenames(t *testing.T) {
	account := existingAccount(t)
	updated := false

	uc := NewAdminUpdateUserUseCase(
		&mockUserRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
				return account, nil
			},
			GetByUsernameFunc: func(ctx context.Context, username string) (*user.User, error) {
				return nil, nil
			},
			UpdateFunc: func(ctx context.Context, u *user.User) error {
				updated = true
				assert.Equal(t, "jdoe", u.Username())
				return nil
			},
		},
		&mockRoleRepository{},
		logger.NewLogger(),
	)

	result, err := uc.Execute(context.Background(), AdminUpdateUserCommand{
		UserID:    5,
		Username:  strPtr("jdoe"),
		FirstName: strPtr("Jane"),
	})
	require.NoError(t, err)
	assert.True(t, updated)
	assert.Equal(t, "jdoe", result.Username)
}

func TestAdminUpdateUserUsernameTaken(t *testing.T) {
	account := existingAccount(t)
	other, err := user.NewUser("jdoe", "$2a$04$otherhash", 3)
	require.NoError(t, err)
	require.NoError(t, other.SetID(9))

	uc := NewAdminUpdateUserUseCase(
		&mockUserRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
				return account, nil
			},
			GetByUsernameFunc: func(ctx context.Context, username string) (*user.User, error) {
				return other, nil
			},
		},
		&mockRoleRepository{},
		logger.NewLogger(),
	)

	_, err = uc.Execute(context.Background(), AdminUpdateUserCommand{
		UserID:   5,
		Username: strPtr("jdoe"),
	})
	require.Error(t, err)
	assert.Equal(t, errors.ErrorTypeConflict, errors.GetAppError(err).Type)
}

func TestAdminUpdateUserChangesRole(t *testing.T) {
	account := existingAccount(t)

	uc := NewAdminUpdateUserUseCase(
		&mockUserRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
				return account, nil
			},
		},
		&mockRoleRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*user.Role, error) {
				return user.ReconstructRole(id, "technician", nil)
			},
		},
		logger.NewLogger(),
	)

	result, err := uc.Execute(context.Background(), AdminUpdateUserCommand{
		UserID: 5,
		RoleID: uintPtr(2),
	})
	require.NoError(t, err)
	assert.Equal(t, uint(2), result.RoleID)
}

func TestAdminUpdateUserZeroRoleIgnored(t *testing.T) {
	account := existingAccount(t)

	uc := NewAdminUpdateUserUseCase(
		&mockUserRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
				return account, nil
			},
		},
		&mockRoleRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*user.Role, error) {
				assert.Equal(t, uint(3), id)
				return user.ReconstructRole(id, "user", nil)
			},
		},
		logger.NewLogger(),
	)

	result, err := uc.Execute(context.Background(), AdminUpdateUserCommand{
		UserID: 5,
		RoleID: uintPtr(0),
	})
	require.NoError(t, err)
	assert.Equal(t, uint(3), result.RoleID)
}
