package usecases

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

func TestDeleteRoleInUse(t *testing.T) {
	role, err := user.ReconstructRole(2, "technician", nil)
	require.NoError(t, err)

	uc := NewDeleteRoleUseCase(
		&mockRoleRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*user.Role, error) {
				return role, nil
			},
			DeleteFunc: func(ctx context.Context, id uint) error {
				t.Fatal("delete must not be called for a role in use")
				return nil
			},
		},
		&mockUserRepository{
			CountByRoleIDFunc: func(ctx context.Context, roleID uint) (int64, error) {
				return 4, nil
			},
		},
		logger.NewLogger(),
	)

	err = uc.Execute(context.Background(), 2)
	require.Error(t, err)
	assert.Equal(t, errors.ErrorTypeConflict, errors.GetAppError(err).Type)
}

func TestDeleteRoleUnused(t *testing.T) {
	role, err := user.ReconstructRole(5, "auditor", nil)
	require.NoError(t, err)

	deleted := false
	uc := NewDeleteRoleUseCase(
		&mockRoleRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*user.Role, error) {
				return role, nil
			},
			DeleteFunc: func(ctx context.Context, id uint) error {
				deleted = true
				return nil
			},
		},
		&mockUserRepository{},
		logger.NewLogger(),
	)

	require.NoError(t, uc.Execute(context.Background(), 5))
	assert.True(t, deleted)
}

func TestDeleteRoleNotFound(t *testing.T) {
	uc := NewDeleteRoleUseCase(&mockRoleRepository{}, &mockUserRepository{}, logger.NewLogger())

	err := uc.Execute(context.Background(), 99)
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestCreateRoleDuplicateName(t *testing.T) {
	existing, err := user.ReconstructRole(1, "admin", nil)
	require.NoError(t, err)

	uc := NewCreateRoleUseCase(
		&mockRoleRepository{
			GetByNameFunc: func(ctx context.Context, name string) (*user.Role, error) {
				return existing, nil
			},
		},
		logger.NewLogger(),
	)

	_, err = uc.Execute(context.Background(), CreateRoleCommand{Name: "admin"})
	require.Error(t, err)
	assert.Equal(t, errors.ErrorTypeConflict, errors.GetAppError(err).Type)
}

func TestCreateRoleMapsDuplicateRace(t *testing.T) {
	uc := NewCreateRoleUseCase(
		&mockRoleRepository{
			CreateFunc: func(ctx context.Context, r *user.Role) error {
				return fmt.Errorf("create: Duplicate entry 'auditor' for key 'name'")
			},
		},
		logger.NewLogger(),
	)

	_, err := uc.Execute(context.Background(), CreateRoleCommand{Name: "auditor"})
	require.Error(t, err)
	assert.Equal(t, errors.ErrorTypeConflict, errors.GetAppError(err).Type)
}
