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

func existingAccount(t *testing.T) *user.User {
	t.Helper()
	u, err := user.NewUser("jsmith", "$2a$04$oldhash", 3)
	require.NoError(t, err)
	require.NoError(t, u.SetID(5))
	return u
}

func TestChangePassword(t *testing.T) {
	account := existingAccount(t)
	updated := false

	uc := NewChangePasswordUseCase(
		&mockUserRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
				return account, nil
			},
			UpdateFunc: func(ctx context.Context, u *user.User) error {
				updated = true
				assert.NotEqual(t, "$2a$04$oldhash", u.PasswordHash())
				return nil
			},
		},
		&mockHasher{},
		&mockVerifier{},
		logger.NewLogger(),
	)

	err := uc.Execute(context.Background(), ChangePasswordCommand{
		UserID:          5,
		CurrentPassword: "oldpassword",
		NewPassword:     "newpassword",
	})
	require.NoError(t, err)
	assert.True(t, updated)
}

func TestChangePasswordWrongCurrent(t *testing.T) {
	account := existingAccount(t)

	uc := NewChangePasswordUseCase(
		&mockUserRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
				return account, nil
			},
		},
		&mockHasher{},
		&mockVerifier{
			VerifyFunc: func(password, hash string) error {
				return fmt.Errorf("password verification failed")
			},
		},
		logger.NewLogger(),
	)

	err := uc.Execute(context.Background(), ChangePasswordCommand{
		UserID:          5,
		CurrentPassword: "wrong",
		NewPassword:     "newpassword",
	})
	require.Error(t, err)
	assert.Equal(t, errors.ErrorTypeUnauthorized, errors.GetAppError(err).Type)
}

func TestChangePasswordTooShort(t *testing.T) {
	uc := NewChangePasswordUseCase(&mockUserRepository{}, &mockHasher{}, &mockVerifier{}, logger.NewLogger())

	err := uc.Execute(context.Background(), ChangePasswordCommand{UserID: 5, NewPassword: "short"})
	require.Error(t, err)
	assert.Equal(t, errors.ErrorTypeValidation, errors.GetAppError(err).Type)
}

func TestDeleteUserSelfForbidden(t *testing.T) {
	uc := NewDeleteUserUseCase(&mockUserRepository{}, logger.NewLogger())

	err := uc.Execute(context.Background(), DeleteUserCommand{UserID: 1, ActorID: 1})
	require.Error(t, err)
	assert.Equal(t, errors.ErrorTypeBadRequest, errors.GetAppError(err).Type)
}
