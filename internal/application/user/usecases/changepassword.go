package usecases

import (
	"context"

	authusecases "helpdesk/internal/application/auth/usecases"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type ChangePasswordCommand struct {
	UserID          uint
	CurrentPassword string
	NewPassword     string
}

// ChangePasswordUseCase lets an account holder rotate their own
// password after proving they know the current one.
type ChangePasswordUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	verifier authusecases.PasswordVerifier
	logger   logger.Interface
}

func NewChangePasswordUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	verifier authusecases.PasswordVerifier,
	logger logger.Interface,
) *ChangePasswordUseCase {
	return &ChangePasswordUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		verifier: verifier,
		logger:   logger,
	}
}

func (uc *ChangePasswordUseCase) Execute(ctx context.Context, cmd ChangePasswordCommand) error {
	if len(cmd.NewPassword) < constants.MinPasswordLength {
		return errors.NewValidationError("password must be at least 8 characters")
	}

	account, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		return err
	}
	if account == nil {
		return errors.NewNotFoundError("user not found")
	}

	if err := uc.verifier.Verify(cmd.CurrentPassword, account.PasswordHash()); err != nil {
		return errors.NewUnauthorizedError("current password is incorrect")
	}

	hash, err := uc.hasher.Hash(cmd.NewPassword)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return errors.NewInternalError("failed to process password")
	}

	if err := account.ChangePassword(hash); err != nil {
		return errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Update(ctx, account); err != nil {
		return err
	}

	uc.logger.Infow("password changed", "user_id", account.ID())
	return nil
}
