package usecases

import (
	"context"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type ResetPasswordCommand struct {
	UserID      uint
	NewPassword string
}

// ResetPasswordUseCase is the administrative password reset; it does
// not require the current password.
type ResetPasswordUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewResetPasswordUseCase(userRepo user.Repository, hasher PasswordHasher, logger logger.Interface) *ResetPasswordUseCase {
	return &ResetPasswordUseCase{userRepo: userRepo, hasher: hasher, logger: logger}
}

func (uc *ResetPasswordUseCase) Execute(ctx context.Context, cmd ResetPasswordCommand) error {
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

	uc.logger.Infow("password reset by administrator", "user_id", account.ID())
	return nil
}
