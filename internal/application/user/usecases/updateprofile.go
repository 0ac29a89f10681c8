package usecases

import (
	"context"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type UpdateProfileCommand struct {
	UserID      uint
	Email       *string
	FirstName   *string
	LastName    *string
	PhoneNumber *string
	Department  *string
	AvatarURL   *string
}

type UpdateProfileUseCase struct {
	userRepo user.Repository
	roleRepo user.RoleRepository
	logger   logger.Interface
}

func NewUpdateProfileUseCase(userRepo user.Repository, roleRepo user.RoleRepository, logger logger.Interface) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{userRepo: userRepo, roleRepo: roleRepo, logger: logger}
}

func (uc *UpdateProfileUseCase) Execute(ctx context.Context, cmd UpdateProfileCommand) (*UserResult, error) {
	account, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, errors.NewNotFoundError("user not found")
	}

	if cmd.Email != nil && *cmd.Email != "" {
		current := account.Email()
		if current == nil || *current != *cmd.Email {
			other, err := uc.userRepo.GetByEmail(ctx, *cmd.Email)
			if err != nil {
				return nil, err
			}
			if other != nil && other.ID() != account.ID() {
				return nil, errors.NewConflictError("email already registered")
			}
		}
	}

	account.UpdateProfile(cmd.Email, cmd.FirstName, cmd.LastName, cmd.PhoneNumber, cmd.Department, cmd.AvatarURL)

	if err := uc.userRepo.Update(ctx, account); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("email already registered")
		}
		return nil, err
	}

	roleName := ""
	if role, err := uc.roleRepo.GetByID(ctx, account.RoleID()); err == nil && role != nil {
		roleName = role.Name()
	}

	uc.logger.Infow("profile updated", "user_id", account.ID())
	return newUserResult(account, roleName), nil
}
