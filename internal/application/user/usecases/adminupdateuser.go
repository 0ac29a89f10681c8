package usecases

import (
	"context"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

// AdminUpdateUserCommand covers the administrative user update. A nil
// Username leaves the login name untouched; a nil or zero RoleID leaves
// the role untouched.
type AdminUpdateUserCommand struct {
	UserID      uint
	Username    *string
	Email       *string
	FirstName   *string
	LastName    *string
	PhoneNumber *string
	Department  *string
	AvatarURL   *string
	RoleID      *uint
}

type AdminUpdateUserUseCase struct {
	userRepo user.Repository
	roleRepo user.RoleRepository
	logger   logger.Interface
}

func NewAdminUpdateUserUseCase(userRepo user.Repository, roleRepo user.RoleRepository, logger logger.Interface) *AdminUpdateUserUseCase {
	return &AdminUpdateUserUseCase{userRepo: userRepo, roleRepo: roleRepo, logger: logger}
}

func (uc *AdminUpdateUserUseCase) Execute(ctx context.Context, cmd AdminUpdateUserCommand) (*UserResult, error) {
	account, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, errors.NewNotFoundError("user not found")
	}

	if cmd.Username != nil && *cmd.Username != "" && *cmd.Username != account.Username() {
		other, err := uc.userRepo.GetByUsername(ctx, *cmd.Username)
		if err != nil {
			return nil, err
		}
		if other != nil && other.ID() != account.ID() {
			return nil, errors.NewConflictError("username already taken")
		}
		if err := account.ChangeUsername(*cmd.Username); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
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

	if cmd.RoleID != nil && *cmd.RoleID != 0 && *cmd.RoleID != account.RoleID() {
		role, err := uc.roleRepo.GetByID(ctx, *cmd.RoleID)
		if err != nil {
			return nil, err
		}
		if role == nil {
			return nil, errors.NewNotFoundError("role not found")
		}
		if err := account.ChangeRole(*cmd.RoleID); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	account.UpdateProfile(cmd.Email, cmd.FirstName, cmd.LastName, cmd.PhoneNumber, cmd.Department, cmd.AvatarURL)

	if err := uc.userRepo.Update(ctx, account); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("username or email already taken")
		}
		return nil, err
	}

	roleName := ""
	if role, err := uc.roleRepo.GetByID(ctx, account.RoleID()); err == nil && role != nil {
		roleName = role.Name()
	}

	uc.logger.Infow("user updated", "user_id", account.ID())
	return newUserResult(account, roleName), nil
}
