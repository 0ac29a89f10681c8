package usecases

import (
	"context"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type ChangeUserRoleCommand struct {
	UserID  uint
	RoleID  uint
	ActorID uint
}

type ChangeUserRoleUseCase struct {
	userRepo user.Repository
	roleRepo user.RoleRepository
	logger   logger.Interface
}

func NewChangeUserRoleUseCase(userRepo user.Repository, roleRepo user.RoleRepository, logger logger.Interface) *ChangeUserRoleUseCase {
	return &ChangeUserRoleUseCase{userRepo: userRepo, roleRepo: roleRepo, logger: logger}
}

func (uc *ChangeUserRoleUseCase) Execute(ctx context.Context, cmd ChangeUserRoleCommand) (*UserResult, error) {
	account, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, errors.NewNotFoundError("user not found")
	}
	if account.RoleID() == cmd.RoleID {
		return nil, errors.NewConflictError("user already has this role")
	}

	role, err := uc.roleRepo.GetByID(ctx, cmd.RoleID)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, errors.NewNotFoundError("role not found")
	}

	if err := account.ChangeRole(cmd.RoleID); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Update(ctx, account); err != nil {
		return nil, err
	}

	uc.logger.Infow("user role changed",
		"user_id", account.ID(), "role_id", cmd.RoleID, "changed_by", cmd.ActorID)

	return newUserResult(account, role.Name()), nil
}
