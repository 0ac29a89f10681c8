package usecases

import (
	"context"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type GetUserUseCase struct {
	userRepo user.Repository
	roleRepo user.RoleRepository
	logger   logger.Interface
}

func NewGetUserUseCase(userRepo user.Repository, roleRepo user.RoleRepository, logger logger.Interface) *GetUserUseCase {
	return &GetUserUseCase{userRepo: userRepo, roleRepo: roleRepo, logger: logger}
}

func (uc *GetUserUseCase) Execute(ctx context.Context, userID uint) (*UserResult, error) {
	account, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, errors.NewNotFoundError("user not found")
	}

	roleName := ""
	role, err := uc.roleRepo.GetByID(ctx, account.RoleID())
	if err != nil {
		return nil, err
	}
	if role != nil {
		roleName = role.Name()
	}

	return newUserResult(account, roleName), nil
}
