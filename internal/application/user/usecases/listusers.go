package usecases

import (
	"context"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type ListUsersCommand struct {
	Skip     int
	Limit    int
	Username string
	RoleID   *uint
}

type ListUsersResult struct {
	Users []*UserResult
	Total int64
	Skip  int
	Limit int
}

type ListUsersUseCase struct {
	userRepo user.Repository
	roleRepo user.RoleRepository
	logger   logger.Interface
}

func NewListUsersUseCase(userRepo user.Repository, roleRepo user.RoleRepository, logger logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{userRepo: userRepo, roleRepo: roleRepo, logger: logger}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context, cmd ListUsersCommand) (*ListUsersResult, error) {
	p := utils.ValidatePagination(cmd.Skip, cmd.Limit)

	accounts, total, err := uc.userRepo.List(ctx, user.ListFilter{
		Skip:     p.Skip,
		Limit:    p.Limit,
		Username: cmd.Username,
		RoleID:   cmd.RoleID,
	})
	if err != nil {
		return nil, err
	}

	roles, err := uc.roleRepo.List(ctx, 0, constants.MaxLimit)
	if err != nil {
		return nil, err
	}
	roleNames := make(map[uint]string, len(roles))
	for _, role := range roles {
		roleNames[role.ID()] = role.Name()
	}

	results := make([]*UserResult, 0, len(accounts))
	for _, account := range accounts {
		results = append(results, newUserResult(account, roleNames[account.RoleID()]))
	}

	return &ListUsersResult{
		Users: results,
		Total: total,
		Skip:  p.Skip,
		Limit: p.Limit,
	}, nil
}
