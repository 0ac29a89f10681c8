package usecases

import (
	"context"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

// Role management is small enough to live in one file: create, update,
// delete and list, all admin-only at the transport layer.

type CreateRoleCommand struct {
	Name        string
	Description *string
}

type CreateRoleUseCase struct {
	roleRepo user.RoleRepository
	logger   logger.Interface
}

func NewCreateRoleUseCase(roleRepo user.RoleRepository, logger logger.Interface) *CreateRoleUseCase {
	return &CreateRoleUseCase{roleRepo: roleRepo, logger: logger}
}

func (uc *CreateRoleUseCase) Execute(ctx context.Context, cmd CreateRoleCommand) (*RoleResult, error) {
	existing, err := uc.roleRepo.GetByName(ctx, cmd.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.NewConflictError("role name already exists")
	}

	role, err := user.NewRole(cmd.Name, cmd.Description)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.roleRepo.Create(ctx, role); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("role name already exists")
		}
		return nil, err
	}

	uc.logger.Infow("role created", "role_id", role.ID(), "name", role.Name())
	return newRoleResult(role), nil
}

type UpdateRoleCommand struct {
	RoleID      uint
	Name        string
	Description *string
}

type UpdateRoleUseCase struct {
	roleRepo user.RoleRepository
	logger   logger.Interface
}

func NewUpdateRoleUseCase(roleRepo user.RoleRepository, logger logger.Interface) *UpdateRoleUseCase {
	return &UpdateRoleUseCase{roleRepo: roleRepo, logger: logger}
}

func (uc *UpdateRoleUseCase) Execute(ctx context.Context, cmd UpdateRoleCommand) (*RoleResult, error) {
	role, err := uc.roleRepo.GetByID(ctx, cmd.RoleID)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, errors.NewNotFoundError("role not found")
	}

	other, err := uc.roleRepo.GetByName(ctx, cmd.Name)
	if err != nil {
		return nil, err
	}
	if other != nil && other.ID() != role.ID() {
		return nil, errors.NewConflictError("role name already exists")
	}

	if err := role.Update(cmd.Name, cmd.Description); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.roleRepo.Update(ctx, role); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("role name already exists")
		}
		return nil, err
	}

	return newRoleResult(role), nil
}

type DeleteRoleUseCase struct {
	roleRepo user.RoleRepository
	userRepo user.Repository
	logger   logger.Interface
}

func NewDeleteRoleUseCase(roleRepo user.RoleRepository, userRepo user.Repository, logger logger.Interface) *DeleteRoleUseCase {
	return &DeleteRoleUseCase{roleRepo: roleRepo, userRepo: userRepo, logger: logger}
}

func (uc *DeleteRoleUseCase) Execute(ctx context.Context, roleID uint) error {
	role, err := uc.roleRepo.GetByID(ctx, roleID)
	if err != nil {
		return err
	}
	if role == nil {
		return errors.NewNotFoundError("role not found")
	}

	count, err := uc.userRepo.CountByRoleID(ctx, roleID)
	if err != nil {
		return err
	}
	if count > 0 {
		return errors.NewConflictError("role is assigned to existing users")
	}

	if err := uc.roleRepo.Delete(ctx, roleID); err != nil {
		return err
	}

	uc.logger.Infow("role deleted", "role_id", roleID, "name", role.Name())
	return nil
}

type ListRolesCommand struct {
	Skip  int
	Limit int
}

type ListRolesUseCase struct {
	roleRepo user.RoleRepository
	logger   logger.Interface
}

func NewListRolesUseCase(roleRepo user.RoleRepository, logger logger.Interface) *ListRolesUseCase {
	return &ListRolesUseCase{roleRepo: roleRepo, logger: logger}
}

func (uc *ListRolesUseCase) Execute(ctx context.Context, cmd ListRolesCommand) ([]*RoleResult, error) {
	p := utils.ValidatePagination(cmd.Skip, cmd.Limit)

	roles, err := uc.roleRepo.List(ctx, p.Skip, p.Limit)
	if err != nil {
		return nil, err
	}

	results := make([]*RoleResult, 0, len(roles))
	for _, role := range roles {
		results = append(results, newRoleResult(role))
	}
	return results, nil
}
