package usecases

import (
	"context"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

// PasswordHasher hashes plaintext passwords for storage.
type PasswordHasher interface {
	Hash(password string) (string, error)
}

type RegisterUserCommand struct {
	Username    string
	Password    string
	Email       *string
	FirstName   *string
	LastName    *string
	PhoneNumber *string
	Department  *string
	// RoleID is only honored on the administrative path; self
	// registration always gets the default role.
	RoleID *uint
}

type RegisterUserUseCase struct {
	userRepo user.Repository
	roleRepo user.RoleRepository
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewRegisterUserUseCase(
	userRepo user.Repository,
	roleRepo user.RoleRepository,
	hasher PasswordHasher,
	logger logger.Interface,
) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		userRepo: userRepo,
		roleRepo: roleRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (uc *RegisterUserUseCase) Execute(ctx context.Context, cmd RegisterUserCommand) (*UserResult, error) {
	if len(cmd.Password) < constants.MinPasswordLength {
		return nil, errors.NewValidationError("password must be at least 8 characters")
	}

	exists, err := uc.userRepo.ExistsByUsername(ctx, cmd.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errors.NewConflictError("username already taken")
	}

	if cmd.Email != nil && *cmd.Email != "" {
		exists, err := uc.userRepo.ExistsByEmail(ctx, *cmd.Email)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, errors.NewConflictError("email already registered")
		}
	}

	roleID := uint(constants.DefaultRoleID)
	if cmd.RoleID != nil {
		roleID = *cmd.RoleID
	}

	role, err := uc.roleRepo.GetByID(ctx, roleID)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, errors.NewValidationError("role does not exist")
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to process password")
	}

	account, err := user.NewUser(cmd.Username, hash, roleID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	account.UpdateProfile(cmd.Email, cmd.FirstName, cmd.LastName, cmd.PhoneNumber, cmd.Department, nil)

	if err := uc.userRepo.Create(ctx, account); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("username or email already taken")
		}
		return nil, err
	}

	uc.logger.Infow("user registered", "user_id", account.ID(), "username", account.Username(), "role", role.Name())

	return newUserResult(account, role.Name()), nil
}
