package usecases

import (
	"context"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

// PasswordVerifier checks a plaintext password against a stored hash.
type PasswordVerifier interface {
	Verify(password, hash string) error
}

// TokenIssuer signs access tokens for authenticated identities.
type TokenIssuer interface {
	Generate(username string, userID uint, role authorization.UserRole) (string, int64, error)
}

type LoginCommand struct {
	Username string
	Password string
}

type LoginResult struct {
	AccessToken string
	TokenType   string
	ExpiresIn   int64
}

type LoginUseCase struct {
	userRepo user.Repository
	roleRepo user.RoleRepository
	verifier PasswordVerifier
	issuer   TokenIssuer
	logger   logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	roleRepo user.RoleRepository,
	verifier PasswordVerifier,
	issuer TokenIssuer,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo: userRepo,
		roleRepo: roleRepo,
		verifier: verifier,
		issuer:   issuer,
		logger:   logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	if len(cmd.Username) == 0 || len(cmd.Password) == 0 {
		return nil, errors.NewValidationError("username and password are required")
	}

	account, err := uc.userRepo.GetByUsername(ctx, cmd.Username)
	if err != nil {
		uc.logger.Errorw("failed to look up user for login", "error", err)
		return nil, err
	}
	if account == nil {
		// Same response as a bad password so usernames cannot be probed.
		return nil, errors.NewUnauthorizedError("incorrect username or password")
	}

	if err := uc.verifier.Verify(cmd.Password, account.PasswordHash()); err != nil {
		uc.logger.Warnw("failed login attempt", "username", cmd.Username)
		return nil, errors.NewUnauthorizedError("incorrect username or password")
	}

	role, err := uc.roleRepo.GetByID(ctx, account.RoleID())
	if err != nil {
		uc.logger.Errorw("failed to resolve role for login", "role_id", account.RoleID(), "error", err)
		return nil, err
	}
	if role == nil {
		return nil, errors.NewInternalError("user role not found")
	}

	token, expiresIn, err := uc.issuer.Generate(
		account.Username(), account.ID(), authorization.ParseUserRole(role.Name()))
	if err != nil {
		uc.logger.Errorw("failed to issue access token", "error", err)
		return nil, errors.NewInternalError("failed to issue access token")
	}

	uc.logger.Infow("user logged in", "user_id", account.ID(), "username", account.Username())

	return &LoginResult{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   expiresIn,
	}, nil
}
