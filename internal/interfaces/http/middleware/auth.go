package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/infrastructure/auth"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

// credentialsMessage is deliberately the same for every rejection so
// callers cannot distinguish a bad signature from a deleted account.
const credentialsMessage = "could not validate credentials"

type AuthMiddleware struct {
	jwtService *auth.JWTService
	userRepo   user.Repository
	roleRepo   user.RoleRepository
	logger     logger.Interface
}

func NewAuthMiddleware(
	jwtService *auth.JWTService,
	userRepo user.Repository,
	roleRepo user.RoleRepository,
	logger logger.Interface,
) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		userRepo:   userRepo,
		roleRepo:   roleRepo,
		logger:     logger,
	}
}

// RequireAuth verifies the Bearer token and resolves the account it
// names. The user row is loaded on every request so tokens held by
// deleted accounts stop working immediately.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			m.reject(c)
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			m.reject(c)
			return
		}

		claims, err := m.jwtService.Verify(parts[1])
		if err != nil {
			m.logger.Warnw("failed to verify access token", "error", err)
			m.reject(c)
			return
		}

		account, err := m.userRepo.GetByID(c.Request.Context(), claims.UserID)
		if err != nil {
			m.logger.Errorw("failed to load user for auth", "user_id", claims.UserID, "error", err)
			m.reject(c)
			return
		}
		if account == nil {
			m.reject(c)
			return
		}

		role, err := m.roleRepo.GetByID(c.Request.Context(), account.RoleID())
		if err != nil || role == nil {
			m.logger.Errorw("failed to resolve role for auth", "user_id", account.ID(), "role_id", account.RoleID(), "error", err)
			m.reject(c)
			return
		}

		authorization.SetActor(c, authorization.Actor{
			UserID:   account.ID(),
			Username: account.Username(),
			Role:     authorization.ParseUserRole(role.Name()),
		})

		c.Next()
	}
}

func (m *AuthMiddleware) reject(c *gin.Context) {
	utils.ErrorResponseWithError(c, errors.NewUnauthorizedError(credentialsMessage))
	c.Abort()
}
