package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/user/usecases"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type UserHandler struct {
	registerUserUC   *usecases.RegisterUserUseCase
	getUserUC        *usecases.GetUserUseCase
	listUsersUC      *usecases.ListUsersUseCase
	updateProfileUC  *usecases.UpdateProfileUseCase
	adminUpdateUC    *usecases.AdminUpdateUserUseCase
	changePasswordUC *usecases.ChangePasswordUseCase
	resetPasswordUC  *usecases.ResetPasswordUseCase
	changeRoleUC     *usecases.ChangeUserRoleUseCase
	deleteUserUC     *usecases.DeleteUserUseCase
	logger           logger.Interface
}

func NewUserHandler(
	registerUserUC *usecases.RegisterUserUseCase,
	getUserUC *usecases.GetUserUseCase,
	listUsersUC *usecases.ListUsersUseCase,
	updateProfileUC *usecases.UpdateProfileUseCase,
	adminUpdateUC *usecases.AdminUpdateUserUseCase,
	changePasswordUC *usecases.ChangePasswordUseCase,
	resetPasswordUC *usecases.ResetPasswordUseCase,
	changeRoleUC *usecases.ChangeUserRoleUseCase,
	deleteUserUC *usecases.DeleteUserUseCase,
) *UserHandler {
	return &UserHandler{
		registerUserUC:   registerUserUC,
		getUserUC:        getUserUC,
		listUsersUC:      listUsersUC,
		updateProfileUC:  updateProfileUC,
		adminUpdateUC:    adminUpdateUC,
		changePasswordUC: changePasswordUC,
		resetPasswordUC:  resetPasswordUC,
		changeRoleUC:     changeRoleUC,
		deleteUserUC:     deleteUserUC,
		logger:           logger.NewLogger(),
	}
}

type CreateUserRequest struct {
	Username    string  `json:"username" binding:"required,min=3,max=50,username"`
	Password    string  `json:"password" binding:"required,min=8"`
	Email       *string `json:"email" binding:"omitempty,email"`
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	PhoneNumber *string `json:"phone_number"`
	Department  *string `json:"department"`
	RoleID      *uint   `json:"role_id"`
}

type UpdateProfileRequest struct {
	Email       *string `json:"email" binding:"omitempty,email"`
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	PhoneNumber *string `json:"phone_number"`
	Department  *string `json:"department"`
	AvatarURL   *string `json:"avatar_url"`
}

type AdminUpdateUserRequest struct {
	Username    *string `json:"username" binding:"omitempty,min=3,max=50,username"`
	Email       *string `json:"email" binding:"omitempty,email"`
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	PhoneNumber *string `json:"phone_number"`
	Department  *string `json:"department"`
	AvatarURL   *string `json:"avatar_url"`
	RoleID      *uint   `json:"role_id"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

type ResetPasswordRequest struct {
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

type ChangeRoleRequest struct {
	RoleID uint `json:"role_id" binding:"required"`
}

// Me handles GET /me.
func (h *UserHandler) Me(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	result, err := h.getUserUC.Execute(c.Request.Context(), actor.UserID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toUserResponse(result))
}

// UpdateMe handles PUT /me. Username and role never change here.
func (h *UserHandler) UpdateMe(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for profile update", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.updateProfileUC.Execute(c.Request.Context(), usecases.UpdateProfileCommand{
		UserID:      actor.UserID,
		Email:       req.Email,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		Department:  req.Department,
		AvatarURL:   req.AvatarURL,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "profile updated", toUserResponse(result))
}

// ChangeMyPassword handles POST /me/password.
func (h *UserHandler) ChangeMyPassword(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for password change", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.changePasswordUC.Execute(c.Request.Context(), usecases.ChangePasswordCommand{
		UserID:          actor.UserID,
		CurrentPassword: req.OldPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// CreateUser handles POST /admin/users.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create user", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.registerUserUC.Execute(c.Request.Context(), usecases.RegisterUserCommand{
		Username:    req.Username,
		Password:    req.Password,
		Email:       req.Email,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		Department:  req.Department,
		RoleID:      req.RoleID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toUserResponse(result), "user created")
}

// ListUsers handles GET /admin/users.
func (h *UserHandler) ListUsers(c *gin.Context) {
	roleID, err := parseUintQuery(c, "role_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listUsersUC.Execute(c.Request.Context(), usecases.ListUsersCommand{
		Skip:     parseIntQuery(c, "skip", 0),
		Limit:    parseIntQuery(c, "limit", 0),
		Username: c.Query("username"),
		RoleID:   roleID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, toUserResponses(result.Users), result.Total, result.Skip, result.Limit)
}

// GetUser handles GET /admin/users/:user_id.
func (h *UserHandler) GetUser(c *gin.Context) {
	userID, err := parseIDParam(c, "user_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUserUC.Execute(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toUserResponse(result))
}

// UpdateUser handles PUT /admin/users/:user_id.
func (h *UserHandler) UpdateUser(c *gin.Context) {
	userID, err := parseIDParam(c, "user_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AdminUpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update user", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.adminUpdateUC.Execute(c.Request.Context(), usecases.AdminUpdateUserCommand{
		UserID:      userID,
		Username:    req.Username,
		Email:       req.Email,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		Department:  req.Department,
		AvatarURL:   req.AvatarURL,
		RoleID:      req.RoleID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "user updated", toUserResponse(result))
}

// DeleteUser handles DELETE /admin/users/:user_id.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	userID, err := parseIDParam(c, "user_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	err = h.deleteUserUC.Execute(c.Request.Context(), usecases.DeleteUserCommand{
		UserID:  userID,
		ActorID: actor.UserID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ResetPassword handles POST /admin/users/:user_id/password.
func (h *UserHandler) ResetPassword(c *gin.Context) {
	userID, err := parseIDParam(c, "user_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for password reset", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	err = h.resetPasswordUC.Execute(c.Request.Context(), usecases.ResetPasswordCommand{
		UserID:      userID,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ChangeRole handles PATCH /admin/users/:user_id/role.
func (h *UserHandler) ChangeRole(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	userID, err := parseIDParam(c, "user_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ChangeRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for role change", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.changeRoleUC.Execute(c.Request.Context(), usecases.ChangeUserRoleCommand{
		UserID:  userID,
		RoleID:  req.RoleID,
		ActorID: actor.UserID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "role updated", toUserResponse(result))
}
