package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/user/usecases"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type RoleHandler struct {
	createRoleUC *usecases.CreateRoleUseCase
	updateRoleUC *usecases.UpdateRoleUseCase
	deleteRoleUC *usecases.DeleteRoleUseCase
	listRolesUC  *usecases.ListRolesUseCase
	logger       logger.Interface
}

func NewRoleHandler(
	createRoleUC *usecases.CreateRoleUseCase,
	updateRoleUC *usecases.UpdateRoleUseCase,
	deleteRoleUC *usecases.DeleteRoleUseCase,
	listRolesUC *usecases.ListRolesUseCase,
) *RoleHandler {
	return &RoleHandler{
		createRoleUC: createRoleUC,
		updateRoleUC: updateRoleUC,
		deleteRoleUC: deleteRoleUC,
		listRolesUC:  listRolesUC,
		logger:       logger.NewLogger(),
	}
}

type RoleRequest struct {
	Name        string  `json:"name" binding:"required,min=2,max=50"`
	Description *string `json:"description"`
}

// CreateRole handles POST /admin/roles.
func (h *RoleHandler) CreateRole(c *gin.Context) {
	var req RoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create role", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.createRoleUC.Execute(c.Request.Context(), usecases.CreateRoleCommand{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toRoleResponse(result), "role created")
}

// UpdateRole handles PUT /admin/roles/:role_id.
func (h *RoleHandler) UpdateRole(c *gin.Context) {
	roleID, err := parseIDParam(c, "role_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req RoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update role", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.updateRoleUC.Execute(c.Request.Context(), usecases.UpdateRoleCommand{
		RoleID:      roleID,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "role updated", toRoleResponse(result))
}

// DeleteRole handles DELETE /admin/roles/:role_id.
func (h *RoleHandler) DeleteRole(c *gin.Context) {
	roleID, err := parseIDParam(c, "role_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteRoleUC.Execute(c.Request.Context(), roleID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListRoles handles GET /admin/roles.
func (h *RoleHandler) ListRoles(c *gin.Context) {
	results, err := h.listRolesUC.Execute(c.Request.Context(), usecases.ListRolesCommand{
		Skip:  parseIntQuery(c, "skip", 0),
		Limit: parseIntQuery(c, "limit", 0),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	responses := make([]*RoleResponse, 0, len(results))
	for _, r := range results {
		responses = append(responses, toRoleResponse(r))
	}

	utils.SuccessResponse(c, http.StatusOK, "", responses)
}
