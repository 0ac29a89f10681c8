package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/catalog/usecases"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

// CatalogHandler serves the reference data the ticket form is built
// from: device types, priorities and statuses. Lists are readable by
// any authenticated user; mutation is admin-only.
type CatalogHandler struct {
	createDeviceTypeUC *usecases.CreateDeviceTypeUseCase
	updateDeviceTypeUC *usecases.UpdateDeviceTypeUseCase
	deleteDeviceTypeUC *usecases.DeleteDeviceTypeUseCase
	listDeviceTypesUC  *usecases.ListDeviceTypesUseCase

	createPriorityUC *usecases.CreatePriorityUseCase
	updatePriorityUC *usecases.UpdatePriorityUseCase
	deletePriorityUC *usecases.DeletePriorityUseCase
	listPrioritiesUC *usecases.ListPrioritiesUseCase

	createStatusUC *usecases.CreateStatusUseCase
	updateStatusUC *usecases.UpdateStatusUseCase
	deleteStatusUC *usecases.DeleteStatusUseCase
	listStatusesUC *usecases.ListStatusesUseCase

	logger logger.Interface
}

func NewCatalogHandler(
	createDeviceTypeUC *usecases.CreateDeviceTypeUseCase,
	updateDeviceTypeUC *usecases.UpdateDeviceTypeUseCase,
	deleteDeviceTypeUC *usecases.DeleteDeviceTypeUseCase,
	listDeviceTypesUC *usecases.ListDeviceTypesUseCase,
	createPriorityUC *usecases.CreatePriorityUseCase,
	updatePriorityUC *usecases.UpdatePriorityUseCase,
	deletePriorityUC *usecases.DeletePriorityUseCase,
	listPrioritiesUC *usecases.ListPrioritiesUseCase,
	createStatusUC *usecases.CreateStatusUseCase,
	updateStatusUC *usecases.UpdateStatusUseCase,
	deleteStatusUC *usecases.DeleteStatusUseCase,
	listStatusesUC *usecases.ListStatusesUseCase,
) *CatalogHandler {
	return &CatalogHandler{
		createDeviceTypeUC: createDeviceTypeUC,
		updateDeviceTypeUC: updateDeviceTypeUC,
		deleteDeviceTypeUC: deleteDeviceTypeUC,
		listDeviceTypesUC:  listDeviceTypesUC,
		createPriorityUC:   createPriorityUC,
		updatePriorityUC:   updatePriorityUC,
		deletePriorityUC:   deletePriorityUC,
		listPrioritiesUC:   listPrioritiesUC,
		createStatusUC:     createStatusUC,
		updateStatusUC:     updateStatusUC,
		deleteStatusUC:     deleteStatusUC,
		listStatusesUC:     listStatusesUC,
		logger:             logger.NewLogger(),
	}
}

type DeviceTypeRequest struct {
	Name string `json:"name" binding:"required,min=2,max=100"`
}

type PriorityRequest struct {
	Name         string `json:"name" binding:"required,min=2,max=50"`
	DisplayOrder *int   `json:"display_order"`
}

type StatusRequest struct {
	Name         string `json:"name" binding:"required,min=2,max=50"`
	DisplayOrder *int   `json:"display_order"`
	IsFinal      bool   `json:"is_final"`
}

// CreateDeviceType handles POST /admin/device-types.
func (h *CatalogHandler) CreateDeviceType(c *gin.Context) {
	var req DeviceTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create device type", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.createDeviceTypeUC.Execute(c.Request.Context(), usecases.CreateDeviceTypeCommand{Name: req.Name})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toDeviceTypeResponse(result), "device type created")
}

// UpdateDeviceType handles PUT /admin/device-types/:type_id.
func (h *CatalogHandler) UpdateDeviceType(c *gin.Context) {
	typeID, err := parseIDParam(c, "type_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req DeviceTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update device type", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.updateDeviceTypeUC.Execute(c.Request.Context(), usecases.UpdateDeviceTypeCommand{
		DeviceTypeID: typeID,
		Name:         req.Name,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "device type updated", toDeviceTypeResponse(result))
}

// DeleteDeviceType handles DELETE /admin/device-types/:type_id.
func (h *CatalogHandler) DeleteDeviceType(c *gin.Context) {
	typeID, err := parseIDParam(c, "type_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteDeviceTypeUC.Execute(c.Request.Context(), typeID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListDeviceTypes handles GET /device-types.
func (h *CatalogHandler) ListDeviceTypes(c *gin.Context) {
	results, err := h.listDeviceTypesUC.Execute(c.Request.Context(), usecases.ListDeviceTypesCommand{
		Skip:  parseIntQuery(c, "skip", 0),
		Limit: parseIntQuery(c, "limit", 0),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	responses := make([]*DeviceTypeResponse, 0, len(results))
	for _, r := range results {
		responses = append(responses, toDeviceTypeResponse(r))
	}

	utils.SuccessResponse(c, http.StatusOK, "", responses)
}

// CreatePriority handles POST /admin/priorities.
func (h *CatalogHandler) CreatePriority(c *gin.Context) {
	var req PriorityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create priority", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.createPriorityUC.Execute(c.Request.Context(), usecases.CreatePriorityCommand{
		Name:         req.Name,
		DisplayOrder: req.DisplayOrder,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toPriorityResponse(result), "priority created")
}

// UpdatePriority handles PUT /admin/priorities/:priority_id.
func (h *CatalogHandler) UpdatePriority(c *gin.Context) {
	priorityID, err := parseIDParam(c, "priority_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req PriorityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update priority", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.updatePriorityUC.Execute(c.Request.Context(), usecases.UpdatePriorityCommand{
		PriorityID:   priorityID,
		Name:         req.Name,
		DisplayOrder: req.DisplayOrder,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "priority updated", toPriorityResponse(result))
}

// DeletePriority handles DELETE /admin/priorities/:priority_id.
func (h *CatalogHandler) DeletePriority(c *gin.Context) {
	priorityID, err := parseIDParam(c, "priority_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deletePriorityUC.Execute(c.Request.Context(), priorityID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListPriorities handles GET /priorities.
func (h *CatalogHandler) ListPriorities(c *gin.Context) {
	results, err := h.listPrioritiesUC.Execute(c.Request.Context(), usecases.ListPrioritiesCommand{
		Skip:  parseIntQuery(c, "skip", 0),
		Limit: parseIntQuery(c, "limit", 0),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	responses := make([]*PriorityResponse, 0, len(results))
	for _, r := range results {
		responses = append(responses, toPriorityResponse(r))
	}

	utils.SuccessResponse(c, http.StatusOK, "", responses)
}

// CreateStatus handles POST /admin/statuses.
func (h *CatalogHandler) CreateStatus(c *gin.Context) {
	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create status", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.createStatusUC.Execute(c.Request.Context(), usecases.CreateStatusCommand{
		Name:         req.Name,
		DisplayOrder: req.DisplayOrder,
		IsFinal:      req.IsFinal,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toStatusResponse(result), "status created")
}

// UpdateStatus handles PUT /admin/statuses/:status_id.
func (h *CatalogHandler) UpdateStatus(c *gin.Context) {
	statusID, err := parseIDParam(c, "status_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update status", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.updateStatusUC.Execute(c.Request.Context(), usecases.UpdateStatusCommand{
		StatusID:     statusID,
		Name:         req.Name,
		DisplayOrder: req.DisplayOrder,
		IsFinal:      req.IsFinal,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "status updated", toStatusResponse(result))
}

// DeleteStatus handles DELETE /admin/statuses/:status_id.
func (h *CatalogHandler) DeleteStatus(c *gin.Context) {
	statusID, err := parseIDParam(c, "status_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteStatusUC.Execute(c.Request.Context(), statusID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListStatuses handles GET /statuses.
func (h *CatalogHandler) ListStatuses(c *gin.Context) {
	results, err := h.listStatusesUC.Execute(c.Request.Context(), usecases.ListStatusesCommand{
		Skip:  parseIntQuery(c, "skip", 0),
		Limit: parseIntQuery(c, "limit", 0),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	responses := make([]*StatusResponse, 0, len(results))
	for _, r := range results {
		responses = append(responses, toStatusResponse(r))
	}

	utils.SuccessResponse(c, http.StatusOK, "", responses)
}
