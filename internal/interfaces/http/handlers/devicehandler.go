package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/device/usecases"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type DeviceHandler struct {
	createDeviceUC *usecases.CreateDeviceUseCase
	updateDeviceUC *usecases.UpdateDeviceUseCase
	deleteDeviceUC *usecases.DeleteDeviceUseCase
	getDeviceUC    *usecases.GetDeviceUseCase
	listDevicesUC  *usecases.ListDevicesUseCase
	logger         logger.Interface
}

func NewDeviceHandler(
	createDeviceUC *usecases.CreateDeviceUseCase,
	updateDeviceUC *usecases.UpdateDeviceUseCase,
	deleteDeviceUC *usecases.DeleteDeviceUseCase,
	getDeviceUC *usecases.GetDeviceUseCase,
	listDevicesUC *usecases.ListDevicesUseCase,
) *DeviceHandler {
	return &DeviceHandler{
		createDeviceUC: createDeviceUC,
		updateDeviceUC: updateDeviceUC,
		deleteDeviceUC: deleteDeviceUC,
		getDeviceUC:    getDeviceUC,
		listDevicesUC:  listDevicesUC,
		logger:         logger.NewLogger(),
	}
}

// CreateDeviceRequest carries the caller-assigned device ID; the
// registry mirrors an external inventory system rather than minting
// its own identifiers.
type CreateDeviceRequest struct {
	DeviceID        uint    `json:"device_id" binding:"required"`
	Name            string  `json:"name" binding:"required,min=2,max=255"`
	DeviceTypeID    *uint   `json:"device_type_id"`
	InventoryNumber *string `json:"inventory_number"`
}

type UpdateDeviceRequest struct {
	Name            string  `json:"name" binding:"required,min=2,max=255"`
	DeviceTypeID    *uint   `json:"device_type_id"`
	InventoryNumber *string `json:"inventory_number"`
}

// CreateDevice handles POST /admin/devices.
func (h *DeviceHandler) CreateDevice(c *gin.Context) {
	var req CreateDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create device", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.createDeviceUC.Execute(c.Request.Context(), usecases.CreateDeviceCommand{
		DeviceID:        req.DeviceID,
		Name:            req.Name,
		DeviceTypeID:    req.DeviceTypeID,
		InventoryNumber: req.InventoryNumber,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toDeviceResponse(result), "device created")
}

// UpdateDevice handles PUT /admin/devices/:device_id.
func (h *DeviceHandler) UpdateDevice(c *gin.Context) {
	deviceID, err := parseIDParam(c, "device_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update device", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.updateDeviceUC.Execute(c.Request.Context(), usecases.UpdateDeviceCommand{
		DeviceID:        deviceID,
		Name:            req.Name,
		DeviceTypeID:    req.DeviceTypeID,
		InventoryNumber: req.InventoryNumber,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "device updated", toDeviceResponse(result))
}

// DeleteDevice handles DELETE /admin/devices/:device_id.
func (h *DeviceHandler) DeleteDevice(c *gin.Context) {
	deviceID, err := parseIDParam(c, "device_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteDeviceUC.Execute(c.Request.Context(), deviceID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetDevice handles GET /devices/:device_id.
func (h *DeviceHandler) GetDevice(c *gin.Context) {
	deviceID, err := parseIDParam(c, "device_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getDeviceUC.Execute(c.Request.Context(), deviceID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toDeviceResponse(result))
}

// ListDevices handles GET /devices.
func (h *DeviceHandler) ListDevices(c *gin.Context) {
	deviceTypeID, err := parseUintQuery(c, "device_type_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listDevicesUC.Execute(c.Request.Context(), usecases.ListDevicesCommand{
		Skip:         parseIntQuery(c, "skip", 0),
		Limit:        parseIntQuery(c, "limit", 0),
		Name:         c.Query("name"),
		DeviceTypeID: deviceTypeID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	responses := make([]*DeviceResponse, 0, len(result.Devices))
	for _, r := range result.Devices {
		responses = append(responses, toDeviceResponse(r))
	}

	utils.ListSuccessResponse(c, responses, result.Total, result.Skip, result.Limit)
}
