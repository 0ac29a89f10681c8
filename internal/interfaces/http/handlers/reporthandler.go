package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/report/usecases"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type ReportHandler struct {
	exportTicketsUC *usecases.ExportTicketsUseCase
	logger          logger.Interface
}

func NewReportHandler(exportTicketsUC *usecases.ExportTicketsUseCase) *ReportHandler {
	return &ReportHandler{
		exportTicketsUC: exportTicketsUC,
		logger:          logger.NewLogger(),
	}
}

// ExportTickets handles GET /admin/reports/tickets. The response is a
// CSV attachment rather than the usual JSON envelope.
func (h *ReportHandler) ExportTickets(c *gin.Context) {
	cmd := usecases.ExportTicketsCommand{}

	var err error
	if cmd.StatusID, err = parseUintQuery(c, "status_id"); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if cmd.PriorityID, err = parseUintQuery(c, "priority_id"); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if cmd.UserID, err = parseUintQuery(c, "user_id"); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if cmd.DeviceID, err = parseUintQuery(c, "device_id"); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if cmd.StartDate, err = parseTimeQuery(c, "start_date"); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if cmd.EndDate, err = parseTimeQuery(c, "end_date"); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.exportTicketsUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.FileName))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", result.Content)
}
