package handlers

import (
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/ticket/usecases"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type TicketHandler struct {
	createTicketUC *usecases.CreateTicketUseCase
	getTicketUC    *usecases.GetTicketUseCase
	listTicketsUC  *usecases.ListTicketsUseCase
	updateTicketUC *usecases.UpdateTicketUseCase
	changeStatusUC *usecases.ChangeTicketStatusUseCase
	amendClosedUC  *usecases.AmendClosedTicketUseCase
	deleteTicketUC *usecases.DeleteTicketUseCase
	assignUC       *usecases.AssignTechnicianUseCase
	unassignUC     *usecases.UnassignTechnicianUseCase
	uploadFilesUC  *usecases.UploadFilesUseCase
	deleteFileUC   *usecases.DeleteFileUseCase
	logger         logger.Interface
}

func NewTicketHandler(
	createTicketUC *usecases.CreateTicketUseCase,
	getTicketUC *usecases.GetTicketUseCase,
	listTicketsUC *usecases.ListTicketsUseCase,
	updateTicketUC *usecases.UpdateTicketUseCase,
	changeStatusUC *usecases.ChangeTicketStatusUseCase,
	amendClosedUC *usecases.AmendClosedTicketUseCase,
	deleteTicketUC *usecases.DeleteTicketUseCase,
	assignUC *usecases.AssignTechnicianUseCase,
	unassignUC *usecases.UnassignTechnicianUseCase,
	uploadFilesUC *usecases.UploadFilesUseCase,
	deleteFileUC *usecases.DeleteFileUseCase,
) *TicketHandler {
	return &TicketHandler{
		createTicketUC: createTicketUC,
		getTicketUC:    getTicketUC,
		listTicketsUC:  listTicketsUC,
		updateTicketUC: updateTicketUC,
		changeStatusUC: changeStatusUC,
		amendClosedUC:  amendClosedUC,
		deleteTicketUC: deleteTicketUC,
		assignUC:       assignUC,
		unassignUC:     unassignUC,
		uploadFilesUC:  uploadFilesUC,
		deleteFileUC:   deleteFileUC,
		logger:         logger.NewLogger(),
	}
}

type CreateTicketRequest struct {
	DeviceID    uint   `json:"device_id" binding:"required"`
	Description string `json:"description" binding:"required,min=10"`
	PriorityID  uint   `json:"priority_id" binding:"required"`
}

// AdminCreateTicketRequest additionally lets an administrator file the
// ticket on behalf of another user.
type AdminCreateTicketRequest struct {
	DeviceID       uint   `json:"device_id" binding:"required"`
	Description    string `json:"description" binding:"required,min=10"`
	PriorityID     uint   `json:"priority_id" binding:"required"`
	OnBehalfUserID *uint  `json:"on_behalf_user_id"`
}

type UpdateTicketRequest struct {
	DeviceID        *uint   `json:"device_id"`
	Description     *string `json:"description" binding:"omitempty,min=10"`
	PriorityID      *uint   `json:"priority_id"`
	StatusID        *uint   `json:"status_id"`
	ResolutionNotes *string `json:"resolution_notes"`
}

type ChangeStatusRequest struct {
	StatusID        uint    `json:"status_id" binding:"required"`
	ResolutionNotes *string `json:"resolution_notes"`
}

type AssignTechnicianRequest struct {
	TechnicianID uint `json:"technician_id" binding:"required"`
}

// CreateTicket handles POST /tickets.
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.createTicketUC.Execute(c.Request.Context(), usecases.CreateTicketCommand{
		Actor:       actor,
		DeviceID:    req.DeviceID,
		Description: req.Description,
		PriorityID:  req.PriorityID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toTicketResponse(result), "ticket created")
}

// AdminCreateTicket handles POST /admin/tickets.
func (h *TicketHandler) AdminCreateTicket(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	var req AdminCreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for admin create ticket", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.createTicketUC.Execute(c.Request.Context(), usecases.CreateTicketCommand{
		Actor:          actor,
		DeviceID:       req.DeviceID,
		Description:    req.Description,
		PriorityID:     req.PriorityID,
		OnBehalfUserID: req.OnBehalfUserID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toTicketResponse(result), "ticket created")
}

// GetTicket handles GET /tickets/:ticket_id.
func (h *TicketHandler) GetTicket(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	ticketID, err := parseIDParam(c, "ticket_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getTicketUC.Execute(c.Request.Context(), actor, ticketID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toTicketResponse(result))
}

// ListTickets handles GET /tickets.
func (h *TicketHandler) ListTickets(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	cmd := usecases.ListTicketsCommand{
		Actor:  actor,
		Search: c.Query("search"),
		Skip:   parseIntQuery(c, "skip", 0),
		Limit:  parseIntQuery(c, "limit", 0),
		SortBy: c.Query("sort_by"),
	}

	var err error
	if cmd.StatusID, err = parseUintQuery(c, "status_id"); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if cmd.PriorityID, err = parseUintQuery(c, "priority_id"); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if cmd.DeviceID, err = parseUintQuery(c, "device_id"); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if cmd.UserID, err = parseUintQuery(c, "user_id"); err != nil {
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

	cmd.SortDesc = parseBoolQuery(c, "sort_desc")
	if assigned := parseBoolQuery(c, "assigned_to_me"); assigned != nil {
		cmd.AssignedToMe = *assigned
	}

	result, err := h.listTicketsUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, toTicketResponses(result.Tickets), result.Total, result.Skip, result.Limit)
}

// UpdateTicket handles PATCH /tickets/:ticket_id.
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	ticketID, err := parseIDParam(c, "ticket_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update ticket", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.updateTicketUC.Execute(c.Request.Context(), usecases.UpdateTicketCommand{
		Actor:           actor,
		TicketID:        ticketID,
		DeviceID:        req.DeviceID,
		Description:     req.Description,
		PriorityID:      req.PriorityID,
		StatusID:        req.StatusID,
		ResolutionNotes: req.ResolutionNotes,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "ticket updated", toTicketResponse(result))
}

// ChangeStatus handles POST /tickets/:ticket_id/status.
func (h *TicketHandler) ChangeStatus(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	ticketID, err := parseIDParam(c, "ticket_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for status change", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.changeStatusUC.Execute(c.Request.Context(), usecases.ChangeTicketStatusCommand{
		Actor:           actor,
		TicketID:        ticketID,
		StatusID:        req.StatusID,
		ResolutionNotes: req.ResolutionNotes,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "status updated", toTicketResponse(result))
}

// AmendClosed handles POST /tickets/:ticket_id/edit-closed.
func (h *TicketHandler) AmendClosed(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	ticketID, err := parseIDParam(c, "ticket_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for closed ticket edit", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.amendClosedUC.Execute(c.Request.Context(), usecases.AmendClosedTicketCommand{
		Actor:           actor,
		TicketID:        ticketID,
		DeviceID:        req.DeviceID,
		Description:     req.Description,
		PriorityID:      req.PriorityID,
		StatusID:        req.StatusID,
		ResolutionNotes: req.ResolutionNotes,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "ticket updated", toTicketResponse(result))
}

// DeleteTicket handles DELETE /tickets/:ticket_id.
func (h *TicketHandler) DeleteTicket(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	ticketID, err := parseIDParam(c, "ticket_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	err = h.deleteTicketUC.Execute(c.Request.Context(), usecases.DeleteTicketCommand{
		Actor:    actor,
		TicketID: ticketID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Assign handles POST /tickets/:ticket_id/assign.
func (h *TicketHandler) Assign(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	ticketID, err := parseIDParam(c, "ticket_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AssignTechnicianRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for assignment", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.assignUC.Execute(c.Request.Context(), usecases.AssignTechnicianCommand{
		Actor:        actor,
		TicketID:     ticketID,
		TechnicianID: req.TechnicianID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toAssignmentResponse(result), "technician assigned")
}

// Unassign handles DELETE /tickets/:ticket_id/unassign/:technician_id.
func (h *TicketHandler) Unassign(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	ticketID, err := parseIDParam(c, "ticket_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	technicianID, err := parseIDParam(c, "technician_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	err = h.unassignUC.Execute(c.Request.Context(), usecases.UnassignTechnicianCommand{
		Actor:        actor,
		TicketID:     ticketID,
		TechnicianID: technicianID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// UploadFiles handles POST /tickets/:ticket_id/files. The form may
// carry several files under the "files" field.
func (h *TicketHandler) UploadFiles(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	ticketID, err := parseIDParam(c, "ticket_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		h.logger.Warnw("invalid multipart form for file upload", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid multipart form")
		return
	}

	headers := form.File["files"]
	if len(headers) == 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "no files provided")
		return
	}

	uploads := make([]usecases.FileUpload, 0, len(headers))
	opened := make([]multipart.File, 0, len(headers))
	defer func() {
		for _, f := range opened {
			f.Close()
		}
	}()

	for _, header := range headers {
		file, err := header.Open()
		if err != nil {
			h.logger.Errorw("failed to open uploaded file", "file", header.Filename, "error", err)
			utils.ErrorResponse(c, http.StatusBadRequest, "could not read uploaded file")
			return
		}
		opened = append(opened, file)

		uploads = append(uploads, usecases.FileUpload{
			FileName:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Content:     file,
		})
	}

	results, err := h.uploadFilesUC.Execute(c.Request.Context(), usecases.UploadFilesCommand{
		Actor:    actor,
		TicketID: ticketID,
		Files:    uploads,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	responses := make([]*FileResponse, 0, len(results))
	for _, r := range results {
		responses = append(responses, toFileResponse(r))
	}

	utils.CreatedResponse(c, responses, "files uploaded")
}

// DeleteFile handles DELETE /tickets/:ticket_id/files/:file_id.
func (h *TicketHandler) DeleteFile(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	ticketID, err := parseIDParam(c, "ticket_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	fileID, err := parseIDParam(c, "file_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	err = h.deleteFileUC.Execute(c.Request.Context(), usecases.DeleteFileCommand{
		Actor:    actor,
		TicketID: ticketID,
		FileID:   fileID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
