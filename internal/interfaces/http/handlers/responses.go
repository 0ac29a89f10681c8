package handlers

import (
	"time"

	catalogUC "helpdesk/internal/application/catalog/usecases"
	deviceUC "helpdesk/internal/application/device/usecases"
	ticketUC "helpdesk/internal/application/ticket/usecases"
	userUC "helpdesk/internal/application/user/usecases"
)

// UserResponse is the wire form of an account.
type UserResponse struct {
	ID          uint      `json:"id"`
	Username    string    `json:"username"`
	Email       *string   `json:"email"`
	FirstName   *string   `json:"first_name"`
	LastName    *string   `json:"last_name"`
	PhoneNumber *string   `json:"phone_number"`
	Department  *string   `json:"department"`
	AvatarURL   *string   `json:"avatar_url"`
	RoleID      uint      `json:"role_id"`
	RoleName    string    `json:"role_name"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toUserResponse(r *userUC.UserResult) *UserResponse {
	return &UserResponse{
		ID:          r.ID,
		Username:    r.Username,
		Email:       r.Email,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		PhoneNumber: r.PhoneNumber,
		Department:  r.Department,
		AvatarURL:   r.AvatarURL,
		RoleID:      r.RoleID,
		RoleName:    r.RoleName,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func toUserResponses(results []*userUC.UserResult) []*UserResponse {
	out := make([]*UserResponse, 0, len(results))
	for _, r := range results {
		out = append(out, toUserResponse(r))
	}
	return out
}

type RoleResponse struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

func toRoleResponse(r *userUC.RoleResult) *RoleResponse {
	return &RoleResponse{ID: r.ID, Name: r.Name, Description: r.Description}
}

type DeviceResponse struct {
	ID              uint    `json:"id"`
	Name            string  `json:"name"`
	DeviceTypeID    *uint   `json:"device_type_id"`
	InventoryNumber *string `json:"inventory_number"`
}

func toDeviceResponse(r *deviceUC.DeviceResult) *DeviceResponse {
	return &DeviceResponse{
		ID:              r.ID,
		Name:            r.Name,
		DeviceTypeID:    r.DeviceTypeID,
		InventoryNumber: r.InventoryNumber,
	}
}

type DeviceTypeResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func toDeviceTypeResponse(r *catalogUC.DeviceTypeResult) *DeviceTypeResponse {
	return &DeviceTypeResponse{ID: r.ID, Name: r.Name}
}

type PriorityResponse struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	DisplayOrder *int   `json:"display_order"`
}

func toPriorityResponse(r *catalogUC.PriorityResult) *PriorityResponse {
	return &PriorityResponse{ID: r.ID, Name: r.Name, DisplayOrder: r.DisplayOrder}
}

type StatusResponse struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	DisplayOrder *int   `json:"display_order"`
	IsFinal      bool   `json:"is_final"`
}

func toStatusResponse(r *catalogUC.StatusResult) *StatusResponse {
	return &StatusResponse{ID: r.ID, Name: r.Name, DisplayOrder: r.DisplayOrder, IsFinal: r.IsFinal}
}

type AssignmentResponse struct {
	ID                 uint      `json:"id"`
	TicketID           uint      `json:"ticket_id"`
	TechnicianID       uint      `json:"technician_id"`
	TechnicianUsername string    `json:"technician_username"`
	TechnicianFullName string    `json:"technician_full_name"`
	AssignedAt         time.Time `json:"assigned_at"`
}

func toAssignmentResponse(r *ticketUC.AssignmentResult) *AssignmentResponse {
	return &AssignmentResponse{
		ID:                 r.ID,
		TicketID:           r.TicketID,
		TechnicianID:       r.TechnicianID,
		TechnicianUsername: r.TechnicianUsername,
		TechnicianFullName: r.TechnicianFullName,
		AssignedAt:         r.AssignedAt,
	}
}

type FileResponse struct {
	ID         uint      `json:"id"`
	TicketID   uint      `json:"ticket_id"`
	FileName   string    `json:"file_name"`
	FilePath   string    `json:"file_path"`
	FileType   string    `json:"file_type"`
	FileSize   int64     `json:"file_size"`
	UploadedAt time.Time `json:"uploaded_at"`
}

func toFileResponse(r *ticketUC.FileResult) *FileResponse {
	return &FileResponse{
		ID:         r.ID,
		TicketID:   r.TicketID,
		FileName:   r.FileName,
		FilePath:   r.FilePath,
		FileType:   r.FileType,
		FileSize:   r.FileSize,
		UploadedAt: r.UploadedAt,
	}
}

type TicketResponse struct {
	ID              uint                  `json:"id"`
	DeviceID        uint                  `json:"device_id"`
	DeviceName      string                `json:"device_name"`
	UserID          uint                  `json:"user_id"`
	AuthorUsername  string                `json:"author_username"`
	AuthorFullName  string                `json:"author_full_name"`
	Description     string                `json:"description"`
	PriorityID      uint                  `json:"priority_id"`
	PriorityName    string                `json:"priority_name"`
	StatusID        uint                  `json:"status_id"`
	StatusName      string                `json:"status_name"`
	StatusIsFinal   bool                  `json:"status_is_final"`
	ResolutionNotes *string               `json:"resolution_notes"`
	CreatedAt       time.Time             `json:"created_at"`
	UpdatedAt       time.Time             `json:"updated_at"`
	ClosedAt        *time.Time            `json:"closed_at"`
	Assignments     []*AssignmentResponse `json:"assignments"`
	Files           []*FileResponse       `json:"files"`
}

func toTicketResponse(r *ticketUC.TicketResult) *TicketResponse {
	assignments := make([]*AssignmentResponse, 0, len(r.Assignments))
	for _, a := range r.Assignments {
		assignments = append(assignments, toAssignmentResponse(a))
	}
	files := make([]*FileResponse, 0, len(r.Files))
	for _, f := range r.Files {
		files = append(files, toFileResponse(f))
	}

	return &TicketResponse{
		ID:              r.ID,
		DeviceID:        r.DeviceID,
		DeviceName:      r.DeviceName,
		UserID:          r.UserID,
		AuthorUsername:  r.AuthorUsername,
		AuthorFullName:  r.AuthorFullName,
		Description:     r.Description,
		PriorityID:      r.PriorityID,
		PriorityName:    r.PriorityName,
		StatusID:        r.StatusID,
		StatusName:      r.StatusName,
		StatusIsFinal:   r.StatusIsFinal,
		ResolutionNotes: r.ResolutionNotes,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
		ClosedAt:        r.ClosedAt,
		Assignments:     assignments,
		Files:           files,
	}
}

func toTicketResponses(results []*ticketUC.TicketResult) []*TicketResponse {
	out := make([]*TicketResponse, 0, len(results))
	for _, r := range results {
		out = append(out, toTicketResponse(r))
	}
	return out
}
