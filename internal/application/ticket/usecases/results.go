package usecases

import (
	"time"

	"helpdesk/internal/domain/ticket"
)

type AssignmentResult struct {
	ID                 uint
	TicketID           uint
	TechnicianID       uint
	TechnicianUsername string
	TechnicianFullName string
	AssignedAt         time.Time
}

func newAssignmentResult(a *ticket.AssignmentDetail) *AssignmentResult {
	return &AssignmentResult{
		ID:                 a.Assignment.ID(),
		TicketID:           a.Assignment.TicketID(),
		TechnicianID:       a.Assignment.TechnicianID(),
		TechnicianUsername: a.TechnicianUsername,
		TechnicianFullName: a.TechnicianFullName,
		AssignedAt:         a.Assignment.AssignedAt(),
	}
}

type FileResult struct {
	ID         uint
	TicketID   uint
	FileName   string
	FilePath   string
	FileType   string
	FileSize   int64
	UploadedAt time.Time
}

func newFileResult(f *ticket.File) *FileResult {
	return &FileResult{
		ID:         f.ID(),
		TicketID:   f.TicketID(),
		FileName:   f.FileName(),
		FilePath:   f.FilePath(),
		FileType:   f.FileType(),
		FileSize:   f.FileSize(),
		UploadedAt: f.UploadedAt(),
	}
}

type TicketResult struct {
	ID              uint
	DeviceID        uint
	DeviceName      string
	UserID          uint
	AuthorUsername  string
	AuthorFullName  string
	Description     string
	PriorityID      uint
	PriorityName    string
	StatusID        uint
	StatusName      string
	StatusIsFinal   bool
	ResolutionNotes *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	ClosedAt        *time.Time
	Assignments     []*AssignmentResult
	Files           []*FileResult
}

func newTicketResult(d *ticket.Detail) *TicketResult {
	assignments := make([]*AssignmentResult, 0, len(d.Assignments))
	for _, a := range d.Assignments {
		assignments = append(assignments, newAssignmentResult(a))
	}
	files := make([]*FileResult, 0, len(d.Files))
	for _, f := range d.Files {
		files = append(files, newFileResult(f))
	}

	t := d.Ticket
	return &TicketResult{
		ID:              t.ID(),
		DeviceID:        t.DeviceID(),
		DeviceName:      d.DeviceName,
		UserID:          t.UserID(),
		AuthorUsername:  d.AuthorUsername,
		AuthorFullName:  d.AuthorFullName,
		Description:     t.Description(),
		PriorityID:      t.PriorityID(),
		PriorityName:    d.PriorityName,
		StatusID:        t.StatusID(),
		StatusName:      d.StatusName,
		StatusIsFinal:   d.StatusIsFinal,
		ResolutionNotes: t.ResolutionNotes(),
		CreatedAt:       t.CreatedAt(),
		UpdatedAt:       t.UpdatedAt(),
		ClosedAt:        t.ClosedAt(),
		Assignments:     assignments,
		Files:           files,
	}
}
