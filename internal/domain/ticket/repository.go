package ticket

import (
	"context"
	"time"
)

// Repository defines the interface for ticket data operations.
// Lookups return (nil, nil) when no row matches.
type Repository interface {
	Save(ctx context.Context, ticket *Ticket) error
	Update(ctx context.Context, ticket *Ticket) error
	Delete(ctx context.Context, ticketID uint) error
	GetByID(ctx context.Context, ticketID uint) (*Ticket, error)
	// GetDetail returns the ticket with its related names, files and
	// assignments resolved in one read.
	GetDetail(ctx context.Context, ticketID uint) (*Detail, error)
	List(ctx context.Context, filter Filter) ([]*Ticket, int64, error)
	// ListDetails is List with related names resolved, used by the
	// list endpoint and the CSV export.
	ListDetails(ctx context.Context, filter Filter) ([]*Detail, int64, error)
	CountByDeviceID(ctx context.Context, deviceID uint) (int64, error)
	CountByStatusID(ctx context.Context, statusID uint) (int64, error)
	CountByPriorityID(ctx context.Context, priorityID uint) (int64, error)
}

// Filter represents filtering, pagination and ordering for ticket lists.
type Filter struct {
	StatusID   *uint
	PriorityID *uint
	DeviceID   *uint
	UserID     *uint
	// StartDate and EndDate bound created_at, inclusive.
	StartDate *time.Time
	EndDate   *time.Time
	// TechnicianID restricts results to tickets the technician is
	// assigned to.
	TechnicianID *uint
	// Search matches the description case-insensitively.
	Search    string
	Skip      int
	Limit     int
	SortBy    string
	SortOrder string
}

// Detail is the read model behind list, detail and export responses:
// the ticket plus the display names its foreign keys point at.
type Detail struct {
	Ticket                *Ticket
	AuthorUsername        string
	AuthorFullName        string
	AuthorEmail           *string
	DeviceName            string
	DeviceInventoryNumber *string
	StatusName            string
	StatusIsFinal         bool
	PriorityName          string
	Assignments           []*AssignmentDetail
	Files                 []*File
}

// AssignmentDetail pairs an assignment with the technician's names.
type AssignmentDetail struct {
	Assignment         *TechnicianAssignment
	TechnicianUsername string
	TechnicianFullName string
}

// AssignmentRepository defines the interface for technician assignments.
type AssignmentRepository interface {
	Save(ctx context.Context, assignment *TechnicianAssignment) error
	Delete(ctx context.Context, assignmentID uint) error
	DeleteByTicketAndTechnician(ctx context.Context, ticketID, technicianID uint) error
	GetByTicketAndTechnician(ctx context.Context, ticketID, technicianID uint) (*TechnicianAssignment, error)
	ListByTicketID(ctx context.Context, ticketID uint) ([]*TechnicianAssignment, error)
}

// FileRepository defines the interface for attachment metadata.
type FileRepository interface {
	Save(ctx context.Context, file *File) error
	GetByID(ctx context.Context, fileID uint) (*File, error)
	ListByTicketID(ctx context.Context, ticketID uint) ([]*File, error)
	Delete(ctx context.Context, fileID uint) error
}
