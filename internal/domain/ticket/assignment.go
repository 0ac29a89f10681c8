package ticket

import (
	"fmt"
	"time"
)

// TechnicianAssignment links a technician to a ticket. A technician can
// be assigned to a ticket at most once.
type TechnicianAssignment struct {
	id           uint
	ticketID     uint
	technicianID uint
	assignedAt   time.Time
}

func NewTechnicianAssignment(ticketID, technicianID uint) (*TechnicianAssignment, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if technicianID == 0 {
		return nil, fmt.Errorf("technician ID is required")
	}

	return &TechnicianAssignment{
		ticketID:     ticketID,
		technicianID: technicianID,
		assignedAt:   time.Now(),
	}, nil
}

func ReconstructTechnicianAssignment(id, ticketID, technicianID uint, assignedAt time.Time) (*TechnicianAssignment, error) {
	if id == 0 {
		return nil, fmt.Errorf("assignment ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if technicianID == 0 {
		return nil, fmt.Errorf("technician ID is required")
	}

	return &TechnicianAssignment{
		id:           id,
		ticketID:     ticketID,
		technicianID: technicianID,
		assignedAt:   assignedAt,
	}, nil
}

func (a *TechnicianAssignment) ID() uint {
	return a.id
}

func (a *TechnicianAssignment) TicketID() uint {
	return a.ticketID
}

func (a *TechnicianAssignment) TechnicianID() uint {
	return a.technicianID
}

func (a *TechnicianAssignment) AssignedAt() time.Time {
	return a.assignedAt
}

func (a *TechnicianAssignment) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("assignment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("assignment ID cannot be zero")
	}
	a.id = id
	return nil
}
