package ticket

import (
	"fmt"
	"strings"
	"time"
)

const minDescriptionLength = 10

// Ticket is a support request filed against a device. Once closedAt is
// stamped the ticket is immutable through the normal operations; only
// the administrative amend path may touch it afterwards.
type Ticket struct {
	id              uint
	deviceID        uint
	userID          uint
	description     string
	priorityID      uint
	statusID        uint
	resolutionNotes *string
	createdAt       time.Time
	updatedAt       time.Time
	closedAt        *time.Time
}

func NewTicket(deviceID, userID uint, description string, priorityID, statusID uint) (*Ticket, error) {
	if deviceID == 0 {
		return nil, fmt.Errorf("device ID is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}
	description = strings.TrimSpace(description)
	if len(description) < minDescriptionLength {
		return nil, fmt.Errorf("description must be at least %d characters", minDescriptionLength)
	}
	if priorityID == 0 {
		return nil, fmt.Errorf("priority ID is required")
	}
	if statusID == 0 {
		return nil, fmt.Errorf("status ID is required")
	}

	now := time.Now()
	return &Ticket{
		deviceID:    deviceID,
		userID:      userID,
		description: description,
		priorityID:  priorityID,
		statusID:    statusID,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructTicket(
	id uint,
	deviceID uint,
	userID uint,
	description string,
	priorityID uint,
	statusID uint,
	resolutionNotes *string,
	createdAt, updatedAt time.Time,
	closedAt *time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if deviceID == 0 {
		return nil, fmt.Errorf("device ID is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}
	if priorityID == 0 {
		return nil, fmt.Errorf("priority ID is required")
	}
	if statusID == 0 {
		return nil, fmt.Errorf("status ID is required")
	}

	return &Ticket{
		id:              id,
		deviceID:        deviceID,
		userID:          userID,
		description:     description,
		priorityID:      priorityID,
		statusID:        statusID,
		resolutionNotes: resolutionNotes,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
		closedAt:        closedAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) DeviceID() uint {
	return t.deviceID
}

func (t *Ticket) UserID() uint {
	return t.userID
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) PriorityID() uint {
	return t.priorityID
}

func (t *Ticket) StatusID() uint {
	return t.statusID
}

func (t *Ticket) ResolutionNotes() *string {
	return t.resolutionNotes
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) ClosedAt() *time.Time {
	return t.closedAt
}

// IsClosed reports whether the ticket has been moved to a final status.
func (t *Ticket) IsClosed() bool {
	return t.closedAt != nil
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// UpdateDescription replaces the problem description. Closed tickets
// reject the change.
func (t *Ticket) UpdateDescription(description string) error {
	if t.IsClosed() {
		return fmt.Errorf("ticket is closed")
	}
	description = strings.TrimSpace(description)
	if len(description) < minDescriptionLength {
		return fmt.Errorf("description must be at least %d characters", minDescriptionLength)
	}
	t.description = description
	t.updatedAt = time.Now()
	return nil
}

func (t *Ticket) ChangeDevice(deviceID uint) error {
	if t.IsClosed() {
		return fmt.Errorf("ticket is closed")
	}
	if deviceID == 0 {
		return fmt.Errorf("device ID is required")
	}
	t.deviceID = deviceID
	t.updatedAt = time.Now()
	return nil
}

func (t *Ticket) ChangePriority(priorityID uint) error {
	if t.IsClosed() {
		return fmt.Errorf("ticket is closed")
	}
	if priorityID == 0 {
		return fmt.Errorf("priority ID is required")
	}
	t.priorityID = priorityID
	t.updatedAt = time.Now()
	return nil
}

// UpdateResolutionNotes replaces the notes on an open ticket without
// touching its status.
func (t *Ticket) UpdateResolutionNotes(notes string) error {
	if t.IsClosed() {
		return fmt.Errorf("ticket is closed")
	}
	trimmed := strings.TrimSpace(notes)
	t.resolutionNotes = &trimmed
	t.updatedAt = time.Now()
	return nil
}

// ChangeStatus moves the ticket to another workflow state. Moving onto
// a final status demands resolution notes and stamps closedAt.
func (t *Ticket) ChangeStatus(statusID uint, isFinal bool, resolutionNotes *string) error {
	if t.IsClosed() {
		return fmt.Errorf("ticket is closed")
	}
	if statusID == 0 {
		return fmt.Errorf("status ID is required")
	}

	if isFinal {
		if resolutionNotes == nil || len(strings.TrimSpace(*resolutionNotes)) == 0 {
			return fmt.Errorf("resolution notes are required to close a ticket")
		}
		notes := strings.TrimSpace(*resolutionNotes)
		t.resolutionNotes = &notes
		now := time.Now()
		t.closedAt = &now
	} else if resolutionNotes != nil {
		notes := strings.TrimSpace(*resolutionNotes)
		t.resolutionNotes = &notes
	}

	t.statusID = statusID
	t.updatedAt = time.Now()
	return nil
}

// Amendment carries the optional field corrections for a closed
// ticket. Nil fields are left untouched.
type Amendment struct {
	Description     *string
	DeviceID        *uint
	PriorityID      *uint
	StatusID        *uint
	ResolutionNotes *string
}

// AmendClosed lets an administrator correct a closed ticket without
// reopening it; closedAt is never cleared here.
func (t *Ticket) AmendClosed(a Amendment) error {
	if !t.IsClosed() {
		return fmt.Errorf("ticket is not closed")
	}

	if a.Description != nil {
		trimmed := strings.TrimSpace(*a.Description)
		if len(trimmed) < minDescriptionLength {
			return fmt.Errorf("description must be at least %d characters", minDescriptionLength)
		}
		t.description = trimmed
	}
	if a.DeviceID != nil {
		if *a.DeviceID == 0 {
			return fmt.Errorf("device ID is required")
		}
		t.deviceID = *a.DeviceID
	}
	if a.PriorityID != nil {
		if *a.PriorityID == 0 {
			return fmt.Errorf("priority ID is required")
		}
		t.priorityID = *a.PriorityID
	}
	if a.StatusID != nil {
		if *a.StatusID == 0 {
			return fmt.Errorf("status ID is required")
		}
		t.statusID = *a.StatusID
	}
	if a.ResolutionNotes != nil {
		notes := strings.TrimSpace(*a.ResolutionNotes)
		if len(notes) == 0 {
			return fmt.Errorf("resolution notes cannot be emptied on a closed ticket")
		}
		t.resolutionNotes = &notes
	}

	t.updatedAt = time.Now()
	return nil
}
