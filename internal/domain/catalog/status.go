package catalog

import (
	"fmt"
	"strings"
)

// Status is a ticket workflow state. A status with isFinal set closes
// the tickets moved onto it.
type Status struct {
	id           uint
	name         string
	displayOrder *int
	isFinal      bool
}

func NewStatus(name string, displayOrder *int, isFinal bool) (*Status, error) {
	name = strings.TrimSpace(name)
	if len(name) == 0 {
		return nil, fmt.Errorf("status name is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("status name exceeds maximum length of 100 characters")
	}

	return &Status{name: name, displayOrder: displayOrder, isFinal: isFinal}, nil
}

func ReconstructStatus(id uint, name string, displayOrder *int, isFinal bool) (*Status, error) {
	if id == 0 {
		return nil, fmt.Errorf("status ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("status name is required")
	}

	return &Status{id: id, name: name, displayOrder: displayOrder, isFinal: isFinal}, nil
}

func (s *Status) ID() uint {
	return s.id
}

func (s *Status) Name() string {
	return s.name
}

func (s *Status) DisplayOrder() *int {
	return s.displayOrder
}

func (s *Status) IsFinal() bool {
	return s.isFinal
}

func (s *Status) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("status ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("status ID cannot be zero")
	}
	s.id = id
	return nil
}

func (s *Status) Update(name string, displayOrder *int, isFinal bool) error {
	name = strings.TrimSpace(name)
	if len(name) == 0 {
		return fmt.Errorf("status name is required")
	}
	if len(name) > 100 {
		return fmt.Errorf("status name exceeds maximum length of 100 characters")
	}
	s.name = name
	s.displayOrder = displayOrder
	s.isFinal = isFinal
	return nil
}
