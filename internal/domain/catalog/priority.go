package catalog

import (
	"fmt"
	"strings"
)

type Priority struct {
	id           uint
	name         string
	displayOrder *int
}

func NewPriority(name string, displayOrder *int) (*Priority, error) {
	name = strings.TrimSpace(name)
	if len(name) == 0 {
		return nil, fmt.Errorf("priority name is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("priority name exceeds maximum length of 100 characters")
	}

	return &Priority{name: name, displayOrder: displayOrder}, nil
}

func ReconstructPriority(id uint, name string, displayOrder *int) (*Priority, error) {
	if id == 0 {
		return nil, fmt.Errorf("priority ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("priority name is required")
	}

	return &Priority{id: id, name: name, displayOrder: displayOrder}, nil
}

func (p *Priority) ID() uint {
	return p.id
}

func (p *Priority) Name() string {
	return p.name
}

func (p *Priority) DisplayOrder() *int {
	return p.displayOrder
}

func (p *Priority) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("priority ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("priority ID cannot be zero")
	}
	p.id = id
	return nil
}

func (p *Priority) Update(name string, displayOrder *int) error {
	name = strings.TrimSpace(name)
	if len(name) == 0 {
		return fmt.Errorf("priority name is required")
	}
	if len(name) > 100 {
		return fmt.Errorf("priority name exceeds maximum length of 100 characters")
	}
	p.name = name
	p.displayOrder = displayOrder
	return nil
}
