package user

import (
	"fmt"
	"strings"
)

// Role is a row of the user_roles lookup table. The seeded names
// ("admin", "technician", "user") back the authorization tiers.
type Role struct {
	id          uint
	name        string
	description *string
}

func NewRole(name string, description *string) (*Role, error) {
	name = strings.TrimSpace(name)
	if len(name) == 0 {
		return nil, fmt.Errorf("role name is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("role name exceeds maximum length of 100 characters")
	}

	return &Role{
		name:        name,
		description: description,
	}, nil
}

func ReconstructRole(id uint, name string, description *string) (*Role, error) {
	if id == 0 {
		return nil, fmt.Errorf("role ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("role name is required")
	}

	return &Role{
		id:          id,
		name:        name,
		description: description,
	}, nil
}

func (r *Role) ID() uint {
	return r.id
}

func (r *Role) Name() string {
	return r.name
}

func (r *Role) Description() *string {
	return r.description
}

func (r *Role) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("role ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("role ID cannot be zero")
	}
	r.id = id
	return nil
}

func (r *Role) Update(name string, description *string) error {
	name = strings.TrimSpace(name)
	if len(name) == 0 {
		return fmt.Errorf("role name is required")
	}
	if len(name) > 100 {
		return fmt.Errorf("role name exceeds maximum length of 100 characters")
	}

	r.name = name
	r.description = description
	return nil
}
