package authorization

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseUserRole(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected UserRole
	}{
		{name: "admin", input: "admin", expected: RoleAdmin},
		{name: "technician", input: "technician", expected: RoleTechnician},
		{name: "user", input: "user", expected: RoleUser},
		{name: "unknown falls back to user", input: "superuser", expected: RoleUser},
		{name: "empty falls back to user", input: "", expected: RoleUser},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseUserRole(tt.input))
		})
	}
}

func TestUserRolePredicates(t *testing.T) {
	assert.True(t, RoleAdmin.IsAdmin())
	assert.True(t, RoleAdmin.IsStaff())
	assert.False(t, RoleAdmin.IsTechnician())

	assert.True(t, RoleTechnician.IsTechnician())
	assert.True(t, RoleTechnician.IsStaff())
	assert.False(t, RoleTechnician.IsAdmin())

	assert.False(t, RoleUser.IsStaff())
	assert.False(t, RoleUser.IsAdmin())
}

func TestCanAccessTicket(t *testing.T) {
	tests := []struct {
		name     string
		actor    Actor
		authorID uint
		allowed  bool
	}{
		{name: "admin sees any ticket", actor: Actor{UserID: 1, Role: RoleAdmin}, authorID: 42, allowed: true},
		{name: "technician sees any ticket", actor: Actor{UserID: 2, Role: RoleTechnician}, authorID: 42, allowed: true},
		{name: "user sees own ticket", actor: Actor{UserID: 42, Role: RoleUser}, authorID: 42, allowed: true},
		{name: "user blocked from foreign ticket", actor: Actor{UserID: 7, Role: RoleUser}, authorID: 42, allowed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, CanAccessTicket(tt.actor, tt.authorID))
		})
	}
}
