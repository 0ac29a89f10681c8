package authorization

// UserRole is the access tier attached to every authenticated request.
// Roles live in the user_roles table; the name column is mapped onto
// this enum when the identity is loaded.
type UserRole string

const (
	RoleAdmin      UserRole = "admin"
	RoleTechnician UserRole = "technician"
	RoleUser       UserRole = "user"
)

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin
}

func (r UserRole) IsTechnician() bool {
	return r == RoleTechnician
}

// IsStaff reports whether the role may operate on tickets it does not own.
func (r UserRole) IsStaff() bool {
	return r == RoleAdmin || r == RoleTechnician
}

func (r UserRole) IsValid() bool {
	return r == RoleAdmin || r == RoleTechnician || r == RoleUser
}

// ParseUserRole maps a stored role name onto the enum. Unknown names
// degrade to the least-privileged role rather than failing the request.
func ParseUserRole(s string) UserRole {
	role := UserRole(s)
	if role.IsValid() {
		return role
	}
	return RoleUser
}
