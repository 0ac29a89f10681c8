package user

import "context"

// Repository defines the interface for user data operations.
// Lookups return (nil, nil) when no row matches.
type Repository interface {
	// Create creates a new user
	Create(ctx context.Context, user *User) error

	// GetByID retrieves a user by internal ID
	GetByID(ctx context.Context, id uint) (*User, error)

	// GetByIDs retrieves multiple users by internal IDs
	GetByIDs(ctx context.Context, ids []uint) ([]*User, error)

	// GetByUsername retrieves a user by unique username
	GetByUsername(ctx context.Context, username string) (*User, error)

	// GetByEmail retrieves a user by email
	GetByEmail(ctx context.Context, email string) (*User, error)

	// Update updates an existing user
	Update(ctx context.Context, user *User) error

	// Delete removes a user by internal ID
	Delete(ctx context.Context, id uint) error

	// List retrieves a paginated list of users
	List(ctx context.Context, filter ListFilter) ([]*User, int64, error)

	// ExistsByUsername checks if a user exists by username
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// ExistsByEmail checks if a user exists by email
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// CountByRoleID counts users holding the given role
	CountByRoleID(ctx context.Context, roleID uint) (int64, error)
}

// RoleRepository defines the interface for user role lookups.
type RoleRepository interface {
	Create(ctx context.Context, role *Role) error
	GetByID(ctx context.Context, id uint) (*Role, error)
	GetByName(ctx context.Context, name string) (*Role, error)
	Update(ctx context.Context, role *Role) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, skip, limit int) ([]*Role, error)
}

// ListFilter represents filtering and pagination options for user list
type ListFilter struct {
	Skip     int    `json:"skip"`
	Limit    int    `json:"limit"`
	Username string `json:"username,omitempty"`
	RoleID   *uint  `json:"role_id,omitempty"`
}
