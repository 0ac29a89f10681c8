package user

import (
	"fmt"
	"strings"
	"time"
)

// User is an account in the directory. The password never leaves the
// entity unhashed; role assignment is by role_id into user_roles.
type User struct {
	id           uint
	username     string
	passwordHash string
	email        *string
	firstName    *string
	lastName     *string
	phoneNumber  *string
	department   *string
	avatarURL    *string
	roleID       uint
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(username, passwordHash string, roleID uint) (*User, error) {
	username = strings.TrimSpace(username)
	if len(username) < 3 {
		return nil, fmt.Errorf("username must be at least 3 characters")
	}
	if len(username) > 100 {
		return nil, fmt.Errorf("username exceeds maximum length of 100 characters")
	}
	if len(passwordHash) == 0 {
		return nil, fmt.Errorf("password hash is required")
	}
	if roleID == 0 {
		return nil, fmt.Errorf("role ID is required")
	}

	now := time.Now()
	return &User{
		username:     username,
		passwordHash: passwordHash,
		roleID:       roleID,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructUser(
	id uint,
	username string,
	passwordHash string,
	email *string,
	firstName *string,
	lastName *string,
	phoneNumber *string,
	department *string,
	avatarURL *string,
	roleID uint,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if len(username) == 0 {
		return nil, fmt.Errorf("username is required")
	}
	if len(passwordHash) == 0 {
		return nil, fmt.Errorf("password hash is required")
	}
	if roleID == 0 {
		return nil, fmt.Errorf("role ID is required")
	}

	return &User{
		id:           id,
		username:     username,
		passwordHash: passwordHash,
		email:        email,
		firstName:    firstName,
		lastName:     lastName,
		phoneNumber:  phoneNumber,
		department:   department,
		avatarURL:    avatarURL,
		roleID:       roleID,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) Username() string {
	return u.username
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) Email() *string {
	return u.email
}

func (u *User) FirstName() *string {
	return u.firstName
}

func (u *User) LastName() *string {
	return u.lastName
}

func (u *User) PhoneNumber() *string {
	return u.phoneNumber
}

func (u *User) Department() *string {
	return u.department
}

func (u *User) AvatarURL() *string {
	return u.avatarURL
}

func (u *User) RoleID() uint {
	return u.roleID
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

// FullName joins first and last name, falling back to the username
// when neither is set.
func (u *User) FullName() string {
	parts := make([]string, 0, 2)
	if u.firstName != nil && *u.firstName != "" {
		parts = append(parts, *u.firstName)
	}
	if u.lastName != nil && *u.lastName != "" {
		parts = append(parts, *u.lastName)
	}
	if len(parts) == 0 {
		return u.username
	}
	return strings.Join(parts, " ")
}

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

// UpdateProfile replaces the optional profile fields. Nil arguments
// clear the corresponding field.
func (u *User) UpdateProfile(email, firstName, lastName, phoneNumber, department, avatarURL *string) {
	u.email = email
	u.firstName = firstName
	u.lastName = lastName
	u.phoneNumber = phoneNumber
	u.department = department
	u.avatarURL = avatarURL
	u.updatedAt = time.Now()
}

func (u *User) ChangeUsername(username string) error {
	username = strings.TrimSpace(username)
	if len(username) < 3 {
		return fmt.Errorf("username must be at least 3 characters")
	}
	if len(username) > 100 {
		return fmt.Errorf("username exceeds maximum length of 100 characters")
	}
	u.username = username
	u.updatedAt = time.Now()
	return nil
}

func (u *User) ChangePassword(newHash string) error {
	if len(newHash) == 0 {
		return fmt.Errorf("password hash is required")
	}
	u.passwordHash = newHash
	u.updatedAt = time.Now()
	return nil
}

func (u *User) ChangeRole(roleID uint) error {
	if roleID == 0 {
		return fmt.Errorf("role ID is required")
	}
	u.roleID = roleID
	u.updatedAt = time.Now()
	return nil
}
