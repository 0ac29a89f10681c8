package models

type RoleModel struct {
	ID          uint    `gorm:"primaryKey"`
	Name        string  `gorm:"uniqueIndex;size:100;not null"`
	Description *string `gorm:"size:255"`
}

func (RoleModel) TableName() string {
	return "user_roles"
}

type UserModel struct {
	ID           uint    `gorm:"primaryKey"`
	Username     string  `gorm:"uniqueIndex;size:100;not null"`
	PasswordHash string  `gorm:"type:text;not null"`
	Email        *string `gorm:"uniqueIndex;size:255"`
	FirstName    *string `gorm:"size:255"`
	LastName     *string `gorm:"size:255"`
	PhoneNumber  *string `gorm:"size:50"`
	Department   *string `gorm:"size:255"`
	AvatarURL    *string `gorm:"type:text"`
	RoleID       uint    `gorm:"not null;index"`
	CreatedAt    int64   `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt    int64   `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (UserModel) TableName() string {
	return "users"
}
