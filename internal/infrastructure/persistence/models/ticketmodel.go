package models

type TicketModel struct {
	ID              uint   `gorm:"primaryKey"`
	DeviceID        uint   `gorm:"not null;index"`
	UserID          uint   `gorm:"not null;index"`
	Description     string `gorm:"type:text;not null"`
	PriorityID      uint   `gorm:"not null;index"`
	StatusID        uint   `gorm:"not null;index"`
	ResolutionNotes *string `gorm:"type:text"`
	CreatedAt       int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt       int64  `gorm:"autoUpdateTime:milli;not null"`
	ClosedAt        *int64

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (TicketModel) TableName() string {
	return "tickets"
}

type TechnicianAssignmentModel struct {
	ID           uint  `gorm:"primaryKey"`
	TicketID     uint  `gorm:"not null;index;uniqueIndex:uq_ticket_technician"`
	TechnicianID uint  `gorm:"not null;index;uniqueIndex:uq_ticket_technician"`
	AssignedAt   int64 `gorm:"autoCreateTime:milli;not null"`
}

func (TechnicianAssignmentModel) TableName() string {
	return "technician_assignments"
}

type FileModel struct {
	ID         uint   `gorm:"primaryKey"`
	TicketID   uint   `gorm:"not null;index"`
	FileName   string `gorm:"size:255;not null"`
	FilePath   string `gorm:"type:text;not null"`
	FileType   string `gorm:"size:100;not null"`
	FileSize   int64  `gorm:"not null"`
	UploadedAt int64  `gorm:"autoCreateTime:milli;not null"`
}

func (FileModel) TableName() string {
	return "files"
}
