package models

type DeviceTypeModel struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"uniqueIndex;size:255;not null"`
}

func (DeviceTypeModel) TableName() string {
	return "device_types"
}

type PriorityModel struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"uniqueIndex;size:100;not null"`
	DisplayOrder *int
}

func (PriorityModel) TableName() string {
	return "priorities"
}

type StatusModel struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"uniqueIndex;size:100;not null"`
	DisplayOrder *int
	IsFinal      bool `gorm:"not null;default:false"`
}

func (StatusModel) TableName() string {
	return "statuses"
}
