package models

// DeviceModel keeps its externally assigned primary key; gorm must not
// autoincrement it.
type DeviceModel struct {
	ID              uint    `gorm:"primaryKey;autoIncrement:false"`
	Name            string  `gorm:"size:255;not null;index"`
	DeviceTypeID    *uint   `gorm:"index"`
	InventoryNumber *string `gorm:"uniqueIndex;size:100"`
}

func (DeviceModel) TableName() string {
	return "devices"
}
