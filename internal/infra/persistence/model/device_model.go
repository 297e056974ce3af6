package model

import (
	"time"
)

// DeviceModel is the GORM-specific struct for the 'devices' table.
// Rows are seeded reference data keyed by the device slug.
type DeviceModel struct {
	ID        string `gorm:"type:varchar(128);primary_key"`
	Brand     string `gorm:"type:varchar(64);not null;index:idx_devices_brand_model"`
	Model     string `gorm:"type:varchar(128);not null;index:idx_devices_brand_model"`
	Category  string `gorm:"type:varchar(32);not null"`
	ImageURL  string `gorm:"type:varchar(512)"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeviceModel) TableName() string {
	return "devices"
}
