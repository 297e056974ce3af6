package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PriceRecordModel is the GORM-specific struct for the 'buyback_prices' table.
type PriceRecordModel struct {
	ID        uint            `gorm:"primaryKey"`
	DeviceID  string          `gorm:"type:varchar(128);not null;uniqueIndex:uq_buyback_prices_device_storage_tier"`
	Storage   string          `gorm:"type:varchar(16);not null;uniqueIndex:uq_buyback_prices_device_storage_tier"`
	Tier      string          `gorm:"type:varchar(16);not null;uniqueIndex:uq_buyback_prices_device_storage_tier"`
	Price     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PriceRecordModel) TableName() string {
	return "buyback_prices"
}

// AnchorModel is the GORM-specific struct for the 'anchor_prices' table.
type AnchorModel struct {
	DeviceID    string          `gorm:"type:varchar(128);primary_key"`
	AnchorPrice decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	BasePrice   decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (AnchorModel) TableName() string {
	return "anchor_prices"
}

// RepairPriceModel is the GORM-specific struct for the 'repair_prices' table.
// Variant is stored as an empty string for the default quality so the unique
// index covers it.
type RepairPriceModel struct {
	ID        uint            `gorm:"primaryKey"`
	DeviceID  string          `gorm:"type:varchar(128);not null;uniqueIndex:uq_repair_prices_device_issue_variant"`
	IssueID   string          `gorm:"type:varchar(64);not null;uniqueIndex:uq_repair_prices_device_issue_variant"`
	Variant   string          `gorm:"type:varchar(32);not null;default:'';uniqueIndex:uq_repair_prices_device_issue_variant"`
	Price     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RepairPriceModel) TableName() string {
	return "repair_prices"
}

// PriceReviewModel is the GORM-specific struct for the 'price_reviews' table.
type PriceReviewModel struct {
	ID             uuid.UUID        `gorm:"type:uuid;primary_key"`
	DeviceID       string           `gorm:"type:varchar(128);not null;index"`
	Kind           string           `gorm:"type:varchar(16);not null"`
	Storage        string           `gorm:"type:varchar(16)"`
	Tier           string           `gorm:"type:varchar(16)"`
	IssueID        string           `gorm:"type:varchar(64)"`
	Variant        string           `gorm:"type:varchar(32)"`
	ProposedPrice  decimal.Decimal  `gorm:"type:numeric(12,2);not null"`
	ReferencePrice *decimal.Decimal `gorm:"type:numeric(12,2)"`
	Source         string           `gorm:"type:varchar(64);not null"`
	Reason         string           `gorm:"type:text;not null"`
	CreatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (PriceReviewModel) TableName() string {
	return "price_reviews"
}
