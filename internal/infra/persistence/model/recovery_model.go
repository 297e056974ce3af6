package model

import (
	"time"

	"devicequote/internal/domain/entity"
)

// RecoverySessionModel is the GORM-specific struct for the 'recovery_sessions' table.
// Only the SHA-256 of the token is stored.
type RecoverySessionModel struct {
	TokenHash string                `gorm:"type:char(64);primary_key"`
	Input     entity.ConditionInput `gorm:"type:jsonb;serializer:json;not null"`
	Selection entity.Selection      `gorm:"type:jsonb;serializer:json;not null"`
	Email     *string               `gorm:"type:varchar(320)"`
	CreatedAt time.Time             `gorm:"not null"`
	ExpiresAt time.Time             `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (RecoverySessionModel) TableName() string {
	return "recovery_sessions"
}

// All lists every model for auto-migration.
func All() []any {
	return []any{
		&DeviceModel{},
		&PriceRecordModel{},
		&AnchorModel{},
		&RepairPriceModel{},
		&PriceReviewModel{},
		&RecoverySessionModel{},
	}
}
