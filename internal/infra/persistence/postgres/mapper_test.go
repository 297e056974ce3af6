package postgres

import (
	"testing"
	"time"

	"devicequote/internal/domain/entity"
	"devicequote/internal/infra/persistence/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFromPriceRecordDomain_NormalizesStorage(t *testing.T) {
	got := fromPriceRecordDomain(&entity.PriceRecord{
		DeviceID: "samsung-galaxy-s25",
		Storage:  " 512 gb",
		Tier:     entity.TierLikeNew,
		Price:    decimal.NewFromInt(365),
	})

	assert.Equal(t, "512GB", got.Storage)
	assert.Equal(t, "like-new", got.Tier)
	assert.True(t, got.Price.Equal(decimal.NewFromInt(365)))
}

func TestToDeviceDomain(t *testing.T) {
	assert.Nil(t, toDeviceDomain(nil))

	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	got := toDeviceDomain(&model.DeviceModel{
		ID:        "apple-iphone-13",
		Brand:     "Apple",
		Model:     "iPhone 13",
		Category:  "smartphone",
		CreatedAt: created,
	})

	assert.Equal(t, &entity.Device{
		ID:        "apple-iphone-13",
		Brand:     "Apple",
		Model:     "iPhone 13",
		Category:  entity.CategorySmartphone,
		CreatedAt: created,
	}, got)
}

func TestRecoverySessionMapping_RoundTrip(t *testing.T) {
	faceID := false
	email := "someone@example.com"
	session := &entity.RecoverySession{
		TokenHash: "abc",
		Input: entity.ConditionInput{
			TurnsOn:        true,
			WorksCorrectly: true,
			IsUnlocked:     true,
			FaceIDWorking:  &faceID,
			ScreenState:    entity.ScreenScratches,
			BodyState:      entity.BodyFlawless,
			BatteryHealth:  entity.BatteryService,
		},
		Selection: entity.Selection{DeviceID: "apple-iphone-13", Type: entity.TransactionBuyback, Storage: "128GB"},
		Email:     &email,
		CreatedAt: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		ExpiresAt: time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC),
	}

	assert.Equal(t, session, toRecoverySessionDomain(fromRecoverySessionDomain(session)))
}
