package impl

import (
	"log/slog"
	"time"

	"devicequote/internal/domain/entity"

	"github.com/shopspring/decimal"
)

const galaxyID = "samsung-galaxy-s25"

var fixtureTime = time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC) //nolint:gochecknoglobals

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func discardLogger() *slog.Logger { return slog.New(slog.DiscardHandler) }

// galaxyDataset has an exact like-new record at 512GB, a good record at
// 256GB, an anchor of 365 and three repair prices.
func galaxyDataset() *entity.DeviceDataset {
	return &entity.DeviceDataset{
		Device: &entity.Device{
			ID:       galaxyID,
			Brand:    "Samsung",
			Model:    "Galaxy S25",
			Category: entity.CategorySmartphone,
		},
		BuybackRecords: []entity.PriceRecord{
			{DeviceID: galaxyID, Storage: "512GB", Tier: entity.TierLikeNew, Price: dec("365"), UpdatedAt: fixtureTime},
			{DeviceID: galaxyID, Storage: "256GB", Tier: entity.TierGood, Price: dec("250"), UpdatedAt: fixtureTime},
		},
		Anchor: &entity.AnchorRecord{DeviceID: galaxyID, AnchorPrice: dec("420"), BasePrice: dec("365"), UpdatedAt: fixtureTime},
		RepairRecords: []entity.RepairIssuePrice{
			{DeviceID: galaxyID, IssueID: "screen", Variant: "original", Price: dec("229.00"), UpdatedAt: fixtureTime},
			{DeviceID: galaxyID, IssueID: "screen", Variant: "compatible", Price: dec("149.00"), UpdatedAt: fixtureTime},
			{DeviceID: galaxyID, IssueID: "battery", Price: dec("89.50"), UpdatedAt: fixtureTime},
		},
		FetchedAt: fixtureTime,
	}
}

// anchorOnlyDataset is galaxyDataset without exact buyback records.
func anchorOnlyDataset() *entity.DeviceDataset {
	ds := galaxyDataset()
	ds.BuybackRecords = nil

	return ds
}

func emptyDataset(id string) *entity.DeviceDataset {
	return &entity.DeviceDataset{
		Device:    &entity.Device{ID: id, Brand: "Acme", Model: "Phone 1", Category: entity.CategorySmartphone},
		FetchedAt: fixtureTime,
	}
}

func conditionInput(screen entity.ScreenState, body entity.BodyState) *entity.ConditionInput {
	return &entity.ConditionInput{
		TurnsOn:        true,
		WorksCorrectly: true,
		IsUnlocked:     true,
		ScreenState:    screen,
		BodyState:      body,
		BatteryHealth:  entity.BatteryNormal,
	}
}
