package repository

import (
	"context"

	"devicequote/internal/domain/entity"
)

// PriceRepository is the price store. Reads return a whole device dataset in
// one call so the cache can hold a consistent snapshot per device.
type PriceRepository interface {
	// FindDeviceDataset loads the device, its buyback records, anchor and
	// repair prices. Returns ErrDeviceNotFound for an unknown id.
	FindDeviceDataset(ctx context.Context, deviceID string) (*entity.DeviceDataset, error)

	// UpsertPriceRecord writes a buyback price, replacing any record with the
	// same (device, storage, tier).
	UpsertPriceRecord(ctx context.Context, record *entity.PriceRecord) error

	// UpsertAnchor writes the anchor record of a device.
	UpsertAnchor(ctx context.Context, anchor *entity.AnchorRecord) error

	// UpsertRepairPrice writes a repair price, replacing any record with the
	// same (device, issue, variant).
	UpsertRepairPrice(ctx context.Context, price *entity.RepairIssuePrice) error
}

// PriceReviewRepository stores price updates held for manual review.
type PriceReviewRepository interface {
	CreatePriceReview(ctx context.Context, review *entity.PriceReview) error
}
