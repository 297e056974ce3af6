package usecase

import (
	"context"

	"devicequote/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// PriceUpdateResult describes an applied update.
type PriceUpdateResult struct {
	DeviceID      string                 `json:"deviceId"`
	Kind          entity.PriceUpdateKind `json:"kind"`
	Price         decimal.Decimal        `json:"price"`
	PreviousPrice *decimal.Decimal       `json:"previousPrice,omitempty"`
}

// PriceAdminUsecase applies administrative price updates.
type PriceAdminUsecase interface {
	// ApplyUpdate writes a price and invalidates the device's cached data.
	// Updates outside the sanity bounds are parked for review and fail with
	// UPDATE_REJECTED carrying the review id.
	ApplyUpdate(ctx context.Context, update *entity.PriceUpdate) (*PriceUpdateResult, error)
}
