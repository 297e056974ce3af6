package usecase

import (
	"context"

	"devicequote/internal/domain/entity"
	"devicequote/internal/domain/pricing"

	"github.com/shopspring/decimal"
)

// QuoteRequest asks for one price. A missing condition means a like-new device.
type QuoteRequest struct {
	DeviceID      string                 `json:"deviceId" validate:"required,max=128"`
	Type          entity.TransactionType `json:"type" validate:"required,oneof=repair buyback"`
	Storage       string                 `json:"storage,omitempty" validate:"max=16"`
	Condition     *entity.ConditionInput `json:"conditionInput,omitempty" validate:"omitempty"`
	IssueIDs      []string               `json:"issueIds,omitempty" validate:"max=20,dive,max=64"`
	ScreenVariant string                 `json:"screenVariant,omitempty" validate:"max=32"`
}

// BreakdownLine explains one part of a price.
type BreakdownLine struct {
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
	Note   string          `json:"note,omitempty"`
}

// QuoteResult is a resolved price. Price is rounded to whole euros for
// display; ExactPrice keeps the unrounded amount for aggregation.
type QuoteResult struct {
	DeviceID   string                 `json:"deviceId"`
	Type       entity.TransactionType `json:"type"`
	Price      int64                  `json:"price"`
	ExactPrice decimal.Decimal        `json:"exactPrice"`
	Currency   string                 `json:"currency"`
	Unpriced   bool                   `json:"unpriced"`
	Tier       entity.ConditionTier   `json:"tier,omitempty"`
	Source     pricing.Source         `json:"source"`
	Breakdown  []BreakdownLine        `json:"breakdown"`
	Warnings   []string               `json:"warnings,omitempty"`
}

// PricingUsecase resolves single prices through the pricing cache.
type PricingUsecase interface {
	// Resolve prices a request. An unknown device fails with
	// DEVICE_NOT_FOUND; a known device without any applicable price returns
	// an unpriced result, not an error.
	Resolve(ctx context.Context, req *QuoteRequest) (*QuoteResult, error)

	// ResolveDataset prices a request against an already loaded dataset.
	ResolveDataset(ds *entity.DeviceDataset, req *QuoteRequest) *QuoteResult
}
