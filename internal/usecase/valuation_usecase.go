package usecase

import (
	"context"

	"devicequote/internal/domain/entity"
	"devicequote/internal/domain/pricing"

	"github.com/shopspring/decimal"
)

// ValuationItem is one device in a bulk trade-in request. ConditionInput,
// when present, takes precedence over Condition.
type ValuationItem struct {
	Brand          string                 `json:"brand" validate:"required,max=64"`
	Model          string                 `json:"model" validate:"required,max=128"`
	Storage        string                 `json:"storage" validate:"max=16"`
	Condition      entity.ConditionTier   `json:"condition" validate:"omitempty,oneof=like-new good fair damaged"`
	ConditionInput *entity.ConditionInput `json:"conditionInput,omitempty" validate:"omitempty"`
}

// ValuationLine is the outcome for one item. ErrorCode is set when the item
// could not be priced; the rest of the batch is unaffected.
type ValuationLine struct {
	Index      int                  `json:"index"`
	DeviceID   string               `json:"deviceId"`
	Storage    string               `json:"storage,omitempty"`
	Tier       entity.ConditionTier `json:"tier,omitempty"`
	Price      int64                `json:"price"`
	ExactPrice decimal.Decimal      `json:"exactPrice"`
	Source     pricing.Source       `json:"source"`
	Unpriced   bool                 `json:"unpriced"`
	ErrorCode  string               `json:"errorCode,omitempty"`
}

// ValuationResult totals a batch. Total is the rounded sum of unrounded prices.
type ValuationResult struct {
	Items      []ValuationLine `json:"items"`
	Total      int64           `json:"total"`
	ExactTotal decimal.Decimal `json:"exactTotal"`
	Currency   string          `json:"currency"`
	Priced     int             `json:"priced"`
}

// ValuationUsecase prices B2B trade-in batches.
type ValuationUsecase interface {
	// Value prices every item, loading each unique device once.
	Value(ctx context.Context, items []ValuationItem) (*ValuationResult, error)
}
