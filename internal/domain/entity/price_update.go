package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PriceUpdateKind selects which table an administrative update targets.
type PriceUpdateKind string

const (
	PriceUpdateBuyback PriceUpdateKind = "buyback"
	PriceUpdateRepair  PriceUpdateKind = "repair"
	PriceUpdateAnchor  PriceUpdateKind = "anchor"
)

// PriceUpdate is a price change submitted by the pricing-admin process.
type PriceUpdate struct {
	DeviceID string
	Kind     PriceUpdateKind
	Storage  string        // buyback only
	Tier     ConditionTier // buyback only
	IssueID  string        // repair only
	Variant  string        // repair only
	Price    decimal.Decimal
	Source   string
	// Confirmed marks a re-submission after manual review; it skips the
	// deviation check but never the absolute bounds.
	Confirmed bool
}

// PriceReview is an update that was held back for manual confirmation.
type PriceReview struct {
	ID             uuid.UUID
	DeviceID       string
	Kind           PriceUpdateKind
	Storage        string
	Tier           ConditionTier
	IssueID        string
	Variant        string
	ProposedPrice  decimal.Decimal
	ReferencePrice *decimal.Decimal
	Source         string
	Reason         string
	CreatedAt      time.Time
}
