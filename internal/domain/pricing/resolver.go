package pricing

import (
	"fmt"
	"strings"

	"devicequote/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// Source tells where a price came from.
type Source string

const (
	SourceExact       Source = "exact"
	SourceAnchor      Source = "anchor"
	SourceRepairTable Source = "repair-table"
	SourceNone        Source = "none"
)

// Price keeps the unrounded amount for aggregation; round only for display.
type Price struct {
	Amount   decimal.Decimal
	Source   Source
	Unpriced bool
}

// Rounded returns the amount rounded to whole currency units.
func (p Price) Rounded() decimal.Decimal {
	return p.Amount.Round(0)
}

// BuybackResult is a resolved buyback price and how it was reached.
type BuybackResult struct {
	Price
	Tier       entity.ConditionTier
	Deduction  DeductionClass
	Multiplier *decimal.Decimal // Set only for anchor-derived prices.
}

// ResolveBuyback prices a buyback. An exact record for (storage, tier) is
// authoritative; otherwise the anchor base price is scaled by the deduction
// multiplier. Without an anchor the result is unpriced, never guessed.
func ResolveBuyback(ds *entity.DeviceDataset, storage string, in entity.ConditionInput) BuybackResult {
	tier := Classify(in)
	res := BuybackResult{Tier: tier, Deduction: Deduction(in)}

	if ds == nil {
		res.Price = Price{Amount: decimal.Zero, Source: SourceNone, Unpriced: true}

		return res
	}

	if rec, ok := ds.FindPriceRecord(storage, tier); ok {
		res.Price = Price{Amount: rec.Price, Source: SourceExact}

		return res
	}

	if ds.Anchor == nil {
		res.Price = Price{Amount: decimal.Zero, Source: SourceNone, Unpriced: true}

		return res
	}

	m, class := Multiplier(in)
	res.Deduction = class
	res.Multiplier = &m
	res.Price = Price{Amount: ds.Anchor.BasePrice.Mul(m), Source: SourceAnchor}

	return res
}

// RepairLine is one requested issue in a repair quote.
type RepairLine struct {
	IssueID string
	Variant string
	Amount  decimal.Decimal
	Found   bool
}

// RepairResult is the sum of the requested repairs plus per-line detail.
type RepairResult struct {
	Price
	Lines    []RepairLine
	Warnings []string
}

// ResolveRepair sums issue prices. An issue without a price contributes zero
// and a warning, since partial repair quotes are normal. The result is only
// unpriced when none of the requested issues has a price.
func ResolveRepair(ds *entity.DeviceDataset, issueIDs []string, variant string) RepairResult {
	res := RepairResult{Price: Price{Amount: decimal.Zero, Source: SourceRepairTable}}

	found := 0
	for _, issueID := range dedupe(issueIDs) {
		line := RepairLine{IssueID: issueID, Variant: variant, Amount: decimal.Zero}

		if rec, ok := lookupRepair(ds, issueID, variant); ok {
			line.Variant = rec.Variant
			line.Amount = rec.Price
			line.Found = true
			res.Amount = res.Amount.Add(rec.Price)
			found++
		} else {
			res.Warnings = append(res.Warnings, fmt.Sprintf("no price for issue %q", issueID))
		}

		res.Lines = append(res.Lines, line)
	}

	if found == 0 {
		res.Source = SourceNone
		res.Unpriced = true
	}

	return res
}

// lookupRepair tries the requested variant, then the default part, then the
// cheapest variant on record.
func lookupRepair(ds *entity.DeviceDataset, issueID, variant string) (entity.RepairIssuePrice, bool) {
	if ds == nil {
		return entity.RepairIssuePrice{}, false
	}
	if variant != "" {
		if rec, ok := ds.FindRepairPrice(issueID, variant); ok {
			return rec, true
		}
	}
	if rec, ok := ds.FindRepairPrice(issueID, ""); ok {
		return rec, true
	}

	return CheapestRepair(ds, issueID)
}

// CheapestRepair returns the lowest priced variant recorded for issueID.
func CheapestRepair(ds *entity.DeviceDataset, issueID string) (entity.RepairIssuePrice, bool) {
	var (
		best entity.RepairIssuePrice
		ok   bool
	)

	for _, rec := range ds.RepairVariants(issueID) {
		if !ok || rec.Price.LessThan(best.Price) {
			best, ok = rec, true
		}
	}

	return best, ok
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	return out
}
