package entity

import (
	"slices"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"
)

// PriceRecord is an exact buyback price for (device, storage, tier).
type PriceRecord struct {
	DeviceID  string          `json:"device_id"`
	Storage   string          `json:"storage"`
	Tier      ConditionTier   `json:"tier"`
	Price     decimal.Decimal `json:"price"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// AnchorRecord is the like-new reference price for the top storage option,
// used only when no PriceRecord matches.
type AnchorRecord struct {
	DeviceID    string          `json:"device_id"`
	AnchorPrice decimal.Decimal `json:"anchor_price"`
	BasePrice   decimal.Decimal `json:"base_price"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// RepairIssuePrice is the price of fixing one issue. Variant is empty for the
// default part quality; screens may carry "original" or "compatible".
type RepairIssuePrice struct {
	DeviceID  string          `json:"device_id"`
	IssueID   string          `json:"issue_id"`
	Variant   string          `json:"variant,omitempty"`
	Price     decimal.Decimal `json:"price"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// DeviceDataset is everything priced for one device, read in one store round
// trip. It is shared between goroutines and must not be modified after load.
type DeviceDataset struct {
	Device         *Device
	BuybackRecords []PriceRecord
	Anchor         *AnchorRecord
	RepairRecords  []RepairIssuePrice
	FetchedAt      time.Time
}

// FindPriceRecord returns the exact record for storage and tier. When
// duplicates exist the most recently written one wins.
func (ds *DeviceDataset) FindPriceRecord(storage string, tier ConditionTier) (PriceRecord, bool) {
	var (
		found PriceRecord
		ok    bool
	)

	want := NormalizeStorage(storage)
	for _, rec := range ds.BuybackRecords {
		if rec.Tier != tier || NormalizeStorage(rec.Storage) != want {
			continue
		}
		if !ok || rec.UpdatedAt.After(found.UpdatedAt) {
			found, ok = rec, true
		}
	}

	return found, ok
}

// FindRepairPrice returns the price for issue and variant, latest write first.
func (ds *DeviceDataset) FindRepairPrice(issueID, variant string) (RepairIssuePrice, bool) {
	var (
		found RepairIssuePrice
		ok    bool
	)

	for _, rec := range ds.RepairRecords {
		if rec.IssueID != issueID || !strings.EqualFold(rec.Variant, variant) {
			continue
		}
		if !ok || rec.UpdatedAt.After(found.UpdatedAt) {
			found, ok = rec, true
		}
	}

	return found, ok
}

// RepairVariants returns every record for issueID.
func (ds *DeviceDataset) RepairVariants(issueID string) []RepairIssuePrice {
	var out []RepairIssuePrice
	for _, rec := range ds.RepairRecords {
		if rec.IssueID == issueID {
			out = append(out, rec)
		}
	}

	return out
}

// Storages returns the distinct storage options with buyback records,
// largest capacity first.
func (ds *DeviceDataset) Storages() []string {
	seen := make(map[string]string)
	for _, rec := range ds.BuybackRecords {
		key := NormalizeStorage(rec.Storage)
		if _, ok := seen[key]; !ok {
			seen[key] = rec.Storage
		}
	}

	out := make([]string, 0, len(seen))
	for _, s := range seen {
		out = append(out, s)
	}
	slices.SortFunc(out, func(a, b string) int {
		if ca, cb := StorageCapacityGB(a), StorageCapacityGB(b); ca != cb {
			return cb - ca
		}

		return strings.Compare(a, b)
	})

	return out
}

// NormalizeStorage folds "512 gb" and "512GB" onto the same key.
func NormalizeStorage(storage string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(storage), " ", ""))
}

// StorageCapacityGB parses "128GB" or "1TB" into gigabytes. Unparseable
// labels return 0 and sort last.
func StorageCapacityGB(storage string) int {
	s := NormalizeStorage(storage)
	end := strings.IndexFunc(s, func(r rune) bool { return !unicode.IsDigit(r) })
	if end == 0 {
		return 0
	}
	if end < 0 {
		end = len(s)
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}

	switch s[end:] {
	case "TB":
		return n * 1024
	case "GB", "":
		return n
	default:
		return 0
	}
}
