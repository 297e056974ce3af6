package entity

import "time"

// TransactionType is the kind of quote a customer asks for.
type TransactionType string

const (
	TransactionRepair  TransactionType = "repair"
	TransactionBuyback TransactionType = "buyback"
)

// Quote is the single assembled view of a device's prices and page copy.
// Every surface (pages, metadata, feeds) reads the same object, so it is
// never modified once built; a price change produces a new Quote.
type Quote struct {
	DeviceID    string                  `json:"deviceId"`
	DeviceName  string                  `json:"deviceName"`
	Category    Category                `json:"category"`
	Buyback     BuybackQuote            `json:"buyback"`
	Repair      RepairQuote             `json:"repair"`
	SEO         map[Language]SEOContent `json:"seo"`
	DeviceImage string                  `json:"deviceImage"`
	AssembledAt time.Time               `json:"assembledAt"`
}

// BuybackQuote summarises buyback prices in whole euros.
type BuybackQuote struct {
	MaxPrice   int64                              `json:"maxPrice"`
	TopStorage string                             `json:"topStorage,omitempty"`
	Unpriced   bool                               `json:"unpriced"`
	PerStorage map[string]map[ConditionTier]int64 `json:"perStorage,omitempty"`
}

// RepairQuote lists representative repair prices.
type RepairQuote struct {
	Issues   []RepairIssueQuote `json:"issues"`
	Unpriced bool               `json:"unpriced"`
}

// RepairIssueQuote is the "from" price of one common repair.
type RepairIssueQuote struct {
	IssueID   string           `json:"issueId"`
	FromPrice int64            `json:"fromPrice"`
	Available bool             `json:"available"`
	Variants  map[string]int64 `json:"variants,omitempty"`
}

// SEOContent is the localized copy for one language.
type SEOContent struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Slug        string `json:"slug"`
	RepairSlug  string `json:"repairSlug"`
}
