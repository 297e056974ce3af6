package usecase

import (
	"context"
	"time"
)

// FeedResult summarises a generated price feed.
type FeedResult struct {
	Key         string    `json:"key"`
	Devices     int       `json:"devices"`
	Unpriced    int       `json:"unpriced"`
	Bytes       int       `json:"bytes"`
	Checksum    string    `json:"checksum"`
	GeneratedAt time.Time `json:"generatedAt"`
}

// FeedUsecase exports every device quote as a programmatic feed.
type FeedUsecase interface {
	// GenerateFeed writes the feed to the configured bucket.
	GenerateFeed(ctx context.Context) (*FeedResult, error)
}
