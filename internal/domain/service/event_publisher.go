package service

import (
	"context"
	"time"
)

// PriceChangedEvent tells other instances to drop their cached dataset.
type PriceChangedEvent struct {
	RequestID string    `json:"request_id,omitempty"`
	DeviceID  string    `json:"device_id"`
	Kind      string    `json:"kind"`
	Source    string    `json:"source"`
	ChangedAt time.Time `json:"changed_at"`
}

// EventPublisher broadcasts price change events.
type EventPublisher interface {
	// PublishPriceChanged publishes an invalidation event.
	PublishPriceChanged(ctx context.Context, event *PriceChangedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
