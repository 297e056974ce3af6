package service

import (
	"context"

	"devicequote/internal/domain/entity"
)

// PricingCache is the canonical per-device read used by every feature.
// Concurrent misses for one device share a single store read.
type PricingCache interface {
	// GetDeviceData returns the cached or freshly loaded dataset.
	GetDeviceData(ctx context.Context, deviceID string) (*entity.DeviceDataset, error)

	// GetManyDeviceData loads unique ids through the cache. Unknown devices
	// are left out of the result map rather than failing the batch.
	GetManyDeviceData(ctx context.Context, deviceIDs []string) (map[string]*entity.DeviceDataset, error)

	// Invalidate drops the whole entry for a device.
	Invalidate(deviceID string)

	// InvalidateAll drops every entry.
	InvalidateAll()
}
