package usecase

import (
	"context"

	"devicequote/internal/domain/entity"
)

// QuoteUsecase assembles the full quote every page, metadata and feed reads.
type QuoteUsecase interface {
	// BuildQuote returns the quote for a device. Callers share the same
	// immutable object until the device's prices change.
	BuildQuote(ctx context.Context, deviceID string) (*entity.Quote, error)

	// AssembleQuote builds a quote from a loaded dataset.
	AssembleQuote(ds *entity.DeviceDataset) *entity.Quote
}
