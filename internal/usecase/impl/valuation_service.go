package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "devicequote/internal/delivery/context"
	"devicequote/internal/domain/constants"
	"devicequote/internal/domain/entity"
	domainerrors "devicequote/internal/domain/errors"
	"devicequote/internal/domain/pricing"
	"devicequote/internal/domain/service"
	"devicequote/internal/errors"
	"devicequote/internal/usecase"

	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// MaxValuationItems bounds one bulk request.
const MaxValuationItems = 500

// ValuationServiceParams holds dependencies for ValuationService, injected by Fx
type ValuationServiceParams struct {
	fx.In

	Cache   service.PricingCache
	Pricing usecase.PricingUsecase
	Logger  *slog.Logger
}

type valuationService struct {
	cache   service.PricingCache
	pricing usecase.PricingUsecase
	logger  *slog.Logger
}

// NewValuationService creates a new valuation service instance
func NewValuationService(params ValuationServiceParams) usecase.ValuationUsecase {
	return &valuationService{
		cache:   params.Cache,
		pricing: params.Pricing,
		logger:  params.Logger,
	}
}

// Value prices a trade-in batch. Unique devices are loaded once through the
// cache; items that cannot be priced carry an error code instead of failing
// the batch. The total sums unrounded prices and rounds once.
func (s *valuationService) Value(ctx context.Context, items []usecase.ValuationItem) (*usecase.ValuationResult, error) {
	if len(items) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("at least one item is required")
	}
	if len(items) > MaxValuationItems {
		return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("at most %d items per request", MaxValuationItems))
	}

	deviceIDs := make([]string, len(items))
	for i, item := range items {
		deviceIDs[i] = entity.DeviceSlug(item.Brand, item.Model)
	}

	datasets, err := s.cache.GetManyDeviceData(ctx, deviceIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load device data")
	}

	result := &usecase.ValuationResult{
		Items:      make([]usecase.ValuationLine, 0, len(items)),
		ExactTotal: decimal.Zero,
		Currency:   constants.Currency,
	}

	for i, item := range items {
		line := usecase.ValuationLine{
			Index:    i,
			DeviceID: deviceIDs[i],
			Storage:  item.Storage,
			Source:   pricing.SourceNone,
		}

		ds, ok := datasets[deviceIDs[i]]
		if !ok {
			line.Unpriced = true
			line.ErrorCode = domainerrors.ErrDeviceNotFound.ErrorCode()
			result.Items = append(result.Items, line)

			continue
		}

		input := valuationInput(item)
		quote := s.pricing.ResolveDataset(ds, &usecase.QuoteRequest{
			DeviceID:  deviceIDs[i],
			Type:      entity.TransactionBuyback,
			Storage:   item.Storage,
			Condition: &input,
		})

		line.Tier = quote.Tier
		line.Price = quote.Price
		line.ExactPrice = quote.ExactPrice
		line.Source = quote.Source
		line.Unpriced = quote.Unpriced
		if quote.Unpriced {
			line.ErrorCode = domainerrors.ErrUnpriced.ErrorCode()
		} else {
			result.ExactTotal = result.ExactTotal.Add(quote.ExactPrice)
			result.Priced++
		}

		result.Items = append(result.Items, line)
	}

	result.Total = result.ExactTotal.Round(0).IntPart()

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Bulk valuation priced",
		slog.Int("items", len(items)),
		slog.Int("devices", len(datasets)),
		slog.Int("priced", result.Priced),
		slog.Int64("total", result.Total),
	)

	return result, nil
}

// valuationInput prefers a full condition, then the tier, then like-new.
func valuationInput(item usecase.ValuationItem) entity.ConditionInput {
	if item.ConditionInput != nil {
		return *item.ConditionInput
	}
	if item.Condition.Valid() {
		return pricing.RepresentativeInput(item.Condition)
	}

	return pricing.RepresentativeInput(entity.TierLikeNew)
}
