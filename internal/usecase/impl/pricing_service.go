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
	"devicequote/internal/domain/repository"
	"devicequote/internal/domain/service"
	"devicequote/internal/errors"
	"devicequote/internal/infra/metrics"
	"devicequote/internal/usecase"

	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// PricingServiceParams holds dependencies for PricingService, injected by Fx
type PricingServiceParams struct {
	fx.In

	Cache   service.PricingCache
	Metrics *metrics.Registry
	Logger  *slog.Logger
}

type pricingService struct {
	cache   service.PricingCache
	metrics *metrics.Registry
	logger  *slog.Logger
}

// NewPricingService creates a new pricing service instance
func NewPricingService(params PricingServiceParams) usecase.PricingUsecase {
	return &pricingService{
		cache:   params.Cache,
		metrics: params.Metrics,
		logger:  params.Logger,
	}
}

// Resolve prices one request through the cache.
func (s *pricingService) Resolve(ctx context.Context, req *usecase.QuoteRequest) (*usecase.QuoteResult, error) {
	if req.Type != entity.TransactionBuyback && req.Type != entity.TransactionRepair {
		return nil, domainerrors.ErrValidationFailed.WrapMessage(fmt.Sprintf("unknown transaction type %q", req.Type))
	}

	ds, err := loadDataset(ctx, s.cache, req.DeviceID)
	if err != nil {
		return nil, err
	}

	result := s.ResolveDataset(ds, req)
	if result.Unpriced {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Quote unpriced",
			slog.String("device_id", req.DeviceID),
			slog.String("type", string(req.Type)),
		)
	}

	return result, nil
}

// ResolveDataset prices a request against ds.
func (s *pricingService) ResolveDataset(ds *entity.DeviceDataset, req *usecase.QuoteRequest) *usecase.QuoteResult {
	var result *usecase.QuoteResult
	if req.Type == entity.TransactionRepair {
		result = resolveRepair(ds, req)
	} else {
		result = resolveBuyback(ds, req)
	}

	s.metrics.QuotesResolved.WithLabelValues(string(req.Type), string(result.Source)).Inc()

	return result
}

func resolveBuyback(ds *entity.DeviceDataset, req *usecase.QuoteRequest) *usecase.QuoteResult {
	storage := req.Storage
	if storage == "" {
		// No storage chosen yet: quote the top option, as the quote pages do.
		if storages := ds.Storages(); len(storages) > 0 {
			storage = storages[0]
		}
	}

	input := pricing.RepresentativeInput(entity.TierLikeNew)
	if req.Condition != nil {
		input = *req.Condition
	}

	res := pricing.ResolveBuyback(ds, storage, input)
	result := newQuoteResult(req, res.Price)
	result.Tier = res.Tier

	switch res.Source {
	case pricing.SourceExact:
		result.Breakdown = append(result.Breakdown, usecase.BreakdownLine{
			Label:  "price record",
			Amount: res.Amount,
			Note:   fmt.Sprintf("%s, %s", entity.NormalizeStorage(storage), res.Tier),
		})
	case pricing.SourceAnchor:
		result.Breakdown = append(result.Breakdown,
			usecase.BreakdownLine{Label: "base price", Amount: ds.Anchor.BasePrice},
			usecase.BreakdownLine{
				Label:  "condition adjustment",
				Amount: res.Amount.Sub(ds.Anchor.BasePrice),
				Note:   fmt.Sprintf("%s x%s", res.Deduction, res.Multiplier.String()),
			},
		)
	default:
		result.Warnings = append(result.Warnings, "no price record or anchor price for this device")
	}

	if input.BatteryHealth == entity.BatteryService {
		result.Breakdown = append(result.Breakdown, usecase.BreakdownLine{
			Label:  "battery",
			Amount: decimal.Zero,
			Note:   "battery needs service",
		})
	}

	return result
}

func resolveRepair(ds *entity.DeviceDataset, req *usecase.QuoteRequest) *usecase.QuoteResult {
	res := pricing.ResolveRepair(ds, req.IssueIDs, req.ScreenVariant)
	result := newQuoteResult(req, res.Price)

	for _, line := range res.Lines {
		bl := usecase.BreakdownLine{Label: line.IssueID, Amount: line.Amount, Note: line.Variant}
		if !line.Found {
			bl.Note = "in-store diagnosis"
		}
		result.Breakdown = append(result.Breakdown, bl)
	}
	result.Warnings = append(result.Warnings, res.Warnings...)

	return result
}

func newQuoteResult(req *usecase.QuoteRequest, price pricing.Price) *usecase.QuoteResult {
	return &usecase.QuoteResult{
		DeviceID:   req.DeviceID,
		Type:       req.Type,
		Price:      price.Rounded().IntPart(),
		ExactPrice: price.Amount,
		Currency:   constants.Currency,
		Unpriced:   price.Unpriced,
		Source:     price.Source,
		Breakdown:  []usecase.BreakdownLine{},
	}
}

// loadDataset reads through the cache and maps a missing device to DEVICE_NOT_FOUND.
func loadDataset(ctx context.Context, cache service.PricingCache, deviceID string) (*entity.DeviceDataset, error) {
	ds, err := cache.GetDeviceData(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return nil, domainerrors.ErrDeviceNotFound.WithDetails(deviceID)
		}

		return nil, errors.Wrap(err, "failed to load device data")
	}

	return ds, nil
}
