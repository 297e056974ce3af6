package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"devicequote/config"
	deliverycontext "devicequote/internal/delivery/context"
	"devicequote/internal/domain/entity"
	domainerrors "devicequote/internal/domain/errors"
	"devicequote/internal/domain/repository"
	"devicequote/internal/domain/service"
	"devicequote/internal/errors"
	"devicequote/internal/infra/metrics"
	"devicequote/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// PriceAdminServiceParams holds dependencies for PriceAdminService, injected by Fx
type PriceAdminServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Cache     service.PricingCache
	Publisher service.EventPublisher
	Config    *config.Config
	Metrics   *metrics.Registry
	Logger    *slog.Logger
}

type priceAdminService struct {
	txManager repository.TransactionManager
	cache     service.PricingCache
	publisher service.EventPublisher
	minPrice  decimal.Decimal
	maxPrice  decimal.Decimal
	maxRatio  decimal.Decimal
	metrics   *metrics.Registry
	logger    *slog.Logger
	now       func() time.Time
}

// NewPriceAdminService creates a new price admin service instance
func NewPriceAdminService(params PriceAdminServiceParams) usecase.PriceAdminUsecase {
	cfg := params.Config.Pricing

	return &priceAdminService{
		txManager: params.TxManager,
		cache:     params.Cache,
		publisher: params.Publisher,
		minPrice:  decimal.NewFromFloat(cfg.MinPrice),
		maxPrice:  decimal.NewFromFloat(cfg.MaxPrice),
		maxRatio:  decimal.NewFromFloat(cfg.MaxDeviationRatio),
		metrics:   params.Metrics,
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (s *priceAdminService) getLogger(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// ApplyUpdate checks an update against the sanity bounds, then either writes
// it or parks it for review. An applied update invalidates the device's cache
// entry before returning.
func (s *priceAdminService) ApplyUpdate(ctx context.Context, update *entity.PriceUpdate) (*usecase.PriceUpdateResult, error) {
	if err := validateUpdate(update); err != nil {
		return nil, err
	}

	logger := s.getLogger(ctx).With(
		slog.String("device_id", update.DeviceID),
		slog.String("kind", string(update.Kind)),
		slog.String("source", update.Source),
	)

	var (
		previous *decimal.Decimal
		review   *entity.PriceReview
	)

	err := s.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		ds, err := txRepoFactory.PriceRepo().FindDeviceDataset(ctx, update.DeviceID)
		if err != nil {
			if errors.Is(err, repository.ErrDeviceNotFound) {
				return domainerrors.ErrDeviceNotFound.WithDetails(update.DeviceID)
			}

			return errors.Wrap(err, "failed to load current prices")
		}

		previous = referencePrice(ds, update)

		if reason := s.checkBounds(update, previous); reason != "" {
			review = &entity.PriceReview{
				ID:             uuid.New(),
				DeviceID:       update.DeviceID,
				Kind:           update.Kind,
				Storage:        update.Storage,
				Tier:           update.Tier,
				IssueID:        update.IssueID,
				Variant:        update.Variant,
				ProposedPrice:  update.Price,
				ReferencePrice: previous,
				Source:         update.Source,
				Reason:         reason,
				CreatedAt:      s.now(),
			}

			return txRepoFactory.PriceReviewRepo().CreatePriceReview(ctx, review)
		}

		return applyUpdate(ctx, txRepoFactory.PriceRepo(), update)
	})
	if err != nil {
		return nil, err
	}

	if review != nil {
		s.metrics.PriceUpdatesRejected.Inc()
		logger.Warn("Price update rejected, parked for review",
			slog.String("review_id", review.ID.String()),
			slog.String("reason", review.Reason),
			slog.String("proposed", update.Price.String()),
		)

		return nil, domainerrors.ErrUpdateRejected.WithDetails(fmt.Sprintf("review %s: %s", review.ID, review.Reason))
	}

	// Read-after-write: the next read on this instance sees the new price.
	s.cache.Invalidate(update.DeviceID)
	s.metrics.PriceUpdatesApplied.Inc()

	event := &service.PriceChangedEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		DeviceID:  update.DeviceID,
		Kind:      string(update.Kind),
		Source:    update.Source,
		ChangedAt: s.now().UTC(),
	}
	if err := s.publisher.PublishPriceChanged(ctx, event); err != nil {
		// Other instances converge through their cache TTL.
		logger.Error("Failed to publish price change", slog.Any("error", err))
	}

	logger.Info("Price update applied", slog.String("price", update.Price.String()))

	return &usecase.PriceUpdateResult{
		DeviceID:      update.DeviceID,
		Kind:          update.Kind,
		Price:         update.Price,
		PreviousPrice: previous,
	}, nil
}

// checkBounds returns why an update must be reviewed, or "" when it may be applied.
func (s *priceAdminService) checkBounds(update *entity.PriceUpdate, reference *decimal.Decimal) string {
	if update.Price.LessThan(s.minPrice) {
		return fmt.Sprintf("price %s below minimum %s", update.Price, s.minPrice)
	}
	if s.maxPrice.IsPositive() && update.Price.GreaterThan(s.maxPrice) {
		return fmt.Sprintf("price %s above maximum %s", update.Price, s.maxPrice)
	}
	if update.Confirmed || reference == nil || !reference.IsPositive() {
		return ""
	}

	ratio := update.Price.Div(*reference)
	if ratio.GreaterThan(s.maxRatio) || ratio.Mul(s.maxRatio).LessThan(decimal.NewFromInt(1)) {
		return fmt.Sprintf("price %s deviates more than %sx from current %s", update.Price, s.maxRatio, reference)
	}

	return ""
}

func validateUpdate(update *entity.PriceUpdate) error {
	var problems []string

	if strings.TrimSpace(update.DeviceID) == "" {
		problems = append(problems, "deviceId is required")
	}
	if strings.TrimSpace(update.Source) == "" {
		problems = append(problems, "source is required")
	}
	if !update.Price.IsPositive() {
		problems = append(problems, "price must be positive")
	}

	switch update.Kind {
	case entity.PriceUpdateBuyback:
		if update.Storage == "" {
			problems = append(problems, "storage is required for buyback prices")
		}
		if !update.Tier.Valid() {
			problems = append(problems, "tier must be one of like-new, good, fair, damaged")
		}
	case entity.PriceUpdateRepair:
		if update.IssueID == "" {
			problems = append(problems, "issueId is required for repair prices")
		}
	case entity.PriceUpdateAnchor:
	default:
		problems = append(problems, fmt.Sprintf("unknown kind %q", update.Kind))
	}

	if len(problems) > 0 {
		return domainerrors.ErrValidationFailed.WithDetails(strings.Join(problems, "; "))
	}

	return nil
}

// referencePrice is the current price the update would replace. Buyback
// updates without an exact record compare against the anchor base price.
func referencePrice(ds *entity.DeviceDataset, update *entity.PriceUpdate) *decimal.Decimal {
	switch update.Kind {
	case entity.PriceUpdateBuyback:
		if rec, ok := ds.FindPriceRecord(update.Storage, update.Tier); ok {
			return &rec.Price
		}
		if ds.Anchor != nil {
			return &ds.Anchor.BasePrice
		}
	case entity.PriceUpdateRepair:
		if rec, ok := ds.FindRepairPrice(update.IssueID, update.Variant); ok {
			return &rec.Price
		}
	case entity.PriceUpdateAnchor:
		if ds.Anchor != nil {
			return &ds.Anchor.BasePrice
		}
	}

	return nil
}

func applyUpdate(ctx context.Context, priceRepo repository.PriceRepository, update *entity.PriceUpdate) error {
	switch update.Kind {
	case entity.PriceUpdateBuyback:
		return priceRepo.UpsertPriceRecord(ctx, &entity.PriceRecord{
			DeviceID: update.DeviceID,
			Storage:  update.Storage,
			Tier:     update.Tier,
			Price:    update.Price,
		})
	case entity.PriceUpdateRepair:
		return priceRepo.UpsertRepairPrice(ctx, &entity.RepairIssuePrice{
			DeviceID: update.DeviceID,
			IssueID:  update.IssueID,
			Variant:  update.Variant,
			Price:    update.Price,
		})
	default:
		// The anchor is the like-new price of the top storage, so both values move together.
		return priceRepo.UpsertAnchor(ctx, &entity.AnchorRecord{
			DeviceID:    update.DeviceID,
			AnchorPrice: update.Price,
			BasePrice:   update.Price,
		})
	}
}

