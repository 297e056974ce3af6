package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"devicequote/config"
	deliverycontext "devicequote/internal/delivery/context"
	"devicequote/internal/domain/constants"
	"devicequote/internal/domain/entity"
	"devicequote/internal/domain/repository"
	"devicequote/internal/domain/service"
	"devicequote/internal/errors"
	"devicequote/internal/usecase"
	"devicequote/internal/util"

	"go.uber.org/fx"
)

// FeedServiceParams holds dependencies for FeedService, injected by Fx
type FeedServiceParams struct {
	fx.In

	DeviceRepo repository.DeviceRepository
	Cache      service.PricingCache
	Quotes     usecase.QuoteUsecase
	Storage    service.FeedStorage
	Config     *config.Config
	Logger     *slog.Logger
}

type feedService struct {
	deviceRepo repository.DeviceRepository
	cache      service.PricingCache
	quotes     usecase.QuoteUsecase
	storage    service.FeedStorage
	key        string
	logger     *slog.Logger
	now        func() time.Time
}

// priceFeed is the exported document. Entries reuse the assembled quotes so
// the feed never disagrees with the pages.
type priceFeed struct {
	GeneratedAt time.Time       `json:"generatedAt"`
	Currency    string          `json:"currency"`
	Devices     []*entity.Quote `json:"devices"`
}

// NewFeedService creates a new feed service instance
func NewFeedService(params FeedServiceParams) usecase.FeedUsecase {
	return &feedService{
		deviceRepo: params.DeviceRepo,
		cache:      params.Cache,
		quotes:     params.Quotes,
		storage:    params.Storage,
		key:        params.Config.Feed.Key,
		logger:     params.Logger,
		now:        time.Now,
	}
}

// GenerateFeed builds every device's quote and writes the feed document.
func (s *feedService) GenerateFeed(ctx context.Context) (*usecase.FeedResult, error) {
	start := s.now()
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	devices, err := s.deviceRepo.ListDevices(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list devices")
	}

	ids := make([]string, len(devices))
	for i, d := range devices {
		ids[i] = d.ID
	}

	// Warm the cache in parallel; BuildQuote below then only hits.
	if _, err := s.cache.GetManyDeviceData(ctx, ids); err != nil {
		return nil, errors.Wrap(err, "failed to load device data")
	}

	feed := priceFeed{
		GeneratedAt: start.UTC(),
		Currency:    constants.Currency,
		Devices:     make([]*entity.Quote, 0, len(ids)),
	}
	unpriced := 0
	for _, id := range ids {
		quote, err := s.quotes.BuildQuote(ctx, id)
		if err != nil {
			return nil, err
		}
		if quote.Buyback.Unpriced {
			unpriced++
		}
		feed.Devices = append(feed.Devices, quote)
	}

	data, err := json.Marshal(feed)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode feed")
	}

	if err := s.storage.WriteFeed(ctx, s.key, data, "application/json"); err != nil {
		return nil, err
	}

	result := &usecase.FeedResult{
		Key:         s.key,
		Devices:     len(feed.Devices),
		Unpriced:    unpriced,
		Bytes:       len(data),
		Checksum:    util.ChecksumBytes(data),
		GeneratedAt: feed.GeneratedAt,
	}

	logger.Info("Price feed generated",
		slog.String("key", result.Key),
		slog.Int("devices", result.Devices),
		slog.Int("unpriced", result.Unpriced),
		slog.String("size", util.FormatBytes(int64(result.Bytes))),
		slog.String("elapsed", util.FormatDuration(s.now().Sub(start))),
	)

	return result, nil
}
