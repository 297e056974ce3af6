package impl

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"devicequote/config"
	"devicequote/internal/domain/entity"
	domainerrors "devicequote/internal/domain/errors"
	mockRepo "devicequote/internal/mocks/repository"
	mockSvc "devicequote/internal/mocks/service"
	mockUsecase "devicequote/internal/mocks/usecase"
	"devicequote/internal/util"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type feedFixture struct {
	service    *feedService
	deviceRepo *mockRepo.MockDeviceRepository
	cache      *mockSvc.MockPricingCache
	quotes     *mockUsecase.MockQuoteUsecase
	storage    *mockSvc.MockFeedStorage
}

func createTestFeedService(t *testing.T) *feedFixture {
	t.Helper()

	fx := &feedFixture{
		deviceRepo: mockRepo.NewMockDeviceRepository(t),
		cache:      mockSvc.NewMockPricingCache(t),
		quotes:     mockUsecase.NewMockQuoteUsecase(t),
		storage:    mockSvc.NewMockFeedStorage(t),
	}

	fx.service = NewFeedService(FeedServiceParams{
		DeviceRepo: fx.deviceRepo,
		Cache:      fx.cache,
		Quotes:     fx.quotes,
		Storage:    fx.storage,
		Config:     &config.Config{Feed: &config.FeedConfig{Key: "feeds/prices.json"}},
		Logger:     discardLogger(),
	}).(*feedService)
	fx.service.now = func() time.Time { return fixtureTime }

	return fx
}

func TestFeedService_GenerateFeed(t *testing.T) {
	fx := createTestFeedService(t)
	ctx := context.Background()

	fx.deviceRepo.EXPECT().ListDevices(ctx).Return([]*entity.Device{
		{ID: galaxyID}, {ID: "acme-phone-1"},
	}, nil)
	fx.cache.EXPECT().GetManyDeviceData(ctx, []string{galaxyID, "acme-phone-1"}).Return(nil, nil)
	fx.quotes.EXPECT().BuildQuote(ctx, galaxyID).Return(&entity.Quote{
		DeviceID: galaxyID,
		Buyback:  entity.BuybackQuote{MaxPrice: 365},
	}, nil)
	fx.quotes.EXPECT().BuildQuote(ctx, "acme-phone-1").Return(&entity.Quote{
		DeviceID: "acme-phone-1",
		Buyback:  entity.BuybackQuote{Unpriced: true},
	}, nil)

	var written []byte
	fx.storage.EXPECT().
		WriteFeed(ctx, "feeds/prices.json", mock.Anything, "application/json").
		Run(func(_ context.Context, _ string, data []byte, _ string) { written = data }).
		Return(nil)

	result, err := fx.service.GenerateFeed(ctx)
	require.NoError(t, err)

	assert.Equal(t, "feeds/prices.json", result.Key)
	assert.Equal(t, 2, result.Devices)
	assert.Equal(t, 1, result.Unpriced)
	assert.Equal(t, len(written), result.Bytes)
	assert.Equal(t, util.ChecksumBytes(written), result.Checksum)
	assert.Equal(t, fixtureTime, result.GeneratedAt)

	var doc struct {
		Currency string `json:"currency"`
		Devices  []struct {
			DeviceID string `json:"deviceId"`
			Buyback  struct {
				MaxPrice int64 `json:"maxPrice"`
			} `json:"buyback"`
		} `json:"devices"`
	}
	require.NoError(t, json.Unmarshal(written, &doc))
	assert.Equal(t, "EUR", doc.Currency)
	require.Len(t, doc.Devices, 2)
	assert.Equal(t, int64(365), doc.Devices[0].Buyback.MaxPrice)
}

func TestFeedService_GenerateFeed_QuoteFailureAbortsWrite(t *testing.T) {
	fx := createTestFeedService(t)
	ctx := context.Background()

	fx.deviceRepo.EXPECT().ListDevices(ctx).Return([]*entity.Device{{ID: galaxyID}}, nil)
	fx.cache.EXPECT().GetManyDeviceData(ctx, []string{galaxyID}).Return(nil, nil)
	fx.quotes.EXPECT().BuildQuote(ctx, galaxyID).Return(nil, domainerrors.ErrDeviceNotFound)

	_, err := fx.service.GenerateFeed(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrDeviceNotFound))
}

func TestFeedService_GenerateFeed_StorageFailure(t *testing.T) {
	fx := createTestFeedService(t)
	ctx := context.Background()

	fx.deviceRepo.EXPECT().ListDevices(ctx).Return(nil, nil)
	fx.cache.EXPECT().GetManyDeviceData(ctx, []string{}).Return(nil, nil)
	fx.storage.EXPECT().WriteFeed(ctx, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("bucket closed"))

	_, err := fx.service.GenerateFeed(ctx)
	require.Error(t, err)
}
