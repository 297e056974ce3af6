package impl

import (
	"context"
	"testing"

	"devicequote/internal/domain/entity"
	domainerrors "devicequote/internal/domain/errors"
	"devicequote/internal/domain/pricing"
	"devicequote/internal/domain/repository"
	"devicequote/internal/infra/metrics"
	mockSvc "devicequote/internal/mocks/service"
	"devicequote/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestPricingService(t *testing.T) (usecase.PricingUsecase, *mockSvc.MockPricingCache) {
	t.Helper()

	cache := mockSvc.NewMockPricingCache(t)
	svc := NewPricingService(PricingServiceParams{
		Cache:   cache,
		Metrics: metrics.NewRegistry(),
		Logger:  discardLogger(),
	})

	return svc, cache
}

func TestPricingService_Resolve_ExactRecord(t *testing.T) {
	svc, cache := createTestPricingService(t)
	ctx := context.Background()

	cache.EXPECT().GetDeviceData(ctx, galaxyID).Return(galaxyDataset(), nil)

	result, err := svc.Resolve(ctx, &usecase.QuoteRequest{
		DeviceID:  galaxyID,
		Type:      entity.TransactionBuyback,
		Storage:   "512GB",
		Condition: conditionInput(entity.ScreenFlawless, entity.BodyFlawless),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(365), result.Price)
	assert.Equal(t, pricing.SourceExact, result.Source)
	assert.Equal(t, entity.TierLikeNew, result.Tier)
	assert.Equal(t, "EUR", result.Currency)
	assert.False(t, result.Unpriced)
	require.Len(t, result.Breakdown, 1)
	assert.Equal(t, "price record", result.Breakdown[0].Label)
}

func TestPricingService_Resolve_AnchorFallback(t *testing.T) {
	svc, cache := createTestPricingService(t)
	ctx := context.Background()

	cache.EXPECT().GetDeviceData(ctx, galaxyID).Return(anchorOnlyDataset(), nil)

	result, err := svc.Resolve(ctx, &usecase.QuoteRequest{
		DeviceID:  galaxyID,
		Type:      entity.TransactionBuyback,
		Storage:   "512GB",
		Condition: conditionInput(entity.ScreenFlawless, entity.BodyScratches),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(292), result.Price)
	assert.Equal(t, pricing.SourceAnchor, result.Source)
	assert.Equal(t, entity.TierGood, result.Tier)
	require.Len(t, result.Breakdown, 2)
	assert.True(t, result.Breakdown[0].Amount.Equal(dec("365")))
	assert.True(t, result.Breakdown[1].Amount.Equal(dec("-73")))
	assert.Equal(t, "cosmetic x0.8", result.Breakdown[1].Note)
}

func TestPricingService_Resolve_DeductionClasses(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(in *entity.ConditionInput)
		wantPrice int64
		wantExact string
	}{
		{
			name:      "does not turn on",
			mutate:    func(in *entity.ConditionInput) { in.TurnsOn = false },
			wantPrice: 91,
			wantExact: "91.25",
		},
		{
			name:      "locked",
			mutate:    func(in *entity.ConditionInput) { in.IsUnlocked = false },
			wantPrice: 91,
			wantExact: "91.25",
		},
		{
			name:      "not working correctly",
			mutate:    func(in *entity.ConditionInput) { in.WorksCorrectly = false },
			wantPrice: 219,
			wantExact: "219",
		},
		{
			name: "face id failed",
			mutate: func(in *entity.ConditionInput) {
				failed := false
				in.FaceIDWorking = &failed
			},
			wantPrice: 219,
			wantExact: "219",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, cache := createTestPricingService(t)
			ctx := context.Background()

			cache.EXPECT().GetDeviceData(ctx, galaxyID).Return(anchorOnlyDataset(), nil)

			in := conditionInput(entity.ScreenFlawless, entity.BodyFlawless)
			tt.mutate(in)

			result, err := svc.Resolve(ctx, &usecase.QuoteRequest{
				DeviceID:  galaxyID,
				Type:      entity.TransactionBuyback,
				Storage:   "512GB",
				Condition: in,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.wantPrice, result.Price)
			assert.True(t, result.ExactPrice.Equal(dec(tt.wantExact)), "got %s", result.ExactPrice)
			assert.Equal(t, entity.TierDamaged, result.Tier)
		})
	}
}

func TestPricingService_Resolve_DefaultsToTopStorageAndLikeNew(t *testing.T) {
	svc, cache := createTestPricingService(t)
	ctx := context.Background()

	cache.EXPECT().GetDeviceData(ctx, galaxyID).Return(galaxyDataset(), nil)

	result, err := svc.Resolve(ctx, &usecase.QuoteRequest{DeviceID: galaxyID, Type: entity.TransactionBuyback})
	require.NoError(t, err)

	assert.Equal(t, int64(365), result.Price)
	assert.Equal(t, pricing.SourceExact, result.Source)
}

func TestPricingService_Resolve_Unpriced(t *testing.T) {
	svc, cache := createTestPricingService(t)
	ctx := context.Background()

	cache.EXPECT().GetDeviceData(ctx, "acme-phone-1").Return(emptyDataset("acme-phone-1"), nil)

	result, err := svc.Resolve(ctx, &usecase.QuoteRequest{
		DeviceID:  "acme-phone-1",
		Type:      entity.TransactionBuyback,
		Storage:   "128GB",
		Condition: conditionInput(entity.ScreenFlawless, entity.BodyFlawless),
	})
	require.NoError(t, err)

	assert.True(t, result.Unpriced)
	assert.Equal(t, int64(0), result.Price)
	assert.Equal(t, pricing.SourceNone, result.Source)
	assert.NotEmpty(t, result.Warnings)
}

func TestPricingService_Resolve_UnknownDevice(t *testing.T) {
	svc, cache := createTestPricingService(t)
	ctx := context.Background()

	cache.EXPECT().GetDeviceData(ctx, "nokia-3310").Return(nil, repository.ErrDeviceNotFound)

	result, err := svc.Resolve(ctx, &usecase.QuoteRequest{DeviceID: "nokia-3310", Type: entity.TransactionBuyback})
	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, domainerrors.ErrDeviceNotFound))
}

func TestPricingService_Resolve_StoreFailure(t *testing.T) {
	svc, cache := createTestPricingService(t)
	ctx := context.Background()

	cache.EXPECT().GetDeviceData(ctx, galaxyID).Return(nil, errors.New("connection refused"))

	_, err := svc.Resolve(ctx, &usecase.QuoteRequest{DeviceID: galaxyID, Type: entity.TransactionRepair})
	require.Error(t, err)
	assert.False(t, errors.Is(err, domainerrors.ErrDeviceNotFound))
	assert.Contains(t, err.Error(), "connection refused")
}

func TestPricingService_Resolve_InvalidType(t *testing.T) {
	svc, _ := createTestPricingService(t)

	_, err := svc.Resolve(context.Background(), &usecase.QuoteRequest{DeviceID: galaxyID, Type: "trade-in"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestPricingService_Resolve_Repair(t *testing.T) {
	svc, cache := createTestPricingService(t)
	ctx := context.Background()

	cache.EXPECT().GetDeviceData(ctx, galaxyID).Return(galaxyDataset(), nil)

	result, err := svc.Resolve(ctx, &usecase.QuoteRequest{
		DeviceID:      galaxyID,
		Type:          entity.TransactionRepair,
		IssueIDs:      []string{"screen", "battery", "speaker"},
		ScreenVariant: "original",
	})
	require.NoError(t, err)

	assert.False(t, result.Unpriced)
	assert.Equal(t, pricing.SourceRepairTable, result.Source)
	assert.True(t, result.ExactPrice.Equal(dec("318.50")))
	assert.Equal(t, int64(319), result.Price)
	require.Len(t, result.Breakdown, 3)
	assert.Equal(t, "original", result.Breakdown[0].Note)
	assert.Equal(t, "in-store diagnosis", result.Breakdown[2].Note)
	assert.Len(t, result.Warnings, 1)
}

func TestPricingService_ResolveDataset_RepairWithoutPrices(t *testing.T) {
	svc, _ := createTestPricingService(t)

	result := svc.ResolveDataset(emptyDataset("acme-phone-1"), &usecase.QuoteRequest{
		DeviceID: "acme-phone-1",
		Type:     entity.TransactionRepair,
		IssueIDs: []string{"screen"},
	})

	assert.True(t, result.Unpriced)
	assert.Equal(t, pricing.SourceNone, result.Source)
}
