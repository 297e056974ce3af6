package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"devicequote/config"
	"devicequote/internal/domain/entity"
	domainerrors "devicequote/internal/domain/errors"
	"devicequote/internal/domain/repository"
	mockSvc "devicequote/internal/mocks/service"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestQuoteService(t *testing.T) (*quoteService, *mockSvc.MockPricingCache) {
	t.Helper()

	cache := mockSvc.NewMockPricingCache(t)
	svc, err := newQuoteService(cache, &config.SiteConfig{
		Location:     "Amsterdam",
		DefaultImage: "https://cdn.example.com/devices/default.png",
	}, discardLogger())
	require.NoError(t, err)
	svc.now = func() time.Time { return fixtureTime }

	return svc, cache
}

func TestQuoteService_AssembleQuote_Buyback(t *testing.T) {
	svc, _ := createTestQuoteService(t)

	quote := svc.AssembleQuote(galaxyDataset())

	assert.Equal(t, galaxyID, quote.DeviceID)
	assert.Equal(t, "Samsung Galaxy S25", quote.DeviceName)
	assert.Equal(t, "https://cdn.example.com/devices/default.png", quote.DeviceImage)
	assert.Equal(t, fixtureTime, quote.AssembledAt)

	assert.False(t, quote.Buyback.Unpriced)
	assert.Equal(t, int64(365), quote.Buyback.MaxPrice)
	assert.Equal(t, "512GB", quote.Buyback.TopStorage)

	want := map[string]map[entity.ConditionTier]int64{
		"512GB": {entity.TierLikeNew: 365},
		"256GB": {entity.TierGood: 250},
	}
	if diff := cmp.Diff(want, quote.Buyback.PerStorage); diff != "" {
		t.Errorf("PerStorage mismatch (-want +got):\n%s", diff)
	}
}

func TestQuoteService_AssembleQuote_MaxFromAnchorTiers(t *testing.T) {
	svc, _ := createTestQuoteService(t)

	ds := anchorOnlyDataset()
	ds.BuybackRecords = []entity.PriceRecord{
		{DeviceID: galaxyID, Storage: "512GB", Tier: entity.TierDamaged, Price: dec("120"), UpdatedAt: fixtureTime},
	}

	quote := svc.AssembleQuote(ds)

	// like-new falls back to the anchor at x1.00.
	assert.Equal(t, int64(365), quote.Buyback.MaxPrice)
}

func TestQuoteService_AssembleQuote_SEOUsesSamePriceInEveryLanguage(t *testing.T) {
	svc, _ := createTestQuoteService(t)

	quote := svc.AssembleQuote(galaxyDataset())

	require.Len(t, quote.SEO, len(entity.Languages()))
	for lang, seo := range quote.SEO {
		assert.Contains(t, seo.Title, "365", lang.String())
		assert.Contains(t, seo.Description, "365", lang.String())
		assert.Contains(t, seo.Title, "Samsung Galaxy S25", lang.String())
		assert.True(t, strings.HasPrefix(seo.Slug, "/"+lang.String()+"/"), seo.Slug)
		assert.True(t, strings.HasSuffix(seo.RepairSlug, "/"+galaxyID), seo.RepairSlug)
	}

	assert.Equal(t, "Sell your Samsung Galaxy S25 in Amsterdam | up to €365", quote.SEO[entity.LanguageEN].Title)
	assert.Equal(t, "/nl/verkopen/samsung-galaxy-s25", quote.SEO[entity.LanguageNL].Slug)
	assert.Equal(t, "/de/reparatur/samsung-galaxy-s25", quote.SEO[entity.LanguageDE].RepairSlug)
}

func TestQuoteService_AssembleQuote_Repair(t *testing.T) {
	svc, _ := createTestQuoteService(t)

	quote := svc.AssembleQuote(galaxyDataset())

	assert.False(t, quote.Repair.Unpriced)
	require.Len(t, quote.Repair.Issues, len(TopRepairIssues))

	screen := quote.Repair.Issues[0]
	assert.Equal(t, "screen", screen.IssueID)
	assert.True(t, screen.Available)
	assert.Equal(t, int64(149), screen.FromPrice)
	if diff := cmp.Diff(map[string]int64{"original": 229, "compatible": 149}, screen.Variants); diff != "" {
		t.Errorf("screen variants mismatch (-want +got):\n%s", diff)
	}

	battery := quote.Repair.Issues[1]
	assert.Equal(t, int64(90), battery.FromPrice)
	assert.Equal(t, map[string]int64{"standard": 90}, battery.Variants)

	assert.False(t, quote.Repair.Issues[2].Available)
}

func TestQuoteService_AssembleQuote_Unpriced(t *testing.T) {
	svc, _ := createTestQuoteService(t)

	quote := svc.AssembleQuote(emptyDataset("acme-phone-1"))

	assert.True(t, quote.Buyback.Unpriced)
	assert.True(t, quote.Repair.Unpriced)
	assert.Equal(t, int64(0), quote.Buyback.MaxPrice)
	assert.Nil(t, quote.Buyback.PerStorage)
	assert.Equal(t, "Sell or repair your Acme Phone 1 in Amsterdam", quote.SEO[entity.LanguageEN].Title)
	for _, seo := range quote.SEO {
		assert.NotContains(t, seo.Title, "€0")
	}
}

func TestQuoteService_BuildQuote_SharesQuoteForSameDataset(t *testing.T) {
	svc, cache := createTestQuoteService(t)
	ctx := context.Background()

	ds := galaxyDataset()
	cache.EXPECT().GetDeviceData(ctx, galaxyID).Return(ds, nil).Times(2)

	first, err := svc.BuildQuote(ctx, galaxyID)
	require.NoError(t, err)
	second, err := svc.BuildQuote(ctx, galaxyID)
	require.NoError(t, err)

	assert.Same(t, first, second)
}

func TestQuoteService_BuildQuote_RebuildsAfterPriceChange(t *testing.T) {
	svc, cache := createTestQuoteService(t)
	ctx := context.Background()

	before := galaxyDataset()
	after := galaxyDataset()
	after.BuybackRecords[0].Price = dec("340")

	cache.EXPECT().GetDeviceData(ctx, galaxyID).Return(before, nil).Once()
	cache.EXPECT().GetDeviceData(ctx, galaxyID).Return(after, nil).Once()

	first, err := svc.BuildQuote(ctx, galaxyID)
	require.NoError(t, err)
	second, err := svc.BuildQuote(ctx, galaxyID)
	require.NoError(t, err)

	assert.NotSame(t, first, second)
	assert.Equal(t, int64(365), first.Buyback.MaxPrice)
	assert.Equal(t, int64(340), second.Buyback.MaxPrice)
	assert.Contains(t, second.SEO[entity.LanguageFR].Title, "340")
}

func TestQuoteService_BuildQuote_UnknownDevice(t *testing.T) {
	svc, cache := createTestQuoteService(t)
	ctx := context.Background()

	cache.EXPECT().GetDeviceData(ctx, "nokia-3310").Return(nil, repository.ErrDeviceNotFound)

	quote, err := svc.BuildQuote(ctx, "nokia-3310")
	require.Error(t, err)
	assert.Nil(t, quote)
	assert.True(t, errors.Is(err, domainerrors.ErrDeviceNotFound))
}
