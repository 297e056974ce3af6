package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeviceSlug(t *testing.T) {
	tests := []struct {
		brand, model, want string
	}{
		{"Samsung", "Galaxy S25", "samsung-galaxy-s25"},
		{"Apple", "iPhone 15 Pro Max", "apple-iphone-15-pro-max"},
		{"  Google ", " Pixel 8a (2024) ", "google-pixel-8a-2024"},
		{"Nintendo", "Switch - OLED", "nintendo-switch-oled"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, DeviceSlug(tt.brand, tt.model))
		})
	}
}

func TestStorageCapacityGB(t *testing.T) {
	assert.Equal(t, 512, StorageCapacityGB("512GB"))
	assert.Equal(t, 512, StorageCapacityGB("512 gb"))
	assert.Equal(t, 1024, StorageCapacityGB("1TB"))
	assert.Equal(t, 64, StorageCapacityGB("64"))
	assert.Equal(t, 0, StorageCapacityGB("unknown"))
	assert.Equal(t, 0, StorageCapacityGB("12PB"))
}

func TestDeviceDataset_StoragesLargestFirst(t *testing.T) {
	ds := &DeviceDataset{BuybackRecords: []PriceRecord{
		{Storage: "128GB", Tier: TierGood},
		{Storage: "1TB", Tier: TierGood},
		{Storage: "512 GB", Tier: TierGood},
		{Storage: "512GB", Tier: TierLikeNew},
	}}

	assert.Equal(t, []string{"1TB", "512 GB", "128GB"}, ds.Storages())
}

func TestLanguage_ProfilesAreComplete(t *testing.T) {
	langs := Languages()
	require.Len(t, langs, int(languageCount))

	codes := make(map[string]bool)
	for _, l := range langs {
		p := l.Profile()
		assert.NotEmpty(t, p.Code, l)
		assert.NotEmpty(t, p.BuybackService, l)
		assert.NotEmpty(t, p.RepairService, l)
		assert.Contains(t, p.TitleTemplate, "{{.Price}}", l)
		assert.Contains(t, p.DescriptionTemplate, "{{.Price}}", l)
		assert.NotEmpty(t, p.UnpricedTitle, l)
		assert.NotEmpty(t, p.UnpricedDescription, l)
		assert.False(t, codes[p.Code], "duplicate code %s", p.Code)
		codes[p.Code] = true
	}
}

func TestLanguage_JSONKeys(t *testing.T) {
	in := map[Language]SEOContent{LanguageNL: {Title: "t"}}

	raw, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"nl":{"title":"t","description":"","slug":"","repairSlug":""}}`, string(raw))

	var out map[Language]SEOContent
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, in, out)
}

func TestParseLanguage(t *testing.T) {
	l, ok := ParseLanguage("de")
	assert.True(t, ok)
	assert.Equal(t, LanguageDE, l)

	_, ok = ParseLanguage("xx")
	assert.False(t, ok)
}
