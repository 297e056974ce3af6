package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"devicequote/internal/domain/entity"
	domainerrors "devicequote/internal/domain/errors"
	"devicequote/internal/domain/pricing"
	mockUsecase "devicequote/internal/mocks/usecase"
	"devicequote/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestQuoteHandler(t *testing.T) (*echo.Echo, *mockUsecase.MockPricingUsecase, *mockUsecase.MockQuoteUsecase) {
	t.Helper()

	pricingUC := mockUsecase.NewMockPricingUsecase(t)
	quoteUC := mockUsecase.NewMockQuoteUsecase(t)
	h := NewQuoteHandler(QuoteHandlerParams{PricingUC: pricingUC, QuoteUC: quoteUC, Logger: discardLogger()})

	e := newTestEcho(t)
	e.POST("/api/v1/quotes", h.ResolveQuote)
	e.GET("/api/v1/devices/:id/quote", h.GetDeviceQuote)

	return e, pricingUC, quoteUC
}

func TestQuoteHandler_ResolveQuote(t *testing.T) {
	e, pricingUC, _ := createTestQuoteHandler(t)

	pricingUC.EXPECT().
		Resolve(mock.Anything, mock.AnythingOfType("*usecase.QuoteRequest")).
		RunAndReturn(func(_ context.Context, req *usecase.QuoteRequest) (*usecase.QuoteResult, error) {
			assert.Equal(t, "samsung-galaxy-s25", req.DeviceID)
			require.NotNil(t, req.Condition)
			assert.Equal(t, entity.BodyScratches, req.Condition.BodyState)

			return &usecase.QuoteResult{
				DeviceID:   req.DeviceID,
				Type:       req.Type,
				Price:      292,
				ExactPrice: decimal.NewFromInt(292),
				Currency:   "EUR",
				Tier:       entity.TierGood,
				Source:     pricing.SourceAnchor,
				Breakdown:  []usecase.BreakdownLine{},
			}, nil
		})

	rec := doRequest(e, http.MethodPost, "/api/v1/quotes", `{
		"deviceId": "samsung-galaxy-s25",
		"type": "buyback",
		"storage": "512GB",
		"conditionInput": {"turnsOn": true, "worksCorrectly": true, "isUnlocked": true, "screenState": "flawless", "bodyState": "scratches"}
	}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var body struct {
		Data struct {
			Price    int64  `json:"price"`
			Currency string `json:"currency"`
			Unpriced bool   `json:"unpriced"`
			Tier     string `json:"tier"`
		} `json:"data"`
		Meta struct {
			RequestID string `json:"request_id"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(292), body.Data.Price)
	assert.Equal(t, "EUR", body.Data.Currency)
	assert.Equal(t, "good", body.Data.Tier)
	assert.NotEmpty(t, body.Meta.RequestID)
}

func TestQuoteHandler_ResolveQuote_ValidationDetails(t *testing.T) {
	e, _, _ := createTestQuoteHandler(t)

	rec := doRequest(e, http.MethodPost, "/api/v1/quotes", `{"type": "trade-in"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Error struct {
			Code    string `json:"code"`
			Details []struct {
				Field string `json:"field"`
			} `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
	require.Len(t, body.Error.Details, 2)
	assert.Equal(t, "deviceId", body.Error.Details[0].Field)
}

func TestQuoteHandler_ResolveQuote_RejectsUnknownConditionValues(t *testing.T) {
	tests := []struct {
		name      string
		condition string
		wantField string
		wantRule  string
	}{
		{
			name:      "screen state with wrong case",
			condition: `{"turnsOn": true, "worksCorrectly": true, "isUnlocked": true, "screenState": "Cracked", "bodyState": "flawless"}`,
			wantField: "conditionInput.screenState",
			wantRule:  "oneof",
		},
		{
			name:      "unknown body state",
			condition: `{"turnsOn": true, "worksCorrectly": true, "isUnlocked": true, "screenState": "flawless", "bodyState": "dented"}`,
			wantField: "conditionInput.bodyState",
			wantRule:  "oneof",
		},
		{
			name:      "missing screen state",
			condition: `{"turnsOn": true, "worksCorrectly": true, "isUnlocked": true, "bodyState": "flawless"}`,
			wantField: "conditionInput.screenState",
			wantRule:  "required",
		},
		{
			name:      "unknown battery health",
			condition: `{"turnsOn": true, "worksCorrectly": true, "isUnlocked": true, "screenState": "flawless", "bodyState": "flawless", "batteryHealth": "weak"}`,
			wantField: "conditionInput.batteryHealth",
			wantRule:  "oneof",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _, _ := createTestQuoteHandler(t)

			rec := doRequest(e, http.MethodPost, "/api/v1/quotes",
				`{"deviceId": "samsung-galaxy-s25", "type": "buyback", "conditionInput": `+tt.condition+`}`)
			require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())

			var body struct {
				Error struct {
					Code    string `json:"code"`
					Details []struct {
						Field string `json:"field"`
						Rule  string `json:"rule"`
					} `json:"details"`
				} `json:"error"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
			require.Len(t, body.Error.Details, 1)
			assert.Equal(t, tt.wantField, body.Error.Details[0].Field)
			assert.Equal(t, tt.wantRule, body.Error.Details[0].Rule)
		})
	}
}

func TestQuoteHandler_ResolveQuote_MalformedJSON(t *testing.T) {
	e, _, _ := createTestQuoteHandler(t)

	rec := doRequest(e, http.MethodPost, "/api/v1/quotes", `{"deviceId":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
}

func TestQuoteHandler_ResolveQuote_UnknownDevice(t *testing.T) {
	e, pricingUC, _ := createTestQuoteHandler(t)

	pricingUC.EXPECT().
		Resolve(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrDeviceNotFound.WithDetails("nokia-3310"))

	rec := doRequest(e, http.MethodPost, "/api/v1/quotes", `{"deviceId":"nokia-3310","type":"buyback"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"DEVICE_NOT_FOUND"`)
	assert.Contains(t, rec.Body.String(), `"details":"nokia-3310"`)
}

func TestQuoteHandler_GetDeviceQuote_FiltersLanguage(t *testing.T) {
	e, _, quoteUC := createTestQuoteHandler(t)

	shared := &entity.Quote{
		DeviceID: "samsung-galaxy-s25",
		Buyback:  entity.BuybackQuote{MaxPrice: 365},
		SEO: map[entity.Language]entity.SEOContent{
			entity.LanguageEN: {Title: "Sell your Samsung Galaxy S25"},
			entity.LanguageNL: {Title: "Verkoop je Samsung Galaxy S25"},
		},
	}
	quoteUC.EXPECT().BuildQuote(mock.Anything, "samsung-galaxy-s25").Return(shared, nil)

	rec := doGet(e, "/api/v1/devices/samsung-galaxy-s25/quote?lang=nl")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data struct {
			SEO map[string]entity.SEOContent `json:"seo"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Data.SEO, 1)
	assert.Equal(t, "Verkoop je Samsung Galaxy S25", body.Data.SEO["nl"].Title)

	// The shared quote is untouched.
	assert.Len(t, shared.SEO, 2)
}

func TestQuoteHandler_GetDeviceQuote_UnsupportedLanguage(t *testing.T) {
	e, _, _ := createTestQuoteHandler(t)

	rec := doGet(e, "/api/v1/devices/samsung-galaxy-s25/quote?lang=xx")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "UNSUPPORTED_LANGUAGE")
}
