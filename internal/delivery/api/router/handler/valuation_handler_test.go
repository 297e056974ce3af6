package handler

import (
	"context"
	"net/http"
	"testing"

	"devicequote/internal/domain/entity"
	mockUsecase "devicequote/internal/mocks/usecase"
	"devicequote/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestValuationHandler(t *testing.T) (*echo.Echo, *mockUsecase.MockValuationUsecase) {
	t.Helper()

	valuationUC := mockUsecase.NewMockValuationUsecase(t)
	h := NewValuationHandler(ValuationHandlerParams{ValuationUC: valuationUC, Logger: discardLogger()})

	e := newTestEcho(t)
	e.POST("/api/v1/valuations", h.Value)

	return e, valuationUC
}

func TestValuationHandler_Value(t *testing.T) {
	e, valuationUC := createTestValuationHandler(t)

	valuationUC.EXPECT().
		Value(mock.Anything, mock.AnythingOfType("[]usecase.ValuationItem")).
		RunAndReturn(func(_ context.Context, items []usecase.ValuationItem) (*usecase.ValuationResult, error) {
			require.Len(t, items, 2)
			assert.Equal(t, "Galaxy S25", items[0].Model)
			assert.Equal(t, entity.TierGood, items[1].Condition)

			return &usecase.ValuationResult{
				Items: []usecase.ValuationLine{
					{Index: 0, DeviceID: "samsung-galaxy-s25", Price: 365, ExactPrice: decimal.NewFromInt(365)},
					{Index: 1, DeviceID: "samsung-galaxy-s25", Price: 250, ExactPrice: decimal.NewFromInt(250)},
				},
				Total:      615,
				ExactTotal: decimal.NewFromInt(615),
				Currency:   "EUR",
				Priced:     2,
			}, nil
		})

	rec := doRequest(e, http.MethodPost, "/api/v1/valuations", `{"items": [
		{"brand": "Samsung", "model": "Galaxy S25", "storage": "512GB"},
		{"brand": "Samsung", "model": "Galaxy S25", "storage": "256GB", "condition": "good"}
	]}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"total":615`)
	assert.Contains(t, rec.Body.String(), `"priced":2`)
}

func TestValuationHandler_Value_Validation(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantField string
	}{
		{
			name:      "empty batch",
			body:      `{"items": []}`,
			wantField: `"field":"items"`,
		},
		{
			name:      "missing model",
			body:      `{"items": [{"brand": "Samsung"}]}`,
			wantField: `"field":"items[0].model"`,
		},
		{
			name:      "unknown tier",
			body:      `{"items": [{"brand": "Samsung", "model": "Galaxy S25", "condition": "mint"}]}`,
			wantField: `"field":"items[0].condition"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := createTestValuationHandler(t)

			rec := doRequest(e, http.MethodPost, "/api/v1/valuations", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
			assert.Contains(t, rec.Body.String(), tt.wantField)
		})
	}
}
