package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"devicequote/internal/delivery/api/middleware"
	"devicequote/internal/domain/constants"
	"devicequote/internal/domain/entity"
	domainerrors "devicequote/internal/domain/errors"
	"devicequote/internal/domain/service"
	mockSvc "devicequote/internal/mocks/service"
	mockUsecase "devicequote/internal/mocks/usecase"
	"devicequote/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type adminHandlerFixtures struct {
	e            *echo.Echo
	priceAdminUC *mockUsecase.MockPriceAdminUsecase
	feedUC       *mockUsecase.MockFeedUsecase
	tokenSvc     *mockSvc.MockTokenService
}

func createTestAdminHandler(t *testing.T) adminHandlerFixtures {
	t.Helper()

	priceAdminUC := mockUsecase.NewMockPriceAdminUsecase(t)
	feedUC := mockUsecase.NewMockFeedUsecase(t)
	tokenSvc := mockSvc.NewMockTokenService(t)

	h := NewAdminHandler(AdminHandlerParams{PriceAdminUC: priceAdminUC, FeedUC: feedUC, Logger: discardLogger()})
	auth := middleware.NewAuthMiddleware(tokenSvc)

	e := newTestEcho(t)
	admin := e.Group("/admin", auth.Authenticate, auth.RequireRole(constants.RolePricingAdmin))
	admin.PUT("/prices", h.UpdatePrice)
	admin.POST("/feeds", h.GenerateFeed)

	return adminHandlerFixtures{e: e, priceAdminUC: priceAdminUC, feedUC: feedUC, tokenSvc: tokenSvc}
}

func adminClaims(roles ...string) *service.Claims {
	return &service.Claims{
		Roles:            roles,
		RegisteredClaims: jwt.RegisteredClaims{Subject: "pricing-bot"},
	}
}

func authorizedRequest(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAuthorization, "Bearer admin-token")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestAdminHandler_UpdatePrice_InfersKind(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantKind entity.PriceUpdateKind
	}{
		{
			name:     "buyback from storage and tier",
			body:     `{"deviceId": "samsung-galaxy-s25", "storage": "512GB", "tier": "like-new", "price": "370"}`,
			wantKind: entity.PriceUpdateBuyback,
		},
		{
			name:     "repair from issue",
			body:     `{"deviceId": "samsung-galaxy-s25", "issueId": "screen", "variant": "original", "price": "239"}`,
			wantKind: entity.PriceUpdateRepair,
		},
		{
			name:     "anchor when nothing narrows it",
			body:     `{"deviceId": "samsung-galaxy-s25", "price": "430"}`,
			wantKind: entity.PriceUpdateAnchor,
		},
		{
			name:     "explicit kind wins",
			body:     `{"deviceId": "samsung-galaxy-s25", "kind": "anchor", "storage": "512GB", "price": "430"}`,
			wantKind: entity.PriceUpdateAnchor,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAdminHandler(t)

			fx.tokenSvc.EXPECT().ValidateToken("admin-token").Return(adminClaims(constants.RolePricingAdmin), nil)
			fx.priceAdminUC.EXPECT().
				ApplyUpdate(mock.Anything, mock.AnythingOfType("*entity.PriceUpdate")).
				RunAndReturn(func(_ context.Context, update *entity.PriceUpdate) (*usecase.PriceUpdateResult, error) {
					assert.Equal(t, tt.wantKind, update.Kind)
					assert.Equal(t, "pricing-bot", update.Source)

					return &usecase.PriceUpdateResult{DeviceID: update.DeviceID, Kind: update.Kind, Price: update.Price}, nil
				})

			rec := authorizedRequest(fx.e, http.MethodPut, "/admin/prices", tt.body)
			assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		})
	}
}

func TestAdminHandler_UpdatePrice_ExplicitSource(t *testing.T) {
	fx := createTestAdminHandler(t)

	fx.tokenSvc.EXPECT().ValidateToken("admin-token").Return(adminClaims(constants.RolePricingAdmin), nil)
	fx.priceAdminUC.EXPECT().
		ApplyUpdate(mock.Anything, mock.MatchedBy(func(u *entity.PriceUpdate) bool {
			return u.Source == "supplier-sheet" && u.Price.Equal(decimal.RequireFromString("89.50"))
		})).
		Return(&usecase.PriceUpdateResult{DeviceID: "samsung-galaxy-s25"}, nil)

	rec := authorizedRequest(fx.e, http.MethodPut, "/admin/prices",
		`{"deviceId": "samsung-galaxy-s25", "issueId": "battery", "price": "89.50", "source": "supplier-sheet"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminHandler_UpdatePrice_Rejected(t *testing.T) {
	fx := createTestAdminHandler(t)

	fx.tokenSvc.EXPECT().ValidateToken("admin-token").Return(adminClaims(constants.RolePricingAdmin), nil)
	fx.priceAdminUC.EXPECT().
		ApplyUpdate(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrUpdateRejected.WithDetails("review 7d0e"))

	rec := authorizedRequest(fx.e, http.MethodPut, "/admin/prices", `{"deviceId": "samsung-galaxy-s25", "price": "9000"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"UPDATE_REJECTED"`)
	assert.Contains(t, rec.Body.String(), "review 7d0e")
}

func TestAdminHandler_Authorization(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		setup      func(tokenSvc *mockSvc.MockTokenService)
		wantStatus int
		wantCode   string
	}{
		{
			name:       "missing header",
			wantStatus: http.StatusUnauthorized,
			wantCode:   "MISSING_TOKEN",
		},
		{
			name:       "not a bearer token",
			header:     "Basic YWRtaW46YWRtaW4=",
			wantStatus: http.StatusUnauthorized,
			wantCode:   "INVALID_TOKEN",
		},
		{
			name:   "invalid token",
			header: "Bearer expired",
			setup: func(tokenSvc *mockSvc.MockTokenService) {
				tokenSvc.EXPECT().ValidateToken("expired").Return(nil, errors.New("token is expired"))
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "INVALID_TOKEN",
		},
		{
			name:   "missing role",
			header: "Bearer viewer",
			setup: func(tokenSvc *mockSvc.MockTokenService) {
				tokenSvc.EXPECT().ValidateToken("viewer").Return(adminClaims("catalog-viewer"), nil)
			},
			wantStatus: http.StatusForbidden,
			wantCode:   "FORBIDDEN",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAdminHandler(t)
			if tt.setup != nil {
				tt.setup(fx.tokenSvc)
			}

			req := httptest.NewRequest(http.MethodPost, "/admin/feeds", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			fx.e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantCode)
		})
	}
}

func TestAdminHandler_GenerateFeed(t *testing.T) {
	fx := createTestAdminHandler(t)

	fx.tokenSvc.EXPECT().ValidateToken("admin-token").Return(adminClaims(constants.RolePricingAdmin), nil)
	fx.feedUC.EXPECT().GenerateFeed(mock.Anything).Return(&usecase.FeedResult{Key: "feeds/prices.json", Devices: 12}, nil)

	rec := authorizedRequest(fx.e, http.MethodPost, "/admin/feeds", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"devices":12`)
}

func TestAdminHandler_GenerateFeed_Disabled(t *testing.T) {
	fx := createTestAdminHandler(t)

	fx.tokenSvc.EXPECT().ValidateToken("admin-token").Return(adminClaims(constants.RolePricingAdmin), nil)
	fx.feedUC.EXPECT().GenerateFeed(mock.Anything).Return(nil, domainerrors.ErrFeedDisabled)

	rec := authorizedRequest(fx.e, http.MethodPost, "/admin/feeds", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "FEED_DISABLED")
}
