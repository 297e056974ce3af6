package handler

import (
	"log/slog"
	"net/http"

	"devicequote/internal/delivery/api/middleware"
	"devicequote/internal/delivery/api/response"
	"devicequote/internal/domain/entity"
	"devicequote/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	PriceAdminUC usecase.PriceAdminUsecase
	FeedUC       usecase.FeedUsecase
	Logger       *slog.Logger
}

// AdminHandler serves the pricing-admin endpoints.
type AdminHandler struct {
	priceAdminUC usecase.PriceAdminUsecase
	feedUC       usecase.FeedUsecase
	logger       *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		priceAdminUC: params.PriceAdminUC,
		feedUC:       params.FeedUC,
		logger:       params.Logger,
	}
}

// PriceUpdateRequest is the body of PUT /admin/prices. Kind may be omitted
// and is then inferred from which fields are set.
type PriceUpdateRequest struct {
	DeviceID  string                 `json:"deviceId" validate:"required,max=128"`
	Kind      entity.PriceUpdateKind `json:"kind,omitempty" validate:"omitempty,oneof=buyback repair anchor"`
	Storage   string                 `json:"storage,omitempty" validate:"max=16"`
	Tier      entity.ConditionTier   `json:"tier,omitempty" validate:"omitempty,oneof=like-new good fair damaged"`
	IssueID   string                 `json:"issueId,omitempty" validate:"max=64"`
	Variant   string                 `json:"variant,omitempty" validate:"max=32"`
	Price     decimal.Decimal        `json:"price"`
	Source    string                 `json:"source,omitempty" validate:"max=64"`
	Confirmed bool                   `json:"confirmed,omitempty"`
}

// kind infers the target table: an issue means repair, a storage or tier
// means buyback, neither means the anchor.
func (r *PriceUpdateRequest) kind() entity.PriceUpdateKind {
	switch {
	case r.Kind != "":
		return r.Kind
	case r.IssueID != "":
		return entity.PriceUpdateRepair
	case r.Storage != "" || r.Tier != "":
		return entity.PriceUpdateBuyback
	default:
		return entity.PriceUpdateAnchor
	}
}

// UpdatePrice handles PUT /admin/prices.
func (h *AdminHandler) UpdatePrice(c echo.Context) error {
	var req PriceUpdateRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid price update")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	source := req.Source
	if source == "" {
		if claims, ok := middleware.GetClaims(c); ok {
			source = claims.Subject
		}
	}

	result, err := h.priceAdminUC.ApplyUpdate(c.Request().Context(), &entity.PriceUpdate{
		DeviceID:  req.DeviceID,
		Kind:      req.kind(),
		Storage:   req.Storage,
		Tier:      req.Tier,
		IssueID:   req.IssueID,
		Variant:   req.Variant,
		Price:     req.Price,
		Source:    source,
		Confirmed: req.Confirmed,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// GenerateFeed handles POST /admin/feeds.
func (h *AdminHandler) GenerateFeed(c echo.Context) error {
	result, err := h.feedUC.GenerateFeed(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}
