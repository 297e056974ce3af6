package handler

import (
	"log/slog"
	"net/http"

	"devicequote/internal/delivery/api/response"
	"devicequote/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ValuationHandlerParams holds dependencies for ValuationHandler, injected by Fx.
type ValuationHandlerParams struct {
	fx.In

	ValuationUC usecase.ValuationUsecase
	Logger      *slog.Logger
}

// ValuationHandler serves bulk trade-in valuations.
type ValuationHandler struct {
	valuationUC usecase.ValuationUsecase
	logger      *slog.Logger
}

// NewValuationHandler is the constructor for ValuationHandler
func NewValuationHandler(params ValuationHandlerParams) *ValuationHandler {
	return &ValuationHandler{
		valuationUC: params.ValuationUC,
		logger:      params.Logger,
	}
}

// ValuationRequest is the body of POST /api/v1/valuations.
type ValuationRequest struct {
	Items []usecase.ValuationItem `json:"items" validate:"required,min=1,max=500,dive"`
}

// Value handles POST /api/v1/valuations.
func (h *ValuationHandler) Value(c echo.Context) error {
	var req ValuationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid valuation request")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.valuationUC.Value(c.Request().Context(), req.Items)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}
