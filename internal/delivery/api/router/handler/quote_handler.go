package handler

import (
	"log/slog"
	"net/http"

	"devicequote/internal/delivery/api/response"
	"devicequote/internal/domain/entity"
	"devicequote/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// QuoteHandlerParams holds dependencies for QuoteHandler, injected by Fx.
type QuoteHandlerParams struct {
	fx.In

	PricingUC usecase.PricingUsecase
	QuoteUC   usecase.QuoteUsecase
	Logger    *slog.Logger
}

// QuoteHandler serves single prices and assembled device quotes.
type QuoteHandler struct {
	pricingUC usecase.PricingUsecase
	quoteUC   usecase.QuoteUsecase
	logger    *slog.Logger
}

// NewQuoteHandler is the constructor for QuoteHandler
func NewQuoteHandler(params QuoteHandlerParams) *QuoteHandler {
	return &QuoteHandler{
		pricingUC: params.PricingUC,
		quoteUC:   params.QuoteUC,
		logger:    params.Logger,
	}
}

// ResolveQuote handles POST /api/v1/quotes. An unpriced device answers 200
// with unpriced=true so the page can offer an in-person quote.
func (h *QuoteHandler) ResolveQuote(c echo.Context) error {
	var req usecase.QuoteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid quote request")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.pricingUC.Resolve(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// GetDeviceQuote handles GET /api/v1/devices/:id/quote. The optional lang
// query parameter narrows the SEO block to one language.
func (h *QuoteHandler) GetDeviceQuote(c echo.Context) error {
	deviceID := c.Param("id")
	if deviceID == "" {
		return response.BadRequest(c, "INVALID_ID", "Device ID is required")
	}

	var (
		lang     entity.Language
		filtered bool
	)
	if code := c.QueryParam("lang"); code != "" {
		var ok bool
		if lang, ok = entity.ParseLanguage(code); !ok {
			return response.BadRequest(c, "UNSUPPORTED_LANGUAGE", "Unsupported language: "+code)
		}
		filtered = true
	}

	quote, err := h.quoteUC.BuildQuote(c.Request().Context(), deviceID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if filtered {
		// Copy; the assembled quote is shared between requests.
		view := *quote
		view.SEO = map[entity.Language]entity.SEOContent{lang: quote.SEO[lang]}
		quote = &view
	}

	return response.Success(c, http.StatusOK, quote)
}
