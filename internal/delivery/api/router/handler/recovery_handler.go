package handler

import (
	"log/slog"
	"net/http"
	"time"

	"devicequote/internal/delivery/api/response"
	"devicequote/internal/domain/entity"
	"devicequote/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RecoveryHandlerParams holds dependencies for RecoveryHandler, injected by Fx.
type RecoveryHandlerParams struct {
	fx.In

	RecoveryUC usecase.RecoveryUsecase
	Logger     *slog.Logger
}

// RecoveryHandler saves and restores abandoned quote sessions.
type RecoveryHandler struct {
	recoveryUC usecase.RecoveryUsecase
	logger     *slog.Logger
}

// NewRecoveryHandler is the constructor for RecoveryHandler
func NewRecoveryHandler(params RecoveryHandlerParams) *RecoveryHandler {
	return &RecoveryHandler{
		recoveryUC: params.RecoveryUC,
		logger:     params.Logger,
	}
}

// recoveryView is the restored session. Expired sessions never reach it:
// they answer 410 RECOVERY_EXPIRED.
type recoveryView struct {
	ConditionInput entity.ConditionInput `json:"conditionInput"`
	Selection      entity.Selection      `json:"selection"`
	Email          *string               `json:"email,omitempty"`
	ExpiresAt      time.Time             `json:"expiresAt"`
	Expired        bool                  `json:"expired"`
}

// SaveSession handles POST /api/v1/recovery.
func (h *RecoveryHandler) SaveSession(c echo.Context) error {
	var req usecase.SaveRecoveryInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid recovery session")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	saved, err := h.recoveryUC.Save(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, saved)
}

// LoadSession handles GET /api/v1/recovery/:token.
func (h *RecoveryHandler) LoadSession(c echo.Context) error {
	session, err := h.recoveryUC.Load(c.Request().Context(), c.Param("token"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, recoveryView{
		ConditionInput: session.Input,
		Selection:      session.Selection,
		Email:          session.Email,
		ExpiresAt:      session.ExpiresAt,
	})
}

// ResumeSession handles GET /api/v1/recovery/:token/resume.
func (h *RecoveryHandler) ResumeSession(c echo.Context) error {
	resumed, err := h.recoveryUC.Resume(c.Request().Context(), c.Param("token"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, resumed)
}

// ResumeQR handles GET /api/v1/recovery/:token/qr.
func (h *RecoveryHandler) ResumeQR(c echo.Context) error {
	png, err := h.recoveryUC.ResumeQR(c.Request().Context(), c.Param("token"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.PNG(c, png)
}
