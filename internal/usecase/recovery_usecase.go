package usecase

import (
	"context"
	"time"

	"devicequote/internal/domain/entity"
)

// SaveRecoveryInput is the wizard state captured when a customer leaves.
type SaveRecoveryInput struct {
	Input     entity.ConditionInput `json:"conditionInput" validate:"required"`
	Selection entity.Selection      `json:"selection"`
	Email     *string               `json:"email,omitempty" validate:"omitempty,email,max=320"`
}

// SavedRecovery is returned once; the plain token is never stored.
type SavedRecovery struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	ResumeURL string    `json:"resumeUrl,omitempty"`
}

// RecoveredSession is the restored wizard state.
type RecoveredSession struct {
	Input     entity.ConditionInput `json:"conditionInput"`
	Selection entity.Selection      `json:"selection"`
	Email     *string               `json:"email,omitempty"`
	CreatedAt time.Time             `json:"createdAt"`
	ExpiresAt time.Time             `json:"expiresAt"`
}

// ResumedSession is a restored session re-priced against current prices.
type ResumedSession struct {
	Session *RecoveredSession `json:"session"`
	Quote   *QuoteResult      `json:"quote"`
}

// RecoveryUsecase stores and restores abandoned quote sessions.
type RecoveryUsecase interface {
	// Save persists the state and returns a fresh token valid for the configured TTL.
	Save(ctx context.Context, input *SaveRecoveryInput) (*SavedRecovery, error)

	// Load restores a session. Unknown tokens fail with RECOVERY_NOT_FOUND,
	// expired ones with RECOVERY_EXPIRED. Loading is repeatable.
	Load(ctx context.Context, token string) (*RecoveredSession, error)

	// Resume loads a session and prices it against the current price table.
	Resume(ctx context.Context, token string) (*ResumedSession, error)

	// ResumeQR renders the session's resume link as a PNG QR code.
	ResumeQR(ctx context.Context, token string) ([]byte, error)

	// PurgeExpired deletes sessions past expiry plus the configured grace.
	PurgeExpired(ctx context.Context) (int64, error)
}
