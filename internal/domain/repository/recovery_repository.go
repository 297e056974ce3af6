package repository

import (
	"context"
	"time"

	"devicequote/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrRecoverySessionNotFound is returned when no session matches a token hash.
var ErrRecoverySessionNotFound = errors.New("recovery session not found")

// RecoveryRepository persists abandoned quote sessions.
type RecoveryRepository interface {
	// CreateRecoverySession stores a session keyed by its token hash.
	CreateRecoverySession(ctx context.Context, session *entity.RecoverySession) error

	// FindRecoverySession loads a session by token hash, expired or not.
	FindRecoverySession(ctx context.Context, tokenHash string) (*entity.RecoverySession, error)

	// DeleteExpiredRecoverySessions removes sessions that expired before cutoff.
	DeleteExpiredRecoverySessions(ctx context.Context, cutoff time.Time) (int64, error)
}
