package postgres

import (
	"context"
	"time"

	"devicequote/internal/domain/entity"
	domainerrors "devicequote/internal/domain/errors"
	"devicequote/internal/domain/repository"
	"devicequote/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// recoveryRepository implements the repository.RecoveryRepository interface.
type recoveryRepository struct {
	db *gorm.DB
}

// NewRecoveryRepository is the constructor for recoveryRepository.
func NewRecoveryRepository(db *gorm.DB) repository.RecoveryRepository {
	return &recoveryRepository{
		db: db,
	}
}

// CreateRecoverySession stores a session keyed by its token hash.
func (repo *recoveryRepository) CreateRecoverySession(ctx context.Context, session *entity.RecoverySession) error {
	sessionM := fromRecoverySessionDomain(session)

	if err := repo.db.WithContext(ctx).Create(sessionM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			// 256-bit tokens do not collide in practice; treat it as a server fault.
			return domainerrors.ErrInternalError.WrapMessage("recovery token collision")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create recovery session")
	}

	return nil
}

// FindRecoverySession loads a session by token hash, expired or not.
func (repo *recoveryRepository) FindRecoverySession(ctx context.Context, tokenHash string) (*entity.RecoverySession, error) {
	var sessionM model.RecoverySessionModel

	if err := repo.db.WithContext(ctx).
		Where("token_hash = ?", tokenHash).
		First(&sessionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRecoverySessionNotFound
		}

		return nil, errors.Wrap(err, "failed to find recovery session")
	}

	return toRecoverySessionDomain(&sessionM), nil
}

// DeleteExpiredRecoverySessions removes sessions that expired before cutoff.
func (repo *recoveryRepository) DeleteExpiredRecoverySessions(ctx context.Context, cutoff time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("expires_at < ?", cutoff).
		Delete(&model.RecoverySessionModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete expired recovery sessions")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

func toRecoverySessionDomain(data *model.RecoverySessionModel) *entity.RecoverySession {
	if data == nil {
		return nil
	}

	return &entity.RecoverySession{
		TokenHash: data.TokenHash,
		Input:     data.Input,
		Selection: data.Selection,
		Email:     data.Email,
		CreatedAt: data.CreatedAt.UTC(),
		ExpiresAt: data.ExpiresAt.UTC(),
	}
}

func fromRecoverySessionDomain(data *entity.RecoverySession) *model.RecoverySessionModel {
	if data == nil {
		return nil
	}

	return &model.RecoverySessionModel{
		TokenHash: data.TokenHash,
		Input:     data.Input,
		Selection: data.Selection,
		Email:     data.Email,
		CreatedAt: data.CreatedAt,
		ExpiresAt: data.ExpiresAt,
	}
}
