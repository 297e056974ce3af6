package postgres

import (
	"context"

	"devicequote/internal/domain/entity"
	domainerrors "devicequote/internal/domain/errors"
	"devicequote/internal/domain/repository"
	"devicequote/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// priceReviewRepository implements the repository.PriceReviewRepository interface.
type priceReviewRepository struct {
	db *gorm.DB
}

// NewPriceReviewRepository is the constructor for priceReviewRepository.
func NewPriceReviewRepository(db *gorm.DB) repository.PriceReviewRepository {
	return &priceReviewRepository{
		db: db,
	}
}

// CreatePriceReview parks a rejected update for manual review.
func (repo *priceReviewRepository) CreatePriceReview(ctx context.Context, review *entity.PriceReview) error {
	if review.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return domainerrors.ErrInternalError.WrapMessage("failed to generate review id")
		}
		review.ID = id
	}

	reviewM := fromPriceReviewDomain(review)
	if err := repo.db.WithContext(ctx).Create(reviewM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required review information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create price review")
	}

	review.CreatedAt = reviewM.CreatedAt

	return nil
}

func fromPriceReviewDomain(data *entity.PriceReview) *model.PriceReviewModel {
	return &model.PriceReviewModel{
		ID:             data.ID,
		DeviceID:       data.DeviceID,
		Kind:           string(data.Kind),
		Storage:        data.Storage,
		Tier:           string(data.Tier),
		IssueID:        data.IssueID,
		Variant:        data.Variant,
		ProposedPrice:  data.ProposedPrice,
		ReferencePrice: data.ReferencePrice,
		Source:         data.Source,
		Reason:         data.Reason,
		CreatedAt:      data.CreatedAt,
	}
}
