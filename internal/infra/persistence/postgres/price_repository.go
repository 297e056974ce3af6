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
	"gorm.io/gorm/clause"
)

// priceRepository implements the repository.PriceRepository interface.
type priceRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewPriceRepository is the constructor for priceRepository.
func NewPriceRepository(db *gorm.DB) repository.PriceRepository {
	return &priceRepository{
		db:  db,
		now: time.Now,
	}
}

// FindDeviceDataset loads everything priced for a device. The reads share one
// REPEATABLE READ snapshot so the dataset is internally consistent.
func (repo *priceRepository) FindDeviceDataset(ctx context.Context, deviceID string) (*entity.DeviceDataset, error) {
	var (
		deviceM  model.DeviceModel
		records  []*model.PriceRecordModel
		anchors  []*model.AnchorModel
		repairs  []*model.RepairPriceModel
		notFound bool
	)

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", deviceID).First(&deviceM).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				notFound = true

				return nil
			}

			return errors.Wrap(err, "failed to find device")
		}

		if err := tx.Where("device_id = ?", deviceID).Find(&records).Error; err != nil {
			return errors.Wrap(err, "failed to find buyback prices")
		}

		if err := tx.Where("device_id = ?", deviceID).Limit(1).Find(&anchors).Error; err != nil {
			return errors.Wrap(err, "failed to find anchor price")
		}

		if err := tx.Where("device_id = ?", deviceID).Find(&repairs).Error; err != nil {
			return errors.Wrap(err, "failed to find repair prices")
		}

		return nil
	}, readOnlySnapshot())
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load device dataset")
	}
	if notFound {
		return nil, repository.ErrDeviceNotFound
	}

	dataset := &entity.DeviceDataset{
		Device:         toDeviceDomain(&deviceM),
		BuybackRecords: make([]entity.PriceRecord, 0, len(records)),
		RepairRecords:  make([]entity.RepairIssuePrice, 0, len(repairs)),
		FetchedAt:      repo.now(),
	}
	for _, rec := range records {
		dataset.BuybackRecords = append(dataset.BuybackRecords, toPriceRecordDomain(rec))
	}
	if len(anchors) > 0 {
		dataset.Anchor = toAnchorDomain(anchors[0])
	}
	for _, rp := range repairs {
		dataset.RepairRecords = append(dataset.RepairRecords, toRepairPriceDomain(rp))
	}

	return dataset, nil
}

// UpsertPriceRecord writes a buyback price keyed by (device, storage, tier).
func (repo *priceRepository) UpsertPriceRecord(ctx context.Context, record *entity.PriceRecord) error {
	recordM := fromPriceRecordDomain(record)
	recordM.UpdatedAt = repo.now()

	if err := repo.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "device_id"}, {Name: "storage"}, {Name: "tier"}},
		DoUpdates: clause.AssignmentColumns([]string{"price", "updated_at"}),
	}).Create(recordM).Error; err != nil {
		return upsertError(err, "failed to upsert buyback price")
	}

	record.UpdatedAt = recordM.UpdatedAt

	return nil
}

// UpsertAnchor writes the anchor record of a device.
func (repo *priceRepository) UpsertAnchor(ctx context.Context, anchor *entity.AnchorRecord) error {
	anchorM := fromAnchorDomain(anchor)
	anchorM.UpdatedAt = repo.now()

	if err := repo.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "device_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"anchor_price", "base_price", "updated_at"}),
	}).Create(anchorM).Error; err != nil {
		return upsertError(err, "failed to upsert anchor price")
	}

	anchor.UpdatedAt = anchorM.UpdatedAt

	return nil
}

// UpsertRepairPrice writes a repair price keyed by (device, issue, variant).
func (repo *priceRepository) UpsertRepairPrice(ctx context.Context, price *entity.RepairIssuePrice) error {
	priceM := fromRepairPriceDomain(price)
	priceM.UpdatedAt = repo.now()

	if err := repo.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "device_id"}, {Name: "issue_id"}, {Name: "variant"}},
		DoUpdates: clause.AssignmentColumns([]string{"price", "updated_at"}),
	}).Create(priceM).Error; err != nil {
		return upsertError(err, "failed to upsert repair price")
	}

	price.UpdatedAt = priceM.UpdatedAt

	return nil
}

func upsertError(err error, details string) error {
	if isForeignKeyConstraintViolation(err) {
		return repository.ErrDeviceNotFound
	}
	if isCheckConstraintViolation(err) || isNotNullConstraintViolation(err) {
		return domainerrors.ErrValidationFailed.WrapMessage(details)
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}

// --- Mapper Functions ---

func toPriceRecordDomain(data *model.PriceRecordModel) entity.PriceRecord {
	return entity.PriceRecord{
		DeviceID:  data.DeviceID,
		Storage:   data.Storage,
		Tier:      entity.ConditionTier(data.Tier),
		Price:     data.Price,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromPriceRecordDomain(data *entity.PriceRecord) *model.PriceRecordModel {
	return &model.PriceRecordModel{
		DeviceID:  data.DeviceID,
		Storage:   entity.NormalizeStorage(data.Storage),
		Tier:      string(data.Tier),
		Price:     data.Price,
		UpdatedAt: data.UpdatedAt,
	}
}

func toAnchorDomain(data *model.AnchorModel) *entity.AnchorRecord {
	return &entity.AnchorRecord{
		DeviceID:    data.DeviceID,
		AnchorPrice: data.AnchorPrice,
		BasePrice:   data.BasePrice,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromAnchorDomain(data *entity.AnchorRecord) *model.AnchorModel {
	return &model.AnchorModel{
		DeviceID:    data.DeviceID,
		AnchorPrice: data.AnchorPrice,
		BasePrice:   data.BasePrice,
		UpdatedAt:   data.UpdatedAt,
	}
}

func toRepairPriceDomain(data *model.RepairPriceModel) entity.RepairIssuePrice {
	return entity.RepairIssuePrice{
		DeviceID:  data.DeviceID,
		IssueID:   data.IssueID,
		Variant:   data.Variant,
		Price:     data.Price,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromRepairPriceDomain(data *entity.RepairIssuePrice) *model.RepairPriceModel {
	return &model.RepairPriceModel{
		DeviceID:  data.DeviceID,
		IssueID:   data.IssueID,
		Variant:   data.Variant,
		Price:     data.Price,
		UpdatedAt: data.UpdatedAt,
	}
}
