package postgres

import (
	"context"

	"mealkit/internal/domain/entity"
	domainerrors "mealkit/internal/domain/errors"
	"mealkit/internal/domain/repository"
	"mealkit/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// inventoryLogRepository implements the domain.InventoryLogRepository interface using GORM.
type inventoryLogRepository struct {
	db *gorm.DB
}

// NewInventoryLogRepository is the constructor for inventoryLogRepository.
func NewInventoryLogRepository(db *gorm.DB) repository.InventoryLogRepository {
	return &inventoryLogRepository{db: db}
}

// Create appends one ledger row.
func (repo *inventoryLogRepository) Create(ctx context.Context, log *entity.InventoryLog) error {
	logM := fromInventoryLogDomain(log)

	if err := repo.db.WithContext(ctx).Create(logM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create inventory log")
	}

	log.ID = logM.ID
	log.CreatedAt = logM.CreatedAt

	return nil
}

// ListByPackage returns the ledger rows of one package plus the total count, newest first.
func (repo *inventoryLogRepository) ListByPackage(ctx context.Context, packageID uuid.UUID, page, pageSize int) ([]*entity.InventoryLog, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.InventoryLogModel{}).
		Where("package_id = ?", packageID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count inventory logs")
	}

	var logMs []model.InventoryLogModel
	if err := query.Order("created_at DESC").
		Scopes(paginate(page, pageSize)).
		Find(&logMs).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list inventory logs")
	}

	logs := make([]*entity.InventoryLog, len(logMs))
	for i := range logMs {
		logs[i] = toInventoryLogDomain(&logMs[i])
	}

	return logs, total, nil
}

// toInventoryLogDomain maps the persistence model to the pure domain entity.
func toInventoryLogDomain(m *model.InventoryLogModel) *entity.InventoryLog {
	return &entity.InventoryLog{
		ID:              m.ID,
		PackageID:       m.PackageID,
		MerchantID:      m.MerchantID,
		ChangeQuantity:  m.ChangeQuantity,
		CurrentQuantity: m.CurrentQuantity,
		Type:            entity.AdjustmentType(m.Type),
		Remark:          m.Remark,
		CreatedAt:       m.CreatedAt,
	}
}

// fromInventoryLogDomain maps the domain entity to the persistence model.
func fromInventoryLogDomain(l *entity.InventoryLog) *model.InventoryLogModel {
	return &model.InventoryLogModel{
		ID:              l.ID,
		PackageID:       l.PackageID,
		MerchantID:      l.MerchantID,
		ChangeQuantity:  l.ChangeQuantity,
		CurrentQuantity: l.CurrentQuantity,
		Type:            string(l.Type),
		Remark:          l.Remark,
		CreatedAt:       l.CreatedAt,
	}
}
