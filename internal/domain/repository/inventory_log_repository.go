package repository

import (
	"context"

	"mealkit/internal/domain/entity"

	"github.com/google/uuid"
)

// InventoryLogRepository defines the operations for the append-only stock ledger.
// There is no update or delete; the ledger is immutable history.
type InventoryLogRepository interface {
	// Create appends one ledger row.
	Create(ctx context.Context, log *entity.InventoryLog) error

	// ListByPackage returns the ledger rows of one package plus the total count,
	// newest first.
	ListByPackage(ctx context.Context, packageID uuid.UUID, page, pageSize int) ([]*entity.InventoryLog, int64, error)
}
