package model

import (
	"time"

	"github.com/google/uuid"
)

// InventoryLogModel is the GORM-specific struct for the 'inventory_logs' table.
// Rows are append-only; there are no update or delete paths.
type InventoryLogModel struct {
	ID              int64     `gorm:"primary_key;autoIncrement"`
	PackageID       uuid.UUID `gorm:"type:uuid;not null;index"`
	MerchantID      uuid.UUID `gorm:"type:uuid;not null;index"`
	ChangeQuantity  int       `gorm:"not null"`
	CurrentQuantity int       `gorm:"not null"`
	Type            string    `gorm:"type:varchar(20);not null"`
	Remark          string    `gorm:"type:text"`
	CreatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (InventoryLogModel) TableName() string {
	return "inventory_logs"
}
