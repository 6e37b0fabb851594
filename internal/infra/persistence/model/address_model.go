package model

import (
	"time"

	"github.com/google/uuid"
)

// AddressModel is the GORM-specific struct for the 'addresses' table.
type AddressModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index"`
	Name          string    `gorm:"type:varchar(100);not null"`
	Phone         string    `gorm:"type:varchar(30);not null"`
	Province      string    `gorm:"type:varchar(100)"`
	City          string    `gorm:"type:varchar(100)"`
	District      string    `gorm:"type:varchar(100)"`
	DetailAddress string    `gorm:"type:text;not null"`
	IsDefault     bool      `gorm:"not null;default:false"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (AddressModel) TableName() string {
	return "addresses"
}
