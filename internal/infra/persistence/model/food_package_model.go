package model

import (
	"time"

	"github.com/google/uuid"
)

// FoodPackageModel is the GORM-specific struct for the 'food_packages' table.
// Tags, Ingredients, Recipes, Seasonings and Nutrition are jsonb columns stored
// as raw bytes; decoding to typed values happens in the repository mappers.
type FoodPackageModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name          string    `gorm:"type:varchar(255);not null"`
	Description   string    `gorm:"type:text"`
	Level         string    `gorm:"type:varchar(20);not null;index"`
	Price         float64   `gorm:"type:decimal(10,2);not null"`
	OriginalPrice float64   `gorm:"type:decimal(10,2)"`
	Image         string    `gorm:"type:text"`
	Tags          []byte    `gorm:"type:jsonb"`
	Ingredients   []byte    `gorm:"type:jsonb"`
	Recipes       []byte    `gorm:"type:jsonb"`
	Seasonings    []byte    `gorm:"type:jsonb"`
	Nutrition     []byte    `gorm:"type:jsonb"`
	StockQuantity int       `gorm:"not null;default:0"`
	Status        string    `gorm:"type:varchar(20);not null;default:'active';index"`
	MerchantID    uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (FoodPackageModel) TableName() string {
	return "food_packages"
}
