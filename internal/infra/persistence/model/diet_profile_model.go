package model

import (
	"time"

	"github.com/google/uuid"
)

// DietProfileModel is the GORM-specific struct for the 'diet_profiles' table.
// List-valued preference fields are jsonb columns stored as raw bytes.
type DietProfileModel struct {
	ID                  int64     `gorm:"primary_key;autoIncrement"`
	UserID              uuid.UUID `gorm:"type:uuid;not null;unique"`
	Age                 int
	Gender              string  `gorm:"type:varchar(20)"`
	Height              float64 `gorm:"type:decimal(5,2)"`
	Weight              float64 `gorm:"type:decimal(5,2)"`
	ActivityLevel       string  `gorm:"type:varchar(30)"`
	HealthGoals         []byte  `gorm:"type:jsonb"`
	DietaryRestrictions []byte  `gorm:"type:jsonb"`
	PreferredCuisines   []byte  `gorm:"type:jsonb"`
	Allergies           string  `gorm:"type:text"`
	CalorieTarget       int
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (DietProfileModel) TableName() string {
	return "diet_profiles"
}
