package model

import (
	"time"

	"github.com/google/uuid"
)

// SubscriptionModel is the GORM-specific struct for the 'subscriptions' table.
// The primary key is an application-generated prefixed identifier, not a UUID.
type SubscriptionModel struct {
	ID               string    `gorm:"type:varchar(32);primary_key"`
	UserID           uuid.UUID `gorm:"type:uuid;not null;index"`
	PackageID        uuid.UUID `gorm:"type:uuid;not null;index"`
	PackageName      string    `gorm:"type:varchar(255);not null"`
	PackageImage     string    `gorm:"type:text"`
	Frequency        string    `gorm:"type:varchar(20);not null"`
	Quantity         int       `gorm:"not null"`
	TotalAmount      float64   `gorm:"type:decimal(10,2);not null"`
	DurationMonths   int       `gorm:"not null"`
	StartDate        time.Time `gorm:"not null"`
	EndDate          time.Time `gorm:"not null"`
	NextDeliveryDate time.Time `gorm:"not null"`
	DeliveryAddress  []byte    `gorm:"type:jsonb"`
	ContactName      string    `gorm:"type:varchar(100)"`
	ContactPhone     string    `gorm:"type:varchar(30)"`
	Status           string    `gorm:"type:varchar(20);not null;default:'active';index"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (SubscriptionModel) TableName() string {
	return "subscriptions"
}
