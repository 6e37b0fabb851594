package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel is the GORM-specific struct for the 'orders' table.
// The primary key is an application-generated prefixed identifier, not a UUID.
type OrderModel struct {
	ID              string    `gorm:"type:varchar(32);primary_key"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;index"`
	PackageID       uuid.UUID `gorm:"type:uuid;not null;index"`
	PackageName     string    `gorm:"type:varchar(255);not null"`
	PackageImage    string    `gorm:"type:text"`
	Quantity        int       `gorm:"not null"`
	TotalAmount     float64   `gorm:"type:decimal(10,2);not null"`
	Status          string    `gorm:"type:varchar(30);not null;default:'pending_payment';index"`
	DeliveryAddress []byte    `gorm:"type:jsonb"`
	ContactName     string    `gorm:"type:varchar(100)"`
	ContactPhone    string    `gorm:"type:varchar(30)"`
	PaymentMethod   string    `gorm:"type:varchar(30)"`
	PaymentTime     *time.Time
	Remark          string `gorm:"type:text"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// PaymentModel is the GORM-specific struct for the 'payments' table.
type PaymentModel struct {
	ID            int64     `gorm:"primary_key;autoIncrement"`
	OrderID       string    `gorm:"type:varchar(32);not null;index"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index"`
	Amount        float64   `gorm:"type:decimal(10,2);not null"`
	PaymentMethod string    `gorm:"type:varchar(30);not null"`
	TransactionID string    `gorm:"type:varchar(32);not null;unique"`
	Status        string    `gorm:"type:varchar(20);not null"`
	PaidAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (PaymentModel) TableName() string {
	return "payments"
}
