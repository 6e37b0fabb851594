package model

import (
	"time"

	"github.com/google/uuid"
)

// UploadModel is the GORM-specific struct for the 'uploads' table.
type UploadModel struct {
	ID           int64     `gorm:"primary_key;autoIncrement"`
	Filename     string    `gorm:"type:varchar(255);not null"`
	OriginalName string    `gorm:"type:varchar(255)"`
	MimeType     string    `gorm:"type:varchar(100);not null"`
	Size         int64     `gorm:"not null"`
	Key          string    `gorm:"type:varchar(512);not null"`
	URL          string    `gorm:"type:text;not null"`
	UploadedBy   uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UploadModel) TableName() string {
	return "uploads"
}
