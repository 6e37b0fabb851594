// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Upload records one stored image file.
type Upload struct {
	ID           int64     `json:"id"`           // Auto-increment identifier.
	Filename     string    `json:"filename"`     // Server-generated filename.
	OriginalName string    `json:"originalName"` // Client-supplied filename, kept for display only.
	MimeType     string    `json:"mimeType"`     // One of the allowed image types.
	Size         int64     `json:"size"`         // Bytes.
	Key          string    `json:"key"`          // Date-partitioned blob key, e.g. 2024-01-15/1705300000000-123.png.
	URL          string    `json:"url"`          // Public URL serving the blob.
	UploadedBy   uuid.UUID `json:"uploadedBy"`   // The uploading user.
	CreatedAt    time.Time `json:"createdAt"`    // Timestamp of the upload.
}
