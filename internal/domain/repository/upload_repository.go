package repository

import (
	"context"
	"errors"

	"mealkit/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUploadNotFound is a domain-specific error returned when an upload record is not found.
var ErrUploadNotFound = errors.New("upload not found")

// UploadRepository defines the standard operations for upload record persistence.
type UploadRepository interface {
	// Create persists a new upload record.
	Create(ctx context.Context, upload *entity.Upload) error

	// FindByIDForUser retrieves an upload record only when it belongs to the given user.
	FindByIDForUser(ctx context.Context, id int64, userID uuid.UUID) (*entity.Upload, error)

	// ListByUser returns the upload records of one user plus the total count,
	// newest first.
	ListByUser(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]*entity.Upload, int64, error)

	// Delete removes an upload record permanently.
	Delete(ctx context.Context, id int64) error
}
