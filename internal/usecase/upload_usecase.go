package usecase

import (
	"context"
	"io"

	"mealkit/internal/domain/entity"

	"github.com/google/uuid"
)

// UploadFileInput carries one incoming file.
type UploadFileInput struct {
	OriginalName string
	MimeType     string
	Size         int64
	Content      io.Reader
}

// UploadListOutput returns one page of the user's upload records.
type UploadListOutput struct {
	Items    []*entity.Upload
	Total    int64
	Page     int
	PageSize int
}

// UploadUsecase defines the interface for image upload operations.
type UploadUsecase interface {
	UploadImage(ctx context.Context, userID uuid.UUID, input UploadFileInput) (*entity.Upload, error)
	ListUploads(ctx context.Context, userID uuid.UUID, page, pageSize int) (*UploadListOutput, error)
	DeleteUpload(ctx context.Context, userID uuid.UUID, uploadID int64) error
}
