package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"path"
	"strings"
	"time"

	"mealkit/config"
	deliverycontext "mealkit/internal/delivery/context"
	"mealkit/internal/domain/entity"
	domainerrors "mealkit/internal/domain/errors"
	"mealkit/internal/domain/repository"
	"mealkit/internal/domain/service"
	"mealkit/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// allowedImageTypes maps accepted MIME types to the extension the stored key uses.
var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// uploadService implements the UploadUsecase interface.
type uploadService struct {
	uploadRepo repository.UploadRepository
	fileStore  service.FileStore
	maxBytes   int64
	logger     *slog.Logger
}

// UploadServiceParams holds dependencies for UploadService, injected by Fx.
type UploadServiceParams struct {
	fx.In

	UploadRepo repository.UploadRepository
	FileStore  service.FileStore
	Config     *config.Config
	Logger     *slog.Logger
}

// NewUploadService is the constructor for uploadService.
func NewUploadService(params UploadServiceParams) usecase.UploadUsecase {
	return &uploadService{
		uploadRepo: params.UploadRepo,
		fileStore:  params.FileStore,
		maxBytes:   params.Config.Upload.MaxBytes,
		logger:     params.Logger,
	}
}

func (srv *uploadService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// UploadImage validates, stores and records one image file.
func (srv *uploadService) UploadImage(ctx context.Context, userID uuid.UUID, input usecase.UploadFileInput) (*entity.Upload, error) {
	if input.Content == nil || input.Size == 0 {
		return nil, domainerrors.ErrFileRequired
	}
	ext, ok := allowedImageTypes[strings.ToLower(input.MimeType)]
	if !ok {
		return nil, domainerrors.ErrFileTypeNotAllowed
	}
	if input.Size > srv.maxBytes {
		return nil, domainerrors.ErrFileTooLarge
	}

	now := time.Now()
	filename := fmt.Sprintf("%d-%03d%s", now.UnixMilli(), rand.IntN(1000), ext)
	key := path.Join(now.Format("2006-01-02"), filename)

	url, err := srv.fileStore.Save(ctx, key, input.MimeType, input.Content)
	if err != nil {
		srv.log(ctx).Error("Failed to store uploaded file",
			slog.String("key", key), slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to store uploaded file")
	}

	upload := &entity.Upload{
		Filename:     filename,
		OriginalName: input.OriginalName,
		MimeType:     input.MimeType,
		Size:         input.Size,
		Key:          key,
		URL:          url,
		UploadedBy:   userID,
	}
	if err := srv.uploadRepo.Create(ctx, upload); err != nil {
		// The record is the source of truth; drop the orphaned blob.
		if delErr := srv.fileStore.Delete(ctx, key); delErr != nil {
			srv.log(ctx).Warn("Failed to remove orphaned blob", slog.String("key", key), slog.Any("error", delErr))
		}

		return nil, err
	}

	srv.log(ctx).Info("File uploaded",
		slog.Int64("uploadID", upload.ID), slog.String("key", key), slog.Any("userID", userID))

	return upload, nil
}

// ListUploads returns one page of the user's upload records, newest first.
func (srv *uploadService) ListUploads(ctx context.Context, userID uuid.UUID, page, pageSize int) (*usecase.UploadListOutput, error) {
	items, total, err := srv.uploadRepo.ListByUser(ctx, userID, page, pageSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list uploads")
	}

	return &usecase.UploadListOutput{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// DeleteUpload removes an owned upload record and its blob.
func (srv *uploadService) DeleteUpload(ctx context.Context, userID uuid.UUID, uploadID int64) error {
	upload, err := srv.uploadRepo.FindByIDForUser(ctx, uploadID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUploadNotFound) {
			return domainerrors.ErrUploadNotFound
		}

		return errors.Wrap(err, "failed to find upload")
	}

	if err := srv.fileStore.Delete(ctx, upload.Key); err != nil {
		return errors.Wrap(err, "failed to delete stored file")
	}

	if err := srv.uploadRepo.Delete(ctx, uploadID); err != nil {
		return err
	}

	srv.log(ctx).Info("Upload deleted", slog.Int64("uploadID", uploadID), slog.Any("userID", userID))

	return nil
}
