package postgres

import (
	"context"

	"mealkit/internal/domain/entity"
	domainerrors "mealkit/internal/domain/errors"
	"mealkit/internal/domain/repository"
	"mealkit/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// uploadRepository implements the domain.UploadRepository interface using GORM.
type uploadRepository struct {
	db *gorm.DB
}

// NewUploadRepository is the constructor for uploadRepository.
func NewUploadRepository(db *gorm.DB) repository.UploadRepository {
	return &uploadRepository{db: db}
}

// Create persists a new upload record.
func (repo *uploadRepository) Create(ctx context.Context, upload *entity.Upload) error {
	uploadM := fromUploadDomain(upload)

	if err := repo.db.WithContext(ctx).Create(uploadM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create upload record")
	}

	upload.ID = uploadM.ID
	upload.CreatedAt = uploadM.CreatedAt

	return nil
}

// FindByIDForUser retrieves an upload record only when it belongs to the given user.
func (repo *uploadRepository) FindByIDForUser(ctx context.Context, id int64, userID uuid.UUID) (*entity.Upload, error) {
	var uploadM model.UploadModel
	if err := repo.db.WithContext(ctx).
		Where("id = ? AND uploaded_by = ?", id, userID).
		First(&uploadM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUploadNotFound
		}

		return nil, errors.Wrap(err, "failed to find upload for user")
	}

	return toUploadDomain(&uploadM), nil
}

// ListByUser returns the upload records of one user plus the total count, newest first.
func (repo *uploadRepository) ListByUser(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]*entity.Upload, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.UploadModel{}).
		Where("uploaded_by = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count uploads")
	}

	var uploadMs []model.UploadModel
	if err := query.Order("created_at DESC").
		Scopes(paginate(page, pageSize)).
		Find(&uploadMs).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list uploads")
	}

	uploads := make([]*entity.Upload, len(uploadMs))
	for i := range uploadMs {
		uploads[i] = toUploadDomain(&uploadMs[i])
	}

	return uploads, total, nil
}

// Delete removes an upload record permanently.
func (repo *uploadRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.UploadModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete upload record")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUploadNotFound
	}

	return nil
}

// toUploadDomain maps the persistence model to the pure domain entity.
func toUploadDomain(m *model.UploadModel) *entity.Upload {
	return &entity.Upload{
		ID:           m.ID,
		Filename:     m.Filename,
		OriginalName: m.OriginalName,
		MimeType:     m.MimeType,
		Size:         m.Size,
		Key:          m.Key,
		URL:          m.URL,
		UploadedBy:   m.UploadedBy,
		CreatedAt:    m.CreatedAt,
	}
}

// fromUploadDomain maps the domain entity to the persistence model.
func fromUploadDomain(u *entity.Upload) *model.UploadModel {
	return &model.UploadModel{
		ID:           u.ID,
		Filename:     u.Filename,
		OriginalName: u.OriginalName,
		MimeType:     u.MimeType,
		Size:         u.Size,
		Key:          u.Key,
		URL:          u.URL,
		UploadedBy:   u.UploadedBy,
		CreatedAt:    u.CreatedAt,
	}
}
