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

// addressRepository implements the domain.AddressRepository interface using GORM.
type addressRepository struct {
	db *gorm.DB
}

// NewAddressRepository is the constructor for addressRepository.
func NewAddressRepository(db *gorm.DB) repository.AddressRepository {
	return &addressRepository{db: db}
}

// Create persists a new address.
func (repo *addressRepository) Create(ctx context.Context, address *entity.Address) error {
	addressM := fromAddressDomain(address)

	if err := repo.db.WithContext(ctx).Create(addressM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid user reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required address information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create address")
	}

	// Update the entity with generated values
	address.ID = addressM.ID
	address.CreatedAt = addressM.CreatedAt
	address.UpdatedAt = addressM.UpdatedAt

	return nil
}

// FindByIDForUser retrieves an address only when it belongs to the given user.
func (repo *addressRepository) FindByIDForUser(ctx context.Context, id, userID uuid.UUID) (*entity.Address, error) {
	var addressM model.AddressModel
	if err := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&addressM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to find address for user")
	}

	return toAddressDomain(&addressM), nil
}

// ListByUser returns all addresses of one user, default first then newest first.
func (repo *addressRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error) {
	var addressMs []model.AddressModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("is_default DESC, created_at DESC").
		Find(&addressMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list addresses")
	}

	addresses := make([]*entity.Address, len(addressMs))
	for i := range addressMs {
		addresses[i] = toAddressDomain(&addressMs[i])
	}

	return addresses, nil
}

// Update modifies an existing address.
func (repo *addressRepository) Update(ctx context.Context, address *entity.Address) error {
	addressM := fromAddressDomain(address)

	result := repo.db.WithContext(ctx).Model(&model.AddressModel{}).
		Where("id = ?", address.ID).
		Updates(map[string]any{
			"name":           addressM.Name,
			"phone":          addressM.Phone,
			"province":       addressM.Province,
			"city":           addressM.City,
			"district":       addressM.District,
			"detail_address": addressM.DetailAddress,
			"is_default":     addressM.IsDefault,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update address")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAddressNotFound
	}

	return nil
}

// Delete removes an address permanently.
func (repo *addressRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.AddressModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete address")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAddressNotFound
	}

	return nil
}

// ClearDefault unsets the default flag on every address of the user.
func (repo *addressRepository) ClearDefault(ctx context.Context, userID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).Model(&model.AddressModel{}).
		Where("user_id = ?", userID).
		Update("is_default", false).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear default addresses")
	}

	return nil
}

// toAddressDomain maps the persistence model to the pure domain entity.
func toAddressDomain(m *model.AddressModel) *entity.Address {
	return &entity.Address{
		ID:            m.ID,
		UserID:        m.UserID,
		Name:          m.Name,
		Phone:         m.Phone,
		Province:      m.Province,
		City:          m.City,
		District:      m.District,
		DetailAddress: m.DetailAddress,
		IsDefault:     m.IsDefault,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// fromAddressDomain maps the domain entity to the persistence model.
func fromAddressDomain(a *entity.Address) *model.AddressModel {
	return &model.AddressModel{
		ID:            a.ID,
		UserID:        a.UserID,
		Name:          a.Name,
		Phone:         a.Phone,
		Province:      a.Province,
		City:          a.City,
		District:      a.District,
		DetailAddress: a.DetailAddress,
		IsDefault:     a.IsDefault,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}
