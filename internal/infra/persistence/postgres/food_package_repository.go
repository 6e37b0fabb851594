package postgres

import (
	"context"

	"mealkit/internal/domain/entity"
	domainerrors "mealkit/internal/domain/errors"
	"mealkit/internal/domain/repository"
	"mealkit/internal/infra/persistence/model"
	"mealkit/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const defaultPageSize = 10

// foodPackageRepository implements the domain.FoodPackageRepository interface using GORM.
type foodPackageRepository struct {
	db *gorm.DB
}

// NewFoodPackageRepository is the constructor for foodPackageRepository.
func NewFoodPackageRepository(db *gorm.DB) repository.FoodPackageRepository {
	return &foodPackageRepository{db: db}
}

// Create persists a new food package.
func (repo *foodPackageRepository) Create(ctx context.Context, pkg *entity.FoodPackage) error {
	pkgM := fromFoodPackageDomain(pkg)

	if err := repo.db.WithContext(ctx).Create(pkgM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid merchant reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required package information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create food package")
	}

	// Update the entity with generated values
	pkg.ID = pkgM.ID
	pkg.CreatedAt = pkgM.CreatedAt
	pkg.UpdatedAt = pkgM.UpdatedAt

	return nil
}

// FindByID retrieves a single package by its unique ID.
func (repo *foodPackageRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.FoodPackage, error) {
	var pkgM model.FoodPackageModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&pkgM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPackageNotFound
		}

		return nil, errors.Wrap(err, "failed to find food package by id")
	}

	return toFoodPackageDomain(&pkgM), nil
}

// List returns packages matching the filter plus the total match count.
func (repo *foodPackageRepository) List(ctx context.Context, filter repository.PackageFilter) ([]*entity.FoodPackage, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.FoodPackageModel{})

	if filter.Keyword != "" {
		pattern := "%" + filter.Keyword + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ?", pattern, pattern)
	}
	if filter.Level != "" {
		query = query.Where("level = ?", string(filter.Level))
	}
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	if filter.MerchantID != uuid.Nil {
		query = query.Where("merchant_id = ?", filter.MerchantID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count food packages")
	}

	var pkgMs []model.FoodPackageModel
	if err := query.Order("created_at DESC").
		Scopes(paginate(filter.Page, filter.PageSize)).
		Find(&pkgMs).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list food packages")
	}

	pkgs := make([]*entity.FoodPackage, len(pkgMs))
	for i := range pkgMs {
		pkgs[i] = toFoodPackageDomain(&pkgMs[i])
	}

	return pkgs, total, nil
}

// Update modifies an existing package.
func (repo *foodPackageRepository) Update(ctx context.Context, pkg *entity.FoodPackage) error {
	pkgM := fromFoodPackageDomain(pkg)

	result := repo.db.WithContext(ctx).Model(&model.FoodPackageModel{}).
		Where("id = ?", pkg.ID).
		Updates(map[string]any{
			"name":           pkgM.Name,
			"description":    pkgM.Description,
			"level":          pkgM.Level,
			"price":          pkgM.Price,
			"original_price": pkgM.OriginalPrice,
			"image":          pkgM.Image,
			"tags":           pkgM.Tags,
			"ingredients":    pkgM.Ingredients,
			"recipes":        pkgM.Recipes,
			"seasonings":     pkgM.Seasonings,
			"nutrition":      pkgM.Nutrition,
			"status":         pkgM.Status,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update food package")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPackageNotFound
	}

	return nil
}

// SetStock writes the absolute stock quantity of one package.
func (repo *foodPackageRepository) SetStock(ctx context.Context, id uuid.UUID, quantity int) error {
	result := repo.db.WithContext(ctx).Model(&model.FoodPackageModel{}).
		Where("id = ?", id).
		Update("stock_quantity", quantity)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to set stock quantity")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPackageNotFound
	}

	return nil
}

// Delete removes a package permanently.
func (repo *foodPackageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.FoodPackageModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete food package")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPackageNotFound
	}

	return nil
}

// Count returns the total number of packages.
func (repo *foodPackageRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.FoodPackageModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count food packages")
	}

	return count, nil
}

// CountLowStock returns the number of active packages with stock below the threshold.
func (repo *foodPackageRepository) CountLowStock(ctx context.Context, threshold int) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.FoodPackageModel{}).
		Where("status = ?", string(entity.PackageActive)).
		Where("stock_quantity < ?", threshold).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count low stock packages")
	}

	return count, nil
}

// paginate applies page/pageSize as offset/limit, defaulting sensibly.
// A negative pageSize disables pagination entirely so callers can fetch
// every matching row in one query.
func paginate(page, pageSize int) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if pageSize < 0 {
			return db
		}
		if page <= 0 {
			page = 1
		}
		if pageSize == 0 {
			pageSize = defaultPageSize
		}

		return db.Offset((page - 1) * pageSize).Limit(pageSize)
	}
}

// toFoodPackageDomain maps the persistence model to the pure domain entity.
// Malformed jsonb columns degrade to empty values instead of failing the read.
func toFoodPackageDomain(m *model.FoodPackageModel) *entity.FoodPackage {
	return &entity.FoodPackage{
		ID:            m.ID,
		Name:          m.Name,
		Description:   m.Description,
		Level:         entity.PackageLevel(m.Level),
		Price:         m.Price,
		OriginalPrice: m.OriginalPrice,
		Image:         m.Image,
		Tags:          util.UnmarshalOr(m.Tags, []string{}),
		Ingredients:   util.UnmarshalOr(m.Ingredients, []entity.Ingredient{}),
		Recipes:       util.UnmarshalOr(m.Recipes, []entity.RecipeStep{}),
		Seasonings:    util.UnmarshalOr(m.Seasonings, []entity.Seasoning{}),
		Nutrition:     util.UnmarshalOr(m.Nutrition, entity.NutritionInfo{}),
		StockQuantity: m.StockQuantity,
		Status:        entity.PackageStatus(m.Status),
		MerchantID:    m.MerchantID,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// fromFoodPackageDomain maps the domain entity to the persistence model.
func fromFoodPackageDomain(p *entity.FoodPackage) *model.FoodPackageModel {
	return &model.FoodPackageModel{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		Level:         string(p.Level),
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
		Image:         p.Image,
		Tags:          util.MarshalOrNull(p.Tags),
		Ingredients:   util.MarshalOrNull(p.Ingredients),
		Recipes:       util.MarshalOrNull(p.Recipes),
		Seasonings:    util.MarshalOrNull(p.Seasonings),
		Nutrition:     util.MarshalOrNull(p.Nutrition),
		StockQuantity: p.StockQuantity,
		Status:        string(p.Status),
		MerchantID:    p.MerchantID,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
