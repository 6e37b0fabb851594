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

// dietProfileRepository implements the domain.DietProfileRepository interface using GORM.
type dietProfileRepository struct {
	db *gorm.DB
}

// NewDietProfileRepository is the constructor for dietProfileRepository.
func NewDietProfileRepository(db *gorm.DB) repository.DietProfileRepository {
	return &dietProfileRepository{db: db}
}

// FindByUser retrieves the profile of one user.
func (repo *dietProfileRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*entity.DietProfile, error) {
	var profileM model.DietProfileModel
	if err := repo.db.WithContext(ctx).Where("user_id = ?", userID).First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDietProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find diet profile")
	}

	return toDietProfileDomain(&profileM), nil
}

// Create persists a new profile.
func (repo *dietProfileRepository) Create(ctx context.Context, profile *entity.DietProfile) error {
	profileM := fromDietProfileDomain(profile)

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "diet profile already exists for user")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create diet profile")
	}

	profile.ID = profileM.ID
	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// Update modifies the existing profile of the user.
func (repo *dietProfileRepository) Update(ctx context.Context, profile *entity.DietProfile) error {
	profileM := fromDietProfileDomain(profile)

	result := repo.db.WithContext(ctx).Model(&model.DietProfileModel{}).
		Where("user_id = ?", profile.UserID).
		Updates(map[string]any{
			"age":                  profileM.Age,
			"gender":               profileM.Gender,
			"height":               profileM.Height,
			"weight":               profileM.Weight,
			"activity_level":       profileM.ActivityLevel,
			"health_goals":         profileM.HealthGoals,
			"dietary_restrictions": profileM.DietaryRestrictions,
			"preferred_cuisines":   profileM.PreferredCuisines,
			"allergies":            profileM.Allergies,
			"calorie_target":       profileM.CalorieTarget,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update diet profile")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDietProfileNotFound
	}

	return nil
}

// Delete removes the user's profile. Deleting a missing profile is a no-op.
func (repo *dietProfileRepository) Delete(ctx context.Context, userID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.DietProfileModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete diet profile")
	}

	return nil
}

// toDietProfileDomain maps the persistence model to the pure domain entity.
// Malformed jsonb columns degrade to empty lists instead of failing the read.
func toDietProfileDomain(m *model.DietProfileModel) *entity.DietProfile {
	return &entity.DietProfile{
		ID:                  m.ID,
		UserID:              m.UserID,
		Age:                 m.Age,
		Gender:              m.Gender,
		Height:              m.Height,
		Weight:              m.Weight,
		ActivityLevel:       m.ActivityLevel,
		HealthGoals:         util.UnmarshalOr(m.HealthGoals, []string{}),
		DietaryRestrictions: util.UnmarshalOr(m.DietaryRestrictions, []string{}),
		PreferredCuisines:   util.UnmarshalOr(m.PreferredCuisines, []string{}),
		Allergies:           m.Allergies,
		CalorieTarget:       m.CalorieTarget,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}

// fromDietProfileDomain maps the domain entity to the persistence model.
func fromDietProfileDomain(p *entity.DietProfile) *model.DietProfileModel {
	return &model.DietProfileModel{
		ID:                  p.ID,
		UserID:              p.UserID,
		Age:                 p.Age,
		Gender:              p.Gender,
		Height:              p.Height,
		Weight:              p.Weight,
		ActivityLevel:       p.ActivityLevel,
		HealthGoals:         util.MarshalOrNull(p.HealthGoals),
		DietaryRestrictions: util.MarshalOrNull(p.DietaryRestrictions),
		PreferredCuisines:   util.MarshalOrNull(p.PreferredCuisines),
		Allergies:           p.Allergies,
		CalorieTarget:       p.CalorieTarget,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
}
