package usecase

import (
	"context"

	"mealkit/internal/domain/entity"

	"github.com/google/uuid"
)

// DietProfileInput defines the data for saving a user's diet profile.
type DietProfileInput struct {
	Age                 int
	Gender              string
	Height              float64
	Weight              float64
	ActivityLevel       string
	HealthGoals         []string
	DietaryRestrictions []string
	PreferredCuisines   []string
	Allergies           string
	CalorieTarget       int
}

// DietProfileUsecase defines the interface for diet profile operations.
// Save is an upsert: it creates the profile on first write and updates it after.
// Delete is idempotent.
type DietProfileUsecase interface {
	GetDietProfile(ctx context.Context, userID uuid.UUID) (*entity.DietProfile, error)
	SaveDietProfile(ctx context.Context, userID uuid.UUID, input DietProfileInput) (*entity.DietProfile, error)
	DeleteDietProfile(ctx context.Context, userID uuid.UUID) error
}
