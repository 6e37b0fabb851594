package repository

import (
	"context"
	"errors"

	"mealkit/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrDietProfileNotFound is a domain-specific error returned when a user has no diet profile.
var ErrDietProfileNotFound = errors.New("diet profile not found")

// DietProfileRepository defines the standard operations for diet profile persistence.
// Each user owns at most one profile.
type DietProfileRepository interface {
	// FindByUser retrieves the profile of one user.
	FindByUser(ctx context.Context, userID uuid.UUID) (*entity.DietProfile, error)

	// Create persists a new profile.
	Create(ctx context.Context, profile *entity.DietProfile) error

	// Update modifies the existing profile of the user.
	Update(ctx context.Context, profile *entity.DietProfile) error

	// Delete removes the user's profile. Deleting a missing profile is a no-op.
	Delete(ctx context.Context, userID uuid.UUID) error
}
