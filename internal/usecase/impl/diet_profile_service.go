package impl

import (
	"context"
	"log/slog"

	deliverycontext "mealkit/internal/delivery/context"
	"mealkit/internal/domain/entity"
	domainerrors "mealkit/internal/domain/errors"
	"mealkit/internal/domain/repository"
	"mealkit/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// dietProfileService implements the DietProfileUsecase interface.
type dietProfileService struct {
	profileRepo repository.DietProfileRepository
	logger      *slog.Logger
}

// DietProfileServiceParams holds dependencies for DietProfileService, injected by Fx.
type DietProfileServiceParams struct {
	fx.In

	ProfileRepo repository.DietProfileRepository
	Logger      *slog.Logger
}

// NewDietProfileService is the constructor for dietProfileService.
func NewDietProfileService(params DietProfileServiceParams) usecase.DietProfileUsecase {
	return &dietProfileService{
		profileRepo: params.ProfileRepo,
		logger:      params.Logger,
	}
}

func (srv *dietProfileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetDietProfile returns the user's diet profile.
func (srv *dietProfileService) GetDietProfile(ctx context.Context, userID uuid.UUID) (*entity.DietProfile, error) {
	profile, err := srv.profileRepo.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrDietProfileNotFound) {
			return nil, domainerrors.ErrDietProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find diet profile")
	}

	return profile, nil
}

// SaveDietProfile upserts the user's diet profile. The first save creates
// the row; every later save rewrites it in full.
func (srv *dietProfileService) SaveDietProfile(ctx context.Context, userID uuid.UUID, input usecase.DietProfileInput) (*entity.DietProfile, error) {
	profile, err := srv.profileRepo.FindByUser(ctx, userID)
	if err != nil && !errors.Is(err, repository.ErrDietProfileNotFound) {
		return nil, errors.Wrap(err, "failed to find diet profile")
	}

	isNew := profile == nil
	if isNew {
		profile = &entity.DietProfile{UserID: userID}
	}

	profile.Age = input.Age
	profile.Gender = input.Gender
	profile.Height = input.Height
	profile.Weight = input.Weight
	profile.ActivityLevel = input.ActivityLevel
	profile.HealthGoals = input.HealthGoals
	profile.DietaryRestrictions = input.DietaryRestrictions
	profile.PreferredCuisines = input.PreferredCuisines
	profile.Allergies = input.Allergies
	profile.CalorieTarget = input.CalorieTarget

	if isNew {
		err = srv.profileRepo.Create(ctx, profile)
	} else {
		err = srv.profileRepo.Update(ctx, profile)
	}
	if err != nil {
		srv.log(ctx).Error("Failed to save diet profile", slog.Any("userID", userID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Diet profile saved", slog.Any("userID", userID), slog.Bool("created", isNew))

	return profile, nil
}

// DeleteDietProfile removes the user's profile. Deleting a missing profile succeeds.
func (srv *dietProfileService) DeleteDietProfile(ctx context.Context, userID uuid.UUID) error {
	if err := srv.profileRepo.Delete(ctx, userID); err != nil {
		srv.log(ctx).Error("Failed to delete diet profile", slog.Any("userID", userID), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete diet profile")
	}

	return nil
}
