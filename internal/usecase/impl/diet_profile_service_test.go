package impl

import (
	"context"
	"testing"

	"mealkit/internal/domain/entity"
	domainerrors "mealkit/internal/domain/errors"
	"mealkit/internal/domain/repository"
	"mealkit/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDietProfileServiceFixture() (usecase.DietProfileUsecase, *mockDietProfileRepository) {
	profileRepo := &mockDietProfileRepository{}
	service := NewDietProfileService(DietProfileServiceParams{
		ProfileRepo: profileRepo,
		Logger:      newDiscardLogger(),
	})

	return service, profileRepo
}

func TestDietProfileService_Get_NotFound(t *testing.T) {
	service, profileRepo := newDietProfileServiceFixture()
	ctx := context.Background()
	userID := uuid.New()

	profileRepo.On("FindByUser", ctx, userID).Return(nil, repository.ErrDietProfileNotFound)

	_, err := service.GetDietProfile(ctx, userID)
	assert.ErrorIs(t, err, domainerrors.ErrDietProfileNotFound)
}

func TestDietProfileService_Save_CreatesOnFirstWrite(t *testing.T) {
	service, profileRepo := newDietProfileServiceFixture()
	ctx := context.Background()
	userID := uuid.New()

	profileRepo.On("FindByUser", ctx, userID).Return(nil, repository.ErrDietProfileNotFound)
	profileRepo.On("Create", ctx, mock.AnythingOfType("*entity.DietProfile")).Return(nil)

	profile, err := service.SaveDietProfile(ctx, userID, usecase.DietProfileInput{
		Age:           30,
		Gender:        "female",
		Height:        165,
		Weight:        55,
		ActivityLevel: "moderate",
		HealthGoals:   []string{"muscle_gain"},
		CalorieTarget: 2000,
	})
	require.NoError(t, err)
	assert.Equal(t, userID, profile.UserID)
	assert.Equal(t, 30, profile.Age)
	assert.Equal(t, []string{"muscle_gain"}, profile.HealthGoals)
	profileRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestDietProfileService_Save_UpdatesExisting(t *testing.T) {
	service, profileRepo := newDietProfileServiceFixture()
	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.DietProfile{ID: 7, UserID: userID, Age: 29, CalorieTarget: 1800}

	profileRepo.On("FindByUser", ctx, userID).Return(existing, nil)
	profileRepo.On("Update", ctx, mock.AnythingOfType("*entity.DietProfile")).Return(nil)

	profile, err := service.SaveDietProfile(ctx, userID, usecase.DietProfileInput{
		Age:           30,
		CalorieTarget: 2200,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), profile.ID)
	assert.Equal(t, 30, profile.Age)
	assert.Equal(t, 2200, profile.CalorieTarget)
	profileRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestDietProfileService_Delete_Idempotent(t *testing.T) {
	service, profileRepo := newDietProfileServiceFixture()
	ctx := context.Background()
	userID := uuid.New()

	// The repository does not distinguish a missing profile; delete just succeeds.
	profileRepo.On("Delete", ctx, userID).Return(nil)

	require.NoError(t, service.DeleteDietProfile(ctx, userID))
	profileRepo.AssertExpectations(t)
}
