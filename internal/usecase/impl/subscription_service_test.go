package impl

import (
	"context"
	"regexp"
	"testing"
	"time"

	"mealkit/internal/domain/entity"
	domainerrors "mealkit/internal/domain/errors"
	"mealkit/internal/domain/repository"
	"mealkit/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newSubscriptionServiceFixture() (usecase.SubscriptionUsecase, *mockSubscriptionRepository, *mockFoodPackageRepository) {
	subRepo := &mockSubscriptionRepository{}
	packageRepo := &mockFoodPackageRepository{}
	service := NewSubscriptionService(SubscriptionServiceParams{
		SubscriptionRepo: subRepo,
		PackageRepo:      packageRepo,
		Logger:           newDiscardLogger(),
	})

	return service, subRepo, packageRepo
}

func TestSubscriptionService_CreateSubscription_Success(t *testing.T) {
	service, subRepo, packageRepo := newSubscriptionServiceFixture()
	ctx := context.Background()
	userID := uuid.New()
	pkg := &entity.FoodPackage{
		ID:     uuid.New(),
		Name:   "川味快手餐",
		Price:  89,
		Status: entity.PackageActive,
	}
	startDate := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	packageRepo.On("FindByID", ctx, pkg.ID).Return(pkg, nil)
	subRepo.On("Create", ctx, mock.AnythingOfType("*entity.Subscription")).Return(nil)

	sub, err := service.CreateSubscription(ctx, userID, usecase.CreateSubscriptionInput{
		PackageID:      pkg.ID,
		Frequency:      "monthly",
		Quantity:       2,
		DurationMonths: 3,
		StartDate:      startDate,
	})
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^SUB\d{16}$`), sub.ID)
	assert.Equal(t, entity.SubscriptionActive, sub.Status)
	assert.Equal(t, float64(534), sub.TotalAmount)
	assert.Equal(t, time.Date(2024, 4, 15, 0, 0, 0, 0, time.UTC), sub.EndDate)
	assert.Equal(t, time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC), sub.NextDeliveryDate)
}

func TestSubscriptionService_CreateSubscription_WeeklyNextDelivery(t *testing.T) {
	service, subRepo, packageRepo := newSubscriptionServiceFixture()
	ctx := context.Background()
	pkg := &entity.FoodPackage{ID: uuid.New(), Price: 89, Status: entity.PackageActive}
	startDate := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	packageRepo.On("FindByID", ctx, pkg.ID).Return(pkg, nil)
	subRepo.On("Create", ctx, mock.AnythingOfType("*entity.Subscription")).Return(nil)

	sub, err := service.CreateSubscription(ctx, uuid.New(), usecase.CreateSubscriptionInput{
		PackageID:      pkg.ID,
		Frequency:      "weekly",
		Quantity:       1,
		DurationMonths: 1,
		StartDate:      startDate,
	})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 22, 0, 0, 0, 0, time.UTC), sub.NextDeliveryDate)
}

func TestSubscriptionService_CreateSubscription_InvalidFrequency(t *testing.T) {
	service, subRepo, _ := newSubscriptionServiceFixture()
	ctx := context.Background()

	_, err := service.CreateSubscription(ctx, uuid.New(), usecase.CreateSubscriptionInput{
		PackageID:      uuid.New(),
		Frequency:      "daily",
		Quantity:       1,
		DurationMonths: 1,
	})
	require.Error(t, err)
	subRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSubscriptionService_CreateSubscription_InactivePackage(t *testing.T) {
	service, _, packageRepo := newSubscriptionServiceFixture()
	ctx := context.Background()
	pkg := &entity.FoodPackage{ID: uuid.New(), Price: 89, Status: entity.PackageInactive}

	packageRepo.On("FindByID", ctx, pkg.ID).Return(pkg, nil)

	_, err := service.CreateSubscription(ctx, uuid.New(), usecase.CreateSubscriptionInput{
		PackageID:      pkg.ID,
		Frequency:      "weekly",
		Quantity:       1,
		DurationMonths: 1,
	})
	assert.ErrorIs(t, err, domainerrors.ErrPackageInactive)
}

func TestSubscriptionService_PauseResumeCycle(t *testing.T) {
	service, subRepo, _ := newSubscriptionServiceFixture()
	ctx := context.Background()
	userID := uuid.New()
	nextDelivery := time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)
	sub := &entity.Subscription{
		ID:               "SUB1700000000000042",
		UserID:           userID,
		Status:           entity.SubscriptionActive,
		NextDeliveryDate: nextDelivery,
	}

	subRepo.On("FindByIDForUser", ctx, sub.ID, userID).Return(sub, nil)
	subRepo.On("Update", ctx, mock.AnythingOfType("*entity.Subscription")).Return(nil)

	paused, err := service.PauseSubscription(ctx, userID, sub.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.SubscriptionPaused, paused.Status)

	resumed, err := service.ResumeSubscription(ctx, userID, sub.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.SubscriptionActive, resumed.Status)
	// Resume keeps the delivery schedule that was in place before the pause.
	assert.Equal(t, nextDelivery, resumed.NextDeliveryDate)
}

func TestSubscriptionService_PausePausedRejected(t *testing.T) {
	service, subRepo, _ := newSubscriptionServiceFixture()
	ctx := context.Background()
	userID := uuid.New()
	sub := &entity.Subscription{ID: "SUB1700000000000042", UserID: userID, Status: entity.SubscriptionPaused}

	subRepo.On("FindByIDForUser", ctx, sub.ID, userID).Return(sub, nil)

	_, err := service.PauseSubscription(ctx, userID, sub.ID)
	assert.ErrorIs(t, err, domainerrors.ErrSubscriptionNotPausable)
	subRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestSubscriptionService_ResumeActiveRejected(t *testing.T) {
	service, subRepo, _ := newSubscriptionServiceFixture()
	ctx := context.Background()
	userID := uuid.New()
	sub := &entity.Subscription{ID: "SUB1700000000000042", UserID: userID, Status: entity.SubscriptionActive}

	subRepo.On("FindByIDForUser", ctx, sub.ID, userID).Return(sub, nil)

	_, err := service.ResumeSubscription(ctx, userID, sub.ID)
	assert.ErrorIs(t, err, domainerrors.ErrSubscriptionNotResumable)
}

func TestSubscriptionService_CancelCancelledRejected(t *testing.T) {
	service, subRepo, _ := newSubscriptionServiceFixture()
	ctx := context.Background()
	userID := uuid.New()
	sub := &entity.Subscription{ID: "SUB1700000000000042", UserID: userID, Status: entity.SubscriptionCancelled}

	subRepo.On("FindByIDForUser", ctx, sub.ID, userID).Return(sub, nil)

	_, err := service.CancelSubscription(ctx, userID, sub.ID)
	assert.ErrorIs(t, err, domainerrors.ErrSubscriptionNotCancellable)
}

func TestSubscriptionService_CancelPausedAllowed(t *testing.T) {
	service, subRepo, _ := newSubscriptionServiceFixture()
	ctx := context.Background()
	userID := uuid.New()
	sub := &entity.Subscription{ID: "SUB1700000000000042", UserID: userID, Status: entity.SubscriptionPaused}

	subRepo.On("FindByIDForUser", ctx, sub.ID, userID).Return(sub, nil)
	subRepo.On("Update", ctx, mock.AnythingOfType("*entity.Subscription")).Return(nil)

	cancelled, err := service.CancelSubscription(ctx, userID, sub.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.SubscriptionCancelled, cancelled.Status)
}

func TestSubscriptionService_GetSubscription_NotFound(t *testing.T) {
	service, subRepo, _ := newSubscriptionServiceFixture()
	ctx := context.Background()
	userID := uuid.New()

	subRepo.On("FindByIDForUser", ctx, "SUB0000000000000000", userID).
		Return(nil, repository.ErrSubscriptionNotFound)

	_, err := service.GetSubscription(ctx, userID, "SUB0000000000000000")
	assert.ErrorIs(t, err, domainerrors.ErrSubscriptionNotFound)
}
