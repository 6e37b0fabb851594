package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "mealkit/internal/delivery/context"
	"mealkit/internal/domain/entity"
	domainerrors "mealkit/internal/domain/errors"
	"mealkit/internal/domain/repository"
	"mealkit/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// subscriptionService implements the SubscriptionUsecase interface.
type subscriptionService struct {
	subscriptionRepo repository.SubscriptionRepository
	packageRepo      repository.FoodPackageRepository
	logger           *slog.Logger
}

// SubscriptionServiceParams holds dependencies for SubscriptionService, injected by Fx.
type SubscriptionServiceParams struct {
	fx.In

	SubscriptionRepo repository.SubscriptionRepository
	PackageRepo      repository.FoodPackageRepository
	Logger           *slog.Logger
}

// NewSubscriptionService is the constructor for subscriptionService.
func NewSubscriptionService(params SubscriptionServiceParams) usecase.SubscriptionUsecase {
	return &subscriptionService{
		subscriptionRepo: params.SubscriptionRepo,
		packageRepo:      params.PackageRepo,
		logger:           params.Logger,
	}
}

func (srv *subscriptionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateSubscription starts a recurring commitment against an active package.
// The full commitment amount is fixed up front; no inventory is reserved.
func (srv *subscriptionService) CreateSubscription(ctx context.Context, userID uuid.UUID, input usecase.CreateSubscriptionInput) (*entity.Subscription, error) {
	frequency := entity.SubscriptionFrequency(input.Frequency)
	if !frequency.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid subscription frequency")
	}
	if input.Quantity <= 0 || input.DurationMonths <= 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("quantity and duration must be positive")
	}

	pkg, err := srv.packageRepo.FindByID(ctx, input.PackageID)
	if err != nil {
		if errors.Is(err, repository.ErrPackageNotFound) {
			return nil, domainerrors.ErrPackageNotFound
		}

		return nil, errors.Wrap(err, "failed to find food package")
	}
	if !pkg.IsActive() {
		return nil, domainerrors.ErrPackageInactive
	}

	startDate := input.StartDate
	if startDate.IsZero() {
		startDate = time.Now()
	}

	subscription := &entity.Subscription{
		ID:               entity.NewSubscriptionID(),
		UserID:           userID,
		PackageID:        pkg.ID,
		PackageName:      pkg.Name,
		PackageImage:     pkg.Image,
		Frequency:        frequency,
		Quantity:         input.Quantity,
		TotalAmount:      pkg.Price * float64(input.Quantity) * float64(input.DurationMonths),
		DurationMonths:   input.DurationMonths,
		StartDate:        startDate,
		EndDate:          startDate.AddDate(0, input.DurationMonths, 0),
		NextDeliveryDate: frequency.NextDeliveryFrom(startDate),
		DeliveryAddress:  input.DeliveryAddress,
		ContactName:      input.ContactName,
		ContactPhone:     input.ContactPhone,
		Status:           entity.SubscriptionActive,
	}
	if err := srv.subscriptionRepo.Create(ctx, subscription); err != nil {
		srv.log(ctx).Error("Failed to create subscription",
			slog.Any("userID", userID), slog.Any("packageID", input.PackageID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Subscription created",
		slog.String("subscriptionID", subscription.ID),
		slog.Any("userID", userID),
		slog.String("frequency", input.Frequency),
		slog.Float64("totalAmount", subscription.TotalAmount))

	return subscription, nil
}

// ListSubscriptions returns one page of the user's own subscriptions, newest first.
func (srv *subscriptionService) ListSubscriptions(ctx context.Context, userID uuid.UUID, status string, page, pageSize int) (*usecase.SubscriptionListOutput, error) {
	items, total, err := srv.subscriptionRepo.List(ctx, repository.SubscriptionFilter{
		UserID:   userID,
		Status:   entity.SubscriptionStatus(status),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list subscriptions")
	}

	return &usecase.SubscriptionListOutput{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// GetSubscription returns one of the user's own subscriptions.
func (srv *subscriptionService) GetSubscription(ctx context.Context, userID uuid.UUID, subscriptionID string) (*entity.Subscription, error) {
	return srv.findOwned(ctx, userID, subscriptionID)
}

// PauseSubscription suspends deliveries of an active subscription.
func (srv *subscriptionService) PauseSubscription(ctx context.Context, userID uuid.UUID, subscriptionID string) (*entity.Subscription, error) {
	return srv.transition(ctx, userID, subscriptionID, entity.SubscriptionPaused, func(s *entity.Subscription) error {
		if !s.CanPause() {
			return domainerrors.ErrSubscriptionNotPausable
		}

		return nil
	})
}

// ResumeSubscription reactivates a paused subscription. The next delivery
// date is intentionally left as scheduled before the pause.
func (srv *subscriptionService) ResumeSubscription(ctx context.Context, userID uuid.UUID, subscriptionID string) (*entity.Subscription, error) {
	return srv.transition(ctx, userID, subscriptionID, entity.SubscriptionActive, func(s *entity.Subscription) error {
		if !s.CanResume() {
			return domainerrors.ErrSubscriptionNotResumable
		}

		return nil
	})
}

// CancelSubscription terminates the subscription permanently.
func (srv *subscriptionService) CancelSubscription(ctx context.Context, userID uuid.UUID, subscriptionID string) (*entity.Subscription, error) {
	return srv.transition(ctx, userID, subscriptionID, entity.SubscriptionCancelled, func(s *entity.Subscription) error {
		if !s.CanCancel() {
			return domainerrors.ErrSubscriptionNotCancellable
		}

		return nil
	})
}

func (srv *subscriptionService) findOwned(ctx context.Context, userID uuid.UUID, subscriptionID string) (*entity.Subscription, error) {
	subscription, err := srv.subscriptionRepo.FindByIDForUser(ctx, subscriptionID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrSubscriptionNotFound) {
			return nil, domainerrors.ErrSubscriptionNotFound
		}

		return nil, errors.Wrap(err, "failed to find subscription")
	}

	return subscription, nil
}

// transition applies one guarded status change and persists it.
func (srv *subscriptionService) transition(ctx context.Context, userID uuid.UUID, subscriptionID string, target entity.SubscriptionStatus, guard func(*entity.Subscription) error) (*entity.Subscription, error) {
	subscription, err := srv.findOwned(ctx, userID, subscriptionID)
	if err != nil {
		return nil, err
	}
	if err := guard(subscription); err != nil {
		return nil, err
	}

	subscription.Status = target
	if err := srv.subscriptionRepo.Update(ctx, subscription); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Subscription status changed",
		slog.String("subscriptionID", subscriptionID), slog.String("status", string(target)))

	return subscription, nil
}
