package repository

import (
	"context"
	"errors"

	"mealkit/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrSubscriptionNotFound is a domain-specific error returned when a subscription is not found.
var ErrSubscriptionNotFound = errors.New("subscription not found")

// SubscriptionFilter narrows a subscription listing. Zero values mean "no constraint".
type SubscriptionFilter struct {
	UserID   uuid.UUID // Subscriber; uuid.Nil means any subscriber.
	Status   entity.SubscriptionStatus
	Page     int
	PageSize int
}

// SubscriptionRepository defines the standard operations for subscription persistence.
type SubscriptionRepository interface {
	// Create persists a new subscription.
	Create(ctx context.Context, sub *entity.Subscription) error

	// FindByIDForUser retrieves a subscription only when it belongs to the given user.
	FindByIDForUser(ctx context.Context, id string, userID uuid.UUID) (*entity.Subscription, error)

	// List returns subscriptions matching the filter plus the total match count,
	// newest first.
	List(ctx context.Context, filter SubscriptionFilter) ([]*entity.Subscription, int64, error)

	// Update modifies an existing subscription.
	Update(ctx context.Context, sub *entity.Subscription) error

	// CountByStatus returns the number of subscriptions in the given state.
	CountByStatus(ctx context.Context, status entity.SubscriptionStatus) (int64, error)
}
