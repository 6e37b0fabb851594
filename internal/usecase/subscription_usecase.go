package usecase

import (
	"context"
	"time"

	"mealkit/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateSubscriptionInput defines the data required to start a subscription.
type CreateSubscriptionInput struct {
	PackageID       uuid.UUID
	Frequency       string
	Quantity        int
	DurationMonths  int
	StartDate       time.Time
	DeliveryAddress entity.DeliveryAddress
	ContactName     string
	ContactPhone    string
}

// --- Output DTOs ---

// SubscriptionListOutput returns one page of the user's subscriptions.
type SubscriptionListOutput struct {
	Items    []*entity.Subscription
	Total    int64
	Page     int
	PageSize int
}

// SubscriptionUsecase defines the interface for subscription lifecycle operations.
type SubscriptionUsecase interface {
	CreateSubscription(ctx context.Context, userID uuid.UUID, input CreateSubscriptionInput) (*entity.Subscription, error)
	ListSubscriptions(ctx context.Context, userID uuid.UUID, status string, page, pageSize int) (*SubscriptionListOutput, error)
	GetSubscription(ctx context.Context, userID uuid.UUID, subscriptionID string) (*entity.Subscription, error)
	PauseSubscription(ctx context.Context, userID uuid.UUID, subscriptionID string) (*entity.Subscription, error)
	ResumeSubscription(ctx context.Context, userID uuid.UUID, subscriptionID string) (*entity.Subscription, error)
	CancelSubscription(ctx context.Context, userID uuid.UUID, subscriptionID string) (*entity.Subscription, error)
}
