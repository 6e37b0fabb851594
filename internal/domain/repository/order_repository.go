package repository

import (
	"context"
	"errors"
	"time"

	"mealkit/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is a domain-specific error returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderFilter narrows an order listing. Zero values mean "no constraint".
type OrderFilter struct {
	UserID     uuid.UUID          // Buyer; uuid.Nil means any buyer.
	PackageIDs []uuid.UUID        // Restrict to these packages; empty means any.
	Status     entity.OrderStatus // Lifecycle state.
	Page       int
	PageSize   int
}

// OrderRepository defines the standard operations for order persistence.
type OrderRepository interface {
	// Create persists a new order.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves a single order by its prefixed identifier.
	FindByID(ctx context.Context, id string) (*entity.Order, error)

	// FindByIDForUser retrieves an order only when it belongs to the given user.
	FindByIDForUser(ctx context.Context, id string, userID uuid.UUID) (*entity.Order, error)

	// List returns orders matching the filter plus the total match count,
	// newest first.
	List(ctx context.Context, filter OrderFilter) ([]*entity.Order, int64, error)

	// Update modifies an existing order.
	Update(ctx context.Context, order *entity.Order) error

	// Count returns the number of non-cancelled orders.
	Count(ctx context.Context) (int64, error)

	// CountCreatedSince returns the number of non-cancelled orders created
	// at or after the given time.
	CountCreatedSince(ctx context.Context, since time.Time) (int64, error)

	// CountByStatus returns the per-status order counts.
	CountByStatus(ctx context.Context) (map[entity.OrderStatus]int64, error)

	// SumRevenue returns the totalAmount sum over non-cancelled orders.
	SumRevenue(ctx context.Context) (float64, error)

	// SumRevenueSince returns the non-cancelled totalAmount sum for orders
	// created at or after the given time.
	SumRevenueSince(ctx context.Context, since time.Time) (float64, error)
}
