package usecase

import (
	"context"

	"mealkit/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Output DTOs ---

// UserStats summarizes account registrations.
type UserStats struct {
	Total int64 `json:"total"`
	Today int64 `json:"today"`
}

// OrderStatusCount is one row of the per-status order breakdown.
type OrderStatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// OrderStats summarizes orders and revenue. Cancelled orders are excluded
// from totals but appear in the per-status breakdown.
type OrderStats struct {
	Total       int64              `json:"total"`
	TotalAmount float64            `json:"totalAmount"`
	Today       int64              `json:"today"`
	TodayAmount float64            `json:"todayAmount"`
	ByStatus    []OrderStatusCount `json:"byStatus"`
}

// PackageStats summarizes the catalog, including the low-stock alert count.
type PackageStats struct {
	Total    int64 `json:"total"`
	LowStock int64 `json:"lowStock"`
}

// SubscriptionStats summarizes recurring commitments.
type SubscriptionStats struct {
	Active int64 `json:"active"`
}

// StatisticsOutput is the admin dashboard rollup.
type StatisticsOutput struct {
	Users         UserStats         `json:"users"`
	Orders        OrderStats        `json:"orders"`
	Packages      PackageStats      `json:"packages"`
	Subscriptions SubscriptionStats `json:"subscriptions"`
}

// AdminUsecase defines the interface for platform administration operations.
type AdminUsecase interface {
	ListUsers(ctx context.Context) ([]*entity.User, error)
	DeleteUser(ctx context.Context, actorID, userID uuid.UUID) error
	ListAllOrders(ctx context.Context, status string, page, pageSize int) (*OrderListOutput, error)
	ListAllSubscriptions(ctx context.Context, status string, page, pageSize int) (*SubscriptionListOutput, error)

	// UpdateOrderStatus overrides an order's state without walking the
	// transition graph. It never touches stock or settlement records.
	UpdateOrderStatus(ctx context.Context, orderID string, status string) error

	Statistics(ctx context.Context) (*StatisticsOutput, error)
}
