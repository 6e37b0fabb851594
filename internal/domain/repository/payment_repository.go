package repository

import (
	"context"

	"mealkit/internal/domain/entity"
)

// PaymentRepository defines the operations for settlement records.
// Payments are written once on a successful pay action and never mutated.
type PaymentRepository interface {
	// Create persists a new payment record.
	Create(ctx context.Context, payment *entity.Payment) error

	// FindByOrderID retrieves the payment record of one order.
	FindByOrderID(ctx context.Context, orderID string) (*entity.Payment, error)
}
