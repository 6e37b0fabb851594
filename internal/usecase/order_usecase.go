package usecase

import (
	"context"

	"mealkit/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateOrderInput defines the data required to place an order.
// The delivery address is snapshotted onto the order at creation.
type CreateOrderInput struct {
	PackageID       uuid.UUID
	Quantity        int
	DeliveryAddress entity.DeliveryAddress
	ContactName     string
	ContactPhone    string
	Remark          string
}

// PayOrderInput defines the mock settlement request.
type PayOrderInput struct {
	PaymentMethod string
}

// --- Output DTOs ---

// OrderListOutput returns one page of the user's orders.
type OrderListOutput struct {
	Items    []*entity.Order
	Total    int64
	Page     int
	PageSize int
}

// PayOrderOutput returns the settlement result.
type PayOrderOutput struct {
	TransactionID string
	Order         *entity.Order
}

// OrderUsecase defines the interface for order lifecycle operations.
type OrderUsecase interface {
	CreateOrder(ctx context.Context, userID uuid.UUID, input CreateOrderInput) (*entity.Order, error)
	ListOrders(ctx context.Context, userID uuid.UUID, status string, page, pageSize int) (*OrderListOutput, error)
	GetOrder(ctx context.Context, userID uuid.UUID, orderID string) (*entity.Order, error)
	PayOrder(ctx context.Context, userID uuid.UUID, orderID string, input PayOrderInput) (*PayOrderOutput, error)
	CancelOrder(ctx context.Context, userID uuid.UUID, orderID string) error

	// PaymentQR renders the PNG QR code a buyer scans to pay a pending order.
	PaymentQR(ctx context.Context, userID uuid.UUID, orderID string) ([]byte, error)
}
