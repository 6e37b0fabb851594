package service

import (
	"context"
	"time"
)

// OrderEvent represents an order lifecycle change published for async consumers
// such as fulfillment dashboards and notification workers.
type OrderEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	OrderID    string    `json:"order_id"`
	UserID     string    `json:"user_id"`
	PackageID  string    `json:"package_id"`
	EventType  string    `json:"event_type"` // created, paid, cancelled, status_changed
	Status     string    `json:"status"`
	Quantity   int       `json:"quantity"`
	Amount     float64   `json:"amount"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Order event types.
const (
	OrderEventCreated       = "created"
	OrderEventPaid          = "paid"
	OrderEventCancelled     = "cancelled"
	OrderEventStatusChanged = "status_changed"
)

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderEvent publishes an order event for async processing
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
