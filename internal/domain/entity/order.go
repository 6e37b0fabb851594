// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	// OrderPendingPayment is the initial state after creation.
	OrderPendingPayment OrderStatus = "pending_payment"
	// OrderPaid means the mock settlement succeeded.
	OrderPaid OrderStatus = "paid"
	// OrderPreparing means the merchant is assembling the package.
	OrderPreparing OrderStatus = "preparing"
	// OrderShipped means the package left the merchant.
	OrderShipped OrderStatus = "shipped"
	// OrderDelivered means the package reached the customer.
	OrderDelivered OrderStatus = "delivered"
	// OrderCompleted is the terminal success state.
	OrderCompleted OrderStatus = "completed"
	// OrderCancelled is the terminal cancellation state.
	OrderCancelled OrderStatus = "cancelled"
)

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderPendingPayment, OrderPaid, OrderPreparing, OrderShipped, OrderDelivered, OrderCompleted, OrderCancelled:
		return true
	default:
		return false
	}
}

// AdminAssignableOrderStatuses is the closed set an admin override may set.
// The override bypasses the transition graph but never invents new states.
var AdminAssignableOrderStatuses = []OrderStatus{
	OrderPendingPayment,
	OrderPaid,
	OrderPreparing,
	OrderDelivered,
	OrderCompleted,
	OrderCancelled,
}

// DeliveryAddress is the JSON snapshot of the address an order ships to.
// It is copied at creation time, not a live reference to an Address row.
type DeliveryAddress struct {
	Name          string `json:"name,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Province      string `json:"province,omitempty"`
	City          string `json:"city,omitempty"`
	District      string `json:"district,omitempty"`
	DetailAddress string `json:"detailAddress,omitempty"`
}

// Order is a one-off purchase of a food package. Quantity and totalAmount are
// immutable after creation; price is snapshotted from the package.
type Order struct {
	ID              string          `json:"id"`                    // Prefixed identifier, e.g. ORD1700000000000042.
	UserID          uuid.UUID       `json:"userId"`                // The consumer that placed the order.
	PackageID       uuid.UUID       `json:"packageId"`             // The food package ordered.
	PackageName     string          `json:"packageName"`           // Denormalized package name for listings.
	PackageImage    string          `json:"packageImage"`          // Denormalized package image for listings.
	Quantity        int             `json:"quantity"`              // Units ordered; immutable after creation.
	TotalAmount     float64         `json:"totalAmount"`           // price x quantity at creation time.
	Status          OrderStatus     `json:"status"`                // Lifecycle state.
	DeliveryAddress DeliveryAddress `json:"deliveryAddress"`       // Snapshot of the delivery address.
	ContactName     string          `json:"contactName"`           // Recipient name.
	ContactPhone    string          `json:"contactPhone"`          // Recipient phone.
	PaymentMethod   string          `json:"paymentMethod,omitempty"` // Set on pay.
	PaymentTime     *time.Time      `json:"paymentTime,omitempty"`   // Set on pay.
	Remark          string          `json:"remark,omitempty"`        // Optional buyer note.
	CreatedAt       time.Time       `json:"createdAt"`             // Timestamp of when this order was created.
	UpdatedAt       time.Time       `json:"updatedAt"`             // Timestamp of the last modification.
}

// CanPay reports whether the order may be paid. Only pending_payment orders qualify.
func (o *Order) CanPay() bool {
	return o.Status == OrderPendingPayment
}

// CanCancel reports whether the order may be cancelled by its owner.
// Cancellation is open until the merchant starts preparing.
func (o *Order) CanCancel() bool {
	return o.Status == OrderPendingPayment || o.Status == OrderPaid
}

// Payment is the settlement record written once per successful pay action.
type Payment struct {
	ID            int64     `json:"id"`            // Auto-increment identifier.
	OrderID       string    `json:"orderId"`       // The paid order.
	UserID        uuid.UUID `json:"userId"`        // The paying user.
	Amount        float64   `json:"amount"`        // Settled amount; equals the order's totalAmount.
	PaymentMethod string    `json:"paymentMethod"` // Requested method, defaulting to "mock".
	TransactionID string    `json:"transactionId"` // Synthesized identifier, e.g. PAY1700000000000042.
	Status        string    `json:"status"`        // Always "success"; there is no external gateway.
	PaidAt        time.Time `json:"paidAt"`        // Settlement timestamp.
}

// PaymentSuccess is the only status a mock settlement produces.
const PaymentSuccess = "success"
