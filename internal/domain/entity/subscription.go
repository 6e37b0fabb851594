// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// SubscriptionFrequency represents how often a subscription delivers.
type SubscriptionFrequency string

const (
	// FrequencyWeekly delivers every 7 days.
	FrequencyWeekly SubscriptionFrequency = "weekly"
	// FrequencyBiweekly delivers every 14 days.
	FrequencyBiweekly SubscriptionFrequency = "biweekly"
	// FrequencyMonthly delivers every calendar month.
	FrequencyMonthly SubscriptionFrequency = "monthly"
)

// IsValid checks if the SubscriptionFrequency is a valid value.
func (f SubscriptionFrequency) IsValid() bool {
	switch f {
	case FrequencyWeekly, FrequencyBiweekly, FrequencyMonthly:
		return true
	default:
		return false
	}
}

// NextDeliveryFrom computes the delivery date following the given date.
// Monthly uses calendar-month arithmetic, so month length and leap years
// follow time.AddDate normalization.
func (f SubscriptionFrequency) NextDeliveryFrom(from time.Time) time.Time {
	switch f {
	case FrequencyWeekly:
		return from.AddDate(0, 0, 7)
	case FrequencyBiweekly:
		return from.AddDate(0, 0, 14)
	case FrequencyMonthly:
		return from.AddDate(0, 1, 0)
	default:
		return from
	}
}

// SubscriptionStatus represents the lifecycle state of a subscription.
type SubscriptionStatus string

const (
	// SubscriptionActive is the initial, delivering state.
	SubscriptionActive SubscriptionStatus = "active"
	// SubscriptionPaused suspends deliveries; resumable.
	SubscriptionPaused SubscriptionStatus = "paused"
	// SubscriptionCancelled is terminal; there is no resume from cancelled.
	SubscriptionCancelled SubscriptionStatus = "cancelled"
)

// Subscription is a recurring-delivery commitment against one food package.
// It is billed as price x quantity x duration at creation and does not
// reserve inventory per delivery.
type Subscription struct {
	ID               string                `json:"id"`               // Prefixed identifier, e.g. SUB1700000000000042.
	UserID           uuid.UUID             `json:"userId"`           // The subscribing consumer.
	PackageID        uuid.UUID             `json:"packageId"`        // The subscribed food package.
	PackageName      string                `json:"packageName"`      // Denormalized package name for listings.
	PackageImage     string                `json:"packageImage"`     // Denormalized package image for listings.
	Frequency        SubscriptionFrequency `json:"frequency"`        // Delivery cadence.
	Quantity         int                   `json:"quantity"`         // Units per delivery.
	TotalAmount      float64               `json:"totalAmount"`      // price x quantity x duration, fixed at creation.
	DurationMonths   int                   `json:"durationMonths"`   // Commitment length in months.
	StartDate        time.Time             `json:"startDate"`        // Subscription start.
	EndDate          time.Time             `json:"endDate"`          // StartDate + duration months.
	NextDeliveryDate time.Time             `json:"nextDeliveryDate"` // Derived from frequency; not recomputed on resume.
	DeliveryAddress  DeliveryAddress       `json:"deliveryAddress"`  // Snapshot of the delivery address.
	ContactName      string                `json:"contactName"`      // Recipient name.
	ContactPhone     string                `json:"contactPhone"`     // Recipient phone.
	Status           SubscriptionStatus    `json:"status"`           // Lifecycle state.
	CreatedAt        time.Time             `json:"createdAt"`        // Timestamp of when this subscription was created.
	UpdatedAt        time.Time             `json:"updatedAt"`        // Timestamp of the last modification.
}

// CanPause reports whether the subscription may be paused.
func (s *Subscription) CanPause() bool {
	return s.Status == SubscriptionActive
}

// CanResume reports whether the subscription may be resumed.
func (s *Subscription) CanResume() bool {
	return s.Status == SubscriptionPaused
}

// CanCancel reports whether the subscription may be cancelled.
// Cancellation is permissive: any non-terminal state qualifies.
func (s *Subscription) CanCancel() bool {
	return s.Status != SubscriptionCancelled
}
