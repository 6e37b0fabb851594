// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Address is a saved delivery address belonging to one user.
// At most one address per user carries IsDefault=true; setting a new default
// clears every other address of that user in the same transaction.
type Address struct {
	ID            uuid.UUID `json:"id"`            // The Global Unique Identifier (GUID) for the address.
	UserID        uuid.UUID `json:"userId"`        // The owning user.
	Name          string    `json:"name"`          // Recipient name.
	Phone         string    `json:"phone"`         // Recipient phone.
	Province      string    `json:"province"`      // Province-level region.
	City          string    `json:"city"`          // City-level region.
	District      string    `json:"district"`      // District-level region.
	DetailAddress string    `json:"detailAddress"` // Street-level detail.
	IsDefault     bool      `json:"isDefault"`     // Pre-selected at checkout when true.
	CreatedAt     time.Time `json:"createdAt"`     // Timestamp of when this address was created.
	UpdatedAt     time.Time `json:"updatedAt"`     // Timestamp of the last modification.
}

// Snapshot converts the address into the immutable form copied onto orders
// and subscriptions.
func (a *Address) Snapshot() DeliveryAddress {
	return DeliveryAddress{
		Name:          a.Name,
		Phone:         a.Phone,
		Province:      a.Province,
		City:          a.City,
		District:      a.District,
		DetailAddress: a.DetailAddress,
	}
}
