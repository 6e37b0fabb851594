// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// AdjustmentType classifies a stock mutation.
type AdjustmentType string

const (
	// AdjustIn adds the given quantity to stock.
	AdjustIn AdjustmentType = "in"
	// AdjustOut removes the given quantity, clamping at zero.
	AdjustOut AdjustmentType = "out"
	// AdjustSet replaces the stock with the given absolute quantity.
	AdjustSet AdjustmentType = "adjust"
	// AdjustSale records the decrement caused by an order creation.
	AdjustSale AdjustmentType = "sale"
)

// IsMerchantAdjustment reports whether merchants may request this type
// through the inventory endpoint. Sales are only written by order creation.
func (t AdjustmentType) IsMerchantAdjustment() bool {
	switch t {
	case AdjustIn, AdjustOut, AdjustSet:
		return true
	default:
		return false
	}
}

// Apply computes the stock resulting from this adjustment and the signed
// change to record in the ledger. An "out" larger than current stock clamps
// the result at zero while the ledger keeps the full requested change, so
// the discrepancy stays auditable.
func (t AdjustmentType) Apply(current, quantity int) (newQuantity, signedChange int) {
	switch t {
	case AdjustIn:
		return current + quantity, quantity
	case AdjustOut, AdjustSale:
		next := current - quantity
		if next < 0 {
			next = 0
		}

		return next, -quantity
	case AdjustSet:
		return quantity, quantity - current
	default:
		return current, 0
	}
}

// InventoryLog is one append-only ledger row per stock mutation. Rows are
// never updated or deleted; they are the audit trail of truth for stock history.
type InventoryLog struct {
	ID              int64          `json:"id"`              // Auto-increment identifier.
	PackageID       uuid.UUID      `json:"packageId"`       // The package whose stock changed.
	MerchantID      uuid.UUID      `json:"merchantId"`      // The package owner at the time of the change.
	ChangeQuantity  int            `json:"changeQuantity"`  // Signed delta; "out" and "sale" are negative.
	CurrentQuantity int            `json:"currentQuantity"` // Absolute stock after the change.
	Type            AdjustmentType `json:"type"`            // Classification of the mutation.
	Remark          string         `json:"remark,omitempty"` // Free-text note, e.g. the triggering order id.
	CreatedAt       time.Time      `json:"createdAt"`       // Timestamp of the mutation.
}
