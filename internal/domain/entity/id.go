// Package entity contains the core business objects of the project.
package entity

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// Prefixed identifiers are millisecond timestamps plus a 3-digit random
// suffix. They sort roughly by creation time and are human-recognizable
// by prefix, which is why orders and subscriptions use them instead of UUIDs.

// NewOrderID returns a fresh order identifier, e.g. ORD1700000000000042.
func NewOrderID() string {
	return prefixedID("ORD")
}

// NewSubscriptionID returns a fresh subscription identifier, e.g. SUB1700000000000042.
func NewSubscriptionID() string {
	return prefixedID("SUB")
}

// NewTransactionID returns a fresh payment transaction identifier, e.g. PAY1700000000000042.
func NewTransactionID() string {
	return prefixedID("PAY")
}

func prefixedID(prefix string) string {
	return fmt.Sprintf("%s%d%03d", prefix, time.Now().UnixMilli(), rand.IntN(1000))
}
