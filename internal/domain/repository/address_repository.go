package repository

import (
	"context"
	"errors"

	"mealkit/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAddressNotFound is a domain-specific error returned when an address is not found.
var ErrAddressNotFound = errors.New("address not found")

// AddressRepository defines the standard operations for address persistence.
type AddressRepository interface {
	// Create persists a new address.
	Create(ctx context.Context, address *entity.Address) error

	// FindByIDForUser retrieves an address only when it belongs to the given user.
	FindByIDForUser(ctx context.Context, id, userID uuid.UUID) (*entity.Address, error)

	// ListByUser returns all addresses of one user, default first then newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error)

	// Update modifies an existing address.
	Update(ctx context.Context, address *entity.Address) error

	// Delete removes an address permanently.
	Delete(ctx context.Context, id uuid.UUID) error

	// ClearDefault unsets the default flag on every address of the user.
	ClearDefault(ctx context.Context, userID uuid.UUID) error
}
