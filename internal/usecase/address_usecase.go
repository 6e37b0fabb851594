package usecase

import (
	"context"

	"mealkit/internal/domain/entity"

	"github.com/google/uuid"
)

// AddressInput defines the data for creating or updating a saved address.
type AddressInput struct {
	Name          string
	Phone         string
	Province      string
	City          string
	District      string
	DetailAddress string
	IsDefault     bool
}

// AddressUsecase defines the interface for saved delivery address operations.
// Setting IsDefault on any write clears the flag from the user's other addresses.
type AddressUsecase interface {
	ListAddresses(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error)
	GetAddress(ctx context.Context, userID, addressID uuid.UUID) (*entity.Address, error)
	CreateAddress(ctx context.Context, userID uuid.UUID, input AddressInput) (*entity.Address, error)
	UpdateAddress(ctx context.Context, userID, addressID uuid.UUID, input AddressInput) (*entity.Address, error)
	DeleteAddress(ctx context.Context, userID, addressID uuid.UUID) error
	SetDefaultAddress(ctx context.Context, userID, addressID uuid.UUID) (*entity.Address, error)
}
