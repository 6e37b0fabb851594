package repository

import (
	"context"
	"errors"

	"mealkit/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPackageNotFound is a domain-specific error returned when a food package is not found.
var ErrPackageNotFound = errors.New("food package not found")

// PackageFilter narrows a catalog listing. Zero values mean "no constraint".
type PackageFilter struct {
	Keyword    string              // Matches against name and description.
	Level      entity.PackageLevel // Difficulty grade.
	Status     entity.PackageStatus
	MerchantID uuid.UUID // Owner; uuid.Nil means any merchant.
	Page       int
	PageSize   int // Zero uses the default page size; negative fetches all matches.
}

// FoodPackageRepository defines the standard operations for food package persistence.
type FoodPackageRepository interface {
	// Create persists a new food package.
	Create(ctx context.Context, pkg *entity.FoodPackage) error

	// FindByID retrieves a single package by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.FoodPackage, error)

	// List returns packages matching the filter plus the total match count.
	List(ctx context.Context, filter PackageFilter) ([]*entity.FoodPackage, int64, error)

	// Update modifies an existing package.
	Update(ctx context.Context, pkg *entity.FoodPackage) error

	// SetStock writes the absolute stock quantity of one package.
	SetStock(ctx context.Context, id uuid.UUID, quantity int) error

	// Delete removes a package permanently.
	Delete(ctx context.Context, id uuid.UUID) error

	// Count returns the total number of packages.
	Count(ctx context.Context) (int64, error)

	// CountLowStock returns the number of active packages with stock below the threshold.
	CountLowStock(ctx context.Context, threshold int) (int64, error)
}
