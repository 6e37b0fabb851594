package usecase

import (
	"context"

	"mealkit/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// ListPackagesInput narrows the public catalog listing.
type ListPackagesInput struct {
	Keyword  string
	Level    string
	Status   string
	Page     int
	PageSize int
}

// PackageContentInput groups the content fields shared by create and update.
type PackageContentInput struct {
	Name          string
	Description   string
	Level         string
	Price         float64
	OriginalPrice float64
	Image         string
	Tags          []string
	Ingredients   []entity.Ingredient
	Recipes       []entity.RecipeStep
	Seasonings    []entity.Seasoning
	Nutrition     entity.NutritionInfo
	StockQuantity int
	Status        string
}

// AdjustInventoryInput defines one merchant stock adjustment.
type AdjustInventoryInput struct {
	Type     string
	Quantity int
	Remark   string
}

// --- Output DTOs ---

// PackageListOutput returns one page of the catalog.
type PackageListOutput struct {
	Items    []*entity.FoodPackage
	Total    int64
	Page     int
	PageSize int
}

// AdjustInventoryOutput returns the stock movement caused by an adjustment.
type AdjustInventoryOutput struct {
	PreviousQuantity int
	CurrentQuantity  int
	Change           int
	Log              *entity.InventoryLog
}

// InventoryLogListOutput returns one page of a package's stock ledger.
type InventoryLogListOutput struct {
	Items    []*entity.InventoryLog
	Total    int64
	Page     int
	PageSize int
}

// MerchantOrderListOutput returns one page of orders against the merchant's packages.
type MerchantOrderListOutput struct {
	Items    []*entity.Order
	Total    int64
	Page     int
	PageSize int
}

// CatalogUsecase defines the interface for food package catalog operations,
// including merchant-facing inventory management.
type CatalogUsecase interface {
	ListPackages(ctx context.Context, input ListPackagesInput) (*PackageListOutput, error)
	GetPackage(ctx context.Context, id uuid.UUID) (*entity.FoodPackage, error)
	CreatePackage(ctx context.Context, actorID uuid.UUID, input PackageContentInput) (*entity.FoodPackage, error)
	UpdatePackage(ctx context.Context, actorID, packageID uuid.UUID, input PackageContentInput) (*entity.FoodPackage, error)
	DeletePackage(ctx context.Context, actorID, packageID uuid.UUID) error

	AdjustInventory(ctx context.Context, actorID, packageID uuid.UUID, input AdjustInventoryInput) (*AdjustInventoryOutput, error)
	ListInventoryLogs(ctx context.Context, actorID, packageID uuid.UUID, page, pageSize int) (*InventoryLogListOutput, error)
	ListMerchantOrders(ctx context.Context, actorID uuid.UUID, status string, page, pageSize int) (*MerchantOrderListOutput, error)
}
