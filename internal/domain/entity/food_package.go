// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// PackageLevel grades a food package by cooking difficulty.
type PackageLevel string

const (
	// LevelBasic marks entry-level packages.
	LevelBasic PackageLevel = "basic"
	// LevelAdvanced marks intermediate/advanced packages.
	LevelAdvanced PackageLevel = "advanced"
	// LevelPremium marks premium packages.
	LevelPremium PackageLevel = "premium"
)

// IsValid checks if the PackageLevel is a valid value.
func (l PackageLevel) IsValid() bool {
	switch l {
	case LevelBasic, LevelAdvanced, LevelPremium:
		return true
	default:
		return false
	}
}

// PackageStatus represents the listing state of a food package.
type PackageStatus string

const (
	// PackageActive means the package is listed and orderable.
	PackageActive PackageStatus = "active"
	// PackageInactive means the package is delisted.
	PackageInactive PackageStatus = "inactive"
)

// Ingredient is one item included in a food package.
type Ingredient struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity,omitempty"`
	Unit     string `json:"unit,omitempty"`
}

// RecipeStep is one instruction in a package's recipe card.
type RecipeStep struct {
	Order       int    `json:"order"`
	Description string `json:"description"`
	DurationMin int    `json:"durationMin,omitempty"`
}

// Seasoning is one seasoning sachet bundled with a package.
type Seasoning struct {
	Name   string `json:"name"`
	Amount string `json:"amount,omitempty"`
}

// NutritionInfo summarizes the nutrition facts of one serving.
type NutritionInfo struct {
	Calories float64 `json:"calories,omitempty"`
	Protein  float64 `json:"protein,omitempty"`
	Fat      float64 `json:"fat,omitempty"`
	Carbs    float64 `json:"carbs,omitempty"`
	Sodium   float64 `json:"sodium,omitempty"`
}

// FoodPackage is a merchant-listed bundle of ingredients, recipe and
// seasonings sold as a single priced unit. The contents fields are stored as
// JSON columns; reads degrade to empty values on malformed rows.
type FoodPackage struct {
	ID            uuid.UUID     `json:"id"`            // The Global Unique Identifier (GUID) for the package.
	Name          string        `json:"name"`          // Display name of the package.
	Description   string        `json:"description"`   // Free-text description.
	Level         PackageLevel  `json:"level"`         // Cooking difficulty grade.
	Price         float64       `json:"price"`         // Current unit price; snapshotted onto orders at creation.
	OriginalPrice float64       `json:"originalPrice"` // Pre-discount unit price, for display.
	Image         string        `json:"image"`         // Cover image URL.
	Tags          []string      `json:"tags"`          // Free-form marketing tags.
	Ingredients   []Ingredient  `json:"ingredients"`   // Bundled ingredients.
	Recipes       []RecipeStep  `json:"recipes"`       // Recipe card steps.
	Seasonings    []Seasoning   `json:"seasonings"`    // Bundled seasoning sachets.
	Nutrition     NutritionInfo `json:"nutrition"`     // Per-serving nutrition facts.
	StockQuantity int           `json:"stockQuantity"` // Units in stock; never negative.
	Status        PackageStatus `json:"status"`        // Listing state.
	MerchantID    uuid.UUID     `json:"merchantId"`    // The merchant that owns this package.
	CreatedAt     time.Time     `json:"createdAt"`     // Timestamp of when this package was created.
	UpdatedAt     time.Time     `json:"updatedAt"`     // Timestamp of the last modification.
}

// IsActive reports whether the package is currently orderable.
func (p *FoodPackage) IsActive() bool {
	return p.Status == PackageActive
}

// HasStock reports whether the package can satisfy an order of the given quantity.
func (p *FoodPackage) HasStock(quantity int) bool {
	return p.StockQuantity >= quantity
}
