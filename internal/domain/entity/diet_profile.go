// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DietProfile captures a user's dietary preferences for recommendations.
// One profile per user; saves upsert the existing row.
type DietProfile struct {
	ID                  int64     `json:"id"`     // Auto-increment identifier.
	UserID              uuid.UUID `json:"userId"` // The owning user; effectively unique.
	Age                 int       `json:"age"`
	Gender              string    `json:"gender"`
	Height              float64   `json:"height"` // Centimeters.
	Weight              float64   `json:"weight"` // Kilograms.
	ActivityLevel       string    `json:"activityLevel"`
	HealthGoals         []string  `json:"healthGoals"`         // Stored as a JSON column.
	DietaryRestrictions []string  `json:"dietaryRestrictions"` // Stored as a JSON column.
	PreferredCuisines   []string  `json:"preferredCuisines"`   // Stored as a JSON column.
	Allergies           string    `json:"allergies"`
	CalorieTarget       int       `json:"calorieTarget"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}
