// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a unique account.
// The role is fixed at creation; there is no self-promotion path.
type User struct {
	ID           uuid.UUID `json:"id"`        // The Global Unique Identifier (GUID) for the user.
	Email        string    `json:"email"`     // The user's primary contact email, used as the login identifier.
	PasswordHash string    `json:"-"`         // The bcrypt hash of the user's password. Never serialized to clients.
	Name         string    `json:"name"`      // The user's display name.
	Phone        string    `json:"phone"`     // Optional contact phone number.
	Role         Role      `json:"role"`      // Fixed role: user, merchant or admin.
	Avatar       string    `json:"avatar"`    // URL of the user's avatar image.
	CreatedAt    time.Time `json:"createdAt"` // Timestamp of when this user account was created.
	UpdatedAt    time.Time `json:"updatedAt"` // Timestamp of the last modification to this user's data.
}

// CanManagePackage reports whether the user may mutate the given package.
// Merchants manage only their own packages; admins manage any.
func (u *User) CanManagePackage(pkg *FoodPackage) bool {
	if u.Role == RoleAdmin {
		return true
	}

	return u.Role == RoleMerchant && pkg.MerchantID == u.ID
}

// CanPublishPackages reports whether the user may create packages at all.
func (u *User) CanPublishPackages() bool {
	return u.Role == RoleMerchant || u.Role == RoleAdmin
}
