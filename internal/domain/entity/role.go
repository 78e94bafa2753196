// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the type of role a user can have in the system.
// It is carried in the session token and re-validated against the live
// user record on every authenticated request.
type Role string

const (
	// RoleAdmin can manage every resource, including other users.
	RoleAdmin Role = "ADMIN"
	// RoleSeller can list products and manage their own catalog.
	RoleSeller Role = "SELLER"
	// RoleBuyer can place orders and review products.
	RoleBuyer Role = "BUYER"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleSeller, RoleBuyer:
		return true
	default:
		return false
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}
