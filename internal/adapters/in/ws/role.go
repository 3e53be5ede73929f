// Package ws provides the realtime gateway: websocket connection handling,
// the connection registry grouped by client role, and best-effort broadcasts
// of order and statistics events.
package ws

import (
	"restaurant/internal/pkg/errs"
)

// Role identifies the audience a websocket client connects as.
// The role is chosen once at connection time via the URL and determines which
// broadcasts the client receives.
type Role string

const (
	// RoleCustomers receives only per-order updates they explicitly subscribe to.
	RoleCustomers Role = "customers"
	// RoleStaff receives new orders and all order updates.
	RoleStaff Role = "staff"
	// RoleAdmin receives everything staff does plus statistics updates.
	RoleAdmin Role = "admin"
)

// Roles returns all valid client roles.
func Roles() []Role {
	return []Role{RoleCustomers, RoleStaff, RoleAdmin}
}

// ParseRole converts a URL path segment into a Role.
// Returns errs.ValueIsInvalidError for anything but the three known roles so
// callers can reject the connection before upgrading.
func ParseRole(raw string) (Role, error) {
	role := Role(raw)
	switch role {
	case RoleCustomers, RoleStaff, RoleAdmin:
		return role, nil
	default:
		return "", errs.NewValueIsInvalidError("role")
	}
}
