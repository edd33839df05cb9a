package domain

import "strings"

// AdministratorHandle is the reserved identity that bypasses ownership checks.
// It can never be registered as a regular user.
const AdministratorHandle = "Administrator"

// User represents a registered user of the reservation system.
type User struct {
	UserID string `json:"userID"` // Primary Key (UUID)
	Handle string `json:"handle"` // Unique, immutable after registration
	Name   string `json:"name"`
	Email  string `json:"email"`
	AuditFields
}

// IsAdministrator reports whether the identity is the administrator sentinel.
func IsAdministrator(identity string) bool {
	return identity == AdministratorHandle
}

// IsReservedHandle reports whether a handle collides with the administrator sentinel.
func IsReservedHandle(handle string) bool {
	return strings.EqualFold(strings.TrimSpace(handle), AdministratorHandle)
}
