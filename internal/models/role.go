package models

import (
	"fmt"

	"github.com/google/uuid"
)

// Role is the closed set of account roles
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// ParseRole converts a raw string into a Role, rejecting unknown values
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleUser, RoleAdmin:
		return Role(s), nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

// Identity is the authenticated requester extracted from a verified token
type Identity struct {
	UserID uuid.UUID
	Role   Role
}

// CanAccess reports whether the identity may read, update, or delete a
// resource owned by ownerID. Admins may access any resource, everyone
// else only their own. Listing folds the same rule into the query
// predicate instead of rejecting the request.
func (id Identity) CanAccess(ownerID uuid.UUID) bool {
	return id.Role == RoleAdmin || id.UserID == ownerID
}

// IsAdmin reports whether the identity carries the admin role
func (id Identity) IsAdmin() bool {
	return id.Role == RoleAdmin
}
