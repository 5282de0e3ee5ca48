// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role carried by a session token.
type Role string

const (
	// RoleAdmin is the only role issued to platform administrators.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	return r == RoleAdmin
}
