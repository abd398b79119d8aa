package entity

// Role represents the authorization tag carried by a user and their tokens.
// The set is open: unknown role strings round-trip untouched, only the two
// known values get dedicated behaviour.
type Role string

const (
	// RoleUser is the default role assigned at registration.
	RoleUser Role = "User"
	// RoleAdmin unlocks the administrative endpoints.
	RoleAdmin Role = "Admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsAdmin reports whether the role grants administrative access.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}
