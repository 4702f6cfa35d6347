package domain

// Role is the access level of an authenticated caller
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// ParseRole maps a claim value to a Role; unknown values degrade to RoleUser
func ParseRole(s string) Role {
	if Role(s) == RoleAdmin {
		return RoleAdmin
	}
	return RoleUser
}

// Identity is the authenticated caller as provided by the session layer
type Identity struct {
	ID     int64
	OpenID string
	Name   string
	Email  string
	Role   Role
}

// IsAdmin returns true if the identity carries the admin role
func (i *Identity) IsAdmin() bool {
	return i != nil && i.Role == RoleAdmin
}
