package entity

// Role represents an authorization role carried in token claims.
type Role string

const (
	// RoleUser is the default role granted to every registered account.
	RoleUser Role = "user"

	// RoleAdmin is reserved for catalog administration.
	RoleAdmin Role = "admin"
)

// Roles is a list of roles attached to one account.
type Roles []Role

// ToStrings converts the roles to plain strings for token claims.
func (r Roles) ToStrings() []string {
	out := make([]string, 0, len(r))
	for _, role := range r {
		out = append(out, string(role))
	}

	return out
}
