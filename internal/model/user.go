package model

// Role is the closed set of roles a user may hold.
type Role string

const (
	// RoleAdmin may list, create, update and delete job postings.
	RoleAdmin Role = "admin"
	// RoleUser may only list job postings.
	RoleUser Role = "user"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// OneOf reports whether r is contained in the given allow-list.
func (r Role) OneOf(roles ...Role) bool {
	for _, allowed := range roles {
		if r == allowed {
			return true
		}
	}
	return false
}

// User is an entry in the fixed credential table. The password hash is
// never serialized.
type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Role         Role   `json:"role"`
}

// PublicUser is the projection of a user returned to clients: no
// identifier, no credential.
type PublicUser struct {
	Username string `json:"username"`
	Role     Role   `json:"role"`
}
