package models

// UserRole represents the role of a user in the system
type UserRole string

const (
	RoleUser  UserRole = "USER"
	RoleAdmin UserRole = "ADMIN"
)

// User represents a registered account. The password is stored as-is and is
// never serialized in responses.
type User struct {
	ID       int      `json:"id" db:"id"`
	Name     string   `json:"name" db:"name"`
	Email    string   `json:"email" db:"email"`
	Password string   `json:"-" db:"password"`
	Role     UserRole `json:"role" db:"role"`
}

// IsAdmin returns true if the user has the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
