package domain

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User models a registered account. PasswordHash is never serialized to
// JSON; handlers expose users through sanitized response schemas only.
type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Username     string `json:"username"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	PasswordHash string `json:"-"`
	IsActive     bool   `json:"is_active"`
	Role         string `json:"role"`
}
