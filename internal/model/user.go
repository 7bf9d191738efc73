package model

// Role is user role tag, not involved in authorization decisions yet
type Role string

const (
	// RoleUser is default role assigned at signup
	RoleUser Role = "User"
	// RoleAdmin is reserved for administrative accounts
	RoleAdmin Role = "Admin"
)

// User is registered account entity
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Role         Role   `json:"role"`
}
