package models

// UserDB represents a user record in the database
type UserDB struct {
	ID       int64  `json:"id" db:"id"`             // Primary key
	Name     string `json:"name" db:"name"`         // Display name
	Email    string `json:"email" db:"email"`       // Unique email
	Password string `json:"password" db:"password"` // Password, hashed by the caller
}

// NewUser holds the caller-supplied fields for a user insert.
type NewUser struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
