package models

// UserDB represents a user record in the database
type UserDB struct {
	UserID       int64  `json:"id" db:"id"`             // Primary key, assigned by the store
	Username     string `json:"username" db:"username"` // Unique, immutable username
	PasswordHash string `json:"-" db:"password_hash"`   // bcrypt hash, never the plaintext
}
