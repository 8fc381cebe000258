package models

import "time"

// UserDB represents a user record in the database
type UserDB struct {
	UserID       int64     `json:"id" db:"id"`                   // Primary key
	Email        string    `json:"email" db:"email"`             // Lower-cased, unique email
	PasswordHash string    `json:"-" db:"password_hash"`         // bcrypt hash, never serialized
	IsVerified   bool      `json:"is_verified" db:"is_verified"` // Set once the email is confirmed
	CreatedAt    time.Time `json:"created_at" db:"created_at"`   // Creation timestamp
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`   // Last update timestamp
}

// User holds the fields of a user that may leave the service.
// swagger:model User
type User struct {
	ID         int64     `json:"id" example:"1"`
	Email      string    `json:"email" example:"john@example.com"`
	IsVerified bool      `json:"isVerified" example:"false"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Public projects a database row onto its public fields.
func (u *UserDB) Public() *User {
	return &User{
		ID:         u.UserID,
		Email:      u.Email,
		IsVerified: u.IsVerified,
		CreatedAt:  u.CreatedAt,
	}
}
