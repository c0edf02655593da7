package models

import "time"

// DefaultTimezone is assigned to accounts that were created without an
// explicit timezone.
const DefaultTimezone = "UTC"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the unique identifier of the user (UUIDv7 string).
	// It is assigned by the user repository on first persist.
	UserID string `json:"id"`

	// Email is the unique login identifier of the account.
	Email string `json:"email"`

	// HashedPassword is the bcrypt hash of the user's password.
	// The plaintext password is never stored in this struct after registration.
	HashedPassword string `json:"-"`

	// FullName is the optional display name of the user.
	FullName string `json:"full_name"`

	// Timezone is the IANA timezone name the user tracks habits in.
	Timezone string `json:"timezone"`

	// CreatedAt is the UTC timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`

	// IsActive reports whether the account is enabled.
	IsActive bool `json:"is_active"`
}

// TableName returns the table the store reads and writes users from.
func (u User) TableName() string {
	return "users"
}

// Credentials is the request body accepted by the register and login
// endpoints. FullName is ignored on login.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}
