package users

import (
	"time"

	"github.com/google/uuid"
)

type UserBase struct {
	Name    string
	Email   string
	IsAdmin bool
}

// UserDraft carries the plaintext password exactly once, from the
// transport layer into Service.Create where it is hashed.
type UserDraft struct {
	UserBase

	Password string
}

type User struct {
	UserBase

	ID           uuid.UUID
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserUpdate is a partial update; nil fields are left untouched. An
// empty Password string is also a no-op, never an error.
type UserUpdate struct {
	Name     *string
	Email    *string
	Password *string
	IsAdmin  *bool
}
