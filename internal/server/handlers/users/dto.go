package users

import (
	"time"

	"github.com/google/uuid"
	"github.com/userdesk/userdesk/internal/users"
)

// CreateRequest represents the request payload for creating a user.
type CreateRequest struct {
	Name     string `json:"name"     validate:"required,min=1,max=100"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1,max=72"`
	IsAdmin  bool   `json:"is_admin"`
}

// UpdateRequest represents the request payload for updating a user.
// An empty password leaves the stored hash unchanged.
type UpdateRequest struct {
	Name     *string `json:"name,omitempty"     validate:"omitempty,min=1,max=100"`
	Email    *string `json:"email,omitempty"    validate:"omitempty,email"`
	Password *string `json:"password,omitempty" validate:"omitempty,max=72"`
	IsAdmin  *bool   `json:"is_admin,omitempty"`
}

// UserResponse is the public projection of a user. It never carries
// the password hash.
type UserResponse struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	IsAdmin bool      `json:"is_admin"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newUserResponse(user *users.User) UserResponse {
	return UserResponse{
		ID:      user.ID,
		Name:    user.Name,
		Email:   user.Email,
		IsAdmin: user.IsAdmin,

		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
