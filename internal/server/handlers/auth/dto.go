package auth

import (
	"time"

	"github.com/google/uuid"
	"github.com/userdesk/userdesk/internal/users"
)

// TokenResponse follows the OAuth2 password-flow token response.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// CurrentUserResponse wraps the optional-guard result; CurrentUser is
// null for anonymous and invalid sessions.
type CurrentUserResponse struct {
	CurrentUser *UserResponse `json:"current_user"`
}

// UserResponse is the public projection of a user.
type UserResponse struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	IsAdmin bool      `json:"is_admin"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newUserResponse(user *users.User) *UserResponse {
	if user == nil {
		return nil
	}

	return &UserResponse{
		ID:      user.ID,
		Name:    user.Name,
		Email:   user.Email,
		IsAdmin: user.IsAdmin,

		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
