package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/userdesk/userdesk/internal/users"
)

// CurrentUser is the optional guard: it returns the authenticated user
// or nil, never failing the request.
func (s *Service) CurrentUser(c *fiber.Ctx) *users.User {
	token, present := ExtractToken(c)

	return s.Resolve(c.Context(), token, present).User
}

// RequireUser is the required guard. Anonymous, invalid and unknown
// sessions all collapse into ErrNotAuthenticated so the response never
// reveals whether an account exists or a token merely expired.
func (s *Service) RequireUser(c *fiber.Ctx) (*users.User, error) {
	token, present := ExtractToken(c)

	session := s.Resolve(c.Context(), token, present)
	if session.State != StateAuthenticated {
		return nil, ErrNotAuthenticated
	}

	return session.User, nil
}
