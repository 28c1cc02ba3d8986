package auth

import (
	"errors"
	"fmt"

	"github.com/go-core-fx/fiberfx/handler"
	"github.com/gofiber/fiber/v2"
	"github.com/userdesk/userdesk/internal/auth"
	"go.uber.org/zap"
)

type Handler struct {
	authSvc *auth.Service

	logger *zap.Logger
}

func NewHandler(authSvc *auth.Service, logger *zap.Logger) handler.Handler {
	return &Handler{
		authSvc: authSvc,

		logger: logger,
	}
}

// Register implements handler.Handler. The routes sit at the app root
// for compatibility with OAuth2 password-flow clients, so the error
// mapping is attached per route rather than via a group middleware.
func (h *Handler) Register(r fiber.Router) {
	r.Post("/token", h.errorsHandler, h.token)
	r.Post("/cookie", h.errorsHandler, h.cookie)
	r.Get("/current_user", h.errorsHandler, h.currentUser)
	r.Get("/auth_user", h.errorsHandler, h.authUser)
}

// token validates an OAuth2 password form and returns a bearer token.
// The form's username field carries the email, per the OAuth2 spec.
func (h *Handler) token(c *fiber.Ctx) error {
	_, token, err := h.authSvc.Login(c.Context(), c.FormValue("username"), c.FormValue("password"))
	if err != nil {
		return fmt.Errorf("failed to login: %w", err)
	}

	return c.JSON(TokenResponse{AccessToken: token, TokenType: "bearer"})
}

// cookie behaves like token but additionally sets the session cookie
// for browser clients.
func (h *Handler) cookie(c *fiber.Ctx) error {
	_, token, err := h.authSvc.Login(c.Context(), c.FormValue("username"), c.FormValue("password"))
	if err != nil {
		return fmt.Errorf("failed to login: %w", err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     auth.CookieName,
		Value:    token,
		HTTPOnly: true,
	})

	return c.JSON(TokenResponse{AccessToken: token, TokenType: "bearer"})
}

func (h *Handler) currentUser(c *fiber.Ctx) error {
	user := h.authSvc.CurrentUser(c)

	return c.JSON(CurrentUserResponse{CurrentUser: newUserResponse(user)})
}

func (h *Handler) authUser(c *fiber.Ctx) error {
	user, err := h.authSvc.RequireUser(c)
	if err != nil {
		return fmt.Errorf("failed to authenticate: %w", err)
	}

	return c.JSON(CurrentUserResponse{CurrentUser: newUserResponse(user)})
}

func (h *Handler) errorsHandler(c *fiber.Ctx) error {
	err := c.Next()
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid User or Password")
	case errors.Is(err, auth.ErrNotAuthenticated):
		return fiber.NewError(fiber.StatusUnauthorized, "Not Authenticated")
	}

	return err //nolint:wrapcheck //already wrapped
}
