package web

import (
	"errors"
	"fmt"

	"github.com/go-core-fx/fiberfx/handler"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"github.com/userdesk/userdesk/internal/auth"
	"github.com/userdesk/userdesk/internal/users"
	"go.uber.org/zap"
)

// Handler serves the server-rendered HTML pages and static assets for
// browser clients. API clients use the JSON surface instead.
type Handler struct {
	config   Config
	authSvc  *auth.Service
	usersSvc *users.Service

	engine *html.Engine
	logger *zap.Logger
}

func NewHandler(config Config, authSvc *auth.Service, usersSvc *users.Service, logger *zap.Logger) (handler.Handler, error) {
	engine := html.New(config.TemplatesDir, ".html")
	if err := engine.Load(); err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	return &Handler{
		config:   config,
		authSvc:  authSvc,
		usersSvc: usersSvc,

		engine: engine,
		logger: logger,
	}, nil
}

// Register implements handler.Handler. Only the guarded pages carry
// the redirect middleware; the other routes share the app root with
// the token endpoints and must not shadow their error mapping.
func (h *Handler) Register(r fiber.Router) {
	r.Static("/static", h.config.StaticDir)

	r.Get("/", h.index)
	r.Get("/login.html", h.loginForm)
	r.Post("/login.html", h.login)
	r.Get("/users", h.errorsHandler, h.usersPage)
	r.Get("/admin", h.errorsHandler, h.adminPage)
}

func (h *Handler) index(c *fiber.Ctx) error {
	return h.render(c, "index", fiber.Map{
		"User": h.authSvc.CurrentUser(c),
	})
}

func (h *Handler) loginForm(c *fiber.Ctx) error {
	return h.render(c, "login", fiber.Map{})
}

// login handles the browser form flow: on failure the form is
// re-rendered with an alert, on success the session cookie is set and
// the user is redirected by role.
func (h *Handler) login(c *fiber.Ctx) error {
	user, token, err := h.authSvc.Login(c.Context(), c.FormValue("email"), c.FormValue("password"))
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return h.render(c, "login", fiber.Map{
				"Message":     "Invalid Login",
				"MessageType": "alert-danger",
			})
		}
		return fmt.Errorf("failed to login: %w", err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     auth.CookieName,
		Value:    token,
		HTTPOnly: true,
	})

	target := "/users"
	if user.IsAdmin {
		target = "/admin"
	}

	return c.Redirect(target, fiber.StatusSeeOther)
}

func (h *Handler) usersPage(c *fiber.Ctx) error {
	user, err := h.authSvc.RequireUser(c)
	if err != nil {
		return fmt.Errorf("failed to authenticate: %w", err)
	}

	return h.render(c, "users", fiber.Map{
		"User": user,
	})
}

func (h *Handler) adminPage(c *fiber.Ctx) error {
	user, err := h.authSvc.RequireUser(c)
	if err != nil {
		return fmt.Errorf("failed to authenticate: %w", err)
	}

	// The admin gate is a distinct authorization failure; only
	// authentication failures collapse into one signal.
	if !user.IsAdmin {
		return fiber.ErrForbidden
	}

	all, err := h.usersSvc.List(c.Context())
	if err != nil {
		return fmt.Errorf("failed to list users: %w", err)
	}

	return h.render(c, "admin", fiber.Map{
		"User":  user,
		"Users": all,
	})
}

// errorsHandler sends unauthenticated browsers to the login form
// instead of surfacing the API's 401.
func (h *Handler) errorsHandler(c *fiber.Ctx) error {
	err := c.Next()
	if err == nil {
		return nil
	}

	if errors.Is(err, auth.ErrNotAuthenticated) {
		return c.Redirect("/login.html", fiber.StatusSeeOther)
	}

	return err //nolint:wrapcheck //already wrapped
}

func (h *Handler) render(c *fiber.Ctx, name string, bind fiber.Map) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)

	if err := h.engine.Render(c.Response().BodyWriter(), name, bind); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}

	return nil
}
