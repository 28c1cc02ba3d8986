package web

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/gofiber/fiber/v2"
	"github.com/userdesk/userdesk/internal/auth"
	"github.com/userdesk/userdesk/internal/users"
	"github.com/userdesk/userdesk/pkg/badgerfx"
	"go.uber.org/zap/zaptest"
)

func newTestApp(t *testing.T) (*fiber.App, *users.Service) {
	t.Helper()

	opts := badgerfx.Config{}.Build().WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		t.Fatalf("failed to open badger: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	logger := zaptest.NewLogger(t)
	usersSvc := users.NewService(users.NewRepository(db), logger)
	authSvc := auth.NewService(auth.NewCodec(auth.Config{
		SecretKey: []byte("test-secret"),
		Issuer:    "userdesk",
		TokenTTL:  30 * time.Minute,
	}), usersSvc, logger)

	h, err := NewHandler(Config{
		TemplatesDir: "../../../../web/templates",
		StaticDir:    "../../../../web/static",
	}, authSvc, usersSvc, logger)
	if err != nil {
		t.Fatalf("failed to create handler: %v", err)
	}

	app := fiber.New()
	h.Register(app)

	return app, usersSvc
}

func createTestUser(t *testing.T, usersSvc *users.Service, email, password string, admin bool) *users.User {
	t.Helper()

	user, err := usersSvc.Create(context.Background(), users.UserDraft{
		UserBase: users.UserBase{Name: "Alice", Email: email, IsAdmin: admin},
		Password: password,
	})
	if err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user
}

func loginForm(email, password string) *http.Request {
	form := url.Values{}
	form.Set("email", email)
	form.Set("password", password)

	req := httptest.NewRequest(http.MethodPost, "/login.html", strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)

	return req
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()

	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read body: %v", err)
	}

	return string(data)
}

func TestHandler_IndexAnonymous(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if body := readBody(t, resp); !strings.Contains(body, "/login.html") {
		t.Error("expected the anonymous index to link to the login form")
	}
}

func TestHandler_LoginFailureRerenders(t *testing.T) {
	app, usersSvc := newTestApp(t)
	createTestUser(t, usersSvc, "a@x.com", "secret", false)

	resp, err := app.Test(loginForm("a@x.com", "wrong"), -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected the form to re-render with 200, got %d", resp.StatusCode)
	}
	if body := readBody(t, resp); !strings.Contains(body, "Invalid Login") {
		t.Error("expected the invalid-login alert in the body")
	}
}

func TestHandler_LoginRedirectsByRole(t *testing.T) {
	app, usersSvc := newTestApp(t)
	createTestUser(t, usersSvc, "user@x.com", "secret", false)
	createTestUser(t, usersSvc, "admin@x.com", "secret", true)

	cases := map[string]struct {
		email  string
		target string
	}{
		"regular user": {"user@x.com", "/users"},
		"admin":        {"admin@x.com", "/admin"},
	}

	for name, tc := range cases {
		resp, err := app.Test(loginForm(tc.email, "secret"), -1)
		if err != nil {
			t.Fatalf("%s: request failed: %v", name, err)
		}
		resp.Body.Close()

		if resp.StatusCode != fiber.StatusSeeOther {
			t.Errorf("%s: expected 303, got %d", name, resp.StatusCode)
		}
		if location := resp.Header.Get("Location"); location != tc.target {
			t.Errorf("%s: expected redirect to %s, got %s", name, tc.target, location)
		}

		var sessionCookie *http.Cookie
		for _, cookie := range resp.Cookies() {
			if cookie.Name == auth.CookieName {
				sessionCookie = cookie
			}
		}
		if sessionCookie == nil || sessionCookie.Value == "" {
			t.Errorf("%s: expected the session cookie on the redirect", name)
		} else if !sessionCookie.HttpOnly {
			t.Errorf("%s: expected an HTTP-only cookie", name)
		}
	}
}

func TestHandler_PagesRequireLogin(t *testing.T) {
	app, _ := newTestApp(t)

	for _, path := range []string{"/users", "/admin"} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
		if err != nil {
			t.Fatalf("%s: request failed: %v", path, err)
		}
		resp.Body.Close()

		if resp.StatusCode != fiber.StatusSeeOther {
			t.Errorf("%s: expected a redirect for anonymous browsers, got %d", path, resp.StatusCode)
		}
		if location := resp.Header.Get("Location"); location != "/login.html" {
			t.Errorf("%s: expected redirect to /login.html, got %s", path, location)
		}
	}
}

func TestHandler_AdminForbiddenForRegularUsers(t *testing.T) {
	app, usersSvc := newTestApp(t)
	createTestUser(t, usersSvc, "user@x.com", "secret", false)

	login, err := app.Test(loginForm("user@x.com", "secret"), -1)
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	login.Body.Close()

	var token string
	for _, cookie := range login.Cookies() {
		if cookie.Name == auth.CookieName {
			token = cookie.Value
		}
	}
	if token == "" {
		t.Fatal("expected a session cookie after login")
	}

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: token})

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()

	if resp.StatusCode != fiber.StatusForbidden {
		t.Errorf("expected 403 for a non-admin, got %d", resp.StatusCode)
	}
}
