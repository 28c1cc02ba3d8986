package auth

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/userdesk/userdesk/internal/users"
)

func newGuardedApp(t *testing.T, authSvc *Service) *fiber.App {
	t.Helper()

	app := fiber.New()
	app.Get("/optional", func(c *fiber.Ctx) error {
		if user := authSvc.CurrentUser(c); user != nil {
			return c.SendString(user.Email)
		}
		return c.SendString("anonymous")
	})
	app.Get("/required", func(c *fiber.Ctx) error {
		user, err := authSvc.RequireUser(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Not Authenticated")
		}
		return c.SendString(user.Email)
	})

	return app
}

func body(t *testing.T, resp *http.Response) string {
	t.Helper()

	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read body: %v", err)
	}

	return string(data)
}

func TestGuards_OptionalNeverFails(t *testing.T) {
	authSvc, usersSvc := newTestService(t)
	createTestUser(t, usersSvc, "a@x.com", "secret")
	app := newGuardedApp(t, authSvc)

	for name, build := range map[string]func(*http.Request){
		"anonymous": func(_ *http.Request) {},
		"invalid":   func(r *http.Request) { r.Header.Set("Authorization", "Bearer garbage") },
	} {
		req := httptest.NewRequest(http.MethodGet, "/optional", nil)
		build(req)

		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("%s: request failed: %v", name, err)
		}
		if resp.StatusCode != fiber.StatusOK {
			t.Errorf("%s: optional guard must never fail the request, got %d", name, resp.StatusCode)
		}
		if got := body(t, resp); got != "anonymous" {
			t.Errorf("%s: expected anonymous, got %q", name, got)
		}
	}
}

// Anonymous, invalid and unknown-subject sessions all yield the same
// 401 from the required guard.
func TestGuards_RequiredCollapsesFailures(t *testing.T) {
	authSvc, usersSvc := newTestService(t)
	doomed := createTestUser(t, usersSvc, "d@x.com", "secret")

	_, orphanToken, err := authSvc.Login(context.Background(), "d@x.com", "secret")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if err := usersSvc.Delete(context.Background(), doomed.ID); err != nil {
		t.Fatalf("failed to delete user: %v", err)
	}

	app := newGuardedApp(t, authSvc)

	for name, build := range map[string]func(*http.Request){
		"anonymous": func(_ *http.Request) {},
		"invalid":   func(r *http.Request) { r.Header.Set("Authorization", "Bearer garbage") },
		"unknown":   func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+orphanToken) },
	} {
		req := httptest.NewRequest(http.MethodGet, "/required", nil)
		build(req)

		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("%s: request failed: %v", name, err)
		}
		if resp.StatusCode != fiber.StatusUnauthorized {
			t.Errorf("%s: expected 401, got %d", name, resp.StatusCode)
		}
		if got := body(t, resp); got != "Not Authenticated" {
			t.Errorf("%s: expected uniform failure message, got %q", name, got)
		}
	}
}

func TestGuards_CookieBeatsHeader(t *testing.T) {
	authSvc, usersSvc := newTestService(t)

	cookieUser := createTestUser(t, usersSvc, "cookie@x.com", "secret")
	headerUser, err := usersSvc.Create(context.Background(), users.UserDraft{
		UserBase: users.UserBase{Name: "Bob", Email: "header@x.com"},
		Password: "secret",
	})
	if err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	_, cookieToken, err := authSvc.Login(context.Background(), cookieUser.Email, "secret")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	_, headerToken, err := authSvc.Login(context.Background(), headerUser.Email, "secret")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	app := newGuardedApp(t, authSvc)

	req := httptest.NewRequest(http.MethodGet, "/required", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: cookieToken})
	req.Header.Set("Authorization", "Bearer "+headerToken)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if got := body(t, resp); got != cookieUser.Email {
		t.Errorf("expected resolution via the cookie token, got %q", got)
	}
}
