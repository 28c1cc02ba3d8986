package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// CookieName is the cookie carrying the session token for browser
// clients. The cookie value is the bare token, no scheme prefix.
const CookieName = "access_token"

type extractor func(c *fiber.Ctx) (string, bool)

// extractors is an ordered strategy list: the first hit wins. Cookie
// before header, so the same routes serve browsers and API clients.
var extractors = []extractor{
	fromCookie,
	fromAuthorizationHeader,
}

// ExtractToken locates a candidate token on the request. It reports
// false when no credential is present in any transport.
func ExtractToken(c *fiber.Ctx) (string, bool) {
	for _, extract := range extractors {
		if token, ok := extract(c); ok {
			return token, true
		}
	}

	return "", false
}

func fromCookie(c *fiber.Ctx) (string, bool) {
	token := c.Cookies(CookieName)

	return token, token != ""
}

func fromAuthorizationHeader(c *fiber.Ctx) (string, bool) {
	authorization := c.Get(fiber.HeaderAuthorization)

	scheme, token, found := strings.Cut(authorization, " ")
	if !found || !strings.EqualFold(scheme, "bearer") {
		return "", false
	}

	return token, token != ""
}
