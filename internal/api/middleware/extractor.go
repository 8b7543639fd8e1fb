package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
)

// TokenExtractor pulls a session token out of a request. Implementations
// return the empty string when their transport location carries nothing.
type TokenExtractor interface {
	Extract(c echo.Context) string
}

// CookieExtractor reads the token from a named cookie.
type CookieExtractor struct {
	Name string
}

func (e CookieExtractor) Extract(c echo.Context) string {
	cookie, err := c.Cookie(e.Name)
	if err != nil || cookie == nil {
		return ""
	}
	return cookie.Value
}

// HeaderExtractor reads the token from the Authorization header using the
// Bearer scheme.
type HeaderExtractor struct{}

func (e HeaderExtractor) Extract(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}

// Extractors builds the extractor chain for the configured transport:
// "cookie", "header", or "both". With "both" the cookie is tried first.
// Unknown values fall back to cookie-only.
func Extractors(transport, cookieName string) []TokenExtractor {
	switch transport {
	case "header":
		return []TokenExtractor{HeaderExtractor{}}
	case "both":
		return []TokenExtractor{CookieExtractor{Name: cookieName}, HeaderExtractor{}}
	default:
		return []TokenExtractor{CookieExtractor{Name: cookieName}}
	}
}
