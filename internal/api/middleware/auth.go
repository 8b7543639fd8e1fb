package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lecturehall/lecture-api/internal/api/metrics"
	"github.com/lecturehall/lecture-api/internal/core/ports"
	"github.com/lecturehall/lecture-api/internal/security"
)

// Context keys set by Authenticate on success.
const (
	CtxUserID = "user_id"
	CtxEmail  = "email"
	CtxRole   = "role"
)

// Authenticate converts an inbound request's carried credential into a
// resolved identity, or rejects the request before it reaches a handler.
//
// The token is extracted from the first extractor that yields one, verified
// against the signing secret, and then the identity is re-resolved by email
// against the user store. Claims are never trusted for the role: a token
// issued before a role change or account deletion reflects the current
// record, not the stale claims. A lookup failure rejects the request the
// same as a missing identity.
func Authenticate(jwtSecret string, users ports.UserRepository, extractors ...TokenExtractor) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var token string
			for _, ex := range extractors {
				if token = ex.Extract(c); token != "" {
					break
				}
			}
			if token == "" {
				metrics.AuthRejectionsTotal.WithLabelValues("token_missing").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing credentials")
			}

			claims, err := security.VerifyToken(token, jwtSecret)
			if err != nil {
				metrics.AuthRejectionsTotal.WithLabelValues("token_invalid").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			user, err := users.FindByEmail(c.Request().Context(), claims.Email)
			if err != nil {
				// Fail closed: "don't know" and "gone" both reject.
				metrics.AuthRejectionsTotal.WithLabelValues("identity_gone").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(CtxUserID, user.ID)
			c.Set(CtxEmail, user.Email)
			c.Set(CtxRole, user.Role)

			return next(c)
		}
	}
}
