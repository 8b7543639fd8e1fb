package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lecturehall/lecture-api/internal/api/middleware"
)

// ctxIdentity extracts the identity injected by the Authenticate middleware
// and performs a fast-fail check before any service call: a non-empty email
// proves the gate ran on this route.
func ctxIdentity(c echo.Context) (userID, email, role string, err error) {
	email, _ = c.Get(middleware.CtxEmail).(string)
	if email == "" {
		return "", "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	userID, _ = c.Get(middleware.CtxUserID).(string)
	role, _ = c.Get(middleware.CtxRole).(string)
	return userID, email, role, nil
}
