package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/lecturehall/lecture-api/internal/api/metrics"
	"github.com/lecturehall/lecture-api/internal/core/domain"
	"github.com/lecturehall/lecture-api/internal/core/ports"
)

// CookieOptions controls how the session cookie is written at login.
type CookieOptions struct {
	Name   string
	TTL    time.Duration
	Secure bool
}

// AuthHandler handles registration, login, logout and profile operations.
type AuthHandler struct {
	service ports.AuthService
	cookies CookieOptions
	audit   ports.AuditSink
}

func NewAuthHandler(service ports.AuthService, cookies CookieOptions, audit ports.AuditSink) *AuthHandler {
	return &AuthHandler{service: service, cookies: cookies, audit: audit}
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      201   {object}  domain.User
// @Failure      400   {object}  messageResponse
// @Failure      409   {object}  messageResponse
// @Router       /user/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
	}

	user, err := h.service.Register(c.Request().Context(), ports.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Age:      req.Age,
		Role:     req.Role,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return c.JSON(http.StatusConflict, messageResponse{Message: "user already exists"})
		}
		return err
	}

	metrics.RegistrationsTotal.Inc()
	h.record(user.Email, domain.ActionCreate, domain.ResourceUser, user.ID)

	return c.JSON(http.StatusCreated, user)
}

// Login authenticates a user, sets the session cookie, and returns the token.
//
// @Summary      Login
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      401   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Router       /user/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
	}

	token, user, err := h.service.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			metrics.LoginsTotal.WithLabelValues("not_found").Inc()
			return c.JSON(http.StatusNotFound, messageResponse{Message: "User not found"})
		case errors.Is(err, domain.ErrInvalidPassword):
			metrics.LoginsTotal.WithLabelValues("invalid_password").Inc()
			return c.JSON(http.StatusUnauthorized, messageResponse{Message: "Invalid password"})
		}
		return err
	}

	c.SetCookie(h.sessionCookie(token, h.cookies.TTL))
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	return c.JSON(http.StatusOK, loginResponse{
		Message: "Login successful",
		Token:   token,
		User:    user,
	})
}

// Logout clears the session cookie. The token itself stays valid until
// expiry; there is no server-side revocation list.
//
// @Summary      Logout
// @Tags         user
// @Produce      json
// @Success      200  {object}  messageResponse
// @Router       /user/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	expired := h.sessionCookie("", -time.Hour)
	expired.MaxAge = -1
	c.SetCookie(expired)

	return c.JSON(http.StatusOK, messageResponse{Message: "Logout successful"})
}

// Profile returns the authenticated user's record.
//
// @Summary      Get current user profile
// @Tags         user
// @Produce      json
// @Security     ApiKeyAuth
// @Success      200  {object}  domain.User
// @Failure      401  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /user/profile [get]
func (h *AuthHandler) Profile(c echo.Context) error {
	_, email, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	user, err := h.service.Profile(c.Request().Context(), email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateProfile changes the authenticated user's name and/or password.
//
// @Summary      Update current user profile
// @Tags         user
// @Accept       json
// @Produce      json
// @Security     ApiKeyAuth
// @Param        body  body      updateProfileRequest  true  "Fields to update"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Router       /user/profile [patch]
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	_, email, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
	}

	user, err := h.service.UpdateProfile(c.Request().Context(), email, ports.UpdateProfileInput{
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	h.record(email, domain.ActionUpdate, domain.ResourceUser, user.ID)
	return c.JSON(http.StatusOK, user)
}

// DeleteUser removes a user account by ID. Tokens issued to the deleted
// account stop authenticating immediately.
//
// @Summary      Delete a user
// @Tags         user
// @Produce      json
// @Security     ApiKeyAuth
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /user/{id} [delete]
func (h *AuthHandler) DeleteUser(c echo.Context) error {
	_, email, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	id := c.Param("id")
	if err := h.service.DeleteUser(c.Request().Context(), id); err != nil {
		return err
	}

	h.record(email, domain.ActionDelete, domain.ResourceUser, id)
	return c.JSON(http.StatusOK, messageResponse{Message: "User deleted successfully"})
}

func (h *AuthHandler) sessionCookie(token string, ttl time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     h.cookies.Name,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   h.cookies.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}

func (h *AuthHandler) record(actor string, action domain.Action, resource, resourceID string) {
	if h.audit == nil {
		return
	}
	h.audit.Enqueue(domain.AuditEvent{
		Actor:      actor,
		Action:     action,
		Resource:   resource,
		ResourceID: resourceID,
		At:         time.Now().UTC(),
	})
	metrics.AuditEventsTotal.WithLabelValues(string(action), resource).Inc()
}
