package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/lecturehall/lecture-api/internal/core/domain"
	"github.com/lecturehall/lecture-api/internal/security"
)

type stubUserRepo struct {
	users map[string]*domain.User
}

func newStubUserRepo(users ...*domain.User) *stubUserRepo {
	r := &stubUserRepo{users: make(map[string]*domain.User)}
	for _, u := range users {
		r.users[u.Email] = u
	}
	return r
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if u, ok := r.users[email]; ok {
		clone := *u
		return &clone, nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.users[user.Email] = user
	return user, nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) (*domain.User, error) {
	r.users[user.Email] = user
	return user, nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	for email, u := range r.users {
		if u.ID == id {
			delete(r.users, email)
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func signedToken(t *testing.T, secret, userID, email, role string) string {
	t.Helper()
	token, err := security.IssueToken(secret, userID, email, role, time.Hour)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return token
}

func TestAuthenticate_ValidCookie(t *testing.T) {
	e := echo.New()
	repo := newStubUserRepo(&domain.User{ID: "id-1", Email: "alice@x.com", Role: domain.RoleAdmin})
	token := signedToken(t, "secret", "id-1", "alice@x.com", domain.RoleAdmin)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: token})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	mw := Authenticate("secret", repo, CookieExtractor{Name: "token"})
	handler := mw(func(c echo.Context) error {
		called = true
		if c.Get(CtxEmail) != "alice@x.com" {
			t.Fatalf("email not set")
		}
		if c.Get(CtxRole) != domain.RoleAdmin {
			t.Fatalf("role not set")
		}
		if c.Get(CtxUserID) != "id-1" {
			t.Fatalf("user_id not set")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestAuthenticate_MissingToken(t *testing.T) {
	e := echo.New()
	repo := newStubUserRepo()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Authenticate("secret", repo, CookieExtractor{Name: "token"})
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	e := echo.New()
	repo := newStubUserRepo(&domain.User{ID: "id-1", Email: "alice@x.com", Role: domain.RoleUser})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: "not-a-token"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Authenticate("secret", repo, CookieExtractor{Name: "token"})
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

// A cryptographically valid token whose identity has since been deleted must
// be rejected: deletion doubles as revocation.
func TestAuthenticate_IdentityGone(t *testing.T) {
	e := echo.New()
	repo := newStubUserRepo()
	token := signedToken(t, "secret", "id-1", "ghost@x.com", domain.RoleAdmin)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: token})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Authenticate("secret", repo, CookieExtractor{Name: "token"})
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

// The gate trusts the store, not the claims: a stale role in the token is
// replaced by the current record's role.
func TestAuthenticate_RoleFromStoreNotClaims(t *testing.T) {
	e := echo.New()
	repo := newStubUserRepo(&domain.User{ID: "id-1", Email: "bob@x.com", Role: domain.RoleUser})
	token := signedToken(t, "secret", "id-1", "bob@x.com", domain.RoleAdmin)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: token})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Authenticate("secret", repo, CookieExtractor{Name: "token"})
	handler := mw(func(c echo.Context) error {
		if c.Get(CtxRole) != domain.RoleUser {
			t.Fatalf("expected store role %q, got %v", domain.RoleUser, c.Get(CtxRole))
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}

func TestAuthenticate_BearerHeader(t *testing.T) {
	e := echo.New()
	repo := newStubUserRepo(&domain.User{ID: "id-1", Email: "alice@x.com", Role: domain.RoleUser})
	token := signedToken(t, "secret", "id-1", "alice@x.com", domain.RoleUser)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	mw := Authenticate("secret", repo, HeaderExtractor{})
	handler := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

// With both transports configured the cookie wins when present.
func TestAuthenticate_CookiePrecedence(t *testing.T) {
	e := echo.New()
	repo := newStubUserRepo(&domain.User{ID: "id-1", Email: "cookie@x.com", Role: domain.RoleUser})
	cookieToken := signedToken(t, "secret", "id-1", "cookie@x.com", domain.RoleUser)
	headerToken := signedToken(t, "secret", "id-2", "header@x.com", domain.RoleUser)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: cookieToken})
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+headerToken)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Authenticate("secret", repo, Extractors("both", "token")...)
	handler := mw(func(c echo.Context) error {
		if c.Get(CtxEmail) != "cookie@x.com" {
			t.Fatalf("expected cookie identity, got %v", c.Get(CtxEmail))
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}
