package ports

import (
	"context"

	"github.com/lecturehall/lecture-api/internal/core/domain"
)

// RegisterInput carries the fields accepted at registration time.
type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Age      int
	Role     string
}

// UpdateProfileInput carries the mutable profile fields. Empty fields are
// left unchanged.
type UpdateProfileInput struct {
	Name     string
	Password string
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	Profile(ctx context.Context, email string) (*domain.User, error)
	UpdateProfile(ctx context.Context, email string, in UpdateProfileInput) (*domain.User, error)
	DeleteUser(ctx context.Context, id string) error
}
