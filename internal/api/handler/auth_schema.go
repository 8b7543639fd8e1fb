package handler

import "github.com/lecturehall/lecture-api/internal/core/domain"

// messageResponse is the standard envelope for outcome messages and errors.
type messageResponse struct {
	Message string `json:"message"`
}

type registerRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name"     validate:"required,max=50"`
	Age      int    `json:"age"      validate:"gte=0"`
	Role     string `json:"role"     validate:"omitempty,oneof=user admin"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    *domain.User `json:"user"`
}

type updateProfileRequest struct {
	Name     string `json:"name"     validate:"omitempty,max=50"`
	Password string `json:"password" validate:"omitempty,min=1"`
}
