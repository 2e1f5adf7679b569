// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"estatex/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SignupInput defines the data required to register a broker.
type SignupInput struct {
	FullName        string  `json:"fullName" validate:"required"`
	Email           string  `json:"email" validate:"required,email"`
	Phone           string  `json:"phone" validate:"required"`
	ReraNumber      string  `json:"reraNumber" validate:"required"`
	State           string  `json:"state" validate:"required"`
	City            string  `json:"city" validate:"required"`
	Password        string  `json:"password" validate:"required,min=6"`
	ConfirmPassword string  `json:"confirmPassword" validate:"required"`
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`
}

// LoginInput defines the data required for a broker to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileInput carries the editable profile fields. Nil fields are left unchanged.
type UpdateProfileInput struct {
	FullName   *string  `json:"fullName,omitempty"`
	Phone      *string  `json:"phone,omitempty"`
	ReraNumber *string  `json:"reraNumber,omitempty"`
	State      *string  `json:"state,omitempty"`
	City       *string  `json:"city,omitempty"`
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`
}

// --- Output DTOs ---

// AuthOutput is returned by signup and login.
type AuthOutput struct {
	Token string       `json:"token"`
	User  *entity.User `json:"user"`
}

// UserUsecase defines broker registration, login and profile operations.
type UserUsecase interface {
	Signup(ctx context.Context, input *SignupInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.User, error)
}
