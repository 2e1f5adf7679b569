// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"estatex/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailTaken is returned when the unique email constraint is violated.
	ErrEmailTaken = errors.New("email already registered")
)

// UserRepository defines the standard operations for user persistence.
// Users are never hard-deleted.
type UserRepository interface {
	// FindByID retrieves a user without the password hash.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a user including the password hash, for login.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies the profile fields and status of an existing user.
	Update(ctx context.Context, user *entity.User) error

	// SetSubscription stores the back-reference to the user's subscription.
	SetSubscription(ctx context.Context, userID, subscriptionID uuid.UUID) error

	// ListBrokers returns all non-admin users with their subscription, newest first.
	ListBrokers(ctx context.Context) ([]*entity.User, error)

	// CountBrokers counts non-admin users.
	CountBrokers(ctx context.Context) (int64, error)
}
