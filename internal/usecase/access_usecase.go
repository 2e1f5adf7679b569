package usecase

import (
	"context"

	"estatex/internal/domain/entity"
)

// AccessUsecase holds the request gates. Every gate after Authenticate
// expects the user it resolved.
type AccessUsecase interface {
	// Authenticate resolves the user named by an "Authorization: Bearer <token>" value.
	// A missing or non-Bearer value fails before any lookup.
	Authenticate(ctx context.Context, authorization string) (*entity.User, error)

	RequireAdmin(user *entity.User) error

	// RequireActiveSubscription reloads the subscription and checks it is active now.
	RequireActiveSubscription(ctx context.Context, user *entity.User) (*entity.Subscription, error)

	// CheckLocationAccess checks the active subscription covers the point.
	CheckLocationAccess(ctx context.Context, user *entity.User, point entity.Coordinates) error
}
