package repository

import (
	"context"
	"errors"

	"estatex/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrSubscriptionNotFound is returned when a subscription is not found.
var ErrSubscriptionNotFound = errors.New("subscription not found")

// SubscriptionRepository defines persistence for broker subscriptions.
type SubscriptionRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Subscription, error)

	// FindByBroker returns the broker's single subscription.
	FindByBroker(ctx context.Context, brokerID uuid.UUID) (*entity.Subscription, error)

	// Save inserts or updates by broker. TotalPrice is recomputed from the locations.
	Save(ctx context.Context, subscription *entity.Subscription) error

	// UpdateStatus sets the status and returns the updated subscription.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.SubscriptionStatus) (*entity.Subscription, error)

	// List returns all subscriptions with their broker summary, newest first.
	List(ctx context.Context) ([]*entity.Subscription, error)

	// CountByStatus counts subscriptions with the status.
	CountByStatus(ctx context.Context, status entity.SubscriptionStatus) (int64, error)

	// Analytics groups subscriptions by status with revenue totals.
	Analytics(ctx context.Context) ([]entity.SubscriptionAnalytics, error)
}
