package usecase

import (
	"context"

	"estatex/internal/domain/entity"

	"github.com/google/uuid"
)

// LocationInput is one requested coverage location. A zero radius uses the default.
type LocationInput struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Radius    float64 `json:"radius,omitempty"`
}

// UpsertSubscriptionInput replaces the broker's coverage locations.
type UpsertSubscriptionInput struct {
	Locations []LocationInput `json:"locations"`
}

// SetSubscriptionStatusInput is an admin status change.
type SetSubscriptionStatusInput struct {
	Status entity.SubscriptionStatus `json:"status"`
}

// Pricing describes the subscription offer.
type Pricing struct {
	BasePrice    float64 `json:"basePrice"`
	Currency     string  `json:"currency"`
	ValidityDays int     `json:"validityDays"`
	Description  string  `json:"description"`
}

// SubscriptionUsecase defines the broker subscription lifecycle.
type SubscriptionUsecase interface {
	Pricing() *Pricing

	// GetForBroker returns nil without error when the broker has no subscription.
	GetForBroker(ctx context.Context, brokerID uuid.UUID) (*entity.Subscription, error)

	// UpsertForBroker replaces locations and price and resets payment.
	UpsertForBroker(ctx context.Context, brokerID uuid.UUID, input *UpsertSubscriptionInput) (*entity.Subscription, error)

	// CompletePayment charges the total price and activates on success.
	CompletePayment(ctx context.Context, brokerID uuid.UUID) (*entity.Subscription, error)

	List(ctx context.Context) ([]*entity.Subscription, error)
	SetStatus(ctx context.Context, id uuid.UUID, input *SetSubscriptionStatusInput) (*entity.Subscription, error)
}
