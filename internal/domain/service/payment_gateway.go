package service

import (
	"context"

	"estatex/internal/domain/entity"

	"github.com/google/uuid"
)

// ChargeRequest describes a subscription payment.
type ChargeRequest struct {
	SubscriptionID uuid.UUID
	BrokerID       uuid.UUID
	Amount         float64
	Currency       string
	Description    string
}

// ChargeResult is the gateway outcome. A declined charge is a result, not an error.
type ChargeResult struct {
	TransactionID string
	Status        entity.PaymentStatus
}

// PaymentGateway charges brokers for subscriptions.
type PaymentGateway interface {
	Charge(ctx context.Context, req *ChargeRequest) (*ChargeResult, error)
}
