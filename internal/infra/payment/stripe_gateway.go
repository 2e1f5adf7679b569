package payment

import (
	"context"
	"log/slog"
	"math"
	"strings"

	"estatex/internal/domain/entity"
	"estatex/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/client"
)

// stripeGateway charges through a confirmed PaymentIntent.
type stripeGateway struct {
	api           *client.API
	paymentMethod string
	logger        *slog.Logger
}

// NewStripeGateway creates a gateway bound to secretKey. paymentMethod is the
// method confirmed against each intent.
func NewStripeGateway(secretKey, paymentMethod string, logger *slog.Logger) service.PaymentGateway {
	api := &client.API{}
	api.Init(secretKey, nil)

	return &stripeGateway{api: api, paymentMethod: paymentMethod, logger: logger}
}

func (g *stripeGateway) Charge(ctx context.Context, req *service.ChargeRequest) (*service.ChargeResult, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(minorUnits(req.Amount)),
		Currency:           stripe.String(strings.ToLower(req.Currency)),
		Description:        stripe.String(req.Description),
		PaymentMethod:      stripe.String(g.paymentMethod),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		Confirm:            stripe.Bool(true),
	}
	params.Context = ctx
	params.AddMetadata("subscription_id", req.SubscriptionID.String())
	params.AddMetadata("broker_id", req.BrokerID.String())

	intent, err := g.api.PaymentIntents.New(params)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) && stripeErr.Type == stripe.ErrorTypeCard {
			transactionID := declineReference(stripeErr)
			g.logger.Warn("[StripePayment] Card declined",
				slog.String("subscription_id", req.SubscriptionID.String()),
				slog.String("transaction_id", transactionID),
				slog.String("code", string(stripeErr.Code)),
			)

			return &service.ChargeResult{TransactionID: transactionID, Status: entity.PaymentFailed}, nil
		}

		return nil, errors.Wrap(err, "stripe payment intent")
	}

	return &service.ChargeResult{
		TransactionID: intent.ID,
		Status:        intentStatus(intent.Status),
	}, nil
}

// declineReference picks the most specific Stripe identifier attached to a
// declined charge.
func declineReference(stripeErr *stripe.Error) string {
	switch {
	case stripeErr.PaymentIntent != nil && stripeErr.PaymentIntent.ID != "":
		return stripeErr.PaymentIntent.ID
	case stripeErr.ChargeID != "":
		return stripeErr.ChargeID
	default:
		return stripeErr.RequestID
	}
}

func intentStatus(status stripe.PaymentIntentStatus) entity.PaymentStatus {
	switch status {
	case stripe.PaymentIntentStatusSucceeded:
		return entity.PaymentCompleted
	case stripe.PaymentIntentStatusCanceled, stripe.PaymentIntentStatusRequiresPaymentMethod:
		return entity.PaymentFailed
	default:
		return entity.PaymentPending
	}
}

// minorUnits converts a major-unit amount to the smallest currency unit.
func minorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
