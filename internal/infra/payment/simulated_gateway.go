// Package payment holds the subscription payment gateways.
package payment

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"estatex/internal/domain/constants"
	"estatex/internal/domain/entity"
	"estatex/internal/domain/service"
)

// simulatedGateway approves every charge and mints a TRANS_<unix millis> id.
type simulatedGateway struct {
	logger *slog.Logger
	now    func() time.Time
}

// NewSimulatedGateway creates the gateway used when no real provider is configured.
func NewSimulatedGateway(logger *slog.Logger) service.PaymentGateway {
	return &simulatedGateway{logger: logger, now: time.Now}
}

func (g *simulatedGateway) Charge(_ context.Context, req *service.ChargeRequest) (*service.ChargeResult, error) {
	txID := constants.SimulatedTransactionPrefix + strconv.FormatInt(g.now().UnixMilli(), 10)

	g.logger.Debug("[SimulatedPayment] Charge approved",
		slog.String("subscription_id", req.SubscriptionID.String()),
		slog.Float64("amount", req.Amount),
		slog.String("transaction_id", txID),
	)

	return &service.ChargeResult{
		TransactionID: txID,
		Status:        entity.PaymentCompleted,
	}, nil
}
