package payment

import (
	"log/slog"

	"estatex/config"
	"estatex/internal/domain/constants"
	"estatex/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for the PaymentGateway, injected by Fx
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewPaymentGateway picks the gateway named by payment.provider.
func NewPaymentGateway(params Params) (service.PaymentGateway, error) {
	cfg := params.Config.Payment
	if cfg == nil || cfg.Provider == "" || cfg.Provider == constants.PaymentProviderSimulated {
		params.Logger.Info("Using simulated payment gateway")

		return NewSimulatedGateway(params.Logger), nil
	}

	switch cfg.Provider {
	case constants.PaymentProviderStripe:
		if cfg.StripeSecretKey == "" {
			return nil, errors.New("stripe secret key is required for stripe provider")
		}
		if cfg.StripePaymentMethod == "" {
			return nil, errors.New("stripe payment method is required for stripe provider")
		}
		params.Logger.Info("Using Stripe payment gateway")

		return NewStripeGateway(cfg.StripeSecretKey, cfg.StripePaymentMethod, params.Logger), nil
	default:
		return nil, errors.Errorf("unknown payment provider: %s", cfg.Provider)
	}
}

// Module provides the payment FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewPaymentGateway),
)
