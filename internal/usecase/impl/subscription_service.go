package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"estatex/config"
	deliverycontext "estatex/internal/delivery/context"
	"estatex/internal/domain/entity"
	domainerrors "estatex/internal/domain/errors"
	"estatex/internal/domain/repository"
	"estatex/internal/domain/service"
	"estatex/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type subscriptionService struct {
	subscriptionRepo repository.SubscriptionRepository
	txManager        repository.TransactionManager
	gateway          service.PaymentGateway
	pricePerLocation float64
	currency         string
	validityDays     int
	defaultRadius    float64
	now              func() time.Time
	logger           *slog.Logger
}

// SubscriptionServiceParams holds dependencies for SubscriptionService, injected by Fx.
type SubscriptionServiceParams struct {
	fx.In

	SubscriptionRepo repository.SubscriptionRepository
	TxManager        repository.TransactionManager
	Gateway          service.PaymentGateway
	Config           *config.Config
	Logger           *slog.Logger
}

// NewSubscriptionService creates a new subscription service instance
func NewSubscriptionService(params SubscriptionServiceParams) usecase.SubscriptionUsecase {
	srv := &subscriptionService{
		subscriptionRepo: params.SubscriptionRepo,
		txManager:        params.TxManager,
		gateway:          params.Gateway,
		pricePerLocation: 999,
		currency:         "INR",
		validityDays:     30,
		defaultRadius:    5000,
		now:              time.Now,
		logger:           params.Logger,
	}
	if cfg := params.Config; cfg != nil && cfg.Subscription != nil {
		if cfg.Subscription.PricePerLocation > 0 {
			srv.pricePerLocation = cfg.Subscription.PricePerLocation
		}
		if cfg.Subscription.Currency != "" {
			srv.currency = cfg.Subscription.Currency
		}
		if cfg.Subscription.ValidityDays > 0 {
			srv.validityDays = cfg.Subscription.ValidityDays
		}
		if cfg.Subscription.DefaultRadius > 0 {
			srv.defaultRadius = cfg.Subscription.DefaultRadius
		}
	}

	return srv
}

func (srv *subscriptionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *subscriptionService) Pricing() *usecase.Pricing {
	return &usecase.Pricing{
		BasePrice:    srv.pricePerLocation,
		Currency:     srv.currency,
		ValidityDays: srv.validityDays,
		Description:  fmt.Sprintf("Access to listings around each selected location for %d days", srv.validityDays),
	}
}

func (srv *subscriptionService) GetForBroker(ctx context.Context, brokerID uuid.UUID) (*entity.Subscription, error) {
	subscription, err := srv.subscriptionRepo.FindByBroker(ctx, brokerID)
	if err != nil {
		if errors.Is(err, repository.ErrSubscriptionNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find subscription")
	}

	return subscription, nil
}

// UpsertForBroker prices the requested locations and resets the subscription to
// pending. The user's back-reference is written in the same transaction.
func (srv *subscriptionService) UpsertForBroker(ctx context.Context, brokerID uuid.UUID, input *usecase.UpsertSubscriptionInput) (*entity.Subscription, error) {
	locations, err := srv.coverageLocations(input.Locations)
	if err != nil {
		return nil, err
	}

	subscription, err := srv.GetForBroker(ctx, brokerID)
	if err != nil {
		return nil, err
	}
	if subscription == nil {
		subscription = &entity.Subscription{BrokerID: brokerID}
	}
	subscription.ReplaceLocations(locations, srv.now(), time.Duration(srv.validityDays)*24*time.Hour)

	err = srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		if err := repos.SubscriptionRepo().Save(ctx, subscription); err != nil {
			return err
		}

		return repos.UserRepo().SetSubscription(ctx, brokerID, subscription.ID)
	})
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrBrokerNotFound
		}

		return nil, errors.Wrap(err, "failed to save subscription")
	}

	srv.log(ctx).Info("Subscription updated",
		slog.String("subscription_id", subscription.ID.String()),
		slog.String("broker_id", brokerID.String()),
		slog.Int("locations", len(locations)),
		slog.Float64("total_price", subscription.TotalPrice),
	)

	return subscription, nil
}

func (srv *subscriptionService) coverageLocations(inputs []usecase.LocationInput) ([]entity.CoverageLocation, error) {
	if len(inputs) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithMessage("Please select at least one location")
	}

	locations := make([]entity.CoverageLocation, 0, len(inputs))
	for _, in := range inputs {
		center := entity.Coordinates{Latitude: in.Latitude, Longitude: in.Longitude}
		if !center.IsValid() {
			return nil, domainerrors.ErrInvalidCoordinates.WithDetails(in.Name)
		}
		if in.Radius < 0 {
			return nil, domainerrors.ErrValidationFailed.WithMessage("radius must not be negative")
		}

		radius := in.Radius
		if radius == 0 {
			radius = srv.defaultRadius
		}
		locations = append(locations, entity.CoverageLocation{
			Name:   strings.TrimSpace(in.Name),
			Center: center,
			Radius: radius,
			Price:  srv.pricePerLocation,
		})
	}

	return locations, nil
}

// CompletePayment charges the current total. A declined charge is recorded in
// the history before the failure is returned.
func (srv *subscriptionService) CompletePayment(ctx context.Context, brokerID uuid.UUID) (*entity.Subscription, error) {
	subscription, err := srv.subscriptionRepo.FindByBroker(ctx, brokerID)
	if err != nil {
		if errors.Is(err, repository.ErrSubscriptionNotFound) {
			return nil, domainerrors.ErrSubscriptionNotFound
		}

		return nil, errors.Wrap(err, "failed to find subscription")
	}

	result, err := srv.gateway.Charge(ctx, &service.ChargeRequest{
		SubscriptionID: subscription.ID,
		BrokerID:       brokerID,
		Amount:         subscription.TotalPrice,
		Currency:       srv.currency,
		Description:    fmt.Sprintf("Subscription for %d locations", len(subscription.Locations)),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to charge subscription")
	}

	subscription.RecordPayment(entity.PaymentRecord{
		Amount:        subscription.TotalPrice,
		Date:          srv.now(),
		Status:        result.Status,
		TransactionID: result.TransactionID,
	})

	if err := srv.subscriptionRepo.Save(ctx, subscription); err != nil {
		return nil, errors.Wrap(err, "failed to record payment")
	}

	logger := srv.log(ctx).With(
		slog.String("subscription_id", subscription.ID.String()),
		slog.String("transaction_id", result.TransactionID),
	)
	if result.Status == entity.PaymentFailed {
		logger.Warn("Subscription payment declined")

		return nil, domainerrors.ErrPaymentFailed
	}
	logger.Info("Subscription payment recorded", slog.String("status", string(result.Status)))

	return subscription, nil
}

func (srv *subscriptionService) List(ctx context.Context) ([]*entity.Subscription, error) {
	subscriptions, err := srv.subscriptionRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list subscriptions")
	}

	return subscriptions, nil
}

func (srv *subscriptionService) SetStatus(ctx context.Context, id uuid.UUID, input *usecase.SetSubscriptionStatusInput) (*entity.Subscription, error) {
	if !input.Status.IsAdminSettable() {
		return nil, domainerrors.ErrValidationFailed.WithMessage("Invalid status")
	}

	subscription, err := srv.subscriptionRepo.UpdateStatus(ctx, id, input.Status)
	if err != nil {
		if errors.Is(err, repository.ErrSubscriptionNotFound) {
			return nil, domainerrors.ErrSubscriptionNotFound
		}

		return nil, errors.Wrap(err, "failed to update subscription status")
	}

	return subscription, nil
}
