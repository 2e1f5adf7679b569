package impl

import (
	"context"
	"log/slog"

	deliverycontext "estatex/internal/delivery/context"
	"estatex/internal/domain/entity"
	domainerrors "estatex/internal/domain/errors"
	"estatex/internal/domain/repository"
	"estatex/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type adminService struct {
	userRepo         repository.UserRepository
	propertyRepo     repository.PropertyRepository
	subscriptionRepo repository.SubscriptionRepository
	logger           *slog.Logger
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	UserRepo         repository.UserRepository
	PropertyRepo     repository.PropertyRepository
	SubscriptionRepo repository.SubscriptionRepository
	Logger           *slog.Logger
}

// NewAdminService creates the administrator use cases.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		userRepo:         params.UserRepo,
		propertyRepo:     params.PropertyRepo,
		subscriptionRepo: params.SubscriptionRepo,
		logger:           params.Logger,
	}
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *adminService) Stats(ctx context.Context) (*entity.DashboardStats, error) {
	brokers, err := srv.userRepo.CountBrokers(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count brokers")
	}

	properties, err := srv.propertyRepo.Count(ctx, "")
	if err != nil {
		return nil, errors.Wrap(err, "failed to count properties")
	}

	pending, err := srv.propertyRepo.Count(ctx, entity.ModerationPending)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count pending properties")
	}

	active, err := srv.subscriptionRepo.CountByStatus(ctx, entity.SubscriptionActive)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count active subscriptions")
	}

	return &entity.DashboardStats{
		TotalBrokers:        brokers,
		TotalProperties:     properties,
		PendingProperties:   pending,
		ActiveSubscriptions: active,
	}, nil
}

func (srv *adminService) ListBrokers(ctx context.Context) ([]*entity.User, error) {
	brokers, err := srv.userRepo.ListBrokers(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list brokers")
	}

	return brokers, nil
}

// GetBroker returns the broker with every listing they own, in any status.
func (srv *adminService) GetBroker(ctx context.Context, id uuid.UUID) (*usecase.BrokerDetail, error) {
	broker, err := srv.findBroker(ctx, id)
	if err != nil {
		return nil, err
	}

	properties, err := srv.propertyRepo.Find(ctx, entity.PropertyFilter{OwnerID: &broker.ID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list broker properties")
	}

	return &usecase.BrokerDetail{Broker: broker, Properties: properties}, nil
}

func (srv *adminService) SetBrokerStatus(ctx context.Context, id uuid.UUID, input *usecase.SetBrokerStatusInput) (*entity.User, error) {
	if !input.Status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithMessage("Invalid status")
	}

	broker, err := srv.findBroker(ctx, id)
	if err != nil {
		return nil, err
	}

	broker.Status = input.Status
	if err := srv.userRepo.Update(ctx, broker); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrBrokerNotFound
		}

		return nil, errors.Wrap(err, "failed to update broker status")
	}

	srv.log(ctx).Info("Broker status changed",
		slog.String("broker_id", broker.ID.String()),
		slog.String("status", string(broker.Status)),
	)

	return broker, nil
}

func (srv *adminService) SubscriptionAnalytics(ctx context.Context) ([]entity.SubscriptionAnalytics, error) {
	analytics, err := srv.subscriptionRepo.Analytics(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate subscriptions")
	}

	return analytics, nil
}

func (srv *adminService) PropertyAnalytics(ctx context.Context) ([]entity.PropertyAnalytics, error) {
	analytics, err := srv.propertyRepo.Analytics(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate properties")
	}

	return analytics, nil
}

// findBroker treats admin accounts as absent.
func (srv *adminService) findBroker(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrBrokerNotFound
		}

		return nil, errors.Wrap(err, "failed to find broker")
	}

	if user.IsAdmin() {
		return nil, domainerrors.ErrBrokerNotFound
	}

	return user, nil
}
