package impl

import (
	"context"
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

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const bearerScheme = "Bearer"

type accessService struct {
	userRepo         repository.UserRepository
	subscriptionRepo repository.SubscriptionRepository
	tokenService     service.TokenService
	coveragePolicy   string
	now              func() time.Time
	logger           *slog.Logger
}

// AccessServiceParams holds dependencies for AccessService, injected by Fx.
type AccessServiceParams struct {
	fx.In

	UserRepo         repository.UserRepository
	SubscriptionRepo repository.SubscriptionRepository
	TokenService     service.TokenService
	Config           *config.Config
	Logger           *slog.Logger
}

// NewAccessService creates the request gates.
func NewAccessService(params AccessServiceParams) usecase.AccessUsecase {
	policy := config.CoveragePolicyRadius
	if params.Config != nil && params.Config.Subscription != nil && params.Config.Subscription.CoveragePolicy != "" {
		policy = params.Config.Subscription.CoveragePolicy
	}

	return &accessService{
		userRepo:         params.UserRepo,
		subscriptionRepo: params.SubscriptionRepo,
		tokenService:     params.TokenService,
		coveragePolicy:   policy,
		now:              time.Now,
		logger:           params.Logger,
	}
}

func (srv *accessService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Authenticate never tells the caller why a credential was rejected.
func (srv *accessService) Authenticate(ctx context.Context, authorization string) (*entity.User, error) {
	token, ok := bearerToken(authorization)
	if !ok {
		return nil, domainerrors.ErrUnauthorized
	}

	claims, err := srv.tokenService.Verify(token)
	if err != nil {
		srv.log(ctx).Debug("Token rejected", slog.Any("error", err))

		return nil, domainerrors.ErrUnauthorized
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUnauthorized
		}

		return nil, errors.Wrap(err, "failed to load authenticated user")
	}

	return user, nil
}

func (srv *accessService) RequireAdmin(user *entity.User) error {
	if !user.IsAdmin() {
		return domainerrors.ErrAdminRequired
	}

	return nil
}

func (srv *accessService) RequireActiveSubscription(ctx context.Context, user *entity.User) (*entity.Subscription, error) {
	if user == nil {
		return nil, domainerrors.ErrUnauthorized
	}

	subscription, err := srv.subscriptionRepo.FindByBroker(ctx, user.ID)
	if err != nil {
		if errors.Is(err, repository.ErrSubscriptionNotFound) {
			return nil, domainerrors.ErrSubscriptionRequired
		}

		return nil, errors.Wrap(err, "failed to load subscription")
	}

	if !subscription.IsActive(srv.now()) {
		return nil, domainerrors.ErrSubscriptionRequired
	}

	return subscription, nil
}

// CheckLocationAccess applies the coverage policy. "any" grants every point
// once an active subscription exists; "radius" requires a covering location.
func (srv *accessService) CheckLocationAccess(ctx context.Context, user *entity.User, point entity.Coordinates) error {
	if !point.IsValid() {
		return domainerrors.ErrInvalidCoordinates
	}

	subscription, err := srv.RequireActiveSubscription(ctx, user)
	if err != nil {
		if errors.Is(err, domainerrors.ErrSubscriptionRequired) {
			return domainerrors.ErrLocationNotCovered
		}

		return err
	}

	if srv.coveragePolicy == config.CoveragePolicyAny {
		return nil
	}

	if !subscription.Covers(point) {
		srv.log(ctx).Info("Location outside subscription",
			slog.String("user_id", user.ID.String()),
			slog.Float64("latitude", point.Latitude),
			slog.Float64("longitude", point.Longitude),
		)

		return domainerrors.ErrLocationNotCovered
	}

	return nil
}

func bearerToken(authorization string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(authorization), " ")
	if !found || scheme != bearerScheme {
		return "", false
	}

	token = strings.TrimSpace(token)

	return token, token != ""
}
