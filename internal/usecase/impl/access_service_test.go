package impl

import (
	"context"
	"testing"
	"time"

	"estatex/config"
	"estatex/internal/domain/entity"
	domainerrors "estatex/internal/domain/errors"
	"estatex/internal/domain/repository"
	"estatex/internal/domain/service"
	mockRepo "estatex/internal/mocks/repository"
	mockSvc "estatex/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type accessServiceFixtures struct {
	service          *accessService
	userRepo         *mockRepo.MockUserRepository
	subscriptionRepo *mockRepo.MockSubscriptionRepository
	tokenService     *mockSvc.MockTokenService
}

func createTestAccessService(t *testing.T, policy string) accessServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	subscriptionRepo := mockRepo.NewMockSubscriptionRepository(t)
	tokenService := mockSvc.NewMockTokenService(t)

	cfg := newTestConfig()
	cfg.Subscription.CoveragePolicy = policy

	srv := NewAccessService(AccessServiceParams{
		UserRepo:         userRepo,
		SubscriptionRepo: subscriptionRepo,
		TokenService:     tokenService,
		Config:           cfg,
		Logger:           newDiscardLogger(),
	}).(*accessService)
	srv.now = fixedClock

	return accessServiceFixtures{
		service:          srv,
		userRepo:         userRepo,
		subscriptionRepo: subscriptionRepo,
		tokenService:     tokenService,
	}
}

func activeSubscription(brokerID uuid.UUID) *entity.Subscription {
	return &entity.Subscription{
		BrokerID:      brokerID,
		Status:        entity.SubscriptionActive,
		PaymentStatus: entity.PaymentCompleted,
		StartDate:     fixedNow.Add(-24 * time.Hour),
		EndDate:       fixedNow.Add(29 * 24 * time.Hour),
		Locations: []entity.CoverageLocation{{
			Name:   "Andheri",
			Center: entity.Coordinates{Latitude: 19.1136, Longitude: 72.8697},
			Radius: 5000,
			Price:  999,
		}},
	}
}

func TestAccessService_Authenticate_RejectsMalformedHeaderWithoutLookup(t *testing.T) {
	for _, header := range []string{"", "Bearer", "Bearer ", "Basic abc", "bearer abc", "Token abc"} {
		t.Run(header, func(t *testing.T) {
			fx := createTestAccessService(t, config.CoveragePolicyRadius)

			user, err := fx.service.Authenticate(context.Background(), header)

			assert.Nil(t, user)
			assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
		})
	}
}

func TestAccessService_Authenticate(t *testing.T) {
	broker := newBroker()

	tests := []struct {
		name    string
		setup   func(fx accessServiceFixtures)
		wantErr error
	}{
		{
			name: "valid token",
			setup: func(fx accessServiceFixtures) {
				fx.tokenService.EXPECT().Verify("good").Return(&service.Claims{UserID: broker.ID}, nil)
				fx.userRepo.EXPECT().FindByID(mock.Anything, broker.ID).Return(broker, nil)
			},
		},
		{
			name: "bad signature",
			setup: func(fx accessServiceFixtures) {
				fx.tokenService.EXPECT().Verify("good").Return(nil, errors.New("signature is invalid"))
			},
			wantErr: domainerrors.ErrUnauthorized,
		},
		{
			name: "user deleted",
			setup: func(fx accessServiceFixtures) {
				fx.tokenService.EXPECT().Verify("good").Return(&service.Claims{UserID: broker.ID}, nil)
				fx.userRepo.EXPECT().FindByID(mock.Anything, broker.ID).Return(nil, repository.ErrUserNotFound)
			},
			wantErr: domainerrors.ErrUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAccessService(t, config.CoveragePolicyRadius)
			tt.setup(fx)

			user, err := fx.service.Authenticate(context.Background(), "Bearer good")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, broker.ID, user.ID)
		})
	}
}

func TestAccessService_RequireAdmin(t *testing.T) {
	fx := createTestAccessService(t, config.CoveragePolicyRadius)

	assert.NoError(t, fx.service.RequireAdmin(newAdmin()))
	assert.ErrorIs(t, fx.service.RequireAdmin(newBroker()), domainerrors.ErrAdminRequired)
	assert.ErrorIs(t, fx.service.RequireAdmin(nil), domainerrors.ErrAdminRequired)
}

func TestAccessService_RequireActiveSubscription(t *testing.T) {
	broker := newBroker()

	expired := activeSubscription(broker.ID)
	expired.EndDate = fixedNow.Add(-time.Minute)

	unpaid := activeSubscription(broker.ID)
	unpaid.PaymentStatus = entity.PaymentPending

	tests := []struct {
		name         string
		subscription *entity.Subscription
		findErr      error
		wantErr      error
	}{
		{name: "active", subscription: activeSubscription(broker.ID)},
		{name: "missing", findErr: repository.ErrSubscriptionNotFound, wantErr: domainerrors.ErrSubscriptionRequired},
		{name: "expired", subscription: expired, wantErr: domainerrors.ErrSubscriptionRequired},
		{name: "unpaid", subscription: unpaid, wantErr: domainerrors.ErrSubscriptionRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAccessService(t, config.CoveragePolicyRadius)
			fx.subscriptionRepo.EXPECT().FindByBroker(mock.Anything, broker.ID).Return(tt.subscription, tt.findErr)

			subscription, err := fx.service.RequireActiveSubscription(context.Background(), broker)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, subscription)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, broker.ID, subscription.BrokerID)
		})
	}
}

func TestAccessService_CheckLocationAccess(t *testing.T) {
	broker := newBroker()
	inside := entity.Coordinates{Latitude: 19.1200, Longitude: 72.8700}
	outside := entity.Coordinates{Latitude: 18.5204, Longitude: 73.8567}

	t.Run("covered point", func(t *testing.T) {
		fx := createTestAccessService(t, config.CoveragePolicyRadius)
		fx.subscriptionRepo.EXPECT().FindByBroker(mock.Anything, broker.ID).Return(activeSubscription(broker.ID), nil)

		assert.NoError(t, fx.service.CheckLocationAccess(context.Background(), broker, inside))
	})

	t.Run("uncovered point", func(t *testing.T) {
		fx := createTestAccessService(t, config.CoveragePolicyRadius)
		fx.subscriptionRepo.EXPECT().FindByBroker(mock.Anything, broker.ID).Return(activeSubscription(broker.ID), nil)

		err := fx.service.CheckLocationAccess(context.Background(), broker, outside)

		assert.ErrorIs(t, err, domainerrors.ErrLocationNotCovered)
	})

	t.Run("any policy grants uncovered point", func(t *testing.T) {
		fx := createTestAccessService(t, config.CoveragePolicyAny)
		fx.subscriptionRepo.EXPECT().FindByBroker(mock.Anything, broker.ID).Return(activeSubscription(broker.ID), nil)

		assert.NoError(t, fx.service.CheckLocationAccess(context.Background(), broker, outside))
	})

	t.Run("no subscription", func(t *testing.T) {
		fx := createTestAccessService(t, config.CoveragePolicyAny)
		fx.subscriptionRepo.EXPECT().FindByBroker(mock.Anything, broker.ID).Return(nil, repository.ErrSubscriptionNotFound)

		err := fx.service.CheckLocationAccess(context.Background(), broker, inside)

		assert.ErrorIs(t, err, domainerrors.ErrLocationNotCovered)
	})

	t.Run("invalid point", func(t *testing.T) {
		fx := createTestAccessService(t, config.CoveragePolicyRadius)

		err := fx.service.CheckLocationAccess(context.Background(), broker, entity.Coordinates{Latitude: 91})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinates)
	})
}
