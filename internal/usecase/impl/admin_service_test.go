package impl

import (
	"context"
	"testing"

	"estatex/internal/domain/entity"
	domainerrors "estatex/internal/domain/errors"
	"estatex/internal/domain/repository"
	mockRepo "estatex/internal/mocks/repository"
	"estatex/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type adminServiceFixtures struct {
	service          usecase.AdminUsecase
	userRepo         *mockRepo.MockUserRepository
	propertyRepo     *mockRepo.MockPropertyRepository
	subscriptionRepo *mockRepo.MockSubscriptionRepository
}

func createTestAdminService(t *testing.T) adminServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	propertyRepo := mockRepo.NewMockPropertyRepository(t)
	subscriptionRepo := mockRepo.NewMockSubscriptionRepository(t)

	return adminServiceFixtures{
		service: NewAdminService(AdminServiceParams{
			UserRepo:         userRepo,
			PropertyRepo:     propertyRepo,
			SubscriptionRepo: subscriptionRepo,
			Logger:           newDiscardLogger(),
		}),
		userRepo:         userRepo,
		propertyRepo:     propertyRepo,
		subscriptionRepo: subscriptionRepo,
	}
}

func TestAdminService_Stats(t *testing.T) {
	fx := createTestAdminService(t)

	fx.userRepo.EXPECT().CountBrokers(mock.Anything).Return(12, nil)
	fx.propertyRepo.EXPECT().Count(mock.Anything, entity.ModerationStatus("")).Return(40, nil)
	fx.propertyRepo.EXPECT().Count(mock.Anything, entity.ModerationPending).Return(7, nil)
	fx.subscriptionRepo.EXPECT().CountByStatus(mock.Anything, entity.SubscriptionActive).Return(5, nil)

	stats, err := fx.service.Stats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, &entity.DashboardStats{
		TotalBrokers:        12,
		TotalProperties:     40,
		PendingProperties:   7,
		ActiveSubscriptions: 5,
	}, stats)
}

func TestAdminService_Stats_PropagatesStoreFailure(t *testing.T) {
	fx := createTestAdminService(t)

	fx.userRepo.EXPECT().CountBrokers(mock.Anything).Return(0, errors.New("timeout"))

	_, err := fx.service.Stats(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to count brokers")
}

func TestAdminService_GetBroker_IncludesAllListings(t *testing.T) {
	fx := createTestAdminService(t)
	broker := newBroker()
	listings := []*entity.Property{
		storedResale(broker, entity.ModerationPending),
		storedResale(broker, entity.ModerationApproved),
	}

	fx.userRepo.EXPECT().FindByID(mock.Anything, broker.ID).Return(broker, nil)
	fx.propertyRepo.EXPECT().
		Find(mock.Anything, mock.MatchedBy(func(filter entity.PropertyFilter) bool {
			return filter.OwnerID != nil && *filter.OwnerID == broker.ID && filter.Status == ""
		})).
		Return(listings, nil)

	detail, err := fx.service.GetBroker(context.Background(), broker.ID)

	require.NoError(t, err)
	assert.Equal(t, broker, detail.Broker)
	assert.Len(t, detail.Properties, 2)
}

func TestAdminService_GetBroker_NotFound(t *testing.T) {
	tests := []struct {
		name  string
		setup func(fx adminServiceFixtures, id uuid.UUID)
	}{
		{
			name: "missing user",
			setup: func(fx adminServiceFixtures, id uuid.UUID) {
				fx.userRepo.EXPECT().FindByID(mock.Anything, id).Return(nil, repository.ErrUserNotFound)
			},
		},
		{
			name: "admin account",
			setup: func(fx adminServiceFixtures, id uuid.UUID) {
				admin := newAdmin()
				admin.ID = id
				fx.userRepo.EXPECT().FindByID(mock.Anything, id).Return(admin, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAdminService(t)
			id := uuid.New()
			tt.setup(fx, id)

			_, err := fx.service.GetBroker(context.Background(), id)

			assert.ErrorIs(t, err, domainerrors.ErrBrokerNotFound)
		})
	}
}

func TestAdminService_SetBrokerStatus(t *testing.T) {
	fx := createTestAdminService(t)
	broker := newBroker()

	fx.userRepo.EXPECT().FindByID(mock.Anything, broker.ID).Return(broker, nil)
	fx.userRepo.EXPECT().
		Update(mock.Anything, mock.MatchedBy(func(user *entity.User) bool {
			return user.Status == entity.AccountStatusInactive
		})).
		Return(nil)

	updated, err := fx.service.SetBrokerStatus(context.Background(), broker.ID, &usecase.SetBrokerStatusInput{Status: entity.AccountStatusInactive})

	require.NoError(t, err)
	assert.Equal(t, entity.AccountStatusInactive, updated.Status)
}

func TestAdminService_SetBrokerStatus_InvalidStatus(t *testing.T) {
	fx := createTestAdminService(t)

	_, err := fx.service.SetBrokerStatus(context.Background(), uuid.New(), &usecase.SetBrokerStatusInput{Status: "suspended"})

	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Equal(t, "Invalid status", err.Error())
}

func TestAdminService_Analytics(t *testing.T) {
	fx := createTestAdminService(t)
	subscriptions := []entity.SubscriptionAnalytics{{Status: entity.SubscriptionActive, Count: 3, TotalRevenue: 2997}}
	properties := []entity.PropertyAnalytics{{
		Category: entity.CategoryResidential,
		Type:     entity.TransactionRental,
		Status:   entity.ModerationApproved,
		Count:    9,
	}}

	fx.subscriptionRepo.EXPECT().Analytics(mock.Anything).Return(subscriptions, nil)
	fx.propertyRepo.EXPECT().Analytics(mock.Anything).Return(properties, nil)

	gotSubscriptions, err := fx.service.SubscriptionAnalytics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, subscriptions, gotSubscriptions)

	gotProperties, err := fx.service.PropertyAnalytics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, properties, gotProperties)
}
