package impl

import (
	"context"
	"testing"

	"estatex/internal/domain/constants"
	"estatex/internal/domain/entity"
	domainerrors "estatex/internal/domain/errors"
	"estatex/internal/domain/repository"
	mockRepo "estatex/internal/mocks/repository"
	mockSvc "estatex/internal/mocks/service"
	"estatex/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type propertyServiceFixtures struct {
	service      *propertyService
	propertyRepo *mockRepo.MockPropertyRepository
	cache        *mockSvc.MockCache
	publisher    *mockSvc.MockEventPublisher
}

func createTestPropertyService(t *testing.T) propertyServiceFixtures {
	propertyRepo := mockRepo.NewMockPropertyRepository(t)
	cache := mockSvc.NewMockCache(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	srv := NewPropertyService(PropertyServiceParams{
		PropertyRepo: propertyRepo,
		Cache:        cache,
		Publisher:    publisher,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	}).(*propertyService)
	srv.now = fixedClock

	return propertyServiceFixtures{
		service:      srv,
		propertyRepo: propertyRepo,
		cache:        cache,
		publisher:    publisher,
	}
}

func resaleInput() *usecase.CreatePropertyInput {
	return &usecase.CreatePropertyInput{
		Category:          entity.CategoryResidential,
		Type:              entity.TransactionResale,
		BuildingOrSociety: "Sunrise Heights",
		RoadOrLocation:    "SV Road",
		Station:           "Andheri",
		SubLocation:       "Andheri West",
		PropertyType:      "2BHK",
		Images:            []string{"https://img.example.com/1.jpg"},
		Location:          entity.Coordinates{Latitude: 19.1197, Longitude: 72.8464},
		PropertyAttributes: entity.PropertyAttributes{
			ExpectedPrice: 15000000,
			FloorNo:       "7",
			FlatNo:        "702",
		},
	}
}

func storedResale(owner *entity.User, status entity.ModerationStatus) *entity.Property {
	return &entity.Property{
		ID:                uuid.New(),
		OwnerID:           owner.ID,
		Owner:             owner.Summary(),
		Category:          entity.CategoryResidential,
		Status:            status,
		BuildingOrSociety: "Sunrise Heights",
		RoadOrLocation:    "SV Road",
		Station:           "Andheri",
		PropertyType:      "2BHK",
		Location:          entity.Coordinates{Latitude: 19.1197, Longitude: 72.8464},
		Details: entity.ResaleDetails{
			ExpectedPrice: 15000000,
			FloorNo:       "7",
			FlatNo:        "702",
		},
	}
}

func TestPropertyService_Create_ForcesPendingAndOwner(t *testing.T) {
	fx := createTestPropertyService(t)
	broker := newBroker()

	fx.propertyRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.Property")).
		Run(func(_ context.Context, property *entity.Property) {
			property.ID = uuid.New()
		}).
		Return(nil)

	property, err := fx.service.Create(context.Background(), broker, resaleInput())

	require.NoError(t, err)
	assert.Equal(t, entity.ModerationPending, property.Status)
	assert.Equal(t, broker.ID, property.OwnerID)
	assert.Equal(t, broker.FullName, property.Owner.FullName)
	assert.Equal(t, entity.TransactionResale, property.Type())
}

func TestPropertyService_Create_ReportsEveryMissingField(t *testing.T) {
	fx := createTestPropertyService(t)
	input := resaleInput()
	input.Station = ""
	input.FlatNo = ""
	input.ExpectedPrice = 0

	_, err := fx.service.Create(context.Background(), newBroker(), input)

	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Contains(t, appErr.Message(), "expectedPrice is required for resale properties")
	assert.Contains(t, appErr.Message(), "flatNo is required for resale properties")
	assert.Contains(t, appErr.Message(), "station is required")
}

func TestPropertyService_Create_UnknownTypeReportedOnce(t *testing.T) {
	fx := createTestPropertyService(t)
	input := resaleInput()
	input.Type = "lease"

	_, err := fx.service.Create(context.Background(), newBroker(), input)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "type must be one of new, resale, rental", appErr.Message())
}

func TestPropertyService_List_ForcesApprovedAndCaches(t *testing.T) {
	fx := createTestPropertyService(t)
	listings := []*entity.Property{storedResale(newBroker(), entity.ModerationApproved)}
	expectedFilter := entity.PropertyFilter{
		Category: entity.CategoryResidential,
		Station:  "Andheri",
		Status:   entity.ModerationApproved,
	}

	fx.cache.EXPECT().Get(mock.Anything, mock.AnythingOfType("string"), mock.Anything).Return(false, nil)
	fx.propertyRepo.EXPECT().Find(mock.Anything, expectedFilter).Return(listings, nil)
	fx.cache.EXPECT().
		Set(mock.Anything, mock.MatchedBy(func(key string) bool {
			return len(key) > len(constants.CachePrefixListings) && key[:len(constants.CachePrefixListings)] == constants.CachePrefixListings
		}), listings, newTestConfig().Property.ListingTTL).
		Return(nil)

	result, err := fx.service.List(context.Background(), entity.PropertyFilter{
		Station: "Andheri",
		Status:  entity.ModerationPending,
	})

	require.NoError(t, err)
	assert.Equal(t, listings, result)
}

func TestPropertyService_List_ServesCacheHit(t *testing.T) {
	fx := createTestPropertyService(t)
	cachedID := uuid.New()

	fx.cache.EXPECT().
		Get(mock.Anything, mock.AnythingOfType("string"), mock.Anything).
		Run(func(_ context.Context, _ string, dest any) {
			*dest.(*[]*entity.Property) = []*entity.Property{{ID: cachedID}}
		}).
		Return(true, nil)

	result, err := fx.service.List(context.Background(), entity.PropertyFilter{})

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, cachedID, result[0].ID)
}

func TestPropertyService_List_IgnoresCacheFailures(t *testing.T) {
	fx := createTestPropertyService(t)

	fx.cache.EXPECT().Get(mock.Anything, mock.Anything, mock.Anything).Return(false, errors.New("redis down"))
	fx.propertyRepo.EXPECT().Find(mock.Anything, mock.Anything).Return(nil, nil)
	fx.cache.EXPECT().Set(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("redis down"))

	_, err := fx.service.List(context.Background(), entity.PropertyFilter{})

	assert.NoError(t, err)
}

func TestPropertyService_Get_HidesUnapprovedFromOthers(t *testing.T) {
	owner := newBroker()
	pending := storedResale(owner, entity.ModerationPending)

	tests := []struct {
		name    string
		actor   *entity.User
		wantErr error
	}{
		{name: "owner", actor: owner},
		{name: "admin", actor: newAdmin()},
		{name: "other broker", actor: newBroker(), wantErr: domainerrors.ErrPropertyNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestPropertyService(t)
			fx.propertyRepo.EXPECT().FindByID(mock.Anything, pending.ID).Return(pending, nil)

			property, err := fx.service.Get(context.Background(), tt.actor, pending.ID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, pending.ID, property.ID)
		})
	}
}

func TestPropertyService_Update_BrokerEditReturnsToPending(t *testing.T) {
	fx := createTestPropertyService(t)
	owner := newBroker()
	approved := storedResale(owner, entity.ModerationApproved)
	station := "Bandra"
	approvedStatus := entity.ModerationApproved
	price := 14500000.0

	fx.propertyRepo.EXPECT().FindByID(mock.Anything, approved.ID).Return(approved, nil)
	fx.propertyRepo.EXPECT().Update(mock.Anything, approved).Return(nil)
	fx.cache.EXPECT().DeletePrefix(mock.Anything, constants.CachePrefixListings).Return(nil)

	updated, err := fx.service.Update(context.Background(), owner, approved.ID, &usecase.UpdatePropertyInput{
		Station:                 &station,
		Status:                  &approvedStatus,
		PropertyAttributesPatch: entity.PropertyAttributesPatch{ExpectedPrice: &price},
	})

	require.NoError(t, err)
	assert.Equal(t, entity.ModerationPending, updated.Status)
	assert.Equal(t, "Bandra", updated.Station)
	details := updated.Details.(entity.ResaleDetails)
	assert.InDelta(t, 14500000, details.ExpectedPrice, 0.001)
	assert.Equal(t, "702", details.FlatNo)
}

func TestPropertyService_Update_ClearsDirectFlag(t *testing.T) {
	fx := createTestPropertyService(t)
	owner := newBroker()
	stored := storedResale(owner, entity.ModerationApproved)
	stored.Details = entity.ResaleDetails{ExpectedPrice: 15000000, FloorNo: "7", FlatNo: "702", IsDirect: true}
	direct := false

	fx.propertyRepo.EXPECT().FindByID(mock.Anything, stored.ID).Return(stored, nil)
	fx.propertyRepo.EXPECT().Update(mock.Anything, stored).Return(nil)
	fx.cache.EXPECT().DeletePrefix(mock.Anything, constants.CachePrefixListings).Return(nil)

	updated, err := fx.service.Update(context.Background(), owner, stored.ID, &usecase.UpdatePropertyInput{
		PropertyAttributesPatch: entity.PropertyAttributesPatch{IsDirect: &direct},
	})

	require.NoError(t, err)
	details := updated.Details.(entity.ResaleDetails)
	assert.False(t, details.IsDirect)
	assert.Equal(t, "702", details.FlatNo)
}

func TestPropertyService_Update_AdminMaySetStatus(t *testing.T) {
	fx := createTestPropertyService(t)
	pending := storedResale(newBroker(), entity.ModerationPending)
	approvedStatus := entity.ModerationApproved

	fx.propertyRepo.EXPECT().FindByID(mock.Anything, pending.ID).Return(pending, nil)
	fx.propertyRepo.EXPECT().Update(mock.Anything, pending).Return(nil)
	fx.cache.EXPECT().DeletePrefix(mock.Anything, constants.CachePrefixListings).Return(nil)

	updated, err := fx.service.Update(context.Background(), newAdmin(), pending.ID, &usecase.UpdatePropertyInput{Status: &approvedStatus})

	require.NoError(t, err)
	assert.Equal(t, entity.ModerationApproved, updated.Status)
}

func TestPropertyService_Update_ChangingTypeRequiresNewAttributes(t *testing.T) {
	fx := createTestPropertyService(t)
	owner := newBroker()
	resale := storedResale(owner, entity.ModerationApproved)
	rental := entity.TransactionRental

	fx.propertyRepo.EXPECT().FindByID(mock.Anything, resale.ID).Return(resale, nil)

	_, err := fx.service.Update(context.Background(), owner, resale.ID, &usecase.UpdatePropertyInput{Type: &rental})

	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Contains(t, err.Error(), "rent is required for rental properties")
}

func TestPropertyService_Update_ForbiddenForOtherBroker(t *testing.T) {
	fx := createTestPropertyService(t)
	property := storedResale(newBroker(), entity.ModerationApproved)

	fx.propertyRepo.EXPECT().FindByID(mock.Anything, property.ID).Return(property, nil)

	_, err := fx.service.Update(context.Background(), newBroker(), property.ID, &usecase.UpdatePropertyInput{})

	require.ErrorIs(t, err, domainerrors.ErrForbidden)
	assert.Equal(t, "Not authorized to update this property", err.Error())
}

func TestPropertyService_Delete(t *testing.T) {
	owner := newBroker()

	t.Run("owner deletes", func(t *testing.T) {
		fx := createTestPropertyService(t)
		property := storedResale(owner, entity.ModerationApproved)
		fx.propertyRepo.EXPECT().FindByID(mock.Anything, property.ID).Return(property, nil)
		fx.propertyRepo.EXPECT().Delete(mock.Anything, property.ID).Return(nil)
		fx.cache.EXPECT().DeletePrefix(mock.Anything, constants.CachePrefixListings).Return(nil)

		assert.NoError(t, fx.service.Delete(context.Background(), owner, property.ID))
	})

	t.Run("missing listing", func(t *testing.T) {
		fx := createTestPropertyService(t)
		id := uuid.New()
		fx.propertyRepo.EXPECT().FindByID(mock.Anything, id).Return(nil, repository.ErrPropertyNotFound)

		assert.ErrorIs(t, fx.service.Delete(context.Background(), owner, id), domainerrors.ErrPropertyNotFound)
	})

	t.Run("other broker", func(t *testing.T) {
		fx := createTestPropertyService(t)
		property := storedResale(owner, entity.ModerationApproved)
		fx.propertyRepo.EXPECT().FindByID(mock.Anything, property.ID).Return(property, nil)

		err := fx.service.Delete(context.Background(), newBroker(), property.ID)

		require.ErrorIs(t, err, domainerrors.ErrForbidden)
		assert.Equal(t, "Not authorized to delete this property", err.Error())
	})
}

func TestPropertyService_Review_PublishesEvent(t *testing.T) {
	fx := createTestPropertyService(t)
	admin := newAdmin()
	pending := storedResale(newBroker(), entity.ModerationPending)

	fx.propertyRepo.EXPECT().FindByID(mock.Anything, pending.ID).Return(pending, nil)
	fx.propertyRepo.EXPECT().Update(mock.Anything, pending).Return(nil)
	fx.cache.EXPECT().DeletePrefix(mock.Anything, constants.CachePrefixListings).Return(nil)
	fx.publisher.EXPECT().
		PublishListingEvent(mock.Anything, mock.AnythingOfType("*entity.ListingEvent")).
		Run(func(_ context.Context, event *entity.ListingEvent) {
			assert.Equal(t, pending.ID, event.PropertyID)
			assert.Equal(t, entity.ModerationRejected, event.Status)
			assert.Equal(t, admin.ID, event.ReviewedBy)
			assert.Equal(t, fixedNow, event.OccurredAt)
		}).
		Return(errors.New("topic unavailable"))

	reviewed, err := fx.service.Review(context.Background(), admin, pending.ID, &usecase.ReviewInput{
		Status:  entity.ModerationRejected,
		Remarks: "Blurry photos",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.ModerationRejected, reviewed.Status)
	require.NotNil(t, reviewed.Review)
	assert.Equal(t, "Blurry photos", reviewed.Review.Remarks)
	assert.Equal(t, fixedNow, reviewed.Review.ReviewedAt)
}

func TestPropertyService_Review_RejectsInvalidStatusBeforeLookup(t *testing.T) {
	fx := createTestPropertyService(t)

	_, err := fx.service.Review(context.Background(), newAdmin(), uuid.New(), &usecase.ReviewInput{Status: entity.ModerationPending})

	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Equal(t, "Invalid status", err.Error())
}

func TestPropertyService_Nearby_DefaultsRadius(t *testing.T) {
	fx := createTestPropertyService(t)
	center := entity.Coordinates{Latitude: 19.076, Longitude: 72.8777}

	fx.propertyRepo.EXPECT().
		FindNearby(mock.Anything, repository.NearbyQuery{Center: center, Radius: 5000, Status: entity.ModerationApproved}).
		Return([]*entity.Property{}, nil)

	result, err := fx.service.Nearby(context.Background(), &usecase.NearbyInput{Center: center})

	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestPropertyService_Nearby_InvalidCenter(t *testing.T) {
	fx := createTestPropertyService(t)

	_, err := fx.service.Nearby(context.Background(), &usecase.NearbyInput{Center: entity.Coordinates{Longitude: 181}})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinates)
}
