package handler

import (
	"net/http"
	"testing"

	"estatex/internal/domain/entity"
	domainerrors "estatex/internal/domain/errors"
	mockUC "estatex/internal/mocks/usecase"
	"estatex/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newSubscriptionHandler(t *testing.T) (*SubscriptionHandler, *mockUC.MockSubscriptionUsecase) {
	subscriptionUC := mockUC.NewMockSubscriptionUsecase(t)

	return NewSubscriptionHandler(SubscriptionHandlerParams{SubscriptionUC: subscriptionUC}), subscriptionUC
}

func TestSubscriptionHandler_Pricing(t *testing.T) {
	h, subscriptionUC := newSubscriptionHandler(t)
	c, rec := newRequest(http.MethodGet, "/api/subscriptions/pricing", "", nil)

	subscriptionUC.EXPECT().Pricing().Return(&usecase.Pricing{BasePrice: 999, Currency: "INR", ValidityDays: 30})

	require.NoError(t, h.Pricing(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"basePrice":999`)
}

func TestSubscriptionHandler_Mine_None(t *testing.T) {
	h, subscriptionUC := newSubscriptionHandler(t)
	broker := testBroker()
	c, rec := newRequest(http.MethodGet, "/api/subscriptions/my-subscription", "", broker)

	subscriptionUC.EXPECT().GetForBroker(mock.Anything, broker.ID).Return(nil, nil)

	require.NoError(t, h.Mine(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	assert.True(t, decode(t, rec).Success)
	assert.Contains(t, rec.Body.String(), `"data":null`)
}

func TestSubscriptionHandler_Upsert(t *testing.T) {
	h, subscriptionUC := newSubscriptionHandler(t)
	broker := testBroker()
	body := `{"locations":[{"name":"Andheri","latitude":19.1197,"longitude":72.8464,"radius":3000}]}`
	c, rec := newRequest(http.MethodPost, "/api/subscriptions", body, broker)

	subscriptionUC.EXPECT().UpsertForBroker(mock.Anything, broker.ID, mock.MatchedBy(func(in *usecase.UpsertSubscriptionInput) bool {
		return len(in.Locations) == 1 && in.Locations[0].Name == "Andheri" && in.Locations[0].Radius == 3000
	})).Return(&entity.Subscription{ID: uuid.New(), BrokerID: broker.ID, Status: entity.SubscriptionPending}, nil)

	require.NoError(t, h.Upsert(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestSubscriptionHandler_Upsert_NoLocations(t *testing.T) {
	h, subscriptionUC := newSubscriptionHandler(t)
	broker := testBroker()
	c, rec := newRequest(http.MethodPost, "/api/subscriptions", `{"locations":[]}`, broker)

	subscriptionUC.EXPECT().UpsertForBroker(mock.Anything, broker.ID, mock.Anything).
		Return(nil, domainerrors.ErrValidationFailed.WithMessage("Please select at least one location"))

	require.NoError(t, h.Upsert(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Please select at least one location", decode(t, rec).Message)
}

func TestSubscriptionHandler_CompletePayment_Failed(t *testing.T) {
	h, subscriptionUC := newSubscriptionHandler(t)
	broker := testBroker()
	c, rec := newRequest(http.MethodPost, "/api/subscriptions/complete-payment", "", broker)

	subscriptionUC.EXPECT().CompletePayment(mock.Anything, broker.ID).Return(nil, domainerrors.ErrPaymentFailed)

	require.NoError(t, h.CompletePayment(c))
	assert.Equal(t, domainerrors.ErrPaymentFailed.HTTPCode(), rec.Code)
}

func TestSubscriptionHandler_CompletePayment(t *testing.T) {
	h, subscriptionUC := newSubscriptionHandler(t)
	broker := testBroker()
	c, rec := newRequest(http.MethodPost, "/api/subscriptions/complete-payment", "", broker)

	subscriptionUC.EXPECT().CompletePayment(mock.Anything, broker.ID).
		Return(&entity.Subscription{ID: uuid.New(), Status: entity.SubscriptionActive}, nil)

	require.NoError(t, h.CompletePayment(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Payment completed successfully", decode(t, rec).Message)
}

func TestSubscriptionHandler_SetStatus(t *testing.T) {
	h, subscriptionUC := newSubscriptionHandler(t)
	id := uuid.New()
	c, rec := newRequest(http.MethodPatch, "/api/subscriptions/"+id.String()+"/status", `{"status":"inactive"}`, testAdmin())
	withID(c, id.String())

	subscriptionUC.EXPECT().SetStatus(mock.Anything, id, &usecase.SetSubscriptionStatusInput{Status: entity.SubscriptionInactive}).
		Return(&entity.Subscription{ID: id, Status: entity.SubscriptionInactive}, nil)

	require.NoError(t, h.SetStatus(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
