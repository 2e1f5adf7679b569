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

func newPropertyHandler(t *testing.T) (*PropertyHandler, *mockUC.MockPropertyUsecase) {
	propertyUC := mockUC.NewMockPropertyUsecase(t)

	return NewPropertyHandler(PropertyHandlerParams{PropertyUC: propertyUC}), propertyUC
}

func TestPropertyHandler_List_ParsesFilter(t *testing.T) {
	h, propertyUC := newPropertyHandler(t)
	c, rec := newRequest(http.MethodGet,
		"/api/properties?category=commercial&type=rental&station=Andheri&isCosmo=true&minBudget=5000&maxBudget=20000",
		"", testBroker())

	propertyUC.EXPECT().List(mock.Anything, mock.MatchedBy(func(f entity.PropertyFilter) bool {
		return f.Category == entity.CategoryCommercial &&
			f.Type == entity.TransactionRental &&
			f.Station == "Andheri" &&
			f.IsCosmo != nil && *f.IsCosmo &&
			f.MinBudget != nil && *f.MinBudget == 5000 &&
			f.MaxBudget != nil && *f.MaxBudget == 20000
	})).Return([]*entity.Property{{ID: uuid.New()}, {ID: uuid.New()}}, nil)

	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	body := decode(t, rec)
	require.NotNil(t, body.Count)
	assert.Equal(t, 2, *body.Count)
}

func TestPropertyHandler_List_InvalidBudget(t *testing.T) {
	h, _ := newPropertyHandler(t)
	c, rec := newRequest(http.MethodGet, "/api/properties?minBudget=cheap", "", testBroker())

	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "minBudget must be a number", decode(t, rec).Message)
}

func TestPropertyHandler_List_InvalidFlag(t *testing.T) {
	h, _ := newPropertyHandler(t)
	c, rec := newRequest(http.MethodGet, "/api/properties?isCosmo=maybe", "", testBroker())

	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPropertyHandler_Create(t *testing.T) {
	h, propertyUC := newPropertyHandler(t)
	broker := testBroker()
	body := `{"type":"resale","buildingOrSociety":"Sea View","roadOrLocation":"Link Road","station":"Andheri",` +
		`"propertyType":"2BHK","location":{"latitude":19.1197,"longitude":72.8464},"expectedPrice":12500000}`
	c, rec := newRequest(http.MethodPost, "/api/properties", body, broker)

	created := &entity.Property{ID: uuid.New(), OwnerID: broker.ID, Status: entity.ModerationPending}
	propertyUC.EXPECT().Create(mock.Anything, broker, mock.MatchedBy(func(in *usecase.CreatePropertyInput) bool {
		return in.Type == entity.TransactionResale && in.Station == "Andheri" && in.Location.Latitude == 19.1197
	})).Return(created, nil)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"pending"`)
}

func TestPropertyHandler_Create_MissingType(t *testing.T) {
	h, _ := newPropertyHandler(t)
	c, rec := newRequest(http.MethodPost, "/api/properties", `{"station":"Andheri"}`, testBroker())

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode(t, rec).Message, "type is required")
}

func TestPropertyHandler_Get_InvalidID(t *testing.T) {
	h, _ := newPropertyHandler(t)
	c, rec := newRequest(http.MethodGet, "/api/properties/abc", "", testBroker())
	withID(c, "abc")

	require.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid id", decode(t, rec).Message)
}

func TestPropertyHandler_Get_NotFound(t *testing.T) {
	h, propertyUC := newPropertyHandler(t)
	broker := testBroker()
	id := uuid.New()
	c, rec := newRequest(http.MethodGet, "/api/properties/"+id.String(), "", broker)
	withID(c, id.String())

	propertyUC.EXPECT().Get(mock.Anything, broker, id).Return(nil, domainerrors.ErrPropertyNotFound)

	require.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPropertyHandler_Update_Forbidden(t *testing.T) {
	h, propertyUC := newPropertyHandler(t)
	broker := testBroker()
	id := uuid.New()
	c, rec := newRequest(http.MethodPut, "/api/properties/"+id.String(), `{"station":"Bandra"}`, broker)
	withID(c, id.String())

	propertyUC.EXPECT().Update(mock.Anything, broker, id, mock.MatchedBy(func(in *usecase.UpdatePropertyInput) bool {
		return in.Station != nil && *in.Station == "Bandra"
	})).Return(nil, domainerrors.ErrForbidden.WithMessage("Not authorized to update this property"))

	require.NoError(t, h.Update(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, "Not authorized to update this property", body.Message)
}

func TestPropertyHandler_Update_BindsExplicitFalse(t *testing.T) {
	h, propertyUC := newPropertyHandler(t)
	broker := testBroker()
	id := uuid.New()
	c, rec := newRequest(http.MethodPut, "/api/properties/"+id.String(), `{"isDirect":false}`, broker)
	withID(c, id.String())

	propertyUC.EXPECT().Update(mock.Anything, broker, id, mock.MatchedBy(func(in *usecase.UpdatePropertyInput) bool {
		return in.IsDirect != nil && !*in.IsDirect && in.Rent == nil
	})).Return(&entity.Property{ID: id, Details: entity.ResaleDetails{ExpectedPrice: 1}}, nil)

	require.NoError(t, h.Update(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPropertyHandler_Delete(t *testing.T) {
	h, propertyUC := newPropertyHandler(t)
	broker := testBroker()
	id := uuid.New()
	c, rec := newRequest(http.MethodDelete, "/api/properties/"+id.String(), "", broker)
	withID(c, id.String())

	propertyUC.EXPECT().Delete(mock.Anything, broker, id).Return(nil)

	require.NoError(t, h.Delete(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Property removed", decode(t, rec).Message)
}

func TestPropertyHandler_Review(t *testing.T) {
	h, propertyUC := newPropertyHandler(t)
	admin := testAdmin()
	id := uuid.New()
	c, rec := newRequest(http.MethodPatch, "/api/properties/"+id.String()+"/status",
		`{"status":"approved","remarks":"Verified"}`, admin)
	withID(c, id.String())

	propertyUC.EXPECT().Review(mock.Anything, admin, id, &usecase.ReviewInput{
		Status:  entity.ModerationApproved,
		Remarks: "Verified",
	}).Return(&entity.Property{ID: id, Status: entity.ModerationApproved}, nil)

	require.NoError(t, h.Review(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"approved"`)
}

func TestPropertyHandler_Nearby(t *testing.T) {
	h, propertyUC := newPropertyHandler(t)
	c, rec := newRequest(http.MethodGet, "/api/location/nearby?latitude=19.1&longitude=72.8&radius=2500", "", testBroker())

	propertyUC.EXPECT().Nearby(mock.Anything, &usecase.NearbyInput{
		Center: entity.Coordinates{Latitude: 19.1, Longitude: 72.8},
		Radius: 2500,
	}).Return([]*entity.Property{}, nil)

	require.NoError(t, h.Nearby(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	body := decode(t, rec)
	require.NotNil(t, body.Count)
	assert.Zero(t, *body.Count)
}

func TestPropertyHandler_Nearby_MissingPoint(t *testing.T) {
	h, _ := newPropertyHandler(t)
	c, rec := newRequest(http.MethodGet, "/api/location/nearby", "", testBroker())

	require.NoError(t, h.Nearby(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, domainerrors.ErrLocationRequired.ErrorCode(), decode(t, rec).Error.Code)
}
