package handler

import (
	"net/http"
	"testing"

	"estatex/internal/domain/entity"
	domainerrors "estatex/internal/domain/errors"
	mockUC "estatex/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newLocationHandler(t *testing.T) (*LocationHandler, *mockUC.MockLocationUsecase) {
	locationUC := mockUC.NewMockLocationUsecase(t)

	return NewLocationHandler(LocationHandlerParams{LocationUC: locationUC}), locationUC
}

func TestLocationHandler_Cities(t *testing.T) {
	h, locationUC := newLocationHandler(t)
	c, rec := newRequest(http.MethodGet, "/api/location/cities/MH", "", nil)
	c.SetParamNames("stateCode")
	c.SetParamValues("MH")

	locationUC.EXPECT().Cities(mock.Anything, "MH").Return([]entity.City{{ID: 1, Name: "Mumbai"}}, nil)

	require.NoError(t, h.Cities(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"Mumbai"`)
}

func TestLocationHandler_SubLocations(t *testing.T) {
	h, locationUC := newLocationHandler(t)
	c, rec := newRequest(http.MethodGet, "/api/location/sub-locations/Andheri", "", nil)
	c.SetParamNames("station")
	c.SetParamValues("Andheri")

	locationUC.EXPECT().SubLocations(mock.Anything, "Andheri").Return([]string{"Lokhandwala", "Versova"}, nil)

	require.NoError(t, h.SubLocations(c))

	body := decode(t, rec)
	require.NotNil(t, body.Count)
	assert.Equal(t, 2, *body.Count)
}

func TestLocationHandler_Search_EmptyQuery(t *testing.T) {
	h, locationUC := newLocationHandler(t)
	c, rec := newRequest(http.MethodGet, "/api/location/search", "", nil)

	locationUC.EXPECT().Search(mock.Anything, "").
		Return(nil, domainerrors.ErrValidationFailed.WithMessage("Search query is required"))

	require.NoError(t, h.Search(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Search query is required", decode(t, rec).Message)
}

func TestLocationHandler_Banners(t *testing.T) {
	h, locationUC := newLocationHandler(t)
	c, rec := newRequest(http.MethodGet, "/api/location/banners?location=Mumbai", "", nil)

	locationUC.EXPECT().Banners(mock.Anything, "Mumbai").Return([]string{"https://cdn.example.com/a.jpg"}, nil)

	require.NoError(t, h.Banners(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "a.jpg")
}
