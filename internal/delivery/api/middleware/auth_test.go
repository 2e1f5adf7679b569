package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"estatex/internal/domain/entity"
	domainerrors "estatex/internal/domain/errors"
	mockUC "estatex/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type errorBody struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   struct {
		Code string `json:"code"`
	} `json:"error"`
}

func newAuthMiddleware(t *testing.T) (*AuthMiddleware, *mockUC.MockAccessUsecase) {
	access := mockUC.NewMockAccessUsecase(t)

	return NewAuthMiddleware(AuthMiddlewareParams{Access: access}), access
}

func newContext(target string, header string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

func TestAuthMiddleware_Authenticate_StoresUser(t *testing.T) {
	m, access := newAuthMiddleware(t)
	user := &entity.User{ID: uuid.New(), Role: entity.RoleBroker}
	c, rec := newContext("/api/auth/profile", "Bearer token")

	access.EXPECT().Authenticate(mock.Anything, "Bearer token").Return(user, nil)

	err := m.Authenticate(func(c echo.Context) error {
		got, ok := GetUser(c)
		require.True(t, ok)
		assert.Equal(t, user.ID, got.ID)

		return okHandler(c)
	})(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestAuthMiddleware_Authenticate_Rejects(t *testing.T) {
	m, access := newAuthMiddleware(t)
	c, rec := newContext("/api/auth/profile", "")

	access.EXPECT().Authenticate(mock.Anything, "").Return(nil, domainerrors.ErrUnauthorized)

	err := m.Authenticate(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decodeError(t, rec)
	assert.False(t, body.Success)
	assert.Equal(t, "UNAUTHORIZED", body.Error.Code)
}

func TestAuthMiddleware_RequireAdmin(t *testing.T) {
	m, access := newAuthMiddleware(t)
	broker := &entity.User{ID: uuid.New(), Role: entity.RoleBroker}
	c, rec := newContext("/api/admin/stats", "")
	c.Set(userContextKey, broker)

	access.EXPECT().RequireAdmin(broker).Return(domainerrors.ErrAdminRequired)

	err := m.RequireAdmin(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Access denied: Admin rights required", decodeError(t, rec).Message)
}

func TestAuthMiddleware_RequireAdmin_WithoutUser(t *testing.T) {
	m, _ := newAuthMiddleware(t)
	c, rec := newContext("/api/admin/stats", "")

	require.NoError(t, m.RequireAdmin(okHandler)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_RequireActiveSubscription(t *testing.T) {
	m, access := newAuthMiddleware(t)
	broker := &entity.User{ID: uuid.New(), Role: entity.RoleBroker}
	subscription := &entity.Subscription{ID: uuid.New(), BrokerID: broker.ID}
	c, rec := newContext("/api/properties", "")
	c.Set(userContextKey, broker)

	access.EXPECT().RequireActiveSubscription(mock.Anything, broker).Return(subscription, nil)

	err := m.RequireActiveSubscription(func(c echo.Context) error {
		got, ok := GetSubscription(c)
		require.True(t, ok)
		assert.Equal(t, subscription.ID, got.ID)

		return okHandler(c)
	})(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestAuthMiddleware_RequireLocationAccess(t *testing.T) {
	broker := &entity.User{ID: uuid.New(), Role: entity.RoleBroker}

	tests := []struct {
		name       string
		query      string
		setup      func(access *mockUC.MockAccessUsecase)
		wantStatus int
		wantCode   string
	}{
		{
			name:  "covered",
			query: "?latitude=19.1&longitude=72.85",
			setup: func(access *mockUC.MockAccessUsecase) {
				access.EXPECT().
					CheckLocationAccess(mock.Anything, broker, entity.Coordinates{Latitude: 19.1, Longitude: 72.85}).
					Return(nil)
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "missing longitude",
			query:      "?latitude=19.1",
			wantStatus: http.StatusBadRequest,
			wantCode:   "LOCATION_REQUIRED",
		},
		{
			name:       "non-numeric latitude",
			query:      "?latitude=north&longitude=72.85",
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_COORDINATES",
		},
		{
			name:  "not covered",
			query: "?latitude=18.52&longitude=73.85",
			setup: func(access *mockUC.MockAccessUsecase) {
				access.EXPECT().CheckLocationAccess(mock.Anything, broker, mock.Anything).Return(domainerrors.ErrLocationNotCovered)
			},
			wantStatus: http.StatusForbidden,
			wantCode:   "LOCATION_NOT_COVERED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, access := newAuthMiddleware(t)
			if tt.setup != nil {
				tt.setup(access)
			}
			c, rec := newContext("/api/location/nearby"+tt.query, "")
			c.Set(userContextKey, broker)

			require.NoError(t, m.RequireLocationAccess(okHandler)(c))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, rec).Error.Code)
			}
		})
	}
}
