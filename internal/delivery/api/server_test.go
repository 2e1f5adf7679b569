package api

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"estatex/config"
	"estatex/internal/delivery/api/middleware"
	"estatex/internal/delivery/api/router"
	"estatex/internal/delivery/api/router/handler"
	deliverycontext "estatex/internal/delivery/context"
	mockUC "estatex/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestServer(t *testing.T) (*echo.Echo, *mockUC.MockUserUsecase) {
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1KB"
	logger := slog.New(slog.DiscardHandler)
	userUC := mockUC.NewMockUserUsecase(t)

	e := newEcho(cfg, logger, router.RouterParams{
		AuthHandler:         handler.NewAuthHandler(handler.AuthHandlerParams{UserUC: userUC}),
		PropertyHandler:     handler.NewPropertyHandler(handler.PropertyHandlerParams{PropertyUC: mockUC.NewMockPropertyUsecase(t)}),
		SubscriptionHandler: handler.NewSubscriptionHandler(handler.SubscriptionHandlerParams{SubscriptionUC: mockUC.NewMockSubscriptionUsecase(t)}),
		AdminHandler:        handler.NewAdminHandler(handler.AdminHandlerParams{AdminUC: mockUC.NewMockAdminUsecase(t)}),
		LocationHandler:     handler.NewLocationHandler(handler.LocationHandlerParams{LocationUC: mockUC.NewMockLocationUsecase(t)}),
		AuthMiddleware:      middleware.NewAuthMiddleware(middleware.AuthMiddlewareParams{Access: mockUC.NewMockAccessUsecase(t)}),
	})

	return e, userUC
}

func TestServer_HealthCarriesRequestID(t *testing.T) {
	e, _ := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "probe-1")
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "probe-1", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Contains(t, rec.Body.String(), `"request_id":"probe-1"`)
}

func TestServer_UnknownRouteUsesEnvelope(t *testing.T) {
	e, _ := newTestServer(t)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/nowhere", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)
	assert.Contains(t, rec.Body.String(), `"code":"HTTP_ERROR"`)
}

func TestServer_RejectsOversizedBody(t *testing.T) {
	e, _ := newTestServer(t)
	body := `{"email":"` + strings.Repeat("a", 2048) + `@example.com","password":"secret1"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestServer_PanicRecovered(t *testing.T) {
	e, userUC := newTestServer(t)
	userUC.EXPECT().Login(mock.Anything, mock.Anything).Panic("boom")
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"email":"a@example.com","password":"x"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "boom")
}
