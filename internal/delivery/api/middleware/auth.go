package middleware

import (
	"log/slog"
	"strconv"

	"estatex/internal/delivery/api/response"
	"estatex/internal/domain/entity"
	domainerrors "estatex/internal/domain/errors"
	"estatex/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	userContextKey         = "user"
	subscriptionContextKey = "subscription"
)

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	Access usecase.AccessUsecase
	Logger *slog.Logger
}

// AuthMiddleware provides the request gates: authentication, admin role,
// active subscription and location coverage.
type AuthMiddleware struct {
	access usecase.AccessUsecase
	logger *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		access: params.Access,
		logger: params.Logger,
	}
}

// Authenticate resolves the bearer token to a user and stores it on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := m.access.Authenticate(c.Request().Context(), c.Request().Header.Get(echo.HeaderAuthorization))
		if err != nil {
			return response.HandleAppError(c, err)
		}

		c.Set(userContextKey, user)

		return next(c)
	}
}

// RequireAdmin must be used after Authenticate.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := GetUser(c)
		if !ok {
			return response.HandleAppError(c, domainerrors.ErrUnauthorized)
		}

		if err := m.access.RequireAdmin(user); err != nil {
			return response.HandleAppError(c, err)
		}

		return next(c)
	}
}

// RequireActiveSubscription reloads the subscription on every request.
func (m *AuthMiddleware) RequireActiveSubscription(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := GetUser(c)
		if !ok {
			return response.HandleAppError(c, domainerrors.ErrUnauthorized)
		}

		subscription, err := m.access.RequireActiveSubscription(c.Request().Context(), user)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		c.Set(subscriptionContextKey, subscription)

		return next(c)
	}
}

// RequireLocationAccess checks the latitude/longitude query point is covered
// by the user's subscription.
func (m *AuthMiddleware) RequireLocationAccess(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := GetUser(c)
		if !ok {
			return response.HandleAppError(c, domainerrors.ErrUnauthorized)
		}

		point, err := QueryPoint(c)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		if err := m.access.CheckLocationAccess(c.Request().Context(), user, point); err != nil {
			return response.HandleAppError(c, err)
		}

		return next(c)
	}
}

// GetUser returns the user stored by Authenticate.
func GetUser(c echo.Context) (*entity.User, bool) {
	user, ok := c.Get(userContextKey).(*entity.User)

	return user, ok && user != nil
}

// GetSubscription returns the subscription stored by RequireActiveSubscription.
func GetSubscription(c echo.Context) (*entity.Subscription, bool) {
	subscription, ok := c.Get(subscriptionContextKey).(*entity.Subscription)

	return subscription, ok && subscription != nil
}

// QueryPoint parses the required latitude and longitude query parameters.
func QueryPoint(c echo.Context) (entity.Coordinates, error) {
	rawLat, rawLng := c.QueryParam("latitude"), c.QueryParam("longitude")
	if rawLat == "" || rawLng == "" {
		return entity.Coordinates{}, domainerrors.ErrLocationRequired
	}

	lat, err := strconv.ParseFloat(rawLat, 64)
	if err != nil {
		return entity.Coordinates{}, domainerrors.ErrInvalidCoordinates.WithDetails("latitude must be a number")
	}

	lng, err := strconv.ParseFloat(rawLng, 64)
	if err != nil {
		return entity.Coordinates{}, domainerrors.ErrInvalidCoordinates.WithDetails("longitude must be a number")
	}

	return entity.Coordinates{Latitude: lat, Longitude: lng}, nil
}
