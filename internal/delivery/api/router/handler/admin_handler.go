package handler

import (
	"log/slog"
	"net/http"

	"estatex/internal/delivery/api/response"
	"estatex/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	AdminUC usecase.AdminUsecase
	Logger  *slog.Logger
}

// AdminHandler serves the admin dashboard. Every route sits behind the admin gate.
type AdminHandler struct {
	adminUC usecase.AdminUsecase
	logger  *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		adminUC: params.AdminUC,
		logger:  params.Logger,
	}
}

func (h *AdminHandler) Stats(c echo.Context) error {
	stats, err := h.adminUC.Stats(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats)
}

func (h *AdminHandler) ListBrokers(c echo.Context) error {
	brokers, err := h.adminUC.ListBrokers(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, brokers)
}

func (h *AdminHandler) GetBroker(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	detail, err := h.adminUC.GetBroker(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, detail)
}

func (h *AdminHandler) SetBrokerStatus(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var input usecase.SetBrokerStatusInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid status input")
	}

	broker, err := h.adminUC.SetBrokerStatus(c.Request().Context(), id, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, broker)
}

func (h *AdminHandler) SubscriptionAnalytics(c echo.Context) error {
	analytics, err := h.adminUC.SubscriptionAnalytics(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, analytics)
}

func (h *AdminHandler) PropertyAnalytics(c echo.Context) error {
	analytics, err := h.adminUC.PropertyAnalytics(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, analytics)
}
