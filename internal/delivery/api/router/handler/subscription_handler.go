package handler

import (
	"log/slog"
	"net/http"

	"estatex/internal/delivery/api/middleware"
	"estatex/internal/delivery/api/response"
	domainerrors "estatex/internal/domain/errors"
	"estatex/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SubscriptionHandlerParams holds dependencies for SubscriptionHandler, injected by Fx.
type SubscriptionHandlerParams struct {
	fx.In

	SubscriptionUC usecase.SubscriptionUsecase
	Logger         *slog.Logger
}

// SubscriptionHandler serves the broker subscription lifecycle.
type SubscriptionHandler struct {
	subscriptionUC usecase.SubscriptionUsecase
	logger         *slog.Logger
}

// NewSubscriptionHandler is the constructor for SubscriptionHandler
func NewSubscriptionHandler(params SubscriptionHandlerParams) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionUC: params.SubscriptionUC,
		logger:         params.Logger,
	}
}

func (h *SubscriptionHandler) Pricing(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.subscriptionUC.Pricing())
}

// Mine returns the caller's subscription, or null when there is none.
func (h *SubscriptionHandler) Mine(c echo.Context) error {
	user, ok := middleware.GetUser(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	subscription, err := h.subscriptionUC.GetForBroker(c.Request().Context(), user.ID)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if subscription == nil {
		return response.Null(c, http.StatusOK)
	}

	return response.Success(c, http.StatusOK, subscription)
}

// Upsert replaces the caller's coverage locations.
func (h *SubscriptionHandler) Upsert(c echo.Context) error {
	user, ok := middleware.GetUser(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	var input usecase.UpsertSubscriptionInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid subscription input")
	}

	subscription, err := h.subscriptionUC.UpsertForBroker(c.Request().Context(), user.ID, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, subscription)
}

func (h *SubscriptionHandler) CompletePayment(c echo.Context) error {
	user, ok := middleware.GetUser(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	subscription, err := h.subscriptionUC.CompletePayment(c.Request().Context(), user.ID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, "Payment completed successfully", subscription)
}

func (h *SubscriptionHandler) List(c echo.Context) error {
	subscriptions, err := h.subscriptionUC.List(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, subscriptions)
}

func (h *SubscriptionHandler) SetStatus(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var input usecase.SetSubscriptionStatusInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid status input")
	}

	subscription, err := h.subscriptionUC.SetStatus(c.Request().Context(), id, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, subscription)
}
