package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"estatex/internal/delivery/api/middleware"
	"estatex/internal/delivery/api/response"
	"estatex/internal/domain/entity"
	domainerrors "estatex/internal/domain/errors"
	"estatex/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PropertyHandlerParams holds dependencies for PropertyHandler, injected by Fx.
type PropertyHandlerParams struct {
	fx.In

	PropertyUC usecase.PropertyUsecase
	Logger     *slog.Logger
}

// PropertyHandler serves listing management and moderation.
type PropertyHandler struct {
	propertyUC usecase.PropertyUsecase
	logger     *slog.Logger
}

// NewPropertyHandler is the constructor for PropertyHandler
func NewPropertyHandler(params PropertyHandlerParams) *PropertyHandler {
	return &PropertyHandler{
		propertyUC: params.PropertyUC,
		logger:     params.Logger,
	}
}

// List returns approved listings matching the query filter.
func (h *PropertyHandler) List(c echo.Context) error {
	filter, err := parsePropertyFilter(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	properties, err := h.propertyUC.List(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, properties)
}

func parsePropertyFilter(c echo.Context) (entity.PropertyFilter, error) {
	filter := entity.PropertyFilter{
		Category:     entity.Category(strings.TrimSpace(c.QueryParam("category"))),
		Type:         entity.TransactionType(strings.TrimSpace(c.QueryParam("type"))),
		PropertyType: strings.TrimSpace(c.QueryParam("propertyType")),
		Station:      strings.TrimSpace(c.QueryParam("station")),
		SubLocation:  strings.TrimSpace(c.QueryParam("subLocation")),
	}

	var err error
	if filter.IsCosmo, err = queryBool(c, "isCosmo"); err != nil {
		return filter, err
	}
	if filter.MinBudget, err = queryFloat(c, "minBudget"); err != nil {
		return filter, err
	}
	if filter.MaxBudget, err = queryFloat(c, "maxBudget"); err != nil {
		return filter, err
	}

	return filter, nil
}

// Create submits a new listing for moderation.
func (h *PropertyHandler) Create(c echo.Context) error {
	user, ok := middleware.GetUser(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	var input usecase.CreatePropertyInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid property input")
	}

	if err := c.Validate(&input); err != nil {
		return response.ValidationError(c, err)
	}

	property, err := h.propertyUC.Create(c.Request().Context(), user, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, property)
}

// ListMine returns the caller's listings in any status.
func (h *PropertyHandler) ListMine(c echo.Context) error {
	user, ok := middleware.GetUser(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	properties, err := h.propertyUC.ListMine(c.Request().Context(), user)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, properties)
}

func (h *PropertyHandler) ListPending(c echo.Context) error {
	properties, err := h.propertyUC.ListPending(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, properties)
}

func (h *PropertyHandler) Get(c echo.Context) error {
	user, ok := middleware.GetUser(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	id, err := pathID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	property, err := h.propertyUC.Get(c.Request().Context(), user, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, property)
}

func (h *PropertyHandler) Update(c echo.Context) error {
	user, ok := middleware.GetUser(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	id, err := pathID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var input usecase.UpdatePropertyInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid property input")
	}

	property, err := h.propertyUC.Update(c.Request().Context(), user, id, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, property)
}

func (h *PropertyHandler) Delete(c echo.Context) error {
	user, ok := middleware.GetUser(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	id, err := pathID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.propertyUC.Delete(c.Request().Context(), user, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, "Property removed", nil)
}

// Review records an admin moderation decision.
func (h *PropertyHandler) Review(c echo.Context) error {
	user, ok := middleware.GetUser(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	id, err := pathID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var input usecase.ReviewInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid review input")
	}

	property, err := h.propertyUC.Review(c.Request().Context(), user, id, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, property)
}

// Nearby returns approved listings around the query point. The location gate
// has already validated the coordinates.
func (h *PropertyHandler) Nearby(c echo.Context) error {
	center, err := middleware.QueryPoint(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	radius, err := queryFloat(c, "radius")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	input := &usecase.NearbyInput{Center: center}
	if radius != nil {
		input.Radius = *radius
	}

	properties, err := h.propertyUC.Nearby(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, properties)
}
