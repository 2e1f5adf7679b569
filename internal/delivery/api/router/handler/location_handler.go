package handler

import (
	"log/slog"
	"net/http"

	"estatex/internal/delivery/api/response"
	"estatex/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LocationHandlerParams holds dependencies for LocationHandler, injected by Fx.
type LocationHandlerParams struct {
	fx.In

	LocationUC usecase.LocationUsecase
	Logger     *slog.Logger
}

// LocationHandler serves regions, stations and banners.
type LocationHandler struct {
	locationUC usecase.LocationUsecase
	logger     *slog.Logger
}

// NewLocationHandler is the constructor for LocationHandler
func NewLocationHandler(params LocationHandlerParams) *LocationHandler {
	return &LocationHandler{
		locationUC: params.LocationUC,
		logger:     params.Logger,
	}
}

func (h *LocationHandler) States(c echo.Context) error {
	states, err := h.locationUC.States(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, states)
}

func (h *LocationHandler) Cities(c echo.Context) error {
	cities, err := h.locationUC.Cities(c.Request().Context(), c.Param("stateCode"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, cities)
}

func (h *LocationHandler) Stations(c echo.Context) error {
	stations, err := h.locationUC.Stations(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, stations)
}

func (h *LocationHandler) SubLocations(c echo.Context) error {
	subLocations, err := h.locationUC.SubLocations(c.Request().Context(), c.Param("station"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, subLocations)
}

func (h *LocationHandler) Search(c echo.Context) error {
	result, err := h.locationUC.Search(c.Request().Context(), c.QueryParam("query"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// Banners falls back to default images instead of failing.
func (h *LocationHandler) Banners(c echo.Context) error {
	banners, err := h.locationUC.Banners(c.Request().Context(), c.QueryParam("location"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, banners)
}
