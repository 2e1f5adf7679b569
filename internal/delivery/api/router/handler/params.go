package handler

import (
	"strconv"
	"strings"

	domainerrors "estatex/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// pathID parses the :id path parameter.
func pathID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithMessage("Invalid id")
	}

	return id, nil
}

// queryFloat parses an optional numeric query parameter.
func queryFloat(c echo.Context, name string) (*float64, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithMessage(name + " must be a number")
	}

	return &v, nil
}

// queryBool parses an optional "true"/"false" query parameter.
func queryBool(c echo.Context, name string) (*bool, error) {
	switch strings.TrimSpace(c.QueryParam(name)) {
	case "":
		return nil, nil
	case "true":
		v := true

		return &v, nil
	case "false":
		v := false

		return &v, nil
	default:
		return nil, domainerrors.ErrValidationFailed.WithMessage(name + " must be true or false")
	}
}
