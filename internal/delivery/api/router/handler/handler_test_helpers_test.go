package handler

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"estatex/internal/delivery/api/validator"
	"estatex/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Count   *int            `json:"count"`
	Error   *struct {
		Code    string `json:"code"`
		Details any    `json:"details"`
	} `json:"error"`
}

// newRequest builds an echo context with the validator installed and an
// optional authenticated user.
func newRequest(method, target, body string, user *entity.User) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	c := e.NewContext(req, rec)
	if user != nil {
		c.Set("user", user)
	}

	return c, rec
}

func withID(c echo.Context, id string) echo.Context {
	c.SetParamNames("id")
	c.SetParamValues(id)

	return c
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	var body envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func testBroker() *entity.User {
	return &entity.User{
		ID:       uuid.New(),
		FullName: "Asha Patil",
		Email:    "asha@example.com",
		Role:     entity.RoleBroker,
		Status:   entity.AccountStatusActive,
	}
}

func testAdmin() *entity.User {
	return &entity.User{ID: uuid.New(), Email: "admin@example.com", Role: entity.RoleAdmin, Status: entity.AccountStatusActive}
}
