package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"estatex/config"
	deliverycontext "estatex/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEchoContext(header string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/properties?station=Andheri", nil)
	if header != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, header)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestRequestIDMiddleware_ReusesHeader(t *testing.T) {
	m := NewRequestIDMiddleware(slog.New(slog.DiscardHandler))
	c, rec := newEchoContext("req-123")

	err := m.Process(func(c echo.Context) error {
		assert.Equal(t, "req-123", deliverycontext.GetRequestID(c))
		assert.Equal(t, "req-123", deliverycontext.GetRequestIDFromContext(c.Request().Context()))
		assert.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

		return nil
	})(c)

	require.NoError(t, err)
	assert.Equal(t, "req-123", rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestRequestIDMiddleware_ReplacesOversizedHeader(t *testing.T) {
	m := NewRequestIDMiddleware(slog.New(slog.DiscardHandler))
	c, rec := newEchoContext(strings.Repeat("x", maxRequestIDLength+1))

	require.NoError(t, m.Process(func(echo.Context) error { return nil })(c))

	got := rec.Header().Get(deliverycontext.HeaderXRequestID)
	assert.Len(t, got, 36)
}

func newLoggerMiddleware(debug bool) (*LoggerMiddleware, *bytes.Buffer) {
	var buf bytes.Buffer
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return NewLoggerMiddleware(slog.New(slog.NewJSONHandler(&buf, nil)), cfg), &buf
}

func TestLoggerMiddleware_SkipsSuccessOutsideDebug(t *testing.T) {
	m, buf := newLoggerMiddleware(false)
	c, _ := newEchoContext("")

	require.NoError(t, m.Handle(func(c echo.Context) error { return c.NoContent(http.StatusOK) })(c))
	assert.Empty(t, buf.String())
}

func TestLoggerMiddleware_LogsFailures(t *testing.T) {
	m, buf := newLoggerMiddleware(false)
	c, _ := newEchoContext("")

	err := m.Handle(func(echo.Context) error { return echo.NewHTTPError(http.StatusNotFound) })(c)

	require.Error(t, err)
	assert.Contains(t, buf.String(), `"status":404`)
	assert.Contains(t, buf.String(), `"level":"WARN"`)
}

func TestLoggerMiddleware_LogsEverythingInDebug(t *testing.T) {
	m, buf := newLoggerMiddleware(true)
	c, _ := newEchoContext("")

	require.NoError(t, m.Handle(func(c echo.Context) error { return c.NoContent(http.StatusOK) })(c))
	assert.Contains(t, buf.String(), `"query":"station=Andheri"`)
	assert.Contains(t, buf.String(), `"level":"INFO"`)
}
