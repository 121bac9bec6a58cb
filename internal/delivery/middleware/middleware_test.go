package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"chorechart/config"
	deliverycontext "chorechart/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEcho(buf *bytes.Buffer, debug bool) *echo.Echo {
	logger := slog.New(slog.NewTextHandler(buf, nil))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.Use(NewLoggerMiddleware(logger, cfg).Handle)

	return e
}

func TestRequestIDMiddleware_PropagatesHeader(t *testing.T) {
	var buf bytes.Buffer
	e := newTestEcho(&buf, false)

	var seen string
	e.GET("/chores", func(c echo.Context) error {
		seen = deliverycontext.GetRequestIDFromContext(c.Request().Context())

		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/chores", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-abc")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "req-abc", seen)
	assert.Equal(t, "req-abc", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Contains(t, buf.String(), "request_id=req-abc")
}

func TestRequestIDMiddleware_GeneratesID(t *testing.T) {
	var buf bytes.Buffer
	e := newTestEcho(&buf, false)
	e.GET("/chores", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/chores", nil))

	require.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestLoggerMiddleware_SkipsHealth(t *testing.T) {
	var buf bytes.Buffer
	e := newTestEcho(&buf, false)
	e.GET("/health", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.NotContains(t, buf.String(), "HTTP Request")
}

func TestLoggerMiddleware_LevelFollowsStatus(t *testing.T) {
	var buf bytes.Buffer
	e := newTestEcho(&buf, false)
	e.GET("/missing", func(c echo.Context) error { return c.NoContent(http.StatusNotFound) })

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))

	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "status=404")
}
