package context

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"chorechart/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestGetRequestID_GeneratesWhenMissing(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	assert.NotEmpty(t, GetRequestID(c))

	SetRequestID(c, "req-1")
	assert.Equal(t, "req-1", GetRequestID(c))
}

func TestSetPrincipal_EnrichesLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(WithLogger(req.Context(), logger))
	c := e.NewContext(req, httptest.NewRecorder())

	userID := uuid.New()
	SetPrincipal(c, userID, entity.Roles{entity.RoleKid})

	got, ok := GetUserID(c)
	assert.True(t, ok)
	assert.Equal(t, userID, got)
	assert.True(t, GetRoles(c).Contains(entity.RoleKid))

	GetLoggerOrDefault(c.Request().Context(), slog.Default()).Info("hello")
	assert.Contains(t, buf.String(), "user_id="+userID.String())
}

func TestGetUserID_Unauthenticated(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	_, ok := GetUserID(c)
	assert.False(t, ok)
	assert.Nil(t, GetRoles(c))
}
