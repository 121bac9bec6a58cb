package handler

import (
	"net/http"

	"chorechart/internal/delivery/api/middleware"
	domainerrors "chorechart/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// HealthCheck reports that the process is serving.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// currentUser returns the authenticated caller set by AuthMiddleware.Authenticate.
func currentUser(c echo.Context) (uuid.UUID, error) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return uuid.Nil, errors.WithStack(domainerrors.ErrUnauthorized)
	}

	return userID, nil
}

// bindAndValidate decodes the request into req and runs its validate tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("malformed request body"))
	}

	if err := c.Validate(req); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// pathID parses a UUID path parameter.
func pathID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(name + ": invalid id"))
	}

	return id, nil
}
