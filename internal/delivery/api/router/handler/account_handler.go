package handler

import (
	"log/slog"

	"chorechart/internal/delivery/api/response"
	"chorechart/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AccountHandlerParams holds dependencies for AccountHandler, injected by Fx.
type AccountHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
	Logger    *slog.Logger
}

// AccountHandler serves registration and the token endpoints.
type AccountHandler struct {
	accountUC usecase.AccountUsecase
	logger    *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler.
func NewAccountHandler(params AccountHandlerParams) *AccountHandler {
	return &AccountHandler{
		accountUC: params.AccountUC,
		logger:    params.Logger,
	}
}

// Register opens a household with a parent account.
func (h *AccountHandler) Register(c echo.Context) error {
	var req usecase.RegisterParentInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.accountUC.RegisterParent(c.Request().Context(), &req)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, user)
}

// Login exchanges credentials for an access and refresh token pair.
func (h *AccountHandler) Login(c echo.Context) error {
	var req usecase.LoginInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	out, err := h.accountUC.Login(c.Request().Context(), &req)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, out)
}

// RefreshToken issues a new access token.
func (h *AccountHandler) RefreshToken(c echo.Context) error {
	var req usecase.RefreshTokenInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	out, err := h.accountUC.RefreshToken(c.Request().Context(), &req)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, out)
}

// Logout revokes the given refresh token.
func (h *AccountHandler) Logout(c echo.Context) error {
	var req usecase.LogoutInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.accountUC.Logout(c.Request().Context(), &req); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, "已登出")
}
