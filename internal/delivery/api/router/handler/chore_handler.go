package handler

import (
	"log/slog"

	"chorechart/internal/delivery/api/response"
	"chorechart/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ChoreHandlerParams holds dependencies for ChoreHandler, injected by Fx.
type ChoreHandlerParams struct {
	fx.In

	ChoreUC usecase.ChoreUsecase
	Logger  *slog.Logger
}

// ChoreHandler serves chore management and completion.
type ChoreHandler struct {
	choreUC usecase.ChoreUsecase
	logger  *slog.Logger
}

// NewChoreHandler is the constructor for ChoreHandler.
func NewChoreHandler(params ChoreHandlerParams) *ChoreHandler {
	return &ChoreHandler{
		choreUC: params.ChoreUC,
		logger:  params.Logger,
	}
}

func (h *ChoreHandler) ListChores(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	chores, err := h.choreUC.ListChores(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, chores)
}

func (h *ChoreHandler) GetChore(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	choreID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	chore, err := h.choreUC.GetChore(c.Request().Context(), userID, choreID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, chore)
}

func (h *ChoreHandler) CreateChore(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req usecase.ChoreInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	chore, err := h.choreUC.CreateChore(c.Request().Context(), userID, &req)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, chore)
}

func (h *ChoreHandler) UpdateChore(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	choreID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req usecase.ChoreInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	chore, err := h.choreUC.UpdateChore(c.Request().Context(), userID, choreID, &req)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, chore)
}

func (h *ChoreHandler) DeleteChore(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	choreID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.choreUC.DeleteChore(c.Request().Context(), userID, choreID); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, "已刪除")
}

// CompleteChore credits the kid and records the completion.
func (h *ChoreHandler) CompleteChore(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	choreID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	out, err := h.choreUC.CompleteChore(c.Request().Context(), userID, choreID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, out)
}
