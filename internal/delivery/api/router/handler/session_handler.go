package handler

import (
	"log/slog"

	"chorechart/internal/delivery/api/response"
	"chorechart/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// SessionHandlerParams holds dependencies for SessionHandler, injected by Fx.
type SessionHandlerParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
	Logger    *slog.Logger
}

// SessionHandler lets a user review and revoke refresh-token sessions.
type SessionHandler struct {
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler.
func NewSessionHandler(params SessionHandlerParams) *SessionHandler {
	return &SessionHandler{
		sessionUC: params.SessionUC,
		logger:    params.Logger,
	}
}

func (h *SessionHandler) ListSessions(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	sessions, err := h.sessionUC.GetActiveSessions(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, sessions)
}

func (h *SessionHandler) RevokeSession(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	sessionID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.sessionUC.RevokeSession(c.Request().Context(), userID, sessionID); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, "Session revoked")
}

func (h *SessionHandler) RevokeAllSessions(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	if err := h.sessionUC.RevokeAllSessions(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, "All sessions revoked")
}
