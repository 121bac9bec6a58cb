package handler

import (
	"log/slog"

	"chorechart/internal/delivery/api/response"
	"chorechart/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	AccountUC usecase.AccountUsecase
	Logger    *slog.Logger
}

// ProfileHandler serves the household profiles and behavior logging.
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	accountUC usecase.AccountUsecase
	logger    *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler.
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC: params.ProfileUC,
		accountUC: params.AccountUC,
		logger:    params.Logger,
	}
}

// ListProfiles returns the profiles visible to the caller.
func (h *ProfileHandler) ListProfiles(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	profiles, err := h.profileUC.ListProfiles(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, profiles)
}

// GetMyProfile returns the caller's own profile.
func (h *ProfileHandler) GetMyProfile(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	profile, err := h.profileUC.GetMyProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, profile)
}

// GetProfile returns one visible profile.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	targetID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	profile, err := h.profileUC.GetProfile(c.Request().Context(), userID, targetID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, profile)
}

// CreateKid creates a kid account linked to the calling parent.
func (h *ProfileHandler) CreateKid(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req usecase.CreateKidInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.accountUC.CreateKid(c.Request().Context(), userID, &req)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, user)
}

// RelinkProfile moves a kid under another parent or unlinks it.
func (h *ProfileHandler) RelinkProfile(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	targetID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req usecase.RelinkProfileInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	profile, err := h.profileUC.RelinkProfile(c.Request().Context(), userID, targetID, &req)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, profile)
}

// DeleteKid removes a linked kid account.
func (h *ProfileHandler) DeleteKid(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	targetID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.profileUC.DeleteKid(c.Request().Context(), userID, targetID); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, "已刪除")
}

// LogBehavior applies a GOOD or BAD adjustment to a kid's points.
func (h *ProfileHandler) LogBehavior(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	targetID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req usecase.LogBehaviorInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	out, err := h.profileUC.LogBehavior(c.Request().Context(), userID, targetID, &req)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, out)
}

// GetActivity returns the completions, behavior logs and redemptions of a profile.
func (h *ProfileHandler) GetActivity(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	targetID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	activity, err := h.profileUC.GetActivity(c.Request().Context(), userID, targetID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, activity)
}
