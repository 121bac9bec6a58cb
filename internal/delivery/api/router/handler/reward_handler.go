package handler

import (
	"log/slog"

	"chorechart/internal/delivery/api/response"
	"chorechart/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// RewardHandlerParams holds dependencies for RewardHandler, injected by Fx.
type RewardHandlerParams struct {
	fx.In

	RewardUC usecase.RewardUsecase
	Logger   *slog.Logger
}

// RewardHandler serves the reward catalog and redemption requests.
type RewardHandler struct {
	rewardUC usecase.RewardUsecase
	logger   *slog.Logger
}

// NewRewardHandler is the constructor for RewardHandler.
func NewRewardHandler(params RewardHandlerParams) *RewardHandler {
	return &RewardHandler{
		rewardUC: params.RewardUC,
		logger:   params.Logger,
	}
}

func (h *RewardHandler) ListRewards(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	rewards, err := h.rewardUC.ListRewards(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, rewards)
}

func (h *RewardHandler) GetReward(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	rewardID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	reward, err := h.rewardUC.GetReward(c.Request().Context(), userID, rewardID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, reward)
}

func (h *RewardHandler) CreateReward(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req usecase.RewardInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	reward, err := h.rewardUC.CreateReward(c.Request().Context(), userID, &req)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, reward)
}

func (h *RewardHandler) UpdateReward(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	rewardID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req usecase.RewardInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	reward, err := h.rewardUC.UpdateReward(c.Request().Context(), userID, rewardID, &req)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, reward)
}

func (h *RewardHandler) DeleteReward(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	rewardID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.rewardUC.DeleteReward(c.Request().Context(), userID, rewardID); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, "已刪除")
}

// RedeemReward debits the kid and files a pending redemption.
func (h *RewardHandler) RedeemReward(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	rewardID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	out, err := h.rewardUC.RedeemReward(c.Request().Context(), userID, rewardID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, out)
}
