package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"chorechart/internal/delivery/api/response"
	"chorechart/internal/domain/entity"
	domainerrors "chorechart/internal/domain/errors"
	"chorechart/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// RedemptionHandlerParams holds dependencies for RedemptionHandler, injected by Fx.
type RedemptionHandlerParams struct {
	fx.In

	RedemptionUC usecase.RedemptionUsecase
	Logger       *slog.Logger
}

// RedemptionHandler serves the review queue and vouchers.
type RedemptionHandler struct {
	redemptionUC usecase.RedemptionUsecase
	logger       *slog.Logger
}

// NewRedemptionHandler is the constructor for RedemptionHandler.
func NewRedemptionHandler(params RedemptionHandlerParams) *RedemptionHandler {
	return &RedemptionHandler{
		redemptionUC: params.RedemptionUC,
		logger:       params.Logger,
	}
}

// ListRedemptions accepts an optional ?status= filter.
func (h *RedemptionHandler) ListRedemptions(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	status := entity.RedemptionStatus(strings.ToUpper(c.QueryParam("status")))
	if status != "" && !status.IsValid() {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("status: oneof=PENDING APPROVED REJECTED"))
	}

	redemptions, err := h.redemptionUC.ListRedemptions(c.Request().Context(), userID, status)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, redemptions)
}

func (h *RedemptionHandler) GetRedemption(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	redemptionID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	redemption, err := h.redemptionUC.GetRedemption(c.Request().Context(), userID, redemptionID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, redemption)
}

// ProcessRedemption approves or rejects a pending redemption.
func (h *RedemptionHandler) ProcessRedemption(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	redemptionID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req usecase.ProcessRedemptionInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	redemption, err := h.redemptionUC.ProcessRedemption(c.Request().Context(), userID, redemptionID, &req)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, redemption)
}

// GetVoucher streams the QR code PNG of an approved redemption.
func (h *RedemptionHandler) GetVoucher(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	redemptionID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	png, err := h.redemptionUC.GetVoucher(c.Request().Context(), userID, redemptionID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
