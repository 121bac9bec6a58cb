package handler

import (
	"log/slog"

	"chorechart/internal/delivery/api/response"
	"chorechart/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	DeviceUC usecase.DeviceUsecase
	Logger   *slog.Logger
}

// DeviceHandler holds dependencies for device-related handlers
type DeviceHandler struct {
	deviceUC usecase.DeviceUsecase
	logger   *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler
func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		deviceUC: params.DeviceUC,
		logger:   params.Logger,
	}
}

// UpdateFCMTokenRequest represents the request body for updating FCM token
type UpdateFCMTokenRequest struct {
	FCMToken string `json:"fcm_token" validate:"required"`
}

// RegisterDevice registers the caller's push device.
func (h *DeviceHandler) RegisterDevice(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req usecase.DeviceInfo
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	device, err := h.deviceUC.RegisterDevice(c.Request().Context(), userID, &req)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, device)
}

// GetUserDevices lists the caller's active devices.
func (h *DeviceHandler) GetUserDevices(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	devices, err := h.deviceUC.GetUserDevices(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, devices)
}

// UpdateFCMToken handles updating FCM token for a device
func (h *DeviceHandler) UpdateFCMToken(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	deviceID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateFCMTokenRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.deviceUC.UpdateFCMToken(c.Request().Context(), userID, deviceID, req.FCMToken); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, "FCM token updated successfully")
}

// DeactivateDevice handles deactivating a device
func (h *DeviceHandler) DeactivateDevice(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	deviceID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.deviceUC.DeactivateDevice(c.Request().Context(), userID, deviceID); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, "Device deactivated successfully")
}
