package impl

import (
	"context"
	"log/slog"

	deliverycontext "chorechart/internal/delivery/context"
	"chorechart/internal/domain/entity"
	domainerrors "chorechart/internal/domain/errors"
	"chorechart/internal/domain/repository"
	"chorechart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type deviceService struct {
	deviceRepo repository.DeviceRepository
	logger     *slog.Logger
}

// DeviceServiceParams holds dependencies for DeviceService, injected by Fx.
type DeviceServiceParams struct {
	fx.In

	DeviceRepo repository.DeviceRepository
	Logger     *slog.Logger
}

// NewDeviceService creates a new device service instance
func NewDeviceService(params DeviceServiceParams) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: params.DeviceRepo,
		logger:     params.Logger,
	}
}

func (s *deviceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// RegisterDevice registers a new device or updates the token of an existing one
func (s *deviceService) RegisterDevice(ctx context.Context, userID uuid.UUID, deviceInfo *usecase.DeviceInfo) (*entity.UserDevice, error) {
	if deviceInfo == nil || deviceInfo.FCMToken == "" || deviceInfo.DeviceID == "" {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("fcm_token and device_id are required"))
	}

	devices, err := s.deviceRepo.FindDevicesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find devices by user")
	}

	for _, device := range devices {
		if device.DeviceID != deviceInfo.DeviceID {
			continue
		}

		if err := s.deviceRepo.UpdateFCMToken(ctx, device.ID, deviceInfo.FCMToken); err != nil {
			return nil, errors.Wrap(err, "failed to update FCM token")
		}

		updated, err := s.deviceRepo.FindDeviceByID(ctx, device.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to find device by ID")
		}

		return updated, nil
	}

	device := &entity.UserDevice{
		UserID:   userID,
		FCMToken: deviceInfo.FCMToken,
		DeviceID: deviceInfo.DeviceID,
		Platform: deviceInfo.Platform,
		IsActive: true,
	}

	if err := s.deviceRepo.CreateDevice(ctx, device); err != nil {
		return nil, errors.Wrap(err, "failed to create device")
	}

	s.log(ctx).Info("Device registered", slog.Any("user_id", userID), slog.String("platform", device.Platform))

	return device, nil
}

// UpdateFCMToken updates the FCM token for a device owned by the user
func (s *deviceService) UpdateFCMToken(ctx context.Context, userID uuid.UUID, deviceID uuid.UUID, fcmToken string) error {
	if fcmToken == "" {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("fcm_token is required"))
	}

	if _, err := s.findOwnedDevice(ctx, userID, deviceID); err != nil {
		return err
	}

	if err := s.deviceRepo.UpdateFCMToken(ctx, deviceID, fcmToken); err != nil {
		return errors.Wrap(err, "failed to update FCM token")
	}

	return nil
}

// GetUserDevices retrieves all devices of a user
func (s *deviceService) GetUserDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	devices, err := s.deviceRepo.FindDevicesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find devices by user")
	}

	return devices, nil
}

// DeactivateDevice removes a device owned by the user
func (s *deviceService) DeactivateDevice(ctx context.Context, userID, deviceID uuid.UUID) error {
	if _, err := s.findOwnedDevice(ctx, userID, deviceID); err != nil {
		return err
	}

	if err := s.deviceRepo.DeleteDevice(ctx, deviceID); err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return errors.WithStack(domainerrors.ErrDeviceNotFound)
		}

		return errors.Wrap(err, "failed to delete device")
	}

	return nil
}

// findOwnedDevice loads a device and hides devices of other users behind DEVICE_NOT_FOUND.
func (s *deviceService) findOwnedDevice(ctx context.Context, userID, deviceID uuid.UUID) (*entity.UserDevice, error) {
	device, err := s.deviceRepo.FindDeviceByID(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return nil, errors.WithStack(domainerrors.ErrDeviceNotFound)
		}

		return nil, errors.Wrap(err, "failed to find device by ID")
	}

	if device.UserID != userID {
		return nil, errors.WithStack(domainerrors.ErrDeviceNotFound)
	}

	return device, nil
}
