package impl

import (
	"context"
	"testing"

	"chorechart/internal/domain/entity"
	domainerrors "chorechart/internal/domain/errors"
	"chorechart/internal/domain/repository"
	mockRepo "chorechart/internal/mocks/repository"
	"chorechart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// deviceServiceFixtures holds all test dependencies for device service tests.
type deviceServiceFixtures struct {
	service    usecase.DeviceUsecase
	deviceRepo *mockRepo.MockDeviceRepository
}

func createTestDeviceService(t *testing.T) deviceServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	service := NewDeviceService(DeviceServiceParams{DeviceRepo: deviceRepo, Logger: newDiscardLogger()})

	return deviceServiceFixtures{
		service:    service,
		deviceRepo: deviceRepo,
	}
}

func TestDeviceService_RegisterDevice_NewDevice(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	deviceInfo := &usecase.DeviceInfo{FCMToken: "token-1", DeviceID: "tablet", Platform: "android"}

	fx.deviceRepo.EXPECT().FindDevicesByUser(ctx, userID).Return([]*entity.UserDevice{}, nil)
	fx.deviceRepo.EXPECT().CreateDevice(ctx, mock.AnythingOfType("*entity.UserDevice")).Return(nil)

	device, err := fx.service.RegisterDevice(ctx, userID, deviceInfo)

	require.NoError(t, err)
	assert.Equal(t, userID, device.UserID)
	assert.Equal(t, "token-1", device.FCMToken)
	assert.Equal(t, "tablet", device.DeviceID)
	assert.True(t, device.IsActive)
}

func TestDeviceService_RegisterDevice_ExistingDeviceRefreshesToken(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.UserDevice{ID: uuid.New(), UserID: userID, DeviceID: "tablet", FCMToken: "old"}
	refreshed := &entity.UserDevice{ID: existing.ID, UserID: userID, DeviceID: "tablet", FCMToken: "new", IsActive: true}

	fx.deviceRepo.EXPECT().FindDevicesByUser(ctx, userID).Return([]*entity.UserDevice{existing}, nil)
	fx.deviceRepo.EXPECT().UpdateFCMToken(ctx, existing.ID, "new").Return(nil)
	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, existing.ID).Return(refreshed, nil)

	device, err := fx.service.RegisterDevice(ctx, userID, &usecase.DeviceInfo{FCMToken: "new", DeviceID: "tablet", Platform: "android"})

	require.NoError(t, err)
	assert.Equal(t, refreshed, device)
}

func TestDeviceService_RegisterDevice_MissingToken(t *testing.T) {
	fx := createTestDeviceService(t)

	device, err := fx.service.RegisterDevice(context.Background(), uuid.New(), &usecase.DeviceInfo{DeviceID: "tablet"})

	assert.Nil(t, device)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestDeviceService_UpdateFCMToken(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()

	t.Run("own device", func(t *testing.T) {
		fx := createTestDeviceService(t)
		fx.deviceRepo.EXPECT().FindDeviceByID(ctx, deviceID).Return(&entity.UserDevice{ID: deviceID, UserID: userID}, nil)
		fx.deviceRepo.EXPECT().UpdateFCMToken(ctx, deviceID, "fresh").Return(nil)

		require.NoError(t, fx.service.UpdateFCMToken(ctx, userID, deviceID, "fresh"))
	})

	t.Run("someone else's device", func(t *testing.T) {
		fx := createTestDeviceService(t)
		fx.deviceRepo.EXPECT().FindDeviceByID(ctx, deviceID).Return(&entity.UserDevice{ID: deviceID, UserID: uuid.New()}, nil)

		err := fx.service.UpdateFCMToken(ctx, userID, deviceID, "fresh")

		assert.True(t, errors.Is(err, domainerrors.ErrDeviceNotFound))
	})

	t.Run("unknown device", func(t *testing.T) {
		fx := createTestDeviceService(t)
		fx.deviceRepo.EXPECT().FindDeviceByID(ctx, deviceID).Return(nil, repository.ErrDeviceNotFound)

		err := fx.service.UpdateFCMToken(ctx, userID, deviceID, "fresh")

		assert.True(t, errors.Is(err, domainerrors.ErrDeviceNotFound))
	})
}

func TestDeviceService_GetUserDevices(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	devices := []*entity.UserDevice{{ID: uuid.New(), UserID: userID}}

	fx.deviceRepo.EXPECT().FindDevicesByUser(ctx, userID).Return(devices, nil)

	got, err := fx.service.GetUserDevices(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, devices, got)
}

func TestDeviceService_DeactivateDevice(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, deviceID).Return(&entity.UserDevice{ID: deviceID, UserID: userID}, nil)
	fx.deviceRepo.EXPECT().DeleteDevice(ctx, deviceID).Return(nil)

	require.NoError(t, fx.service.DeactivateDevice(ctx, userID, deviceID))
}
