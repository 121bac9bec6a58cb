package impl

import (
	"context"
	"testing"

	"chorechart/internal/domain/entity"
	"chorechart/internal/domain/service"
	mockRepo "chorechart/internal/mocks/repository"
	mockSvc "chorechart/internal/mocks/service"
	"chorechart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type notifierFixtures struct {
	service    usecase.NotifierUsecase
	deviceRepo *mockRepo.MockDeviceRepository
	pusher     *mockSvc.MockNotificationService
}

func createTestNotifierService(t *testing.T) notifierFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	pusher := mockSvc.NewMockNotificationService(t)

	return notifierFixtures{
		service: NewNotifierService(NotifierServiceParams{
			DeviceRepo:          deviceRepo,
			NotificationService: pusher,
			Logger:              newDiscardLogger(),
		}),
		deviceRepo: deviceRepo,
		pusher:     pusher,
	}
}

func TestNotifierService_DispatchLedgerEvent(t *testing.T) {
	fx := createTestNotifierService(t)

	ctx := context.Background()
	parentID := uuid.New()
	event := &service.LedgerEvent{
		Type:         service.EventChoreCompleted,
		RecipientIDs: []string{parentID.String()},
		Title:        "家事完成",
		Body:         "Amy 完成了「倒垃圾」",
		Data:         map[string]string{"chore_id": "c1"},
	}
	devices := []*entity.UserDevice{
		{ID: uuid.New(), UserID: parentID, FCMToken: "phone"},
		{ID: uuid.New(), UserID: parentID, FCMToken: "stale"},
	}

	fx.deviceRepo.EXPECT().FindActiveDevicesByUsers(ctx, []uuid.UUID{parentID}).Return(devices, nil)
	fx.pusher.EXPECT().
		SendBatchNotification(ctx, []string{"phone", "stale"}, event.Title, event.Body,
			map[string]string{"chore_id": "c1", "type": service.EventChoreCompleted}).
		Return(1, 1, []string{"stale"}, nil)
	fx.deviceRepo.EXPECT().DeactivateByTokens(ctx, []string{"stale"}).Return(nil)

	result, err := fx.service.DispatchLedgerEvent(ctx, event)

	require.NoError(t, err)
	assert.Equal(t, &usecase.DispatchResult{Devices: 2, Sent: 1, Failed: 1, DeactivatedCount: 1}, result)
}

func TestNotifierService_DispatchLedgerEvent_NoDevices(t *testing.T) {
	fx := createTestNotifierService(t)

	ctx := context.Background()
	kidID := uuid.New()

	fx.deviceRepo.EXPECT().FindActiveDevicesByUsers(ctx, []uuid.UUID{kidID}).Return(nil, nil)

	result, err := fx.service.DispatchLedgerEvent(ctx, &service.LedgerEvent{
		Type:         service.EventBehaviorLogged,
		RecipientIDs: []string{kidID.String()},
		Title:        "表現良好 👍",
	})

	require.NoError(t, err)
	assert.Zero(t, result.Devices)
	fx.pusher.AssertNotCalled(t, "SendBatchNotification", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestNotifierService_DispatchLedgerEvent_InvalidEvent(t *testing.T) {
	tests := []struct {
		name  string
		event *service.LedgerEvent
	}{
		{name: "nil event", event: nil},
		{name: "missing title", event: &service.LedgerEvent{RecipientIDs: []string{uuid.NewString()}}},
		{name: "bad recipient", event: &service.LedgerEvent{Title: "x", RecipientIDs: []string{"not-a-uuid"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestNotifierService(t)

			result, err := fx.service.DispatchLedgerEvent(context.Background(), tt.event)

			assert.Nil(t, result)
			assert.True(t, errors.Is(err, usecase.ErrInvalidEvent))
		})
	}
}

func TestNotifierService_DispatchLedgerEvent_DeactivationFailureIsNotFatal(t *testing.T) {
	fx := createTestNotifierService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindActiveDevicesByUsers(ctx, []uuid.UUID{userID}).
		Return([]*entity.UserDevice{{UserID: userID, FCMToken: "stale"}}, nil)
	fx.pusher.EXPECT().
		SendBatchNotification(ctx, []string{"stale"}, "t", "", mock.Anything).
		Return(0, 1, []string{"stale"}, nil)
	fx.deviceRepo.EXPECT().DeactivateByTokens(ctx, []string{"stale"}).Return(errors.New("db down"))

	result, err := fx.service.DispatchLedgerEvent(ctx, &service.LedgerEvent{Title: "t", RecipientIDs: []string{userID.String()}})

	require.NoError(t, err)
	assert.Equal(t, 1, result.Failed)
	assert.Zero(t, result.DeactivatedCount)
}

func TestNotifierService_DispatchLedgerEvent_PushError(t *testing.T) {
	fx := createTestNotifierService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindActiveDevicesByUsers(ctx, []uuid.UUID{userID}).
		Return([]*entity.UserDevice{{UserID: userID, FCMToken: "phone"}}, nil)
	fx.pusher.EXPECT().
		SendBatchNotification(ctx, []string{"phone"}, "t", "", mock.Anything).
		Return(0, 0, nil, errors.New("fcm unavailable"))

	_, err := fx.service.DispatchLedgerEvent(ctx, &service.LedgerEvent{Title: "t", RecipientIDs: []string{userID.String()}})

	assert.Error(t, err)
	assert.False(t, errors.Is(err, usecase.ErrInvalidEvent))
}
