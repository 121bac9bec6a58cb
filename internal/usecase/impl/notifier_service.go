package impl

import (
	"context"
	"log/slog"

	deliverycontext "chorechart/internal/delivery/context"
	"chorechart/internal/domain/repository"
	"chorechart/internal/domain/service"
	"chorechart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type notifierService struct {
	deviceRepo      repository.DeviceRepository
	notificationSvc service.NotificationService
	logger          *slog.Logger
}

// NotifierServiceParams holds dependencies for NotifierService, injected by Fx.
type NotifierServiceParams struct {
	fx.In

	DeviceRepo          repository.DeviceRepository
	NotificationService service.NotificationService
	Logger              *slog.Logger
}

// NewNotifierService creates a new notifier service instance
func NewNotifierService(params NotifierServiceParams) usecase.NotifierUsecase {
	return &notifierService{
		deviceRepo:      params.DeviceRepo,
		notificationSvc: params.NotificationService,
		logger:          params.Logger,
	}
}

func (s *notifierService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// DispatchLedgerEvent pushes the event to every active device of its recipients and
// deactivates the tokens the provider reports as invalid.
func (s *notifierService) DispatchLedgerEvent(ctx context.Context, event *service.LedgerEvent) (*usecase.DispatchResult, error) {
	if event == nil || event.Title == "" {
		return nil, errors.Wrap(usecase.ErrInvalidEvent, "event has no title")
	}

	recipients := make([]uuid.UUID, 0, len(event.RecipientIDs))
	for _, raw := range event.RecipientIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, errors.Wrapf(usecase.ErrInvalidEvent, "recipient %q is not a uuid", raw)
		}
		recipients = append(recipients, id)
	}

	result := &usecase.DispatchResult{}
	if len(recipients) == 0 {
		return result, nil
	}

	devices, err := s.deviceRepo.FindActiveDevicesByUsers(ctx, recipients)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find recipient devices")
	}
	result.Devices = len(devices)

	if len(devices) == 0 {
		s.log(ctx).Debug("No active devices for ledger event", slog.String("type", event.Type))

		return result, nil
	}

	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
	}

	data := make(map[string]string, len(event.Data)+1)
	for k, v := range event.Data {
		data[k] = v
	}
	data["type"] = event.Type

	sent, failed, invalidTokens, err := s.notificationSvc.SendBatchNotification(ctx, tokens, event.Title, event.Body, data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to send push notifications")
	}
	result.Sent = sent
	result.Failed = failed

	if len(invalidTokens) > 0 {
		if err := s.deviceRepo.DeactivateByTokens(ctx, invalidTokens); err != nil {
			// The pushes already went out; a redelivery would send them twice.
			s.log(ctx).Warn("Failed to deactivate invalid tokens", slog.Int("count", len(invalidTokens)), slog.Any("error", err))
		} else {
			result.DeactivatedCount = len(invalidTokens)
		}
	}

	s.log(ctx).Info("Ledger event dispatched",
		slog.String("type", event.Type),
		slog.Int("devices", result.Devices),
		slog.Int("sent", result.Sent),
		slog.Int("failed", result.Failed),
		slog.Int("deactivated", result.DeactivatedCount),
	)

	return result, nil
}
