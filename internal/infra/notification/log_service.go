package notification

import (
	"context"
	"log/slog"

	"chorechart/internal/domain/service"
)

// logService writes notifications to the log instead of pushing them.
// It backs local development where no Firebase credentials exist.
type logService struct {
	logger *slog.Logger
}

// NewLogService creates a NotificationService that only logs.
func NewLogService(logger *slog.Logger) service.NotificationService {
	return &logService{logger: logger}
}

func (s *logService) SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error {
	s.logger.InfoContext(ctx, "[LogPush] Notification",
		slog.String("token", token),
		slog.String("title", title),
		slog.String("body", body),
		slog.Any("data", data),
	)

	return nil
}

func (s *logService) SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error) {
	s.logger.InfoContext(ctx, "[LogPush] Batch notification",
		slog.Int("token_count", len(tokens)),
		slog.String("title", title),
		slog.String("body", body),
		slog.Any("data", data),
	)

	return len(tokens), 0, nil, nil
}
