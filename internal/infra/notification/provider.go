package notification

import (
	"context"
	"log/slog"

	"chorechart/config"
	"chorechart/internal/domain/service"

	"go.uber.org/fx"
)

// Params holds dependencies for the NotificationService, injected by Fx
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewNotificationService picks Firebase when credentials are configured and the log sender otherwise.
func NewNotificationService(params Params) (service.NotificationService, error) {
	cfg := params.Config.Firebase
	if cfg == nil || cfg.CredentialsPath == "" {
		params.Logger.Info("Firebase not configured, notifications are logged only")

		return NewLogService(params.Logger), nil
	}

	svc, err := NewFirebaseService(params.Ctx, cfg.ProjectID, cfg.CredentialsPath)
	if err != nil {
		return nil, err
	}

	params.Logger.Info("Firebase messaging initialized", slog.String("project_id", cfg.ProjectID))

	return svc, nil
}
