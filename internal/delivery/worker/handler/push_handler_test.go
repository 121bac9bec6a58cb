package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"chorechart/config"
	"chorechart/internal/domain/constants"
	"chorechart/internal/domain/service"
	mockUC "chorechart/internal/mocks/usecase"
	"chorechart/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestPushHandler(t *testing.T, provider string) (*PushHandler, *mockUC.MockNotifierUsecase) {
	t.Helper()

	notifier := mockUC.NewMockNotifierUsecase(t)
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: provider}}
	cfg.Env.Env = constants.EnvProduction

	h := NewPushHandler(PushHandlerParams{
		Config:   cfg,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		Notifier: notifier,
	})

	return h, notifier
}

func pushBody(t *testing.T, event *service.LedgerEvent, attributes map[string]string) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = "msg-1"
	msg.Message.Attributes = attributes
	msg.Subscription = "projects/p/subscriptions/ledger-push"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func servePush(h *PushHandler, body string, header http.Header) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestPushHandler_HandlePush(t *testing.T) {
	event := &service.LedgerEvent{
		Type:         "chore_completed",
		RecipientIDs: []string{"2b8c6f4e-8a0f-4d5e-9f61-3f1f7c1f6a10"},
		Title:        "家事完成",
		Body:         "Amy 完成了倒垃圾",
	}

	t.Run("dispatches and acknowledges", func(t *testing.T) {
		h, notifier := newTestPushHandler(t, constants.PubSubProviderLocal)
		notifier.EXPECT().
			DispatchLedgerEvent(mock.Anything, mock.MatchedBy(func(e *service.LedgerEvent) bool {
				return e.Type == "chore_completed" && len(e.RecipientIDs) == 1
			})).
			Return(&usecase.DispatchResult{Devices: 1, Sent: 1}, nil)

		rec := servePush(h, pushBody(t, event, map[string]string{"request_id": "req-42"}), nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("invalid event is dropped", func(t *testing.T) {
		h, notifier := newTestPushHandler(t, constants.PubSubProviderLocal)
		notifier.EXPECT().
			DispatchLedgerEvent(mock.Anything, mock.Anything).
			Return(nil, errors.Wrap(usecase.ErrInvalidEvent, "no recipients"))

		rec := servePush(h, pushBody(t, event, nil), nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("dispatch failure asks for redelivery", func(t *testing.T) {
		h, notifier := newTestPushHandler(t, constants.PubSubProviderLocal)
		notifier.EXPECT().
			DispatchLedgerEvent(mock.Anything, mock.Anything).
			Return(nil, errors.New("firebase unavailable"))

		rec := servePush(h, pushBody(t, event, nil), nil)
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("undecodable data is rejected", func(t *testing.T) {
		h, _ := newTestPushHandler(t, constants.PubSubProviderLocal)

		rec := servePush(h, `{"message":{"data":"%%%","messageId":"m"}}`, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestPushHandler_VerifyPushAuth(t *testing.T) {
	event := &service.LedgerEvent{Type: "behavior_logged", RecipientIDs: []string{"kid"}}

	t.Run("missing token", func(t *testing.T) {
		h, _ := newTestPushHandler(t, constants.PubSubProviderGoogle)
		require.True(t, h.verifyPushAuth)

		rec := servePush(h, pushBody(t, event, nil), nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("foreign issuer", func(t *testing.T) {
		h, _ := newTestPushHandler(t, constants.PubSubProviderGoogle)
		h.validate = func(_ context.Context, _, _ string) (*idtoken.Payload, error) {
			return &idtoken.Payload{Issuer: "https://evil.example.com"}, nil
		}

		rec := servePush(h, pushBody(t, event, nil), http.Header{"Authorization": {"Bearer signed"}})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid google token", func(t *testing.T) {
		h, notifier := newTestPushHandler(t, constants.PubSubProviderGoogle)
		var gotAudience string
		h.validate = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
			gotAudience = audience

			return &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": true}}, nil
		}
		notifier.EXPECT().
			DispatchLedgerEvent(mock.Anything, mock.Anything).
			Return(&usecase.DispatchResult{}, nil)

		rec := servePush(h, pushBody(t, event, nil), http.Header{"Authorization": {"Bearer signed"}})
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "http://example.com/push", gotAudience)
	})
}
