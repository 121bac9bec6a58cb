package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"chorechart/config"
	"chorechart/internal/domain/constants"
	"chorechart/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PostsPushEnvelope(t *testing.T) {
	var received PushMessage
	var requestID string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL, discardLogger())
	event := &service.LedgerEvent{
		Type:         service.EventChoreCompleted,
		RequestID:    "req-1",
		RecipientIDs: []string{"parent-1"},
		Title:        "Ian finished a chore",
	}

	require.NoError(t, publisher.PublishLedgerEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, service.EventChoreCompleted, received.Message.Attributes["type"])
	assert.NotEmpty(t, received.Message.MessageID)

	raw, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.LedgerEvent
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, event.Title, decoded.Title)
	assert.Equal(t, event.RecipientIDs, decoded.RecipientIDs)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL, discardLogger())
	err := publisher.PublishLedgerEvent(context.Background(), &service.LedgerEvent{Type: service.EventBehaviorLogged})

	assert.Error(t, err)
}

func TestNewEventPublisher(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr bool
	}{
		{name: "nil config", cfg: nil},
		{name: "noop", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderNoop}},
		{name: "local", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:8090/push"}},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}, wantErr: true},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, TopicID: "events"}, wantErr: true},
		{name: "unknown", cfg: &config.PubSubConfig{Provider: "kafka"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     lc,
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.cfg},
				Logger: discardLogger(),
			})

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.NotNil(t, publisher)
			lc.RequireStart().RequireStop()
		})
	}
}
