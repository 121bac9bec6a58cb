package notification

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"chorechart/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkTokens(t *testing.T) {
	tokens := make([]string, 1001)
	for i := range tokens {
		tokens[i] = "t"
	}

	chunks := chunkTokens(tokens, maxMulticastTokens)
	require.Len(t, chunks, 3)
	assert.Len(t, chunks[0], 500)
	assert.Len(t, chunks[1], 500)
	assert.Len(t, chunks[2], 1)

	assert.Empty(t, chunkTokens(nil, maxMulticastTokens))
}

func TestNewNotificationService_FallsBackToLog(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc, err := NewNotificationService(Params{
		Ctx:    context.Background(),
		Config: &config.Config{},
		Logger: logger,
	})
	require.NoError(t, err)
	require.IsType(t, &logService{}, svc)

	success, failure, invalid, err := svc.SendBatchNotification(context.Background(), []string{"a", "b"}, "title", "body", nil)
	require.NoError(t, err)
	assert.Equal(t, 2, success)
	assert.Zero(t, failure)
	assert.Empty(t, invalid)
}
