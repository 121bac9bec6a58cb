package notification

import (
	"context"

	"chorechart/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// maxMulticastTokens is the FCM limit for a single multicast request.
const maxMulticastTokens = 500

type firebaseService struct {
	client *messaging.Client
}

// NewFirebaseService creates a new Firebase notification service instance
func NewFirebaseService(ctx context.Context, projectID, credentialsPath string) (service.NotificationService, error) {
	var conf *firebase.Config
	if projectID != "" {
		conf = &firebase.Config{ProjectID: projectID}
	}

	app, err := firebase.NewApp(ctx, conf, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseService{
		client: client,
	}, nil
}

// SendSingleNotification sends a push notification to a single device token
func (s *firebaseService) SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error {
	message := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	if _, err := s.client.Send(ctx, message); err != nil {
		return errors.Wrap(err, "failed to send notification")
	}

	return nil
}

// SendBatchNotification sends push notifications to many device tokens, split into FCM-sized chunks.
func (s *firebaseService) SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error) {
	invalidTokens = make([]string, 0)

	for _, chunk := range chunkTokens(tokens, maxMulticastTokens) {
		message := &messaging.MulticastMessage{
			Tokens: chunk,
			Notification: &messaging.Notification{
				Title: title,
				Body:  body,
			},
			Data: data,
		}

		response, sendErr := s.client.SendEachForMulticast(ctx, message)
		if sendErr != nil {
			return successCount, failureCount, invalidTokens, errors.Wrap(sendErr, "failed to send multicast notification")
		}

		successCount += response.SuccessCount
		failureCount += response.FailureCount

		for idx, sendResponse := range response.Responses {
			if sendResponse.Error == nil {
				continue
			}
			if messaging.IsInvalidArgument(sendResponse.Error) || messaging.IsUnregistered(sendResponse.Error) {
				invalidTokens = append(invalidTokens, chunk[idx])
			}
		}
	}

	return successCount, failureCount, invalidTokens, nil
}

func chunkTokens(tokens []string, size int) [][]string {
	chunks := make([][]string, 0, (len(tokens)+size-1)/size)
	for start := 0; start < len(tokens); start += size {
		end := min(start+size, len(tokens))
		chunks = append(chunks, tokens[start:end])
	}

	return chunks
}
