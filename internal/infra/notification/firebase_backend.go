// Package notification hosts the Firebase Cloud Messaging backend and the per-app backend registry.
package notification

import (
	"context"
	"encoding/json"
	"log/slog"

	"pushgate/internal/domain/entity"
	"pushgate/internal/domain/service"
	"pushgate/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// ErrInvalidCredential is returned when a credential blob cannot produce a backend.
var ErrInvalidCredential = errors.New("invalid push credential")

const serviceAccountType = "service_account"

// MessagingClient is the subset of the Firebase Messaging API the backend uses.
// *messaging.Client satisfies it.
type MessagingClient interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

type serviceAccount struct {
	Type        string `json:"type"`
	ProjectID   string `json:"project_id"`
	ClientEmail string `json:"client_email"`
	PrivateKey  string `json:"private_key"`
}

func parseServiceAccount(credential []byte) (*serviceAccount, error) {
	if len(credential) == 0 {
		return nil, errors.Wrap(ErrInvalidCredential, "credential is empty")
	}

	var account serviceAccount
	if err := json.Unmarshal(credential, &account); err != nil {
		return nil, errors.Wrap(ErrInvalidCredential, "credential is not a JSON object")
	}

	switch {
	case account.Type != serviceAccountType:
		return nil, errors.Wrapf(ErrInvalidCredential, "credential type %q is not %q", account.Type, serviceAccountType)
	case account.ProjectID == "":
		return nil, errors.Wrap(ErrInvalidCredential, "project_id is missing")
	case account.ClientEmail == "":
		return nil, errors.Wrap(ErrInvalidCredential, "client_email is missing")
	case account.PrivateKey == "":
		return nil, errors.Wrap(ErrInvalidCredential, "private_key is missing")
	}

	return &account, nil
}

type firebaseFactory struct {
	logger *slog.Logger
}

// NewFirebaseFactory creates a factory that builds one Firebase app per service-account credential.
func NewFirebaseFactory(logger *slog.Logger) service.PushBackendFactory {
	return &firebaseFactory{
		logger: logger,
	}
}

func (f *firebaseFactory) New(ctx context.Context, name string, credential []byte) (service.PushBackend, error) {
	account, err := parseServiceAccount(credential)
	if err != nil {
		return nil, err
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: account.ProjectID}, option.WithCredentialsJSON(credential))
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidCredential, "failed to initialize Firebase app: %v", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidCredential, "failed to get messaging client: %v", err)
	}

	f.logger.Debug("Firebase backend created",
		slog.String("name", name),
		slog.String("project_id", account.ProjectID),
	)

	return NewFirebaseBackend(client), nil
}

type firebaseBackend struct {
	client MessagingClient
}

// NewFirebaseBackend wraps a messaging client as a PushBackend.
func NewFirebaseBackend(client MessagingClient) service.PushBackend {
	return &firebaseBackend{
		client: client,
	}
}

func (b *firebaseBackend) Send(ctx context.Context, token string, msg *entity.PushMessage) (string, error) {
	message := &messaging.Message{
		Token:        token,
		Notification: toMessagingNotification(msg),
		Data:         msg.Data,
	}

	messageID, err := b.client.Send(ctx, message)
	if err != nil {
		return "", errors.Wrap(err, "failed to send notification")
	}

	return messageID, nil
}

func (b *firebaseBackend) SendMulticast(ctx context.Context, tokens []string, msg *entity.PushMessage) (*service.BatchResponse, error) {
	if len(tokens) == 0 {
		return &service.BatchResponse{Responses: []service.SendResponse{}}, nil
	}

	if len(tokens) > service.MaxMulticastTokens {
		return nil, errors.Errorf("token count exceeds limit: %d (max %d)", len(tokens), service.MaxMulticastTokens)
	}

	message := &messaging.MulticastMessage{
		Tokens:       tokens,
		Notification: toMessagingNotification(msg),
		Data:         msg.Data,
	}

	response, err := b.client.SendEachForMulticast(ctx, message)
	if err != nil {
		return nil, errors.Wrap(err, "failed to send multicast notification")
	}

	result := &service.BatchResponse{
		SuccessCount: response.SuccessCount,
		FailureCount: response.FailureCount,
		Responses:    make([]service.SendResponse, 0, len(response.Responses)),
	}
	for _, sendResponse := range response.Responses {
		item := service.SendResponse{
			Success:   sendResponse.Success,
			MessageID: sendResponse.MessageID,
		}
		if sendResponse.Error != nil {
			item.Error = sendResponse.Error.Error()
		}
		result.Responses = append(result.Responses, item)
	}

	return result, nil
}

// Close is a no-op; the Firebase SDK holds no resources that need releasing.
func (b *firebaseBackend) Close() error {
	return nil
}

func toMessagingNotification(msg *entity.PushMessage) *messaging.Notification {
	if msg.Notification == nil {
		return nil
	}

	return &messaging.Notification{
		Title:    msg.Notification.Title,
		Body:     msg.Notification.Body,
		ImageURL: msg.Notification.ImageURL,
	}
}
