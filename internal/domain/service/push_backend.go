package service

import (
	"context"

	"pushgate/internal/domain/entity"

	"github.com/google/uuid"
)

// MaxMulticastTokens is the provider's hard limit of tokens per multicast call.
const MaxMulticastTokens = 500

// SendResponse is the provider outcome for one token of a multicast call.
type SendResponse struct {
	Success   bool   `json:"success"`
	MessageID string `json:"messageId,omitempty"`
	Error     string `json:"error,omitempty"`
}

// BatchResponse is the provider outcome of one multicast call, responses in token order.
type BatchResponse struct {
	SuccessCount int
	FailureCount int
	Responses    []SendResponse
}

// PushBackend is a live, tenant-specific push provider client.
type PushBackend interface {
	// Send delivers msg to a single token and returns the provider message id.
	Send(ctx context.Context, token string, msg *entity.PushMessage) (string, error)

	// SendMulticast delivers msg to at most MaxMulticastTokens tokens.
	SendMulticast(ctx context.Context, tokens []string, msg *entity.PushMessage) (*BatchResponse, error)

	// Close releases the client.
	Close() error
}

// PushBackendFactory builds push backends from stored credential blobs.
type PushBackendFactory interface {
	New(ctx context.Context, name string, credential []byte) (PushBackend, error)
}

// PushBackendRegistry owns one cached PushBackend per enabled app.
type PushBackendRegistry interface {
	// Get returns the app's backend, building it on first use. Missing or disabled apps fail.
	Get(ctx context.Context, appID uuid.UUID) (PushBackend, error)

	// Validate builds and immediately closes a backend to reject unusable credentials early.
	Validate(ctx context.Context, credential []byte) error

	// Evict closes and forgets the app's cached backend, if any.
	Evict(appID uuid.UUID)

	// Len reports how many backends are currently cached.
	Len() int
}
