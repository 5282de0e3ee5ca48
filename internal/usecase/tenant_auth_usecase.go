package usecase

import (
	"context"

	"pushgate/internal/domain/entity"
)

// SignedRequest is the part of an inbound tenant request covered by the signature.
type SignedRequest struct {
	Timestamp  string
	APIKey     string
	Signature  string
	RequestURI string
	Body       []byte
}

// TenantAuthUsecase verifies HMAC-signed tenant requests.
type TenantAuthUsecase interface {
	// VerifyRequest returns the enabled app that signed the request. Every rejection is
	// reported with the same error so callers learn nothing about which check failed.
	VerifyRequest(ctx context.Context, req *SignedRequest) (*entity.App, error)
}
