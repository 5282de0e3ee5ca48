package auth

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"strings"

	"pushgate/internal/domain/service"
)

type hmacSigner struct{}

// NewHMACSigner returns a RequestSigner producing hex-encoded HMAC-SHA384 signatures.
func NewHMACSigner() service.RequestSigner {
	return hmacSigner{}
}

// Sign returns hex(HMAC-SHA384(secret, payload)).
func (hmacSigner) Sign(secret, payload string) string {
	mac := hmac.New(sha512.New384, []byte(secret))
	mac.Write([]byte(payload))

	return hex.EncodeToString(mac.Sum(nil))
}

// Verify decodes the presented signature and compares it with hmac.Equal.
func (hmacSigner) Verify(secret, payload, signature string) bool {
	presented, err := hex.DecodeString(strings.ToLower(signature))
	if err != nil {
		return false
	}

	mac := hmac.New(sha512.New384, []byte(secret))
	mac.Write([]byte(payload))

	return hmac.Equal(mac.Sum(nil), presented)
}
