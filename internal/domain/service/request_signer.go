package service

// RequestSigner computes and checks keyed signatures over canonical request strings.
type RequestSigner interface {
	// Sign returns the hex-encoded signature of payload under secret.
	Sign(secret, payload string) string

	// Verify reports whether signature matches payload under secret, in constant time.
	Verify(secret, payload, signature string) bool
}
