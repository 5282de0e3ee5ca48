// Package service declares the ports the usecases depend on: credentials, signing, push
// delivery, event publishing and delivery metrics.
package service

// PasswordHasher hashes administrator passwords at rest.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Check reports whether password matches hash. A malformed hash never matches.
	Check(password, hash string) bool
}
