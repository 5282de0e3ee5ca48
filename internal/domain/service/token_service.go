package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenType distinguishes access tokens from refresh tokens.
type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

// Claims defines the custom claims for the JWT tokens.
type Claims struct {
	Type TokenType `json:"type"`
	Role string    `json:"role"`
	jwt.RegisteredClaims
}

// AdministratorID parses the subject claim.
func (c *Claims) AdministratorID() (uuid.UUID, error) {
	return uuid.Parse(c.Subject)
}

// TokenService defines the interface for issuing and validating administrator session tokens.
type TokenService interface {
	// IssueAccess creates a short-lived access token for the administrator.
	IssueAccess(adminID uuid.UUID) (string, error)

	// IssueRefresh creates a long-lived refresh token for the administrator.
	IssueRefresh(adminID uuid.UUID) (string, error)

	// ValidateToken verifies signature and expiry. Every failure returns the same error.
	ValidateToken(tokenString string) (*Claims, error)

	// GetAccessTokenDuration returns the configured access token lifetime.
	GetAccessTokenDuration() time.Duration
}
