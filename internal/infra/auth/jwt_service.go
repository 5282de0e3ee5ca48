// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"pushgate/config"
	"pushgate/internal/domain/entity"
	"pushgate/internal/domain/service"
	"pushgate/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	defaultAccessTTL  = 45 * time.Minute
	defaultRefreshTTL = 7 * 24 * time.Hour
)

// ErrInvalidToken is the single error returned for any token that fails validation.
var ErrInvalidToken = errors.New("invalid token")

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret  []byte        // Secret key for signing access tokens.
	refreshSecret []byte        // Secret key for signing refresh tokens.
	accessTTL     time.Duration // Time-to-live for access tokens.
	refreshTTL    time.Duration // Time-to-live for refresh tokens.
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	accessTTL, refreshTTL := defaultAccessTTL, defaultRefreshTTL
	if cfg.Auth != nil {
		if cfg.Auth.AccessTokenTTL > 0 {
			accessTTL = cfg.Auth.AccessTokenTTL
		}
		if cfg.Auth.RefreshTokenTTL > 0 {
			refreshTTL = cfg.Auth.RefreshTokenTTL
		}
	}

	return &jwtService{
		accessSecret:  []byte(cfg.SecretKey.Access),
		refreshSecret: []byte(cfg.SecretKey.Refresh),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}, nil
}

// IssueAccess creates a signed access token for the administrator.
func (s *jwtService) IssueAccess(adminID uuid.UUID) (string, error) {
	return s.generateToken(adminID, service.TokenTypeAccess, s.accessTTL, s.accessSecret)
}

// IssueRefresh creates a signed refresh token for the administrator.
func (s *jwtService) IssueRefresh(adminID uuid.UUID) (string, error) {
	return s.generateToken(adminID, service.TokenTypeRefresh, s.refreshTTL, s.refreshSecret)
}

// ValidateToken parses the token, selecting the verification secret from its declared type.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, s.keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.Role != entity.RoleAdmin.String() {
		return nil, ErrInvalidToken
	}
	if _, err := claims.AdministratorID(); err != nil {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// GetAccessTokenDuration returns the configured duration for access tokens.
func (s *jwtService) GetAccessTokenDuration() time.Duration {
	return s.accessTTL
}

func (s *jwtService) keyFunc(token *jwt.Token) (any, error) {
	claims, ok := token.Claims.(*service.Claims)
	if !ok {
		return nil, ErrInvalidToken
	}

	switch claims.Type {
	case service.TokenTypeAccess:
		return s.accessSecret, nil
	case service.TokenTypeRefresh:
		return s.refreshSecret, nil
	default:
		return nil, ErrInvalidToken
	}
}

// generateToken is a private helper to create a JWT with specific claims.
func (s *jwtService) generateToken(adminID uuid.UUID, tokenType service.TokenType, ttl time.Duration, secret []byte) (string, error) {
	now := time.Now()
	claims := &service.Claims{
		Type: tokenType,
		Role: entity.RoleAdmin.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   adminID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        uuid.NewString(), // two logins in the same second must still differ
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}
