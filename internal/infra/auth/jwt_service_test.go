package auth

import (
	"testing"
	"time"

	"pushgate/config"
	"pushgate/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTConfig() *config.Config {
	return &config.Config{
		SecretKey: struct {
			Access  string `json:"access" yaml:"access"`
			Refresh string `json:"refresh" yaml:"refresh"`
		}{
			Access:  "test_access_secret_key_very_long_for_testing",
			Refresh: "test_refresh_secret_key_very_long_for_testing",
		},
	}
}

func TestJWTService_IssueAndValidateTokens(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	adminID := uuid.New()

	accessToken, err := jwtService.IssueAccess(adminID)
	require.NoError(t, err)
	refreshToken, err := jwtService.IssueRefresh(adminID)
	require.NoError(t, err)
	assert.NotEqual(t, accessToken, refreshToken)

	accessClaims, err := jwtService.ValidateToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, service.TokenTypeAccess, accessClaims.Type)
	assert.Equal(t, "admin", accessClaims.Role)
	gotID, err := accessClaims.AdministratorID()
	require.NoError(t, err)
	assert.Equal(t, adminID, gotID)

	refreshClaims, err := jwtService.ValidateToken(refreshToken)
	require.NoError(t, err)
	assert.Equal(t, service.TokenTypeRefresh, refreshClaims.Type)
}

func TestJWTService_TokensIssuedTogetherDiffer(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	adminID := uuid.New()
	first, err := jwtService.IssueRefresh(adminID)
	require.NoError(t, err)
	second, err := jwtService.IssueRefresh(adminID)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestJWTService_DefaultAndConfiguredTTL(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)
	assert.Equal(t, 45*time.Minute, jwtService.GetAccessTokenDuration())

	cfg := newTestJWTConfig()
	cfg.Auth = &config.AuthConfig{AccessTokenTTL: 5 * time.Minute}
	jwtService, err = NewJWTService(cfg)
	require.NoError(t, err)
	assert.Equal(t, 5*time.Minute, jwtService.GetAccessTokenDuration())
}

func TestJWTService_RejectsInvalidTokensUniformly(t *testing.T) {
	cfg := newTestJWTConfig()
	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	adminID := uuid.New()
	expiredSvc := svc.(*jwtService)
	expired, err := expiredSvc.generateToken(adminID, service.TokenTypeAccess, -time.Minute, expiredSvc.accessSecret)
	require.NoError(t, err)

	// Access-typed claims signed with the refresh secret.
	crossSigned, err := expiredSvc.generateToken(adminID, service.TokenTypeAccess, time.Minute, expiredSvc.refreshSecret)
	require.NoError(t, err)

	unknownType, err := expiredSvc.generateToken(adminID, service.TokenType("session"), time.Minute, expiredSvc.accessSecret)
	require.NoError(t, err)

	noneAlg, err := jwt.NewWithClaims(jwt.SigningMethodNone, &service.Claims{
		Type: service.TokenTypeAccess,
		Role: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   adminID.String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	valid, err := svc.IssueAccess(adminID)
	require.NoError(t, err)
	tampered := valid[:len(valid)-2] + "xx"

	cases := map[string]string{
		"malformed":    "clearly-not-a-jwt-token-format",
		"expired":      expired,
		"cross signed": crossSigned,
		"unknown type": unknownType,
		"alg none":     noneAlg,
		"tampered":     tampered,
	}

	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			claims, err := svc.ValidateToken(token)
			assert.Nil(t, claims)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestJWTService_EmptySecrets(t *testing.T) {
	cfg := &config.Config{}

	jwtService, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secrets must be provided")
}
