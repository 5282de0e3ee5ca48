package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"signature": map[string]any{
			"maxClockSkew": "5m",
		},
		"auth": map[string]any{
			"accessTokenTTL": "45m",
		},
		"bootstrap": map[string]any{
			"emailAddress": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "SIGNATURE_MAXCLOCKSKEW", want: "signature.maxClockSkew"},
		{envKey: "AUTH_ACCESSTOKENTTL", want: "auth.accessTokenTTL"},
		{envKey: "BOOTSTRAP_EMAILADDRESS", want: "bootstrap.emailAddress"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "REDIS_ADDR", want: "redis.addr"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{
		Redis:   &RedisConfig{Addr: "localhost:6379"},
		Metrics: &MetricsConfig{Enabled: true},
	}

	applyDefaults(cfg)

	assert.Equal(t, 3010, cfg.HTTP.Port)
	assert.Equal(t, "1MB", cfg.HTTP.MaxRequestBodySize)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
	assert.Equal(t, 45*time.Minute, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, 7*24*time.Hour, cfg.Auth.RefreshTokenTTL)
	require.NotNil(t, cfg.Signature)
	assert.Equal(t, 5*time.Minute, cfg.Signature.MaxClockSkew)
	assert.Equal(t, time.Minute, cfg.Redis.TTL)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Auth:      &AuthConfig{BcryptCost: 12, AccessTokenTTL: time.Minute, RefreshTokenTTL: time.Hour},
		Signature: &SignatureConfig{MaxClockSkew: 30 * time.Second},
	}
	cfg.HTTP.Port = 8080

	applyDefaults(cfg)

	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.Equal(t, time.Minute, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, time.Hour, cfg.Auth.RefreshTokenTTL)
	assert.Equal(t, 30*time.Second, cfg.Signature.MaxClockSkew)
	assert.Nil(t, cfg.Redis)
}
