package auth

import (
	"context"
	"testing"
	"time"

	"github.com/phrazzld/foodshare-api/internal/config"
	"github.com/stretchr/testify/require"
)

// TestJWTSecret is the signing key used by RequireTestJWTVerifier.
const TestJWTSecret = "test-jwt-secret-that-is-32-chars-long"

// DefaultJWTConfig returns an auth configuration suitable for testing.
func DefaultJWTConfig() config.AuthConfig {
	return config.AuthConfig{
		Provider:  config.ProviderJWT,
		JWTSecret: TestJWTSecret,
	}
}

// RequireTestJWTVerifier creates a verifier with DefaultJWTConfig.
func RequireTestJWTVerifier(t *testing.T) *JWTVerifier {
	t.Helper()
	v, err := NewJWTVerifier(DefaultJWTConfig())
	require.NoError(t, err, "Failed to create test JWT verifier")
	return v
}

// BearerForTestingT returns an Authorization header value for a one-hour
// token issued to email by v.
func BearerForTestingT(t *testing.T, v *JWTVerifier, email string) string {
	t.Helper()
	token, err := v.Sign(context.Background(), Identity{Subject: "uid-" + email, Email: email}, time.Hour)
	require.NoError(t, err, "Failed to sign test token")
	return "Bearer " + token
}
