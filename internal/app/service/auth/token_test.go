package auth

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/upmkt/affiliates-api/pkg/config"
	"github.com/upmkt/affiliates-api/pkg/types"
)

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{Secret: "test-secret", ExpirationHours: 1},
	}
}

func TestTokenRoundTrip(t *testing.T) {
	cfg := testConfig()

	token, err := GenerateToken("user-123", types.RoleAdmin, cfg)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token, cfg)
	require.NoError(t, err)
	require.Equal(t, "user-123", claims.UserID)
	require.Equal(t, types.RoleAdmin, claims.Role)
	require.NotNil(t, claims.ExpiresAt)
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken("user-123", types.RoleAffiliate, testConfig())
	require.NoError(t, err)

	other := &config.Config{JWT: config.JWTConfig{Secret: "another-secret", ExpirationHours: 1}}
	_, err = ParseToken(token, other)
	require.Error(t, err)
}

func TestParseToken_Garbage(t *testing.T) {
	_, err := ParseToken("not-a-token", testConfig())
	require.Error(t, err)
}

func TestParseToken_Expired(t *testing.T) {
	cfg := &config.Config{JWT: config.JWTConfig{Secret: "test-secret", ExpirationHours: -1}}
	token, err := GenerateToken("user-123", types.RoleAffiliate, cfg)
	require.NoError(t, err)

	_, err = ParseToken(token, cfg)
	require.Error(t, err)
}
