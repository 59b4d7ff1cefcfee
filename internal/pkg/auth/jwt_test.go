// internal/pkg/auth/jwt_test.go
package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/pkg/auth"
)

func jwtConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "storefront"
	cfg.JWT.Secret = secret
	cfg.JWT.AccessTokenExpiry = time.Hour
	return cfg
}

func TestGenerateAndValidateToken(t *testing.T) {
	mgr := auth.NewJWTManager(jwtConfig("test-secret-key-of-sufficient-len"))

	token, claims, err := mgr.GenerateAccessToken("ada@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.NotNil(t, claims)
	assert.NotEmpty(t, claims.ID)

	parsed, err := mgr.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", parsed.Email)
	assert.Equal(t, claims.ID, parsed.ID)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	issuer := auth.NewJWTManager(jwtConfig("test-secret-key-of-sufficient-len"))
	verifier := auth.NewJWTManager(jwtConfig("a-completely-different-secret-key"))

	token, _, err := issuer.GenerateAccessToken("ada@example.com")
	require.NoError(t, err)

	_, err = verifier.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestValidateTokenGarbage(t *testing.T) {
	mgr := auth.NewJWTManager(jwtConfig("test-secret-key-of-sufficient-len"))

	_, err := mgr.ValidateAccessToken("not-a-token")
	assert.Error(t, err)
}

func TestExtractTokenFromHeader(t *testing.T) {
	assert.Equal(t, "abc123", auth.ExtractTokenFromHeader("Bearer abc123"))
	assert.Equal(t, "", auth.ExtractTokenFromHeader("abc123"))
	assert.Equal(t, "", auth.ExtractTokenFromHeader(""))
	assert.Equal(t, "", auth.ExtractTokenFromHeader("Bearer "))
}
