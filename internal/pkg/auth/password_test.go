// internal/pkg/auth/password_test.go
package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/pkg/auth"
)

func passwordConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Security.BcryptCost = 4 // keep the tests fast
	return cfg
}

func TestHashAndVerifyPassword(t *testing.T) {
	mgr := auth.NewPasswordManager(passwordConfig())

	hash, err := mgr.HashPassword("correct-horse-1")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "correct-horse-1", hash)

	assert.NoError(t, mgr.VerifyPassword("correct-horse-1", hash))
	assert.Error(t, mgr.VerifyPassword("wrong-password-1", hash))
}

func TestValidatePassword(t *testing.T) {
	mgr := auth.NewPasswordManager(passwordConfig())

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"valid", "sturdy-pass-42", false},
		{"too short", "ab1", true},
		{"no number", "letters-only-here", true},
		{"no letter", "1234567890", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := mgr.ValidatePassword(tt.password)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
