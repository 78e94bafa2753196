package auth

import (
	"testing"

	"bazaar/config"
	domainerrors "bazaar/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHasher() *bcryptHasher {
	cfg := &config.Config{}
	cfg.Auth = &config.AuthConfig{BcryptCost: 4} // minimum cost keeps tests fast

	return NewBcryptHasher(cfg).(*bcryptHasher)
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := newTestHasher()

	hash, err := hasher.Hash("Password123")
	require.NoError(t, err)
	assert.NotEqual(t, "Password123", hash)

	assert.True(t, hasher.Check("Password123", hash))
	assert.False(t, hasher.Check("wrong", hash))
}

func TestBcryptHasher_HashesAreSalted(t *testing.T) {
	hasher := newTestHasher()

	first, err := hasher.Hash("Password123")
	require.NoError(t, err)
	second, err := hasher.Hash("Password123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestBcryptHasher_ValidatePasswordStrength_DefaultPolicy(t *testing.T) {
	hasher := newTestHasher()

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{name: "valid", password: "Password123", wantErr: false},
		{name: "too short", password: "Pw1", wantErr: true},
		{name: "no uppercase", password: "password123", wantErr: true},
		{name: "no lowercase", password: "PASSWORD123", wantErr: true},
		{name: "no digit", password: "PasswordOnly", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := hasher.ValidatePasswordStrength(tt.password)
			if tt.wantErr {
				assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBcryptHasher_ValidatePasswordStrength_ConfiguredPolicy(t *testing.T) {
	cfg := &config.Config{}
	cfg.Auth = &config.AuthConfig{BcryptCost: 4}
	cfg.PasswordStrength = &config.PasswordStrengthConfig{
		MinLength: 4,
		MaxLength: 8,
	}
	hasher := NewBcryptHasher(cfg).(*bcryptHasher)

	// Class requirements are off, only length bounds apply.
	assert.NoError(t, hasher.ValidatePasswordStrength("abcd"))
	assert.Error(t, hasher.ValidatePasswordStrength("abc"))
	assert.Error(t, hasher.ValidatePasswordStrength("abcdefghi"))
}
