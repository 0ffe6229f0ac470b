package auth

import (
	"testing"

	"capsule/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{
		Auth: &config.AuthConfig{BcryptCost: 4},
	})

	hash, err := hasher.Hash("Password123!")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "Password123!", hash)

	assert.True(t, hasher.Check("Password123!", hash))
	assert.False(t, hasher.Check("password123!", hash))
}

func TestBcryptHasher_SaltsEveryHash(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{
		Auth: &config.AuthConfig{BcryptCost: 4},
	})

	first, err := hasher.Hash("Password123!")
	require.NoError(t, err)
	second, err := hasher.Hash("Password123!")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestNewBcryptHasher_IgnoresOutOfRangeCost(t *testing.T) {
	// An absurd configured cost falls back to the bcrypt default instead
	// of producing a hasher that cannot hash.
	hasher := NewBcryptHasher(&config.Config{
		Auth: &config.AuthConfig{BcryptCost: 99},
	})

	hash, err := hasher.Hash("Password123!")
	require.NoError(t, err)
	assert.True(t, hasher.Check("Password123!", hash))
}
