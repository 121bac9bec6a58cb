package auth

import (
	"testing"

	"chorechart/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost}})

	password := "kid-secret-42"
	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	assert.NotEqual(t, password, hash)

	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("wrong-password", hash))
	assert.False(t, hasher.Check("", hash))
}

func TestBcryptHasher_CostFromConfig(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost}})

	hash, err := hasher.Hash("StrongPass123!")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}

func TestBcryptHasher_DefaultCost(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.Config
	}{
		{"nil config", nil},
		{"no auth section", &config.Config{}},
		{"out of range", &config.Config{Auth: &config.AuthConfig{BcryptCost: 99}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hasher := NewBcryptHasher(tt.cfg).(*bcryptHasher)
			assert.Equal(t, bcrypt.DefaultCost, hasher.cost)
		})
	}
}

func TestBcryptHasher_InvalidHash(t *testing.T) {
	hasher := NewBcryptHasher(nil)
	assert.False(t, hasher.Check("password", "not-a-bcrypt-hash"))
}
