package password_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"teslo/pkg/password"
)

func TestHasher(t *testing.T) {
	h := password.NewHasher(bcrypt.MinCost)

	hash, err := h.Hash("Secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "Secret123", hash)

	assert.True(t, h.Check("Secret123", hash))
	assert.False(t, h.Check("secret123", hash))
	assert.False(t, h.Check("Secret123", "not-a-hash"))
}

func TestNewHasher_OutOfRangeCost(t *testing.T) {
	h := password.NewHasher(100)
	hash, err := h.Hash("Secret123")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
