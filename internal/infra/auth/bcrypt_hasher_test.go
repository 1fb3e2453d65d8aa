package auth

import (
	"testing"

	"boutique/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestHasher() *bcryptHasher {
	// MinCost keeps the test fast; the algorithm is identical at any cost.
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost}}

	return NewBcryptHasher(cfg).(*bcryptHasher)
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := newTestHasher()

	hash, err := hasher.Hash("correct horse battery staple")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, hasher.Check("correct horse battery staple", hash))
	assert.False(t, hasher.Check("correct horse battery stable", hash))
	assert.False(t, hasher.Check("", hash))
}

func TestBcryptHasher_HashesAreSalted(t *testing.T) {
	hasher := newTestHasher()

	first, err := hasher.Hash("samepassword")
	require.NoError(t, err)
	second, err := hasher.Hash("samepassword")
	require.NoError(t, err)

	// Each hash embeds a fresh salt, so two hashes of the same password differ
	// while both still verify.
	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("samepassword", first))
	assert.True(t, hasher.Check("samepassword", second))
}

func TestBcryptHasher_MalformedHashFailsClosed(t *testing.T) {
	hasher := newTestHasher()

	assert.False(t, hasher.Check("whatever", "not-a-bcrypt-digest"))
	assert.False(t, hasher.Check("whatever", ""))
}

func TestNewBcryptHasher_CostFallsBackWhenOutOfRange(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: 99}}

	hasher := NewBcryptHasher(cfg).(*bcryptHasher)
	assert.Equal(t, bcrypt.DefaultCost, hasher.cost)

	hasher = NewBcryptHasher(nil).(*bcryptHasher)
	assert.Equal(t, bcrypt.DefaultCost, hasher.cost)
}
