package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("123456")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "123456", hash)

	assert.True(t, CheckPassword(hash, "123456"))
	assert.False(t, CheckPassword(hash, "1234567"))
}

func TestHashesAreSalted(t *testing.T) {
	first, err := HashPassword("123456")
	require.NoError(t, err)
	second, err := HashPassword("123456")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
