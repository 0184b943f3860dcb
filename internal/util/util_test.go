package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateToken(t *testing.T) {
	first, err := GenerateToken()
	require.NoError(t, err)
	assert.NotEmpty(t, first)

	second, err := GenerateToken()
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestHashToken(t *testing.T) {
	hash := HashToken("secret-token")

	// Deterministic, hex-encoded SHA-256.
	assert.Len(t, hash, 64)
	assert.Equal(t, hash, HashToken("secret-token"))
	assert.NotEqual(t, hash, HashToken("other-token"))
}
