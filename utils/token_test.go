package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndExtractToken(t *testing.T) {
	JwtSecret = []byte("test-secret")

	token, err := GenerateToken(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := ExtractUserIDFromToken("Bearer " + token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestExtractTokenRejectsBadInput(t *testing.T) {
	JwtSecret = []byte("test-secret")

	_, err := ExtractUserIDFromToken("")
	assert.Error(t, err)

	_, err = ExtractUserIDFromToken("Basic abc")
	assert.Error(t, err)

	_, err = ExtractUserIDFromToken("Bearer not-a-jwt")
	assert.Error(t, err)

	token, err := GenerateToken(7)
	require.NoError(t, err)

	// A token signed with a different secret is rejected.
	JwtSecret = []byte("other-secret")
	_, err = ExtractUserIDFromToken("Bearer " + token)
	assert.Error(t, err)
}
