package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParse(t *testing.T) {
	secret := "test-secret"

	tokenString, err := Generate(secret, 42, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	userID, err := Parse(secret, tokenString)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	tokenString, err := Generate("the-right-secret", 7, time.Hour)
	require.NoError(t, err)

	_, err = Parse("a-different-secret", tokenString)
	assert.Error(t, err)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	secret := "test-secret"

	tokenString, err := Generate(secret, 7, -time.Minute)
	require.NoError(t, err)

	_, err = Parse(secret, tokenString)
	assert.Error(t, err)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := Parse("test-secret", "not-a-jwt")
	assert.Error(t, err)
}
