package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWT_RoundTrip(t *testing.T) {
	token, err := GenerateJWT("secret", "ops_1", "ADMIN", time.Hour)
	require.NoError(t, err)

	claims, err := ParseJWT(token, "secret")
	require.NoError(t, err)

	assert.Equal(t, "ops_1", claims.UserID)
	assert.Equal(t, "ADMIN", claims.Role)
}

func TestJWT_Rejects(t *testing.T) {
	token, err := GenerateJWT("secret", "ops_1", "OPERATOR", time.Hour)
	require.NoError(t, err)

	_, err = ParseJWT(token, "other")
	assert.Error(t, err, "wrong secret")

	expired, err := GenerateJWT("secret", "ops_1", "OPERATOR", -time.Minute)
	require.NoError(t, err)
	_, err = ParseJWT(expired, "secret")
	assert.Error(t, err, "expired")

	_, err = GenerateJWT("", "ops_1", "OPERATOR", time.Hour)
	assert.Error(t, err)
}
