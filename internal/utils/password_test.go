package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)

	assert.True(t, CheckPasswordHash("s3cret", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}

func TestSecureCompare(t *testing.T) {
	assert.True(t, SecureCompare("admin", "admin"))
	assert.False(t, SecureCompare("admin", "Admin"))
	assert.False(t, SecureCompare("admin", "admin "))
	assert.False(t, SecureCompare("", "admin"))
	assert.True(t, SecureCompare("", ""))
}

func TestGenerateAndParseJWT(t *testing.T) {
	token, err := GenerateJWT("admin", "test-secret", time.Hour, "shop-management-app")
	require.NoError(t, err)

	claims, err := ParseAndValidateJWT(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Subject)
	assert.Equal(t, "shop-management-app", claims.Issuer)

	_, err = ParseAndValidateJWT(token, "other-secret")
	assert.Error(t, err)
}
