package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("password123")

	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "password123", hash, "hash must not be the plaintext")
}

func TestHashPassword_DifferentSalts(t *testing.T) {
	hash1, err1 := HashPassword("password123")
	hash2, err2 := HashPassword("password123")

	assert.NoError(t, err1)
	assert.NoError(t, err2)
	assert.NotEqual(t, hash1, hash2, "bcrypt salts every hash")
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("password123")
	assert.NoError(t, err)

	assert.True(t, CheckPassword("password123", hash))
	assert.False(t, CheckPassword("wrong-password", hash))
	assert.False(t, CheckPassword("", hash))
}

func TestCheckPassword_InvalidHash(t *testing.T) {
	assert.False(t, CheckPassword("password123", "not-a-bcrypt-hash"))
}
