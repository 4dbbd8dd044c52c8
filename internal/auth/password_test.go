package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/libshelf/catalog/internal/config"
)

func TestEncodePassword_PlainStoresLiteral(t *testing.T) {
	stored, err := EncodePassword(config.PasswordSchemePlain, "pw1", 0)

	require.NoError(t, err)
	assert.Equal(t, "pw1", stored)
}

func TestCheckPassword_PlainExactMatch(t *testing.T) {
	assert.NoError(t, CheckPassword(config.PasswordSchemePlain, "pw1", "pw1"))
	assert.ErrorIs(t, CheckPassword(config.PasswordSchemePlain, "wrong", "pw1"), ErrInvalidPassword)
	// Case matters for exact match
	assert.ErrorIs(t, CheckPassword(config.PasswordSchemePlain, "PW1", "pw1"), ErrInvalidPassword)
}

func TestPassword_BcryptRoundTrip(t *testing.T) {
	stored, err := EncodePassword(config.PasswordSchemeBcrypt, "correct horse", 4)
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse", stored)

	assert.NoError(t, CheckPassword(config.PasswordSchemeBcrypt, "correct horse", stored))
	assert.ErrorIs(t, CheckPassword(config.PasswordSchemeBcrypt, "battery staple", stored), ErrInvalidPassword)
}
