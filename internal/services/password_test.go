package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestComparePassword(t *testing.T) {
	argonHash, err := hashPassword("s3cret")
	require.NoError(t, err)
	bcryptHash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	for name, hash := range map[string]string{
		"argon2id": argonHash,
		"bcrypt":   string(bcryptHash),
	} {
		t.Run(name, func(t *testing.T) {
			match, err := comparePassword("s3cret", hash)
			require.NoError(t, err)
			assert.True(t, match)

			match, err = comparePassword("wrong", hash)
			require.NoError(t, err)
			assert.False(t, match)
		})
	}
}

func TestComparePassword_MalformedHash(t *testing.T) {
	_, err := comparePassword("s3cret", "plaintext")
	assert.Error(t, err)
}
