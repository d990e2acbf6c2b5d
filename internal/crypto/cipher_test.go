package crypto

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCipherKey = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

func TestNewFieldCipher_InvalidKey(t *testing.T) {
	tests := []struct {
		name string
		key  string
	}{
		{name: "not hex", key: "zz-not-hex"},
		{name: "too short", key: "00ff"},
		{name: "too long", key: testCipherKey + "aa"},
		{name: "empty", key: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFieldCipher(tt.key)
			assert.Error(t, err)
		})
	}
}

func TestFieldCipher_RoundTrip(t *testing.T) {
	c, err := NewFieldCipher(testCipherKey)
	require.NoError(t, err)

	for _, plaintext := range []string{"Dupont", "Marie-Ange", "O'Neill", "山田", ""} {
		encrypted, err := c.Encrypt(plaintext)
		require.NoError(t, err)
		assert.NotEqual(t, plaintext, encrypted)

		decrypted, err := c.Decrypt(encrypted)
		require.NoError(t, err)
		assert.Equal(t, plaintext, decrypted)
	}
}

func TestFieldCipher_EncryptIsNonDeterministic(t *testing.T) {
	c, err := NewFieldCipher(testCipherKey)
	require.NoError(t, err)

	first, err := c.Encrypt("Dupont")
	require.NoError(t, err)
	second, err := c.Encrypt("Dupont")
	require.NoError(t, err)

	// fresh nonce per call: same plaintext, different blobs
	assert.NotEqual(t, first, second)
}

func TestFieldCipher_DecryptWithWrongKey(t *testing.T) {
	c, err := NewFieldCipher(testCipherKey)
	require.NoError(t, err)

	otherKey := hex.EncodeToString(make([]byte, 32))
	other, err := NewFieldCipher(otherKey)
	require.NoError(t, err)

	encrypted, err := c.Encrypt("Dupont")
	require.NoError(t, err)

	_, err = other.Decrypt(encrypted)
	assert.Error(t, err)
}

func TestFieldCipher_DecryptGarbage(t *testing.T) {
	c, err := NewFieldCipher(testCipherKey)
	require.NoError(t, err)

	_, err = c.Decrypt("%%% not base64 %%%")
	assert.Error(t, err)

	_, err = c.Decrypt("c2hvcnQ=") // valid base64, shorter than a nonce
	assert.Error(t, err)
}
