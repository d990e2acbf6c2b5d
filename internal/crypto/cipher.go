// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
)

// fieldCipher is the private implementation of [FieldCipher] based on
// AES-256-GCM. The AEAD is built once at construction; Encrypt and Decrypt
// are safe for concurrent use.
type fieldCipher struct {
	aead cipher.AEAD
}

// NewFieldCipher constructs a [FieldCipher] from a hex-encoded 256-bit key.
// Returns an error if the key is not valid hex, is not exactly 32 bytes,
// or cipher construction fails.
func NewFieldCipher(hexKey string) (FieldCipher, error) {
	key, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, fmt.Errorf("decode field cipher key: %w", err)
	}
	if len(key) != 32 {
		return nil, fmt.Errorf("field cipher key must be 32 bytes, got %d", len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return &fieldCipher{aead: gcm}, nil
}

// Encrypt implements [FieldCipher]. It encrypts plaintext with AES-256-GCM
// under a fresh random nonce. The nonce is prepended to the ciphertext so
// that Decrypt can locate it: blob = nonce ‖ ciphertext. The output is a
// Base64 (standard encoding) string of the blob. Returns an error if the
// random nonce read fails.
func (c *fieldCipher) Encrypt(plaintext string) (string, error) {
	nonce := make([]byte, c.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	ciphertext := c.aead.Seal(nil, nonce, []byte(plaintext), nil)
	blob := append(nonce, ciphertext...)

	return base64.StdEncoding.EncodeToString(blob), nil
}

// Decrypt implements [FieldCipher]. It Base64-decodes the blob produced by
// [fieldCipher.Encrypt], splits out the nonce, and decrypts the remainder.
// Returns the original plaintext, or an error if the blob is too short, the
// key is wrong, or the ciphertext is corrupted (authentication-tag mismatch).
func (c *fieldCipher) Decrypt(encryptedB64 string) (string, error) {
	blob, err := base64.StdEncoding.DecodeString(encryptedB64)
	if err != nil {
		return "", fmt.Errorf("decode base64 blob: %w", err)
	}

	nonceSize := c.aead.NonceSize()
	if len(blob) < nonceSize {
		return "", errors.New("ciphertext too short")
	}

	// Split the blob into nonce and actual ciphertext.
	nonce, ciphertext := blob[:nonceSize], blob[nonceSize:]

	plaintext, err := c.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("decryption failed: %w", err)
	}

	return string(plaintext), nil
}
