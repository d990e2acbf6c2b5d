package crypto

// PasswordHasher is the one-way credential transform. It knows nothing about
// users or storage; it turns a plaintext password into a salted adaptive hash
// and checks a plaintext against a stored hash.
type PasswordHasher interface {
	// Hash derives a salted adaptive hash from the plaintext password.
	// The output is safe to persist; the plaintext is never stored.
	Hash(password string) (string, error)

	// Verify reports whether password matches the stored hash.
	// Not exercised by the CRUD use cases today; it exists for future
	// login flows.
	Verify(password, hash string) bool
}

// FieldCipher is the reversible transform applied to personal-name fields.
// Unlike passwords, these fields must be recoverable in plaintext for
// display, so they are encrypted symmetrically with a process-wide key
// provisioned at startup. Key provisioning and rotation are out of scope.
type FieldCipher interface {
	// Encrypt returns a base64 blob (nonce ‖ ciphertext) of the plaintext.
	Encrypt(plaintext string) (string, error)

	// Decrypt reverses Encrypt exactly. It fails if the blob is malformed,
	// the key is wrong, or the ciphertext was tampered with.
	Decrypt(ciphertext string) (string, error)
}
