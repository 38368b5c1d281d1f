package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// PasswordHasher derives stored credentials as SHA-256(salt + ":" + password).
// The salt is static and process-wide, so identical passwords produce identical
// digests. This scheme is part of the stored-credential contract; changing it
// would invalidate every existing user record.
type PasswordHasher struct {
	salt string
}

func NewPasswordHasher(salt string) *PasswordHasher {
	return &PasswordHasher{salt: salt}
}

// Hash returns the hex-encoded digest for a plaintext password.
func (h *PasswordHasher) Hash(password string) string {
	sum := sha256.Sum256([]byte(h.salt + ":" + password))
	return hex.EncodeToString(sum[:])
}

// Verify reports whether password hashes to digest, in constant time.
func (h *PasswordHasher) Verify(password, digest string) bool {
	computed := h.Hash(password)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(digest)) == 1
}
