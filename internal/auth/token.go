package auth

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"
)

// SessionTTL is the intended lifetime of a session token. It is not enforced
// anywhere: tokens remain valid until the owning user logs out. See the logout
// handler for the only revocation path.
const SessionTTL = 24 * time.Hour

const sessionTokenBytes = 32

// NewSessionToken returns an opaque URL-safe token with 256 bits of entropy.
func NewSessionToken() (string, error) {
	buf := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
