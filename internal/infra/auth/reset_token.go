package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"

	"github.com/pkg/errors"
)

const resetTokenBytes = 32

// NewResetToken generates an opaque, URL-safe single-use token.
// Only the digest of this value is ever persisted.
func NewResetToken() (string, error) {
	buf := make([]byte, resetTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to generate reset token")
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// DigestToken returns the hex-encoded SHA-256 digest of a raw token,
// the form in which tokens are stored and looked up.
func DigestToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))

	return hex.EncodeToString(sum[:])
}
