// Package util provides small shared helpers.
package util

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"

	"github.com/pkg/errors"
)

const rawTokenBytes = 32

// GenerateToken returns a fresh random token in URL-safe base64.
// The raw value goes to the client; only its hash is persisted.
func GenerateToken() (string, error) {
	buf := make([]byte, rawTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to read random bytes")
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// HashToken returns the hex-encoded SHA-256 digest of a raw token value.
func HashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))

	return fmt.Sprintf("%x", sum)
}
