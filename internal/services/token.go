package services

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// defaultTokenBytes is the entropy of generated bearer and refresh tokens.
const defaultTokenBytes = 64

// GenerateSecureToken returns n cryptographically random bytes encoded as
// unpadded base64-url. Tokens are opaque bearer credentials; they carry no
// claims and are only meaningful via a session lookup.
func GenerateSecureToken(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
