package security

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// NewToken generates an opaque 32-byte session token. Tokens are returned to
// the client but not persisted or verified server-side.
func NewToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
