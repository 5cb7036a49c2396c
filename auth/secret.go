// api/auth/secret.go
package auth

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// NewRefreshSecret returns a 256-bit random opaque secret, base64url encoded.
func NewRefreshSecret() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate refresh secret: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
