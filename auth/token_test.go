// api/auth/token_test.go
package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	board_errors "github.com/dev-anuragv/skillboard/api/errors"
)

func TestMintAndVerify(t *testing.T) {
	issuer := NewTokenIssuer("unit-test-secret")

	token, err := issuer.Mint(map[string]interface{}{"sub": "alice", "role": "user"}, time.Minute)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	assert.Len(t, parts, 3, "token should be three dot-separated segments")

	claims, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims["sub"])
	assert.Equal(t, "user", claims["role"])
	assert.Contains(t, claims, "exp")
}

func TestVerifyExpiredToken(t *testing.T) {
	issuer := NewTokenIssuer("unit-test-secret")

	token, err := issuer.Mint(map[string]interface{}{"sub": "alice"}, -time.Minute)
	require.NoError(t, err)

	_, err = issuer.Verify(token)
	assert.ErrorIs(t, err, board_errors.ErrTokenExpired)
}

func TestVerifyTamperedToken(t *testing.T) {
	issuer := NewTokenIssuer("unit-test-secret")

	token, err := issuer.Mint(map[string]interface{}{"sub": "alice"}, time.Minute)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	// Flip a character in the signature segment.
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = issuer.Verify(tampered)
	assert.ErrorIs(t, err, board_errors.ErrTokenInvalid)
}

func TestVerifyWrongSecret(t *testing.T) {
	token, err := NewTokenIssuer("secret-one").Mint(map[string]interface{}{"sub": "alice"}, time.Minute)
	require.NoError(t, err)

	_, err = NewTokenIssuer("secret-two").Verify(token)
	assert.ErrorIs(t, err, board_errors.ErrTokenInvalid)
}

func TestVerifyGarbage(t *testing.T) {
	issuer := NewTokenIssuer("unit-test-secret")

	for _, tokenString := range []string{"", "not-a-token", "a.b", "a.b.c.d"} {
		_, err := issuer.Verify(tokenString)
		assert.ErrorIs(t, err, board_errors.ErrTokenInvalid, "input %q", tokenString)
	}
}
