// api/auth/token.go
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	board_errors "github.com/dev-anuragv/skillboard/api/errors"
)

// TokenIssuer mints and verifies short-lived HS256 access tokens. It holds
// no mutable state and is safe for concurrent use.
type TokenIssuer struct {
	secret []byte
}

func NewTokenIssuer(secret string) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret)}
}

// Mint produces a signed token carrying claims plus an exp of now+ttl.
func (t *TokenIssuer) Mint(claims map[string]interface{}, ttl time.Duration) (string, error) {
	mapClaims := jwt.MapClaims{}
	for k, v := range claims {
		mapClaims[k] = v
	}
	mapClaims["exp"] = time.Now().Add(ttl).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, mapClaims)
	return token.SignedString(t.secret)
}

// Verify checks signature and expiry and returns the decoded claims
// unmodified. Malformed or tampered tokens yield ErrTokenInvalid, anything
// past its exp yields ErrTokenExpired.
func (t *TokenIssuer) Verify(tokenString string) (map[string]interface{}, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, board_errors.ErrTokenExpired
		}
		return nil, board_errors.ErrTokenInvalid
	}
	if !token.Valid {
		return nil, board_errors.ErrTokenInvalid
	}

	return claims, nil
}
