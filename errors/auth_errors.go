// api/errors/auth_errors.go
package errors

import "errors"

var (
	// ErrTokenInvalid covers malformed structure and signature mismatch.
	ErrTokenInvalid = errors.New("token invalid")
	// ErrTokenExpired is returned for a well-formed token past its exp claim.
	ErrTokenExpired = errors.New("token expired")
	// ErrAuth is deliberately identical for unknown user and wrong password
	// so responses cannot be used for username enumeration.
	ErrAuth = errors.New("invalid username or password")
	// ErrForbidden means the caller is authenticated but lacks the role.
	ErrForbidden = errors.New("forbidden")

	ErrSessionNotFound = errors.New("refresh session not found")
	ErrSessionExpired  = errors.New("refresh session expired")
)
