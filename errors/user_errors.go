// api/errors/user_errors.go
package errors

import "errors"

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidUserData = errors.New("invalid user data")
	ErrUserConflict    = errors.New("user conflict")
	ErrCityNotFound    = errors.New("city not registered")
	ErrSkillNotFound   = errors.New("skill not registered")
	ErrSkillConflict   = errors.New("skill already attached to user")
)
