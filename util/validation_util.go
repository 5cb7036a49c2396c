// api/util/validation_util.go

package util

import (
	"unicode"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

type ValidationUtil struct{}

func NewValidationUtil() *ValidationUtil {
	v := &ValidationUtil{}
	v.registerRules()
	return v
}

// registerRules attaches the custom rules to gin's binding validator so that
// struct binding tags pick them up.
func (v *ValidationUtil) registerRules() {
	if engine, ok := binding.Validator.Engine().(*validator.Validate); ok {
		engine.RegisterValidation("password", func(fl validator.FieldLevel) bool {
			return v.ValidPassword(fl.Field().String())
		})
	}
}

// ValidPassword enforces the registration rule: at least 5 characters with
// one uppercase letter and one digit.
func (v *ValidationUtil) ValidPassword(password string) bool {
	if len(password) < 5 {
		return false
	}
	var hasUpper, hasDigit bool
	for _, r := range password {
		if unicode.IsUpper(r) {
			hasUpper = true
		}
		if unicode.IsDigit(r) {
			hasDigit = true
		}
	}
	return hasUpper && hasDigit
}
