package utils

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// mobileNumberRegexp accepts 10 to 15 digits with an optional leading +.
var mobileNumberRegexp = regexp.MustCompile(`^\+?[0-9]{10,15}$`)

// RegisterCustomValidators attaches application validators to Gin's binding
// engine. Called once at startup.
func RegisterCustomValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("mobilenumber", func(fl validator.FieldLevel) bool {
		return mobileNumberRegexp.MatchString(fl.Field().String())
	})
}
