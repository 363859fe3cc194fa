package utils

import (
	"github.com/go-playground/validator/v10"
	"regexp"
)

var Validate *validator.Validate

// emailPattern is the shape the landing page form has always accepted.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func InitValidator() {
	Validate = validator.New(validator.WithRequiredStructEnabled())
	_ = Validate.RegisterValidation("locale", func(fl validator.FieldLevel) bool {
		v := fl.Field().String()
		return v == "en" || v == "fr"
	})
}

func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}
