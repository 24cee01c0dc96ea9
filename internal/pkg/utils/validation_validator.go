package utils

import (
	"regexp"

	"clinicbook-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var emailRegex = regexp.MustCompile(constvars.RegexEmail)

func init() {
	validate = validator.New()
	validate.RegisterValidation("booking_email", validateBookingEmail)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

func validateBookingEmail(fl validator.FieldLevel) bool {
	return IsValidEmail(fl.Field().String())
}
