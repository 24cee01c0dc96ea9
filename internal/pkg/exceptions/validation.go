package exceptions

import (
	"clinicbook-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

func FormatFirstValidationError(err error) string {
	if err == nil {
		return constvars.ErrClientInvalidRequestBody
	}

	if validationErrors, ok := err.(validator.ValidationErrors); ok && len(validationErrors) > 0 {
		tag := validationErrors[0].Tag()
		if message, found := constvars.CustomValidationErrorMessages[tag]; found {
			return message
		}
	}
	return constvars.ErrClientInvalidRequestBody
}
