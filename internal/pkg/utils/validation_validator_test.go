package utils

import (
	"testing"

	"clinicbook-service/internal/pkg/constvars"
	"clinicbook-service/internal/pkg/dto/requests"
	"clinicbook-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
)

func TestValidateStruct(t *testing.T) {
	t.Run("Accepts Complete Request", func(t *testing.T) {
		request := requests.CreateAppointmentRequest{
			FirstName:  "John",
			LastName:   "Doe",
			Email:      "john@example.com",
			TimeSlot:   "9:00 AM - 10:00 AM",
			DoctorName: "Dr. Smith",
		}

		err := ValidateStruct(&request)

		assert.NoError(t, err)
	})

	t.Run("Reports Missing Fields First", func(t *testing.T) {
		request := requests.CreateAppointmentRequest{
			Email: "not-an-email",
		}

		err := ValidateStruct(&request)

		assert.Error(t, err)
		assert.Equal(t, constvars.ErrClientAllFieldsRequired, exceptions.FormatFirstValidationError(err))
	})

	t.Run("Reports Invalid Email When Fields Are Present", func(t *testing.T) {
		request := requests.CreateAppointmentRequest{
			FirstName:  "John",
			LastName:   "Doe",
			Email:      "john@example",
			TimeSlot:   "9:00 AM - 10:00 AM",
			DoctorName: "Dr. Smith",
		}

		err := ValidateStruct(&request)

		assert.Error(t, err)
		assert.Equal(t, constvars.ErrClientInvalidEmailFormat, exceptions.FormatFirstValidationError(err))
	})

	t.Run("Validates Empty Request As Missing Fields", func(t *testing.T) {
		err := ValidateStruct(&requests.CancelAppointmentRequest{})

		assert.Error(t, err)
		assert.Equal(t, constvars.ErrClientAllFieldsRequired, exceptions.FormatFirstValidationError(err))
	})
}

func TestIsValidEmail(t *testing.T) {
	testCases := []struct {
		name  string
		email string
		valid bool
	}{
		{name: "Plain Address", email: "john@example.com", valid: true},
		{name: "Address With Dots And Plus", email: "jane.doe+booking@clinic.co.uk", valid: true},
		{name: "Missing Domain Suffix", email: "john@example", valid: false},
		{name: "Missing At Sign", email: "john.example.com", valid: false},
		{name: "Missing Local Part", email: "@example.com", valid: false},
		{name: "Empty String", email: "", valid: false},
		{name: "Whitespace In Local Part", email: "john doe@example.com", valid: false},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.valid, IsValidEmail(testCase.email))
		})
	}
}
