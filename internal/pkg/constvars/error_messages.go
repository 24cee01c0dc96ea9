package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":      ErrClientAllFieldsRequired,
	"booking_email": ErrClientInvalidEmailFormat,
}

// Error messages for clients
const (
	ErrClientAllFieldsRequired             = "All fields are required"
	ErrClientInvalidEmailFormat            = "Invalid email format"
	ErrClientDoctorNotFound                = "Doctor not found"
	ErrClientTimeSlotUnavailable           = "Time slot not available"
	ErrClientTimeSlotTaken                 = "Time slot already booked"
	ErrClientNoAppointmentsForEmail        = "No appointments found for this email"
	ErrClientAppointmentNotFound           = "Appointment not found"
	ErrClientOriginalAppointmentNotFound   = "Original appointment not found"
	ErrClientNewTimeSlotUnavailable        = "New time slot is not available"
	ErrClientNewTimeSlotTaken              = "New time slot is already booked"
	ErrClientInvalidRequestBody            = "Invalid request payload"
	ErrClientTooManyRequests               = "Too many requests. Please try again later."
	ErrClientTemporarilyBlocked            = "Too many requests. You are temporarily blocked."
	ErrClientSomethingWrongWithApplication = "Something went wrong. Please try again later."
	ErrClientServerLongRespond             = "The server took too long to respond. Please try again."
)

// Error messages for developers
const (
	ErrDevValidationFailed            = "validation failed"
	ErrDevCannotParseJSON             = "cannot parse JSON into struct or other data types"
	ErrDevMissingRequestID            = "request id not found in request context"
	ErrDevMissingRequiredFields       = "missing required fields"
	ErrDevInvalidEmailFormat          = "email does not match the expected format"
	ErrDevServerDeadlineExceeded      = "server took too long to process the request"
	ErrDevDoctorNotFound              = "doctor does not exist in the catalog"
	ErrDevTimeSlotNotInCatalog        = "time slot is not part of the doctor's schedule"
	ErrDevTimeSlotTaken               = "time slot already has an appointment for this doctor"
	ErrDevNoAppointmentsForEmail      = "no appointments stored for the given email"
	ErrDevAppointmentNotFound         = "no appointment matches the given email and time slot"
	ErrDevOriginalAppointmentNotFound = "no appointment matches the given email and original time slot"
	ErrDevNewTimeSlotNotInCatalog     = "new time slot is not part of the doctor's schedule"
	ErrDevNewTimeSlotTaken            = "new time slot already has an appointment for this doctor"

	// RabbitMQ
	ErrDevRabbitMQPublishMessage = "failed to publish message to queue %s"
)
