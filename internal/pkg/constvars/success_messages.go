package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"

	// Appointment messages
	AppointmentCancelledMessage = "Appointment cancelled successfully"
)
