package constvars

const (
	LoggingRequestIDKey         = "request_id"
	LoggingIsClientRequestIDKey = "is_client_request_id"
	LoggingRequestKey           = "request"
	LoggingResponseKey          = "response"
	LoggingMethodKey            = "method"
	LoggingEndpointKey          = "endpoint"
	LoggingRemoteAddrKey        = "remote_addr"
	LoggingStatusCodeKey        = "status_code"
	LoggingDurationKey          = "duration"
	LoggingSuccessKey           = "success"
	LoggingPatientEmailKey      = "patient_email"
	LoggingDoctorNameKey        = "doctor_name"
	LoggingTimeSlotKey          = "time_slot"
	LoggingAppointmentIDKey     = "appointment_id"
	LoggingAppointmentCountKey  = "appointment_count"
	LoggingDoctorCountKey       = "doctor_count"
	LoggingEventTypeKey         = "event_type"
	LoggingQueueKey             = "queue"
)
