package requests

type CreateAppointmentRequest struct {
	FirstName  string `json:"firstName" validate:"required"`
	LastName   string `json:"lastName" validate:"required"`
	Email      string `json:"email" validate:"required,booking_email"`
	TimeSlot   string `json:"timeSlot" validate:"required"`
	DoctorName string `json:"doctorName" validate:"required"`
}

type CancelAppointmentRequest struct {
	Email    string `json:"email" validate:"required"`
	TimeSlot string `json:"timeSlot" validate:"required"`
}

type RescheduleAppointmentRequest struct {
	Email            string `json:"email" validate:"required"`
	OriginalTimeSlot string `json:"originalTimeSlot" validate:"required"`
	NewTimeSlot      string `json:"newTimeSlot" validate:"required"`
}
