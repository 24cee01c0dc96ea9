package models

import "time"

type BookingEvent struct {
	Type          string    `json:"type"`
	AppointmentID int       `json:"appointment_id"`
	PatientEmail  string    `json:"patient_email"`
	DoctorName    string    `json:"doctor_name"`
	TimeSlot      string    `json:"time_slot"`
	OccurredAt    time.Time `json:"occurred_at"`
}
