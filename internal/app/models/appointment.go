package models

import (
	"clinicbook-service/internal/pkg/dto/responses"
)

type Patient struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

type Appointment struct {
	ID         int     `json:"id"`
	Patient    Patient `json:"patient"`
	DoctorName string  `json:"doctorName"`
	TimeSlot   string  `json:"timeSlot"`
}

func (a *Appointment) ConvertIntoResponse() responses.Appointment {
	return responses.Appointment{
		ID: a.ID,
		Patient: responses.Patient{
			FirstName: a.Patient.FirstName,
			LastName:  a.Patient.LastName,
			Email:     a.Patient.Email,
		},
		DoctorName: a.DoctorName,
		TimeSlot:   a.TimeSlot,
	}
}
