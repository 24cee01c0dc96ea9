package contracts

import (
	"context"

	"clinicbook-service/internal/app/models"
	"clinicbook-service/internal/pkg/dto/requests"
	"clinicbook-service/internal/pkg/dto/responses"
)

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, request *requests.CreateAppointmentRequest) (*responses.Appointment, error)
	FindByPatientEmail(ctx context.Context, email string) ([]responses.Appointment, error)
	FindByDoctorName(ctx context.Context, doctorName string) ([]responses.Appointment, error)
	CancelAppointment(ctx context.Context, request *requests.CancelAppointmentRequest) error
	RescheduleAppointment(ctx context.Context, request *requests.RescheduleAppointmentRequest) (*responses.Appointment, error)
}

type AppointmentRepository interface {
	Insert(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error)
	FindByPatientEmail(ctx context.Context, email string) ([]models.Appointment, error)
	FindByDoctorName(ctx context.Context, doctorName string) ([]models.Appointment, error)
	FindByEmailAndTimeSlot(ctx context.Context, email, timeSlot string) (*models.Appointment, error)
	UpdateTimeSlot(ctx context.Context, appointmentID int, newTimeSlot string) (*models.Appointment, error)
	DeleteByEmailAndTimeSlot(ctx context.Context, email, timeSlot string) (*models.Appointment, error)
}
