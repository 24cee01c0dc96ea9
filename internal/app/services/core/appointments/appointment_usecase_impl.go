package appointments

import (
	"context"
	"time"

	"clinicbook-service/internal/app/contracts"
	"clinicbook-service/internal/app/models"
	"clinicbook-service/internal/pkg/constvars"
	"clinicbook-service/internal/pkg/dto/requests"
	"clinicbook-service/internal/pkg/dto/responses"
	"clinicbook-service/internal/pkg/exceptions"
	"clinicbook-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type appointmentUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	DoctorRepository      contracts.DoctorRepository
	NotificationService   contracts.NotificationService
	Log                   *zap.Logger
}

func NewAppointmentUsecase(
	appointmentRepository contracts.AppointmentRepository,
	doctorRepository contracts.DoctorRepository,
	notificationService contracts.NotificationService,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	return &appointmentUsecase{
		AppointmentRepository: appointmentRepository,
		DoctorRepository:      doctorRepository,
		NotificationService:   notificationService,
		Log:                   logger,
	}
}

func (uc *appointmentUsecase) CreateAppointment(ctx context.Context, request *requests.CreateAppointmentRequest) (*responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.CreateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorNameKey, request.DoctorName),
		zap.String(constvars.LoggingTimeSlotKey, request.TimeSlot),
	)

	doctor, err := uc.DoctorRepository.FindByName(ctx, request.DoctorName)
	if err != nil {
		uc.Log.Error("appointmentUsecase.CreateAppointment error fetching doctor",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if doctor == nil {
		uc.Log.Error("appointmentUsecase.CreateAppointment doctor not found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDoctorNameKey, request.DoctorName),
		)
		return nil, exceptions.ErrDoctorNotFound(nil)
	}

	if !doctor.HasTimeSlot(request.TimeSlot) {
		uc.Log.Error("appointmentUsecase.CreateAppointment time slot not in doctor schedule",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDoctorNameKey, request.DoctorName),
			zap.String(constvars.LoggingTimeSlotKey, request.TimeSlot),
		)
		return nil, exceptions.ErrTimeSlotUnavailable(nil)
	}

	appointment := &models.Appointment{
		Patient: models.Patient{
			FirstName: request.FirstName,
			LastName:  request.LastName,
			Email:     request.Email,
		},
		DoctorName: request.DoctorName,
		TimeSlot:   request.TimeSlot,
	}

	saved, err := uc.AppointmentRepository.Insert(ctx, appointment)
	if err != nil {
		uc.Log.Error("appointmentUsecase.CreateAppointment error inserting appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.publishBookingEvent(ctx, constvars.EventAppointmentBooked, saved)

	uc.Log.Info("appointmentUsecase.CreateAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentIDKey, saved.ID),
	)
	response := saved.ConvertIntoResponse()
	return &response, nil
}

func (uc *appointmentUsecase) FindByPatientEmail(ctx context.Context, email string) ([]responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.FindByPatientEmail called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientEmailKey, email),
	)

	if !utils.IsValidEmail(email) {
		uc.Log.Error("appointmentUsecase.FindByPatientEmail invalid email format",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientEmailKey, email),
		)
		return nil, exceptions.ErrInvalidEmailFormat(nil)
	}

	appointments, err := uc.AppointmentRepository.FindByPatientEmail(ctx, email)
	if err != nil {
		uc.Log.Error("appointmentUsecase.FindByPatientEmail error fetching appointments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if len(appointments) == 0 {
		uc.Log.Error("appointmentUsecase.FindByPatientEmail no appointments for email",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientEmailKey, email),
		)
		return nil, exceptions.ErrNoAppointmentsForEmail(nil)
	}

	response := make([]responses.Appointment, 0, len(appointments))
	for _, appointment := range appointments {
		response = append(response, appointment.ConvertIntoResponse())
	}

	uc.Log.Info("appointmentUsecase.FindByPatientEmail succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentCountKey, len(response)),
	)
	return response, nil
}

func (uc *appointmentUsecase) FindByDoctorName(ctx context.Context, doctorName string) ([]responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.FindByDoctorName called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorNameKey, doctorName),
	)

	doctor, err := uc.DoctorRepository.FindByName(ctx, doctorName)
	if err != nil {
		uc.Log.Error("appointmentUsecase.FindByDoctorName error fetching doctor",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if doctor == nil {
		uc.Log.Error("appointmentUsecase.FindByDoctorName doctor not found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDoctorNameKey, doctorName),
		)
		return nil, exceptions.ErrDoctorNotFound(nil)
	}

	appointments, err := uc.AppointmentRepository.FindByDoctorName(ctx, doctorName)
	if err != nil {
		uc.Log.Error("appointmentUsecase.FindByDoctorName error fetching appointments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := make([]responses.Appointment, 0, len(appointments))
	for _, appointment := range appointments {
		response = append(response, appointment.ConvertIntoResponse())
	}

	uc.Log.Info("appointmentUsecase.FindByDoctorName succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentCountKey, len(response)),
	)
	return response, nil
}

func (uc *appointmentUsecase) CancelAppointment(ctx context.Context, request *requests.CancelAppointmentRequest) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.CancelAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientEmailKey, request.Email),
		zap.String(constvars.LoggingTimeSlotKey, request.TimeSlot),
	)

	removed, err := uc.AppointmentRepository.DeleteByEmailAndTimeSlot(ctx, request.Email, request.TimeSlot)
	if err != nil {
		uc.Log.Error("appointmentUsecase.CancelAppointment error deleting appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	uc.publishBookingEvent(ctx, constvars.EventAppointmentCancelled, removed)

	uc.Log.Info("appointmentUsecase.CancelAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentIDKey, removed.ID),
	)
	return nil
}

func (uc *appointmentUsecase) RescheduleAppointment(ctx context.Context, request *requests.RescheduleAppointmentRequest) (*responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.RescheduleAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientEmailKey, request.Email),
		zap.String(constvars.LoggingTimeSlotKey, request.NewTimeSlot),
	)

	existing, err := uc.AppointmentRepository.FindByEmailAndTimeSlot(ctx, request.Email, request.OriginalTimeSlot)
	if err != nil {
		uc.Log.Error("appointmentUsecase.RescheduleAppointment error fetching appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if existing == nil {
		uc.Log.Error("appointmentUsecase.RescheduleAppointment original appointment not found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientEmailKey, request.Email),
			zap.String(constvars.LoggingTimeSlotKey, request.OriginalTimeSlot),
		)
		return nil, exceptions.ErrOriginalAppointmentNotFound(nil)
	}

	doctor, err := uc.DoctorRepository.FindByName(ctx, existing.DoctorName)
	if err != nil {
		uc.Log.Error("appointmentUsecase.RescheduleAppointment error fetching doctor",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if doctor == nil {
		uc.Log.Error("appointmentUsecase.RescheduleAppointment doctor not found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDoctorNameKey, existing.DoctorName),
		)
		return nil, exceptions.ErrDoctorNotFound(nil)
	}

	if !doctor.HasTimeSlot(request.NewTimeSlot) {
		uc.Log.Error("appointmentUsecase.RescheduleAppointment new time slot not in doctor schedule",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDoctorNameKey, existing.DoctorName),
			zap.String(constvars.LoggingTimeSlotKey, request.NewTimeSlot),
		)
		return nil, exceptions.ErrNewTimeSlotUnavailable(nil)
	}

	updated, err := uc.AppointmentRepository.UpdateTimeSlot(ctx, existing.ID, request.NewTimeSlot)
	if err != nil {
		uc.Log.Error("appointmentUsecase.RescheduleAppointment error updating time slot",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.publishBookingEvent(ctx, constvars.EventAppointmentRescheduled, updated)

	uc.Log.Info("appointmentUsecase.RescheduleAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentIDKey, updated.ID),
	)
	response := updated.ConvertIntoResponse()
	return &response, nil
}

// publishBookingEvent notifies downstream consumers. Publish failures are
// logged and swallowed so the booking operation itself never fails on them.
func (uc *appointmentUsecase) publishBookingEvent(ctx context.Context, eventType string, appointment *models.Appointment) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	event := &models.BookingEvent{
		Type:          eventType,
		AppointmentID: appointment.ID,
		PatientEmail:  appointment.Patient.Email,
		DoctorName:    appointment.DoctorName,
		TimeSlot:      appointment.TimeSlot,
		OccurredAt:    time.Now().UTC(),
	}

	if err := uc.NotificationService.PublishBookingEvent(ctx, event); err != nil {
		uc.Log.Warn("appointmentUsecase.publishBookingEvent error publishing event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEventTypeKey, eventType),
			zap.Error(err),
		)
	}
}
