package appointments

import (
	"context"
	"sync"

	"clinicbook-service/internal/app/contracts"
	"clinicbook-service/internal/app/models"
	"clinicbook-service/internal/pkg/constvars"
	"clinicbook-service/internal/pkg/exceptions"
	"clinicbook-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type appointmentMemoryRepository struct {
	mu           sync.RWMutex
	appointments []*models.Appointment
	byDoctorSlot map[string]*models.Appointment
	byEmail      map[string][]*models.Appointment
	nextID       int
	Log          *zap.Logger
}

func NewAppointmentMemoryRepository(logger *zap.Logger) contracts.AppointmentRepository {
	return &appointmentMemoryRepository{
		appointments: make([]*models.Appointment, 0),
		byDoctorSlot: make(map[string]*models.Appointment),
		byEmail:      make(map[string][]*models.Appointment),
		nextID:       1,
		Log:          logger,
	}
}

func doctorSlotKey(doctorName, timeSlot string) string {
	return doctorName + "|" + timeSlot
}

// Insert checks the (doctorName, timeSlot) uniqueness invariant and appends
// the appointment under a single lock, so two concurrent bookings for the
// same slot cannot both succeed. IDs are monotonic and never reused.
func (repo *appointmentMemoryRepository) Insert(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	repo.Log.Debug("appointmentMemoryRepository.Insert called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorNameKey, appointment.DoctorName),
		zap.String(constvars.LoggingTimeSlotKey, appointment.TimeSlot),
	)

	repo.mu.Lock()
	defer repo.mu.Unlock()

	slotKey := doctorSlotKey(appointment.DoctorName, appointment.TimeSlot)
	if _, taken := repo.byDoctorSlot[slotKey]; taken {
		return nil, exceptions.ErrTimeSlotTaken(nil)
	}

	stored := &models.Appointment{
		ID:         repo.nextID,
		Patient:    appointment.Patient,
		DoctorName: appointment.DoctorName,
		TimeSlot:   appointment.TimeSlot,
	}
	repo.nextID++

	repo.appointments = append(repo.appointments, stored)
	repo.byDoctorSlot[slotKey] = stored
	repo.byEmail[stored.Patient.Email] = append(repo.byEmail[stored.Patient.Email], stored)

	saved := *stored
	return &saved, nil
}

func (repo *appointmentMemoryRepository) FindByPatientEmail(ctx context.Context, email string) ([]models.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	repo.Log.Debug("appointmentMemoryRepository.FindByPatientEmail called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientEmailKey, email),
	)

	repo.mu.RLock()
	defer repo.mu.RUnlock()

	appointments := make([]models.Appointment, 0, len(repo.byEmail[email]))
	for _, appointment := range repo.byEmail[email] {
		appointments = append(appointments, *appointment)
	}
	return appointments, nil
}

func (repo *appointmentMemoryRepository) FindByDoctorName(ctx context.Context, doctorName string) ([]models.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	repo.Log.Debug("appointmentMemoryRepository.FindByDoctorName called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorNameKey, doctorName),
	)

	repo.mu.RLock()
	defer repo.mu.RUnlock()

	appointments := make([]models.Appointment, 0)
	for _, appointment := range repo.appointments {
		if appointment.DoctorName == doctorName {
			appointments = append(appointments, *appointment)
		}
	}
	return appointments, nil
}

func (repo *appointmentMemoryRepository) FindByEmailAndTimeSlot(ctx context.Context, email, timeSlot string) (*models.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	repo.Log.Debug("appointmentMemoryRepository.FindByEmailAndTimeSlot called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientEmailKey, email),
		zap.String(constvars.LoggingTimeSlotKey, timeSlot),
	)

	repo.mu.RLock()
	defer repo.mu.RUnlock()

	for _, appointment := range repo.byEmail[email] {
		if appointment.TimeSlot == timeSlot {
			found := *appointment
			return &found, nil
		}
	}
	return nil, nil
}

// UpdateTimeSlot moves an appointment to a new slot under a single lock. The
// conflict check excludes the appointment itself, so moving to its current
// slot is a no-op rather than a conflict.
func (repo *appointmentMemoryRepository) UpdateTimeSlot(ctx context.Context, appointmentID int, newTimeSlot string) (*models.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	repo.Log.Debug("appointmentMemoryRepository.UpdateTimeSlot called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentIDKey, appointmentID),
		zap.String(constvars.LoggingTimeSlotKey, newTimeSlot),
	)

	repo.mu.Lock()
	defer repo.mu.Unlock()

	var target *models.Appointment
	for _, appointment := range repo.appointments {
		if appointment.ID == appointmentID {
			target = appointment
			break
		}
	}
	if target == nil {
		return nil, exceptions.ErrOriginalAppointmentNotFound(nil)
	}

	newSlotKey := doctorSlotKey(target.DoctorName, newTimeSlot)
	if existing, taken := repo.byDoctorSlot[newSlotKey]; taken && existing.ID != target.ID {
		return nil, exceptions.ErrNewTimeSlotTaken(nil)
	}

	delete(repo.byDoctorSlot, doctorSlotKey(target.DoctorName, target.TimeSlot))
	target.TimeSlot = newTimeSlot
	repo.byDoctorSlot[newSlotKey] = target

	updated := *target
	return &updated, nil
}

// DeleteByEmailAndTimeSlot removes the matching appointment and returns it.
// A second delete for the same pair reports the appointment as not found.
func (repo *appointmentMemoryRepository) DeleteByEmailAndTimeSlot(ctx context.Context, email, timeSlot string) (*models.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	repo.Log.Debug("appointmentMemoryRepository.DeleteByEmailAndTimeSlot called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientEmailKey, email),
		zap.String(constvars.LoggingTimeSlotKey, timeSlot),
	)

	repo.mu.Lock()
	defer repo.mu.Unlock()

	var target *models.Appointment
	for _, appointment := range repo.byEmail[email] {
		if appointment.TimeSlot == timeSlot {
			target = appointment
			break
		}
	}
	if target == nil {
		return nil, exceptions.ErrAppointmentNotFound(nil)
	}

	for i, appointment := range repo.appointments {
		if appointment.ID == target.ID {
			repo.appointments = append(repo.appointments[:i], repo.appointments[i+1:]...)
			break
		}
	}

	emailAppointments := repo.byEmail[email]
	for i, appointment := range emailAppointments {
		if appointment.ID == target.ID {
			repo.byEmail[email] = append(emailAppointments[:i], emailAppointments[i+1:]...)
			break
		}
	}
	if len(repo.byEmail[email]) == 0 {
		delete(repo.byEmail, email)
	}

	delete(repo.byDoctorSlot, doctorSlotKey(target.DoctorName, target.TimeSlot))

	removed := *target
	return &removed, nil
}
