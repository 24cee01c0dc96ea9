package appointments

import (
	"context"
	"errors"
	"testing"

	"clinicbook-service/internal/app/contracts"
	"clinicbook-service/internal/app/models"
	"clinicbook-service/internal/app/services/core/doctors"
	"clinicbook-service/internal/pkg/constvars"
	"clinicbook-service/internal/pkg/dto/requests"
	"clinicbook-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) PublishBookingEvent(ctx context.Context, event *models.BookingEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func newBookingUsecase() (contracts.AppointmentUsecase, *MockNotificationService) {
	mockNotification := new(MockNotificationService)
	usecase := NewAppointmentUsecase(
		NewAppointmentMemoryRepository(zap.NewNop()),
		doctors.NewDoctorMemoryRepository(zap.NewNop()),
		mockNotification,
		zap.NewNop(),
	)
	return usecase, mockNotification
}

func newCreateRequest(email, doctorName, timeSlot string) *requests.CreateAppointmentRequest {
	return &requests.CreateAppointmentRequest{
		FirstName:  "John",
		LastName:   "Doe",
		Email:      email,
		TimeSlot:   timeSlot,
		DoctorName: doctorName,
	}
}

func assertCustomError(t *testing.T, err error, statusCode int, clientMessage string) {
	t.Helper()
	var customErr *exceptions.CustomError
	assert.ErrorAs(t, err, &customErr)
	assert.Equal(t, statusCode, customErr.StatusCode)
	assert.Equal(t, clientMessage, customErr.ClientMessage)
}

func TestAppointmentUsecase_CreateAppointment(t *testing.T) {
	ctx := context.Background()

	t.Run("Books Appointment", func(t *testing.T) {
		usecase, mockNotification := newBookingUsecase()
		mockNotification.On("PublishBookingEvent", mock.Anything, mock.MatchedBy(func(event *models.BookingEvent) bool {
			return event.Type == constvars.EventAppointmentBooked
		})).Return(nil)

		response, err := usecase.CreateAppointment(ctx, newCreateRequest("john@example.com", "Dr. Smith", "9:00 AM - 10:00 AM"))

		assert.NoError(t, err)
		assert.Equal(t, 1, response.ID)
		assert.Equal(t, "john@example.com", response.Patient.Email, "returned email should match the request")
		assert.Equal(t, "Dr. Smith", response.DoctorName)
		assert.Equal(t, "9:00 AM - 10:00 AM", response.TimeSlot)
		mockNotification.AssertExpectations(t)
	})

	t.Run("Unknown Doctor", func(t *testing.T) {
		usecase, mockNotification := newBookingUsecase()

		_, err := usecase.CreateAppointment(ctx, newCreateRequest("john@example.com", "Dr. Who", "9:00 AM - 10:00 AM"))

		assertCustomError(t, err, constvars.StatusNotFound, constvars.ErrClientDoctorNotFound)
		mockNotification.AssertNotCalled(t, "PublishBookingEvent")
	})

	t.Run("Slot Outside Doctor Schedule", func(t *testing.T) {
		usecase, mockNotification := newBookingUsecase()

		_, err := usecase.CreateAppointment(ctx, newCreateRequest("john@example.com", "Dr. Smith", "1:00 PM - 2:00 PM"))

		assertCustomError(t, err, constvars.StatusBadRequest, constvars.ErrClientTimeSlotUnavailable)
		mockNotification.AssertNotCalled(t, "PublishBookingEvent")
	})

	t.Run("Slot Already Booked", func(t *testing.T) {
		usecase, mockNotification := newBookingUsecase()
		mockNotification.On("PublishBookingEvent", mock.Anything, mock.AnythingOfType("*models.BookingEvent")).Return(nil)

		_, err := usecase.CreateAppointment(ctx, newCreateRequest("john@example.com", "Dr. Smith", "9:00 AM - 10:00 AM"))
		assert.NoError(t, err)

		_, err = usecase.CreateAppointment(ctx, newCreateRequest("jane@example.com", "Dr. Smith", "9:00 AM - 10:00 AM"))
		assertCustomError(t, err, constvars.StatusBadRequest, constvars.ErrClientTimeSlotTaken)
		mockNotification.AssertNumberOfCalls(t, "PublishBookingEvent", 1)
	})

	t.Run("Publish Failure Does Not Fail Booking", func(t *testing.T) {
		usecase, mockNotification := newBookingUsecase()
		mockNotification.On("PublishBookingEvent", mock.Anything, mock.AnythingOfType("*models.BookingEvent")).
			Return(errors.New("amqp connection closed"))

		response, err := usecase.CreateAppointment(ctx, newCreateRequest("john@example.com", "Dr. Smith", "9:00 AM - 10:00 AM"))

		assert.NoError(t, err, "booking should succeed even when the event publish fails")
		assert.Equal(t, 1, response.ID)
	})
}

func TestAppointmentUsecase_FindByPatientEmail(t *testing.T) {
	ctx := context.Background()

	t.Run("Invalid Email Format", func(t *testing.T) {
		usecase, _ := newBookingUsecase()

		_, err := usecase.FindByPatientEmail(ctx, "not-an-email")

		assertCustomError(t, err, constvars.StatusBadRequest, constvars.ErrClientInvalidEmailFormat)
	})

	t.Run("No Appointments For Email", func(t *testing.T) {
		usecase, _ := newBookingUsecase()

		_, err := usecase.FindByPatientEmail(ctx, "nobody@example.com")

		assertCustomError(t, err, constvars.StatusNotFound, constvars.ErrClientNoAppointmentsForEmail)
	})

	t.Run("Returns Appointments In Insertion Order", func(t *testing.T) {
		usecase, mockNotification := newBookingUsecase()
		mockNotification.On("PublishBookingEvent", mock.Anything, mock.AnythingOfType("*models.BookingEvent")).Return(nil)

		_, err := usecase.CreateAppointment(ctx, newCreateRequest("john@example.com", "Dr. Smith", "9:00 AM - 10:00 AM"))
		assert.NoError(t, err)
		_, err = usecase.CreateAppointment(ctx, newCreateRequest("john@example.com", "Dr. Johnson", "10:00 AM - 11:00 AM"))
		assert.NoError(t, err)

		response, err := usecase.FindByPatientEmail(ctx, "john@example.com")

		assert.NoError(t, err)
		assert.Len(t, response, 2)
		assert.Equal(t, 1, response[0].ID)
		assert.Equal(t, 2, response[1].ID)
	})
}

func TestAppointmentUsecase_FindByDoctorName(t *testing.T) {
	ctx := context.Background()

	t.Run("Unknown Doctor", func(t *testing.T) {
		usecase, _ := newBookingUsecase()

		_, err := usecase.FindByDoctorName(ctx, "Dr. Who")

		assertCustomError(t, err, constvars.StatusNotFound, constvars.ErrClientDoctorNotFound)
	})

	t.Run("Known Doctor Without Appointments", func(t *testing.T) {
		usecase, _ := newBookingUsecase()

		response, err := usecase.FindByDoctorName(ctx, "Dr. Johnson")

		assert.NoError(t, err, "a known doctor with no appointments is not an error")
		assert.NotNil(t, response)
		assert.Empty(t, response)
	})

	t.Run("Returns Doctor Appointments", func(t *testing.T) {
		usecase, mockNotification := newBookingUsecase()
		mockNotification.On("PublishBookingEvent", mock.Anything, mock.AnythingOfType("*models.BookingEvent")).Return(nil)

		_, err := usecase.CreateAppointment(ctx, newCreateRequest("john@example.com", "Dr. Smith", "9:00 AM - 10:00 AM"))
		assert.NoError(t, err)
		_, err = usecase.CreateAppointment(ctx, newCreateRequest("jane@example.com", "Dr. Johnson", "9:00 AM - 10:00 AM"))
		assert.NoError(t, err)

		response, err := usecase.FindByDoctorName(ctx, "Dr. Smith")

		assert.NoError(t, err)
		assert.Len(t, response, 1)
		assert.Equal(t, "john@example.com", response[0].Patient.Email)
	})
}

func TestAppointmentUsecase_CancelAppointment(t *testing.T) {
	ctx := context.Background()

	t.Run("Cancels Appointment", func(t *testing.T) {
		usecase, mockNotification := newBookingUsecase()
		mockNotification.On("PublishBookingEvent", mock.Anything, mock.AnythingOfType("*models.BookingEvent")).Return(nil)

		_, err := usecase.CreateAppointment(ctx, newCreateRequest("john@example.com", "Dr. Smith", "9:00 AM - 10:00 AM"))
		assert.NoError(t, err)

		err = usecase.CancelAppointment(ctx, &requests.CancelAppointmentRequest{
			Email:    "john@example.com",
			TimeSlot: "9:00 AM - 10:00 AM",
		})
		assert.NoError(t, err)

		mockNotification.AssertCalled(t, "PublishBookingEvent", mock.Anything, mock.MatchedBy(func(event *models.BookingEvent) bool {
			return event.Type == constvars.EventAppointmentCancelled
		}))

		_, err = usecase.FindByPatientEmail(ctx, "john@example.com")
		assertCustomError(t, err, constvars.StatusNotFound, constvars.ErrClientNoAppointmentsForEmail)
	})

	t.Run("Cancel Twice", func(t *testing.T) {
		usecase, mockNotification := newBookingUsecase()
		mockNotification.On("PublishBookingEvent", mock.Anything, mock.AnythingOfType("*models.BookingEvent")).Return(nil)

		_, err := usecase.CreateAppointment(ctx, newCreateRequest("john@example.com", "Dr. Smith", "9:00 AM - 10:00 AM"))
		assert.NoError(t, err)

		request := &requests.CancelAppointmentRequest{
			Email:    "john@example.com",
			TimeSlot: "9:00 AM - 10:00 AM",
		}
		assert.NoError(t, usecase.CancelAppointment(ctx, request))

		err = usecase.CancelAppointment(ctx, request)
		assertCustomError(t, err, constvars.StatusNotFound, constvars.ErrClientAppointmentNotFound)
	})
}

func TestAppointmentUsecase_RescheduleAppointment(t *testing.T) {
	ctx := context.Background()

	t.Run("Reschedules Appointment", func(t *testing.T) {
		usecase, mockNotification := newBookingUsecase()
		mockNotification.On("PublishBookingEvent", mock.Anything, mock.AnythingOfType("*models.BookingEvent")).Return(nil)

		created, err := usecase.CreateAppointment(ctx, newCreateRequest("john@example.com", "Dr. Smith", "9:00 AM - 10:00 AM"))
		assert.NoError(t, err)

		response, err := usecase.RescheduleAppointment(ctx, &requests.RescheduleAppointmentRequest{
			Email:            "john@example.com",
			OriginalTimeSlot: "9:00 AM - 10:00 AM",
			NewTimeSlot:      "10:00 AM - 11:00 AM",
		})

		assert.NoError(t, err)
		assert.Equal(t, created.ID, response.ID, "rescheduling keeps the appointment identity")
		assert.Equal(t, "10:00 AM - 11:00 AM", response.TimeSlot)
		mockNotification.AssertCalled(t, "PublishBookingEvent", mock.Anything, mock.MatchedBy(func(event *models.BookingEvent) bool {
			return event.Type == constvars.EventAppointmentRescheduled
		}))
	})

	t.Run("Original Appointment Not Found", func(t *testing.T) {
		usecase, _ := newBookingUsecase()

		_, err := usecase.RescheduleAppointment(ctx, &requests.RescheduleAppointmentRequest{
			Email:            "john@example.com",
			OriginalTimeSlot: "9:00 AM - 10:00 AM",
			NewTimeSlot:      "10:00 AM - 11:00 AM",
		})

		assertCustomError(t, err, constvars.StatusNotFound, constvars.ErrClientOriginalAppointmentNotFound)
	})

	t.Run("New Slot Outside Doctor Schedule", func(t *testing.T) {
		usecase, mockNotification := newBookingUsecase()
		mockNotification.On("PublishBookingEvent", mock.Anything, mock.AnythingOfType("*models.BookingEvent")).Return(nil)

		_, err := usecase.CreateAppointment(ctx, newCreateRequest("john@example.com", "Dr. Smith", "9:00 AM - 10:00 AM"))
		assert.NoError(t, err)

		_, err = usecase.RescheduleAppointment(ctx, &requests.RescheduleAppointmentRequest{
			Email:            "john@example.com",
			OriginalTimeSlot: "9:00 AM - 10:00 AM",
			NewTimeSlot:      "1:00 PM - 2:00 PM",
		})

		assertCustomError(t, err, constvars.StatusBadRequest, constvars.ErrClientNewTimeSlotUnavailable)
	})

	t.Run("New Slot Already Booked", func(t *testing.T) {
		usecase, mockNotification := newBookingUsecase()
		mockNotification.On("PublishBookingEvent", mock.Anything, mock.AnythingOfType("*models.BookingEvent")).Return(nil)

		_, err := usecase.CreateAppointment(ctx, newCreateRequest("john@example.com", "Dr. Smith", "9:00 AM - 10:00 AM"))
		assert.NoError(t, err)
		_, err = usecase.CreateAppointment(ctx, newCreateRequest("jane@example.com", "Dr. Smith", "10:00 AM - 11:00 AM"))
		assert.NoError(t, err)

		_, err = usecase.RescheduleAppointment(ctx, &requests.RescheduleAppointmentRequest{
			Email:            "john@example.com",
			OriginalTimeSlot: "9:00 AM - 10:00 AM",
			NewTimeSlot:      "10:00 AM - 11:00 AM",
		})

		assertCustomError(t, err, constvars.StatusBadRequest, constvars.ErrClientNewTimeSlotTaken)
	})

	t.Run("Reschedule To Same Slot", func(t *testing.T) {
		usecase, mockNotification := newBookingUsecase()
		mockNotification.On("PublishBookingEvent", mock.Anything, mock.AnythingOfType("*models.BookingEvent")).Return(nil)

		_, err := usecase.CreateAppointment(ctx, newCreateRequest("john@example.com", "Dr. Smith", "9:00 AM - 10:00 AM"))
		assert.NoError(t, err)

		response, err := usecase.RescheduleAppointment(ctx, &requests.RescheduleAppointmentRequest{
			Email:            "john@example.com",
			OriginalTimeSlot: "9:00 AM - 10:00 AM",
			NewTimeSlot:      "9:00 AM - 10:00 AM",
		})

		assert.NoError(t, err, "keeping the current slot should not conflict with itself")
		assert.Equal(t, "9:00 AM - 10:00 AM", response.TimeSlot)
	})
}
