package routers

import (
	"clinicbook-service/internal/app/delivery/http/controllers"
	"clinicbook-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, bookingRateLimiter *middlewares.RateLimiter, appointmentController *controllers.AppointmentController) {
	router.Get("/patient/{email}", appointmentController.FindByPatientEmail)
	router.Get("/doctor/{doctorName}", appointmentController.FindByDoctorName)
	router.With(bookingRateLimiter.Limit).Post("/", appointmentController.CreateAppointment)
	router.With(bookingRateLimiter.Limit).Put("/", appointmentController.RescheduleAppointment)
	router.With(bookingRateLimiter.Limit).Delete("/", appointmentController.CancelAppointment)
}
