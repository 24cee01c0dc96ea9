package routers

import (
	"time"

	"clinicbook-service/internal/app/config"
	"clinicbook-service/internal/app/delivery/http/controllers"
	"clinicbook-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/sirupsen/logrus"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	bookingRateLimiter *middlewares.RateLimiter,
	accessLogger *logrus.Logger,
	healthController *controllers.HealthController,
	appointmentController *controllers.AppointmentController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	// Coarse per-IP rate limit across the whole API using httprate
	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.RequestLogger(accessLogger))
	router.Use(middlewares.ErrorHandler)

	router.Get("/health", healthController.Check)

	router.Route(internalConfig.App.EndpointPrefix, func(r chi.Router) {
		r.Route("/appointments", func(r chi.Router) {
			attachAppointmentRoutes(r, bookingRateLimiter, appointmentController)
		})
	})
}
