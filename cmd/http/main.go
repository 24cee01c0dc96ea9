package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinicbook-service/internal/app/config"
	"clinicbook-service/internal/app/contracts"
	"clinicbook-service/internal/app/delivery/http/controllers"
	"clinicbook-service/internal/app/delivery/http/middlewares"
	"clinicbook-service/internal/app/delivery/http/routers"
	"clinicbook-service/internal/app/drivers/logger"
	"clinicbook-service/internal/app/drivers/messaging"
	"clinicbook-service/internal/app/services/core/appointments"
	"clinicbook-service/internal/app/services/core/doctors"
	"clinicbook-service/internal/app/services/shared/notifications"
	"clinicbook-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)
	accessLogger := logger.NewLogrusLogger(driverConfig, internalConfig)

	chiRouter := chi.NewRouter()

	var rabbitMQConnection *amqp091.Connection
	if internalConfig.App.NotificationsEnabled {
		rabbitMQConnection = messaging.NewRabbitMQ(driverConfig)
	}

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		Logger:         log,
		RabbitMQ:       rabbitMQConnection,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	bootstrapingTheApp(bootstrap, accessLogger)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		log.Info("Server started", zap.String("address", internalConfig.App.Port))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Error("Error while shutting down application", zap.Error(err))
	}

	log.Info("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap, accessLogger *logrus.Logger) {
	// Middlewares
	middlewareInstance := &middlewares.Middlewares{
		Log:            bootstrap.Logger,
		InternalConfig: bootstrap.InternalConfig,
	}

	// Doctor catalog
	doctorRepository := doctors.NewDoctorMemoryRepository(bootstrap.Logger)
	catalog, err := doctorRepository.FindAll(context.Background())
	if err != nil {
		bootstrap.Logger.Fatal("Failed to load doctor catalog", zap.Error(err))
	}
	bootstrap.Logger.Info("Doctor catalog loaded",
		zap.Int(constvars.LoggingDoctorCountKey, len(catalog)),
	)

	// Appointments
	appointmentRepository := appointments.NewAppointmentMemoryRepository(bootstrap.Logger)

	// Notifications
	var notificationService contracts.NotificationService
	if bootstrap.RabbitMQ != nil {
		service, err := notifications.NewRabbitMQNotificationService(
			bootstrap.RabbitMQ,
			bootstrap.Logger,
			bootstrap.InternalConfig.RabbitMQ.BookingEventsQueue,
		)
		if err != nil {
			bootstrap.Logger.Fatal("Failed to initialize notification service", zap.Error(err))
		}
		notificationService = service
	} else {
		notificationService = notifications.NewNoopNotificationService(bootstrap.Logger)
	}

	appointmentUsecase := appointments.NewAppointmentUsecase(
		appointmentRepository,
		doctorRepository,
		notificationService,
		bootstrap.Logger,
	)
	appointmentController := controllers.NewAppointmentController(bootstrap.Logger, appointmentUsecase)

	// Health
	healthController := controllers.NewHealthController(bootstrap.Logger, bootstrap.InternalConfig)

	// Rate limiter guarding the booking mutation endpoints
	bookingRateLimiter := middlewares.NewRateLimiter(
		bootstrap.InternalConfig.App.BookingMaxRequests,
		time.Second,
		time.Duration(bootstrap.InternalConfig.App.BookingBlockTimeInSeconds)*time.Second,
	)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewareInstance,
		bookingRateLimiter,
		accessLogger,
		healthController,
		appointmentController,
	)
}
