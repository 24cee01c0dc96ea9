package config

import (
	"clinicbook-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
			AccessLogFileName:   utils.GetEnvString("LOGGER_ACCESS_LOG_FILENAME", "access.log"),
		},
		RabbitMQ: RabbitMQ{
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Name:                      utils.GetEnvString("APP_NAME", "clinicbook-service"),
			Env:                       utils.GetEnvString("APP_ENV", "development"),
			Port:                      utils.GetEnvString("APP_PORT", ":8080"),
			Version:                   utils.GetEnvString("APP_VERSION", "v1.0"),
			EndpointPrefix:            utils.GetEnvString("APP_ENDPOINT_PREFIX", "/api"),
			MaxRequests:               utils.GetEnvInt("APP_MAX_REQUESTS", 100),
			ShutdownTimeoutInSeconds:  utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 5),
			BookingMaxRequests:        utils.GetEnvInt("APP_BOOKING_MAX_REQUESTS", 10),
			BookingBlockTimeInSeconds: utils.GetEnvInt("APP_BOOKING_BLOCK_TIME_IN_SECONDS", 60),
			NotificationsEnabled:      utils.GetEnvBool("APP_NOTIFICATIONS_ENABLED", false),
		},
		RabbitMQ: AppRabbitMQ{
			BookingEventsQueue: utils.GetEnvString("RABBITMQ_BOOKING_EVENTS_QUEUE", "booking-events"),
		},
	}
}
