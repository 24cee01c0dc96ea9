package config

type (
	DriverConfig struct {
		Logger   Logger
		RabbitMQ RabbitMQ
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
		AccessLogFileName   string
	}
	RabbitMQ struct {
		Host     string
		Port     string
		Username string
		Password string
	}
)

type (
	InternalConfig struct {
		App      App
		RabbitMQ AppRabbitMQ
	}
	App struct {
		Name                      string
		Env                       string
		Port                      string
		Version                   string
		EndpointPrefix            string
		MaxRequests               int
		ShutdownTimeoutInSeconds  int
		BookingMaxRequests        int
		BookingBlockTimeInSeconds int
		NotificationsEnabled      bool
	}
	AppRabbitMQ struct {
		BookingEventsQueue string
	}
)
