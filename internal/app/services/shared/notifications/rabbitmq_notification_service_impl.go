package notifications

import (
	"context"
	"encoding/json"
	"sync"

	"clinicbook-service/internal/app/contracts"
	"clinicbook-service/internal/app/models"
	"clinicbook-service/internal/pkg/constvars"
	"clinicbook-service/internal/pkg/exceptions"

	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type rabbitMQNotificationService struct {
	Channel *amqp091.Channel
	Queue   string
	Log     *zap.Logger
}

var (
	rabbitMQNotificationServiceInstance contracts.NotificationService
	onceRabbitMQNotificationService     sync.Once
	rabbitMQNotificationServiceError    error
)

func NewRabbitMQNotificationService(rabbitMQConnection *amqp091.Connection, logger *zap.Logger, queue string) (contracts.NotificationService, error) {
	onceRabbitMQNotificationService.Do(func() {
		channel, err := rabbitMQConnection.Channel()
		if err != nil {
			rabbitMQNotificationServiceError = err
			return
		}
		_, err = channel.QueueDeclare(
			queue, // name
			true,  // durable
			false, // autoDelete
			false, // exclusive
			false, // noWait
			nil,   // args
		)
		if err != nil {
			rabbitMQNotificationServiceError = err
			return
		}
		instance := &rabbitMQNotificationService{
			Channel: channel,
			Queue:   queue,
			Log:     logger,
		}
		rabbitMQNotificationServiceInstance = instance
	})
	return rabbitMQNotificationServiceInstance, rabbitMQNotificationServiceError
}

func (s *rabbitMQNotificationService) PublishBookingEvent(ctx context.Context, event *models.BookingEvent) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	s.Log.Info("rabbitMQNotificationService.PublishBookingEvent called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEventTypeKey, event.Type),
	)

	body, err := json.Marshal(event)
	if err != nil {
		s.Log.Error("rabbitMQNotificationService.PublishBookingEvent error marshaling JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	headers := amqp091.Table{
		"message_type":     "JSON",
		"requeue_strategy": "DROP",
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		Priority:     0,
		Headers:      headers,
	}

	err = s.Channel.PublishWithContext(ctx, "", s.Queue, false, false, message)
	if err != nil {
		s.Log.Error("rabbitMQNotificationService.PublishBookingEvent error publishing message",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingQueueKey, s.Queue),
			zap.Error(err),
		)
		return exceptions.ErrRabbitMQPublishMessage(err, s.Queue)
	}

	s.Log.Info("rabbitMQNotificationService.PublishBookingEvent succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueKey, s.Queue),
	)

	return nil
}
