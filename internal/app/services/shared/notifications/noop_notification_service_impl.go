package notifications

import (
	"context"

	"clinicbook-service/internal/app/contracts"
	"clinicbook-service/internal/app/models"
	"clinicbook-service/internal/pkg/constvars"
	"clinicbook-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type noopNotificationService struct {
	Log *zap.Logger
}

// NewNoopNotificationService is used when the messaging driver is disabled.
func NewNoopNotificationService(logger *zap.Logger) contracts.NotificationService {
	return &noopNotificationService{
		Log: logger,
	}
}

func (s *noopNotificationService) PublishBookingEvent(ctx context.Context, event *models.BookingEvent) error {
	requestID := utils.GetRequestID(ctx)
	s.Log.Debug("noopNotificationService.PublishBookingEvent skipped, notifications disabled",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEventTypeKey, event.Type),
	)
	return nil
}
