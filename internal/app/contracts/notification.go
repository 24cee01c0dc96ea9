package contracts

import (
	"context"

	"clinicbook-service/internal/app/models"
)

type NotificationService interface {
	PublishBookingEvent(ctx context.Context, event *models.BookingEvent) error
}
