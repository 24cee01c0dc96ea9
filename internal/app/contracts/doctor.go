package contracts

import (
	"context"

	"clinicbook-service/internal/app/models"
)

type DoctorRepository interface {
	FindAll(ctx context.Context) ([]models.Doctor, error)
	FindByName(ctx context.Context, doctorName string) (*models.Doctor, error)
}
