package doctors

import (
	"context"
	"sync"

	"clinicbook-service/internal/app/contracts"
	"clinicbook-service/internal/app/models"
	"clinicbook-service/internal/pkg/constvars"
	"clinicbook-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type doctorMemoryRepository struct {
	doctors []models.Doctor
	Log     *zap.Logger
}

var (
	doctorMemoryRepositoryInstance contracts.DoctorRepository
	onceDoctorMemoryRepository     sync.Once
)

// NewDoctorMemoryRepository seeds the fixed doctor catalog. The catalog is
// immutable after startup, so reads need no locking.
func NewDoctorMemoryRepository(logger *zap.Logger) contracts.DoctorRepository {
	onceDoctorMemoryRepository.Do(func() {
		instance := &doctorMemoryRepository{
			doctors: defaultDoctorCatalog(),
			Log:     logger,
		}
		doctorMemoryRepositoryInstance = instance
	})
	return doctorMemoryRepositoryInstance
}

func defaultDoctorCatalog() []models.Doctor {
	return []models.Doctor{
		{
			Name: "Dr. Smith",
			TimeSlots: []string{
				"9:00 AM - 10:00 AM",
				"10:00 AM - 11:00 AM",
				"11:00 AM - 12:00 PM",
			},
		},
		{
			Name: "Dr. Johnson",
			TimeSlots: []string{
				"9:00 AM - 10:00 AM",
				"10:00 AM - 11:00 AM",
				"11:00 AM - 12:00 PM",
			},
		},
	}
}

func (repo *doctorMemoryRepository) FindAll(ctx context.Context) ([]models.Doctor, error) {
	requestID := utils.GetRequestID(ctx)
	repo.Log.Debug("doctorMemoryRepository.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	doctors := make([]models.Doctor, len(repo.doctors))
	copy(doctors, repo.doctors)
	return doctors, nil
}

func (repo *doctorMemoryRepository) FindByName(ctx context.Context, doctorName string) (*models.Doctor, error) {
	requestID := utils.GetRequestID(ctx)
	repo.Log.Debug("doctorMemoryRepository.FindByName called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorNameKey, doctorName),
	)

	for _, doctor := range repo.doctors {
		if doctor.Name == doctorName {
			found := doctor
			return &found, nil
		}
	}
	return nil, nil
}
