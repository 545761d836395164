package doctors

import (
	"context"
	"log/slog"
	"time"

	"healthgraph/src/domain/entities"
	"healthgraph/src/repositories"
	"healthgraph/src/services"
	"healthgraph/src/services/events"
	"healthgraph/src/services/relationships"

	"github.com/google/uuid"
)

type DoctorService struct {
	crud              *services.EntityService[entities.Doctor]
	doctorRepository  *repositories.DoctorRepository
	treatmentAssigner *relationships.Assigner
}

func NewDoctorService(
	logger *slog.Logger,
	doctorRepository *repositories.DoctorRepository,
	treatmentRepository *repositories.TreatmentRepository,
	publisher events.Publisher,
) *DoctorService {
	return &DoctorService{
		crud:             services.NewEntityService(logger, doctorRepository, publisher),
		doctorRepository: doctorRepository,
		treatmentAssigner: relationships.NewAssigner(
			logger,
			doctorRepository,
			treatmentRepository,
			entities.RelSpecializesInTreatment,
			doctorRepository,
			publisher,
		),
	}
}

func (s *DoctorService) GetDoctors(ctx context.Context) ([]entities.Doctor, error) {
	return s.crud.GetAll(ctx)
}

func (s *DoctorService) GetDoctorByID(ctx context.Context, id string) (entities.Doctor, error) {
	return s.crud.GetByID(ctx, id)
}

// CreateDoctor assigns a fresh id and timestamps and persists the doctor as active.
func (s *DoctorService) CreateDoctor(ctx context.Context, doctor entities.Doctor) (entities.Doctor, error) {
	doctor.BaseEntity = entities.NewBaseEntity(uuid.NewString(), time.Now())
	return s.crud.Create(ctx, doctor)
}

// UpdateDoctor applies the non-empty fields of patch to the doctor with patch.ID.
func (s *DoctorService) UpdateDoctor(ctx context.Context, patch entities.Doctor) (entities.Doctor, error) {
	return s.crud.Update(ctx, patch)
}

func (s *DoctorService) DeleteDoctor(ctx context.Context, id string) error {
	return s.crud.Delete(ctx, id)
}
