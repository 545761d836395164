package patients

import (
	"context"
	"log/slog"
	"time"

	"healthgraph/src/domain/entities"
	"healthgraph/src/repositories"
	"healthgraph/src/services"
	"healthgraph/src/services/events"
	"healthgraph/src/services/relationships"
)

type PatientService struct {
	crud              *services.EntityService[entities.Patient]
	patientRepository *repositories.PatientRepository
	doctorAssigner    *relationships.Assigner
}

func NewPatientService(
	logger *slog.Logger,
	patientRepository *repositories.PatientRepository,
	doctorRepository *repositories.DoctorRepository,
	publisher events.Publisher,
) *PatientService {
	return &PatientService{
		crud:              services.NewEntityService(logger, patientRepository, publisher),
		patientRepository: patientRepository,
		doctorAssigner: relationships.NewAssigner(
			logger,
			patientRepository,
			doctorRepository,
			entities.RelTreatedBy,
			patientRepository,
			publisher,
		),
	}
}

func (s *PatientService) GetPatients(ctx context.Context) ([]entities.Patient, error) {
	return s.crud.GetAll(ctx)
}

func (s *PatientService) GetPatientByID(ctx context.Context, id string) (entities.Patient, error) {
	return s.crud.GetByID(ctx, id)
}

// CreatePatient assigns a "P-" prefixed id and timestamps and persists the patient as active.
func (s *PatientService) CreatePatient(ctx context.Context, patient entities.Patient) (entities.Patient, error) {
	patient.BaseEntity = entities.NewBaseEntity(entities.NewPatientID(), time.Now())
	return s.crud.Create(ctx, patient)
}

func (s *PatientService) UpdatePatient(ctx context.Context, patch entities.Patient) (entities.Patient, error) {
	return s.crud.Update(ctx, patch)
}

func (s *PatientService) DeletePatient(ctx context.Context, id string) error {
	return s.crud.Delete(ctx, id)
}
