package facilities

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"healthgraph/src/domain"
	"healthgraph/src/domain/entities"
	"healthgraph/src/repositories"
	"healthgraph/src/services"
	"healthgraph/src/services/events"
	"healthgraph/src/services/relationships"

	"github.com/google/uuid"
)

type FacilityService struct {
	crud               *services.EntityService[entities.Facility]
	facilityRepository *repositories.FacilityRepository
	doctorAssigner     *relationships.Assigner
	treatmentAssigner  *relationships.Assigner
}

func NewFacilityService(
	logger *slog.Logger,
	facilityRepository *repositories.FacilityRepository,
	doctorRepository *repositories.DoctorRepository,
	treatmentRepository *repositories.TreatmentRepository,
	publisher events.Publisher,
) *FacilityService {
	return &FacilityService{
		crud:               services.NewEntityService(logger, facilityRepository, publisher),
		facilityRepository: facilityRepository,
		doctorAssigner: relationships.NewAssigner(
			logger,
			doctorRepository,
			facilityRepository,
			entities.RelWorksAt,
			facilityRepository,
			publisher,
		),
		treatmentAssigner: relationships.NewAssigner(
			logger,
			treatmentRepository,
			facilityRepository,
			entities.RelAvailableAt,
			facilityRepository,
			publisher,
		),
	}
}

func (s *FacilityService) GetFacilities(ctx context.Context) ([]entities.Facility, error) {
	return s.crud.GetAll(ctx)
}

// GetFacilityByID returns the facility with its contacts.
func (s *FacilityService) GetFacilityByID(ctx context.Context, id string) (entities.Facility, error) {
	return s.crud.GetByID(ctx, id)
}

// CreateFacility assigns ids to the facility and each of its contacts.
func (s *FacilityService) CreateFacility(ctx context.Context, facility entities.Facility) (entities.Facility, error) {
	facility.BaseEntity = entities.NewBaseEntity(uuid.NewString(), time.Now())

	contacts := make([]entities.ContactInfo, 0, len(facility.Contacts))
	for _, contact := range facility.Contacts {
		contact.ID = uuid.NewString()
		contacts = append(contacts, contact)
	}
	facility.Contacts = contacts

	return s.crud.Create(ctx, facility)
}

// UpdateFacility applies the non-empty fields of patch. Contacts are not updated.
func (s *FacilityService) UpdateFacility(ctx context.Context, patch entities.Facility) (entities.Facility, error) {
	return s.crud.Update(ctx, patch)
}

func (s *FacilityService) DeleteFacility(ctx context.Context, id string) error {
	return s.crud.Delete(ctx, id)
}

// GetDoctorsByFacilityID fails with domain.ErrEntityNotFound when no active doctor works there.
func (s *FacilityService) GetDoctorsByFacilityID(ctx context.Context, facilityID string) ([]entities.Doctor, error) {
	doctors, err := s.facilityRepository.GetDoctorsByFacilityID(ctx, facilityID)
	if err != nil {
		return nil, fmt.Errorf("FacilityService.GetDoctorsByFacilityID - %w", err)
	}
	if len(doctors) == 0 {
		return nil, fmt.Errorf("FacilityService.GetDoctorsByFacilityID - no doctors at facility '%s': %w", facilityID, domain.ErrEntityNotFound)
	}
	return doctors, nil
}

// GetTreatmentsByFacilityID fails with domain.ErrEntityNotFound when no active treatment is available there.
func (s *FacilityService) GetTreatmentsByFacilityID(ctx context.Context, facilityID string) ([]entities.AbstractTreatment, error) {
	treatments, err := s.facilityRepository.GetTreatmentsByFacilityID(ctx, facilityID)
	if err != nil {
		return nil, fmt.Errorf("FacilityService.GetTreatmentsByFacilityID - %w", err)
	}
	if len(treatments) == 0 {
		return nil, fmt.Errorf("FacilityService.GetTreatmentsByFacilityID - no treatments at facility '%s': %w", facilityID, domain.ErrEntityNotFound)
	}
	return treatments, nil
}

// AssignDoctorToFacility records that the doctor works at the facility.
func (s *FacilityService) AssignDoctorToFacility(ctx context.Context, doctorID string, facilityID string) error {
	return s.doctorAssigner.Assign(ctx, doctorID, facilityID)
}

// AssignTreatmentToFacility records that the treatment is available at the facility.
func (s *FacilityService) AssignTreatmentToFacility(ctx context.Context, treatmentID string, facilityID string) error {
	return s.treatmentAssigner.Assign(ctx, treatmentID, facilityID)
}
