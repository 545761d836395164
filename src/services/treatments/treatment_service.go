package treatments

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"healthgraph/src/domain"
	"healthgraph/src/domain/entities"
	"healthgraph/src/services"
	"healthgraph/src/services/events"
	"healthgraph/src/services/insights"
	"healthgraph/src/services/relationships"

	"github.com/google/uuid"
)

// TreatmentStore is implemented by repositories.TreatmentRepository.
type TreatmentStore interface {
	services.Store[entities.AbstractTreatment]

	GetTreatmentByID(ctx context.Context, treatmentID string) (*entities.Treatment, error)
	GetTreatmentsByPatientID(ctx context.Context, patientID string) ([]entities.Treatment, error)
	CreateTreatment(ctx context.Context, treatment entities.Treatment) (*entities.Treatment, error)
	GetLatestHealthSnapshotByPatientID(ctx context.Context, patientID string) (*entities.HealthSnapshot, error)
	GetHealthSnapshotTimelineByPatientID(ctx context.Context, patientID string) ([]entities.HealthSnapshot, error)
}

type TreatmentService struct {
	logger    *slog.Logger
	crud      *services.EntityService[entities.AbstractTreatment]
	store     TreatmentStore
	patients  relationships.Endpoint
	doctors   relationships.Endpoint
	generator insights.Generator
}

func NewTreatmentService(
	logger *slog.Logger,
	store TreatmentStore,
	patients relationships.Endpoint,
	doctors relationships.Endpoint,
	generator insights.Generator,
	publisher events.Publisher,
) *TreatmentService {
	return &TreatmentService{
		logger:    logger,
		crud:      services.NewEntityService[entities.AbstractTreatment](logger, store, publisher),
		store:     store,
		patients:  patients,
		doctors:   doctors,
		generator: generator,
	}
}

func (s *TreatmentService) GetTreatmentByID(ctx context.Context, treatmentID string) (entities.Treatment, error) {
	treatment, err := s.store.GetTreatmentByID(ctx, treatmentID)
	if err != nil {
		return entities.Treatment{}, fmt.Errorf("TreatmentService.GetTreatmentByID - %w", err)
	}
	if treatment == nil {
		return entities.Treatment{}, fmt.Errorf("TreatmentService.GetTreatmentByID - treatment '%s': %w", treatmentID, domain.ErrEntityNotFound)
	}
	return *treatment, nil
}

func (s *TreatmentService) GetAbstractTreatmentByID(ctx context.Context, treatmentID string) (entities.AbstractTreatment, error) {
	return s.crud.GetByID(ctx, treatmentID)
}

// CreateAbstractTreatment adds a catalog treatment that doctors and facilities can be linked to.
func (s *TreatmentService) CreateAbstractTreatment(ctx context.Context, treatmentType string) (entities.AbstractTreatment, error) {
	if strings.TrimSpace(treatmentType) == "" {
		return entities.AbstractTreatment{}, fmt.Errorf("TreatmentService.CreateAbstractTreatment - treatment type must not be empty: %w", domain.ErrValidation)
	}

	return s.crud.Create(ctx, entities.AbstractTreatment{
		BaseEntity: entities.NewBaseEntity(entities.NewTreatmentID(), time.Now()),
		Type:       treatmentType,
		IsAbstract: true,
	})
}

func (s *TreatmentService) GetTreatmentsByPatientID(ctx context.Context, patientID string) ([]entities.Treatment, error) {
	treatments, err := s.store.GetTreatmentsByPatientID(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("TreatmentService.GetTreatmentsByPatientID - %w", err)
	}
	return treatments, nil
}

// CreateTreatment records a treatment given by the doctor to the patient along
// with a health snapshot whose summary and recommendation come from the insight
// generator. A generator failure aborts the creation before anything is written.
func (s *TreatmentService) CreateTreatment(
	ctx context.Context,
	patientID string,
	doctorID string,
	treatmentType string,
	followUpAction string,
) (entities.Treatment, error) {
	if strings.TrimSpace(patientID) == "" || strings.TrimSpace(doctorID) == "" {
		return entities.Treatment{}, fmt.Errorf("TreatmentService.CreateTreatment - patient and doctor ids are required: %w", domain.ErrValidation)
	}
	if strings.TrimSpace(treatmentType) == "" {
		return entities.Treatment{}, fmt.Errorf("TreatmentService.CreateTreatment - treatment type must not be empty: %w", domain.ErrValidation)
	}

	if err := s.ensureExists(ctx, s.patients, patientID); err != nil {
		return entities.Treatment{}, err
	}
	if err := s.ensureExists(ctx, s.doctors, doctorID); err != nil {
		return entities.Treatment{}, err
	}

	now := time.Now().UTC()
	treatment := entities.Treatment{
		BaseEntity:     entities.NewBaseEntity(entities.NewTreatmentID(), now),
		Type:           treatmentType,
		Date:           now,
		DoctorID:       doctorID,
		PatientID:      patientID,
		FollowUpAction: followUpAction,
	}

	insight, err := s.generator.Generate(ctx, patientID, treatment, followUpAction)
	if err != nil {
		return entities.Treatment{}, fmt.Errorf("TreatmentService.CreateTreatment - failed to generate health insight: %w", err)
	}

	treatment.HealthSnapshot = &entities.HealthSnapshot{
		ID:                   uuid.NewString(),
		CreatedAt:            now,
		Details:              followUpAction,
		Immutable:            true,
		HealthStateSummary:   insight.Summary,
		HealthRecommendation: insight.Recommendation,
	}

	created, err := s.store.CreateTreatment(ctx, treatment)
	if err != nil {
		return entities.Treatment{}, fmt.Errorf("TreatmentService.CreateTreatment - %w", err)
	}

	s.logger.Info("Treatment created",
		"treatment_id", created.ID,
		"patient_id", patientID,
		"doctor_id", doctorID)

	s.crud.Publish(ctx, events.NewDomainEvent(events.EventTreatmentCreated, string(entities.LabelTreatment), created.ID, map[string]any{
		"patient_id": patientID,
		"doctor_id":  doctorID,
		"type":       treatmentType,
	}))

	return *created, nil
}

// GetLatestHealthSnapshot fails with domain.ErrEntityNotFound when the patient has no snapshot.
func (s *TreatmentService) GetLatestHealthSnapshot(ctx context.Context, patientID string) (entities.HealthSnapshot, error) {
	snapshot, err := s.store.GetLatestHealthSnapshotByPatientID(ctx, patientID)
	if err != nil {
		return entities.HealthSnapshot{}, fmt.Errorf("TreatmentService.GetLatestHealthSnapshot - %w", err)
	}
	if snapshot == nil {
		return entities.HealthSnapshot{}, fmt.Errorf("TreatmentService.GetLatestHealthSnapshot - no snapshot for patient '%s': %w", patientID, domain.ErrEntityNotFound)
	}
	return *snapshot, nil
}

func (s *TreatmentService) GetHealthSnapshotTimeline(ctx context.Context, patientID string) ([]entities.HealthSnapshot, error) {
	snapshots, err := s.store.GetHealthSnapshotTimelineByPatientID(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("TreatmentService.GetHealthSnapshotTimeline - %w", err)
	}
	return snapshots, nil
}

func (s *TreatmentService) ensureExists(ctx context.Context, endpoint relationships.Endpoint, id string) error {
	exists, err := endpoint.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("TreatmentService.CreateTreatment - failed to look up %s '%s': %w", endpoint.Label(), id, err)
	}
	if !exists {
		return fmt.Errorf("TreatmentService.CreateTreatment - %s '%s' not found: %w", endpoint.Label(), id, domain.ErrEntityNotFound)
	}
	return nil
}
