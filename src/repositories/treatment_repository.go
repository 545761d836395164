package repositories

import (
	"context"
	"fmt"

	"healthgraph/src/domain"
	"healthgraph/src/domain/entities"
	"healthgraph/src/infra/graphdb"
	"healthgraph/src/repositories/mapper"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// TreatmentRepository serves both catalog (abstract) treatments, through the
// embedded generic repository, and concrete treatments with their snapshots.
type TreatmentRepository struct {
	*GraphRepository[entities.AbstractTreatment]
}

func NewTreatmentRepository(client *graphdb.GraphClient) *TreatmentRepository {
	return &TreatmentRepository{
		GraphRepository: NewGraphRepository(client, entities.KindTreatment, mapper.AbstractTreatmentProperties, mapper.ToAbstractTreatment),
	}
}

var treatmentWithSnapshotQuery = fmt.Sprintf(`
	OPTIONAL MATCH (d:%s)-[:%s]->(t)
	OPTIONAL MATCH (t)-[:%s]->(hs:%s)
	RETURN t, d, hs
`, entities.LabelDoctor, entities.RelIssues, entities.RelGenerates, entities.LabelHealthSnapshot)

// GetTreatmentByID returns the treatment with its issuing doctor id and its
// snapshot when present, or nil when no treatment has the id.
func (r *TreatmentRepository) GetTreatmentByID(ctx context.Context, treatmentID string) (*entities.Treatment, error) {
	query := fmt.Sprintf(`MATCH (t:%s {id: $treatmentId})`, entities.LabelTreatment) + treatmentWithSnapshotQuery

	records, err := runRead(ctx, r.client, query, map[string]any{"treatmentId": treatmentID})
	if err != nil {
		return nil, fmt.Errorf("TreatmentRepository.GetTreatmentByID - failed to query treatment '%s': %w", treatmentID, err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	treatment, ok := treatmentFrom(records[0])
	if !ok {
		return nil, nil
	}

	return &treatment, nil
}

// GetAbstractTreatmentByID returns any node labelled Treatment as a catalog
// treatment, or nil when absent.
func (r *TreatmentRepository) GetAbstractTreatmentByID(ctx context.Context, treatmentID string) (*entities.AbstractTreatment, error) {
	return r.GetByID(ctx, treatmentID)
}

func (r *TreatmentRepository) CreateAbstractTreatment(ctx context.Context, treatment entities.AbstractTreatment) error {
	return r.Create(ctx, treatment)
}

// GetTreatmentsByPatientID returns the treatments the patient undergoes, with snapshots.
func (r *TreatmentRepository) GetTreatmentsByPatientID(ctx context.Context, patientID string) ([]entities.Treatment, error) {
	query := fmt.Sprintf(`MATCH (:%s {id: $patientId})-[:%s]->(t:%s)`,
		entities.LabelPatient, entities.RelUndergoes, entities.LabelTreatment) + treatmentWithSnapshotQuery

	records, err := runRead(ctx, r.client, query, map[string]any{"patientId": patientID})
	if err != nil {
		return nil, fmt.Errorf("TreatmentRepository.GetTreatmentsByPatientID - failed to query treatments of patient '%s': %w", patientID, err)
	}

	treatments := make([]entities.Treatment, 0, len(records))
	for _, record := range records {
		if treatment, ok := treatmentFrom(record); ok {
			treatments = append(treatments, treatment)
		}
	}

	return treatments, nil
}

// CreateTreatment writes the treatment, its snapshot, and the UNDERGOES, ISSUES
// and GENERATES relationships in one statement. It fails with
// domain.ErrEntityNotFound when the patient or the doctor is missing.
func (r *TreatmentRepository) CreateTreatment(ctx context.Context, treatment entities.Treatment) (*entities.Treatment, error) {
	if treatment.HealthSnapshot == nil {
		return nil, fmt.Errorf("TreatmentRepository.CreateTreatment - treatment '%s' has no health snapshot: %w", treatment.ID, domain.ErrValidation)
	}

	query := fmt.Sprintf(`
		MATCH (p:%s {id: $patientId})
		MATCH (d:%s {id: $doctorId})
		CREATE (t:%s $treatment)
		CREATE (p)-[:%s]->(t)
		CREATE (d)-[:%s]->(t)
		CREATE (hs:%s $snapshot)
		CREATE (t)-[:%s]->(hs)
		RETURN t, d, hs
	`,
		entities.LabelPatient,
		entities.LabelDoctor,
		entities.LabelTreatment,
		entities.RelUndergoes,
		entities.RelIssues,
		entities.LabelHealthSnapshot,
		entities.RelGenerates,
	)

	records, err := runWrite(ctx, r.client, query, map[string]any{
		"patientId": treatment.PatientID,
		"doctorId":  treatment.DoctorID,
		"treatment": mapper.TreatmentProperties(treatment),
		"snapshot":  mapper.HealthSnapshotProperties(*treatment.HealthSnapshot),
	})
	if err != nil {
		return nil, fmt.Errorf("TreatmentRepository.CreateTreatment - failed to create treatment '%s': %w", treatment.ID, err)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("TreatmentRepository.CreateTreatment - patient '%s' or doctor '%s' does not exist: %w",
			treatment.PatientID, treatment.DoctorID, domain.ErrEntityNotFound)
	}

	created, _ := treatmentFrom(records[0])
	return &created, nil
}

// GetLatestHealthSnapshotByPatientID returns the most recent snapshot generated
// by the patient's treatments, or nil when there is none.
func (r *TreatmentRepository) GetLatestHealthSnapshotByPatientID(ctx context.Context, patientID string) (*entities.HealthSnapshot, error) {
	snapshots, err := r.querySnapshots(ctx, patientID, "DESC LIMIT 1")
	if err != nil {
		return nil, fmt.Errorf("TreatmentRepository.GetLatestHealthSnapshotByPatientID - %w", err)
	}

	if len(snapshots) == 0 {
		return nil, nil
	}

	return &snapshots[0], nil
}

// GetHealthSnapshotTimelineByPatientID returns the patient's snapshots, oldest first.
func (r *TreatmentRepository) GetHealthSnapshotTimelineByPatientID(ctx context.Context, patientID string) ([]entities.HealthSnapshot, error) {
	snapshots, err := r.querySnapshots(ctx, patientID, "ASC")
	if err != nil {
		return nil, fmt.Errorf("TreatmentRepository.GetHealthSnapshotTimelineByPatientID - %w", err)
	}

	return snapshots, nil
}

func (r *TreatmentRepository) querySnapshots(ctx context.Context, patientID string, ordering string) ([]entities.HealthSnapshot, error) {
	query := fmt.Sprintf(`
		MATCH (:%s {id: $patientId})-[:%s]->(t:%s)
		MATCH (t)-[:%s]->(hs:%s)
		RETURN hs
		ORDER BY hs.createdAt %s
	`,
		entities.LabelPatient,
		entities.RelUndergoes,
		entities.LabelTreatment,
		entities.RelGenerates,
		entities.LabelHealthSnapshot,
		ordering,
	)

	records, err := runRead(ctx, r.client, query, map[string]any{"patientId": patientID})
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshots of patient '%s': %w", patientID, err)
	}

	return mapRecords(records, "hs", mapper.ToHealthSnapshot), nil
}

func treatmentFrom(record *neo4j.Record) (entities.Treatment, bool) {
	node, ok := nodeFrom(record, "t")
	if !ok {
		return entities.Treatment{}, false
	}

	treatment := mapper.ToTreatment(node)

	if doctorNode, ok := nodeFrom(record, "d"); ok && treatment.DoctorID == "" {
		treatment.DoctorID = mapper.String(doctorNode.Props, "id")
	}

	if snapshotNode, ok := nodeFrom(record, "hs"); ok {
		snapshot := mapper.ToHealthSnapshot(snapshotNode)
		treatment.HealthSnapshot = &snapshot
	}

	return treatment, true
}
