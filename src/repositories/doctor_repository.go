package repositories

import (
	"context"

	"healthgraph/src/domain/entities"
	"healthgraph/src/infra/graphdb"
	"healthgraph/src/repositories/mapper"
)

type DoctorRepository struct {
	*GraphRepository[entities.Doctor]
}

func NewDoctorRepository(client *graphdb.GraphClient) *DoctorRepository {
	return &DoctorRepository{
		GraphRepository: NewGraphRepository(client, entities.KindDoctor, mapper.DoctorProperties, mapper.ToDoctor),
	}
}

// GetPatientsByDoctorID returns the active patients treated by the doctor.
func (r *DoctorRepository) GetPatientsByDoctorID(ctx context.Context, doctorID string) ([]entities.Patient, error) {
	return GetAllSourcesByCriteria(ctx, r.GraphRepository, entities.RelTreatedBy, entities.LabelDoctor, doctorID, mapper.ToPatient)
}

// GetTreatmentsByDoctorID returns the active treatments the doctor specializes in.
func (r *DoctorRepository) GetTreatmentsByDoctorID(ctx context.Context, doctorID string) ([]entities.Treatment, error) {
	return GetAllTargetsByCriteria(ctx, r.GraphRepository, entities.RelSpecializesInTreatment, entities.LabelDoctor, doctorID, mapper.ToTreatment)
}
