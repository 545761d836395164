package doctors

import (
	"context"
	"fmt"

	"healthgraph/src/domain/entities"
)

// GetPatientsByDoctorID lists the active patients with a TREATED_BY relationship to the doctor.
func (s *DoctorService) GetPatientsByDoctorID(ctx context.Context, doctorID string) ([]entities.Patient, error) {
	patients, err := s.doctorRepository.GetPatientsByDoctorID(ctx, doctorID)
	if err != nil {
		return nil, fmt.Errorf("DoctorService.GetPatientsByDoctorID - %w", err)
	}
	return patients, nil
}

// GetTreatmentsByDoctorID lists the active treatments the doctor specializes in.
func (s *DoctorService) GetTreatmentsByDoctorID(ctx context.Context, doctorID string) ([]entities.Treatment, error) {
	treatments, err := s.doctorRepository.GetTreatmentsByDoctorID(ctx, doctorID)
	if err != nil {
		return nil, fmt.Errorf("DoctorService.GetTreatmentsByDoctorID - %w", err)
	}
	return treatments, nil
}

func (s *DoctorService) AssignTreatmentToDoctor(ctx context.Context, doctorID string, treatmentID string) error {
	return s.treatmentAssigner.Assign(ctx, doctorID, treatmentID)
}
