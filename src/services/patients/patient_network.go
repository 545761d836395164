package patients

import (
	"context"
	"fmt"

	"healthgraph/src/domain"
)

// GetNetworkByPatientID returns the two-hop neighborhood of the patient.
func (s *PatientService) GetNetworkByPatientID(ctx context.Context, patientID string) (domain.Network, error) {
	network, err := s.patientRepository.GetNetworkByPatientID(ctx, patientID)
	if err != nil {
		return domain.Network{}, fmt.Errorf("PatientService.GetNetworkByPatientID - %w", err)
	}

	if network.IsEmpty() {
		return domain.Network{}, fmt.Errorf("PatientService.GetNetworkByPatientID - patient '%s': %w", patientID, domain.ErrEntityNotFound)
	}

	return network, nil
}

// AssignPatientToDoctor records that the doctor treats the patient (Patient -TREATED_BY-> Doctor).
func (s *PatientService) AssignPatientToDoctor(ctx context.Context, patientID string, doctorID string) error {
	return s.doctorAssigner.Assign(ctx, patientID, doctorID)
}
