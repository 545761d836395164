package http

import (
	"context"

	"healthgraph/src/domain"
	"healthgraph/src/domain/entities"
)

type DoctorService interface {
	GetDoctors(ctx context.Context) ([]entities.Doctor, error)
	GetDoctorByID(ctx context.Context, id string) (entities.Doctor, error)
	CreateDoctor(ctx context.Context, doctor entities.Doctor) (entities.Doctor, error)
	UpdateDoctor(ctx context.Context, patch entities.Doctor) (entities.Doctor, error)
	DeleteDoctor(ctx context.Context, id string) error
	GetPatientsByDoctorID(ctx context.Context, doctorID string) ([]entities.Patient, error)
	GetTreatmentsByDoctorID(ctx context.Context, doctorID string) ([]entities.Treatment, error)
	AssignTreatmentToDoctor(ctx context.Context, doctorID string, treatmentID string) error
}

type PatientService interface {
	GetPatients(ctx context.Context) ([]entities.Patient, error)
	GetPatientByID(ctx context.Context, id string) (entities.Patient, error)
	CreatePatient(ctx context.Context, patient entities.Patient) (entities.Patient, error)
	UpdatePatient(ctx context.Context, patch entities.Patient) (entities.Patient, error)
	DeletePatient(ctx context.Context, id string) error
	GetNetworkByPatientID(ctx context.Context, patientID string) (domain.Network, error)
	AssignPatientToDoctor(ctx context.Context, patientID string, doctorID string) error
}

type FacilityService interface {
	GetFacilities(ctx context.Context) ([]entities.Facility, error)
	GetFacilityByID(ctx context.Context, id string) (entities.Facility, error)
	CreateFacility(ctx context.Context, facility entities.Facility) (entities.Facility, error)
	UpdateFacility(ctx context.Context, patch entities.Facility) (entities.Facility, error)
	DeleteFacility(ctx context.Context, id string) error
	GetDoctorsByFacilityID(ctx context.Context, facilityID string) ([]entities.Doctor, error)
	GetTreatmentsByFacilityID(ctx context.Context, facilityID string) ([]entities.AbstractTreatment, error)
	AssignDoctorToFacility(ctx context.Context, doctorID string, facilityID string) error
	AssignTreatmentToFacility(ctx context.Context, treatmentID string, facilityID string) error
}

type TreatmentService interface {
	GetTreatmentByID(ctx context.Context, treatmentID string) (entities.Treatment, error)
	GetAbstractTreatmentByID(ctx context.Context, treatmentID string) (entities.AbstractTreatment, error)
	CreateAbstractTreatment(ctx context.Context, treatmentType string) (entities.AbstractTreatment, error)
	GetTreatmentsByPatientID(ctx context.Context, patientID string) ([]entities.Treatment, error)
	CreateTreatment(ctx context.Context, patientID string, doctorID string, treatmentType string, followUpAction string) (entities.Treatment, error)
	GetLatestHealthSnapshot(ctx context.Context, patientID string) (entities.HealthSnapshot, error)
	GetHealthSnapshotTimeline(ctx context.Context, patientID string) ([]entities.HealthSnapshot, error)
}

// HealthChecker reports whether the graph store is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}
