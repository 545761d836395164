package stubs

import (
	"time"

	"healthgraph/src/domain/entities"

	"github.com/brianvoe/gofakeit/v6"
)

type TreatmentStub struct {
	treatment entities.Treatment
}

func NewTreatmentStub() TreatmentStub {
	now := time.Now().UTC()

	treatment := entities.Treatment{
		BaseEntity:     entities.NewBaseEntity(entities.NewTreatmentID(), now),
		Type:           gofakeit.RandomString([]string{"Physiotherapy", "Dialysis", "Vaccination"}),
		Date:           now,
		FollowUpAction: gofakeit.Sentence(6),
		HealthSnapshot: &entities.HealthSnapshot{
			ID:                   gofakeit.UUID(),
			CreatedAt:            now,
			Immutable:            true,
			HealthStateSummary:   gofakeit.Sentence(8),
			HealthRecommendation: gofakeit.Sentence(8),
		},
	}
	treatment.HealthSnapshot.Details = treatment.FollowUpAction

	return TreatmentStub{treatment: treatment}
}

func (ts TreatmentStub) For(patientID string, doctorID string) TreatmentStub {
	ts.treatment.PatientID = patientID
	ts.treatment.DoctorID = doctorID
	return ts
}

// CreatedAt moves both the treatment and its snapshot to the given instant.
func (ts TreatmentStub) CreatedAt(at time.Time) TreatmentStub {
	snapshot := *ts.treatment.HealthSnapshot
	snapshot.CreatedAt = at

	ts.treatment.CreatedAt = at
	ts.treatment.Date = at
	ts.treatment.HealthSnapshot = &snapshot
	return ts
}

func (ts TreatmentStub) WithoutSnapshot() TreatmentStub {
	ts.treatment.HealthSnapshot = nil
	return ts
}

func (ts TreatmentStub) Get() entities.Treatment {
	return ts.treatment
}

func NewAbstractTreatmentStub() entities.AbstractTreatment {
	return entities.AbstractTreatment{
		BaseEntity: entities.NewBaseEntity(entities.NewTreatmentID(), time.Now()),
		Type:       gofakeit.RandomString([]string{"Chemotherapy", "Counseling", "Radiotherapy"}),
		IsAbstract: true,
	}
}
