package entities

import (
	"time"

	"github.com/google/uuid"
)

const TreatmentIDPrefix = "T-"

// AbstractTreatment is a catalog treatment a doctor can specialize in or a
// facility can offer. It shares the Treatment label with concrete treatments.
type AbstractTreatment struct {
	BaseEntity

	Type       string `json:"type"`
	IsAbstract bool   `json:"isabstract"`
}

// Treatment is a treatment given to one patient by one doctor.
type Treatment struct {
	BaseEntity

	Type           string          `json:"type"`
	Date           time.Time       `json:"date"`
	DoctorID       string          `json:"doctorId"`
	PatientID      string          `json:"patientId"`
	FollowUpAction string          `json:"followUpAction"`
	IsAbstract     bool            `json:"isabstract"`
	HealthSnapshot *HealthSnapshot `json:"healthSnapshot,omitempty"`
}

// HealthSnapshot is generated once per treatment and never modified afterwards.
type HealthSnapshot struct {
	ID                   string    `json:"id"`
	CreatedAt            time.Time `json:"createdAt"`
	Details              string    `json:"details"`
	Immutable            bool      `json:"immutable"`
	HealthStateSummary   string    `json:"healthStateSummary"`
	HealthRecommendation string    `json:"healthRecommendation"`
}

func NewTreatmentID() string {
	return TreatmentIDPrefix + uuid.NewString()
}
