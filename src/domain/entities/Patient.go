package entities

import (
	"time"

	"github.com/google/uuid"
)

// PatientIDPrefix marks patient ids so they are recognisable across the graph.
const PatientIDPrefix = "P-"

type Patient struct {
	BaseEntity

	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	// DateOfBirth is a calendar date, stored without time of day.
	DateOfBirth      time.Time `json:"dateOfBirth"`
	Gender           Gender    `json:"gender"`
	HealthCardNumber string    `json:"healthCardNumber"`
}

func NewPatientID() string {
	return PatientIDPrefix + uuid.NewString()
}
