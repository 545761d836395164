package stubs

import (
	"time"

	"healthgraph/src/domain/entities"

	"github.com/brianvoe/gofakeit/v6"
)

type PatientStub struct {
	patient entities.Patient
}

func NewPatientStub() PatientStub {
	birth := gofakeit.DateRange(time.Date(1940, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC))

	patient := entities.Patient{
		BaseEntity:       entities.NewBaseEntity(entities.NewPatientID(), time.Now()),
		FirstName:        gofakeit.FirstName(),
		LastName:         gofakeit.LastName(),
		DateOfBirth:      time.Date(birth.Year(), birth.Month(), birth.Day(), 0, 0, 0, 0, time.UTC),
		Gender:           entities.GenderMale,
		HealthCardNumber: gofakeit.Regex(`HC-[0-9]{10}`),
	}

	return PatientStub{patient: patient}
}

func (ps PatientStub) WithID(id string) PatientStub {
	ps.patient.ID = id
	return ps
}

func (ps PatientStub) WithFirstName(firstName string) PatientStub {
	ps.patient.FirstName = firstName
	return ps
}

func (ps PatientStub) WithDateOfBirth(dateOfBirth time.Time) PatientStub {
	ps.patient.DateOfBirth = dateOfBirth
	return ps
}

func (ps PatientStub) Inactive() PatientStub {
	ps.patient.Active = false
	return ps
}

func (ps PatientStub) Get() entities.Patient {
	return ps.patient
}
