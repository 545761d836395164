package stubs

import (
	"fmt"
	"time"

	"healthgraph/src/domain/entities"

	"github.com/brianvoe/gofakeit/v6"
)

type DoctorStub struct {
	doctor entities.Doctor
}

func NewDoctorStub() DoctorStub {
	doctor := entities.Doctor{
		BaseEntity:     entities.NewBaseEntity(gofakeit.UUID(), time.Now()),
		FirstName:      gofakeit.FirstName(),
		LastName:       gofakeit.LastName(),
		StartYear:      fmt.Sprintf("%d", gofakeit.Number(1980, 2024)),
		Gender:         entities.GenderFemale,
		LicenseNumber:  gofakeit.Regex(`LIC-[0-9]{8}`),
		Specialization: gofakeit.RandomString([]string{"Cardiology", "Neurology", "Oncology"}),
	}

	return DoctorStub{doctor: doctor}
}

func (ds DoctorStub) WithID(id string) DoctorStub {
	ds.doctor.ID = id
	return ds
}

func (ds DoctorStub) WithGender(gender entities.Gender) DoctorStub {
	ds.doctor.Gender = gender
	return ds
}

func (ds DoctorStub) WithSpecialization(specialization string) DoctorStub {
	ds.doctor.Specialization = specialization
	return ds
}

func (ds DoctorStub) Inactive() DoctorStub {
	ds.doctor.Active = false
	return ds
}

func (ds DoctorStub) Get() entities.Doctor {
	return ds.doctor
}
