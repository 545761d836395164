package stubs

import (
	"time"

	"healthgraph/src/domain/entities"

	"github.com/brianvoe/gofakeit/v6"
)

type FacilityStub struct {
	facility entities.Facility
}

func NewFacilityStub() FacilityStub {
	facility := entities.Facility{
		BaseEntity:      entities.NewBaseEntity(gofakeit.UUID(), time.Now()),
		Name:            gofakeit.Company() + " Clinic",
		Type:            entities.FacilityTypeClinic,
		Capacity:        gofakeit.Number(10, 500),
		ServicesOffered: []entities.ServiceType{entities.ServiceTypeGeneralPractice, entities.ServiceTypeRadiology},
		Contacts: []entities.ContactInfo{
			{ID: gofakeit.UUID(), Type: "phone", Value: gofakeit.Phone()},
		},
	}

	return FacilityStub{facility: facility}
}

func (fs FacilityStub) WithID(id string) FacilityStub {
	fs.facility.ID = id
	return fs
}

func (fs FacilityStub) WithContacts(contacts ...entities.ContactInfo) FacilityStub {
	fs.facility.Contacts = contacts
	return fs
}

func (fs FacilityStub) Get() entities.Facility {
	return fs.facility
}
