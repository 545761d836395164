package mapper

import (
	"healthgraph/src/domain/entities"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j/dbtype"
)

func toBaseEntity(props map[string]any) entities.BaseEntity {
	return entities.BaseEntity{
		ID:        String(props, "id"),
		CreatedAt: Time(props, "createdAt"),
		UpdatedAt: Time(props, "updatedAt"),
		Active:    Bool(props, "active"),
	}
}

func ToDoctor(node dbtype.Node) entities.Doctor {
	props := node.Props
	return entities.Doctor{
		BaseEntity:     toBaseEntity(props),
		FirstName:      String(props, "firstName"),
		LastName:       String(props, "lastName"),
		StartYear:      String(props, "startYear"),
		Gender:         entities.ParseGender(String(props, "gender")),
		LicenseNumber:  String(props, "licenseNumber"),
		Specialization: String(props, "specialization"),
	}
}

func ToPatient(node dbtype.Node) entities.Patient {
	props := node.Props
	return entities.Patient{
		BaseEntity:       toBaseEntity(props),
		FirstName:        String(props, "firstName"),
		LastName:         String(props, "lastName"),
		DateOfBirth:      Date(props, "dateOfBirth"),
		Gender:           entities.ParseGender(String(props, "gender")),
		HealthCardNumber: String(props, "healthCardNumber"),
	}
}

// ToFacility maps the facility node alone. Contacts are attached by the caller.
func ToFacility(node dbtype.Node) entities.Facility {
	props := node.Props

	rawServices := StringSlice(props, "servicesOffered")
	services := make([]entities.ServiceType, 0, len(rawServices))
	for _, raw := range rawServices {
		services = append(services, entities.ParseServiceType(raw))
	}

	return entities.Facility{
		BaseEntity:      toBaseEntity(props),
		Name:            String(props, "name"),
		Type:            entities.ParseFacilityType(String(props, "type")),
		Capacity:        Int(props, "capacity"),
		ServicesOffered: services,
		Contacts:        []entities.ContactInfo{},
	}
}

func ToContactInfo(node dbtype.Node) entities.ContactInfo {
	props := node.Props
	return entities.ContactInfo{
		ID:    String(props, "id"),
		Type:  String(props, "type"),
		Value: String(props, "value"),
	}
}

func ToAbstractTreatment(node dbtype.Node) entities.AbstractTreatment {
	props := node.Props
	return entities.AbstractTreatment{
		BaseEntity: toBaseEntity(props),
		Type:       String(props, "type"),
		IsAbstract: Bool(props, "isabstract"),
	}
}

func ToTreatment(node dbtype.Node) entities.Treatment {
	props := node.Props
	return entities.Treatment{
		BaseEntity:     toBaseEntity(props),
		Type:           String(props, "type"),
		Date:           Time(props, "date"),
		DoctorID:       String(props, "doctorId"),
		PatientID:      String(props, "patientId"),
		FollowUpAction: String(props, "followUpAction"),
		IsAbstract:     Bool(props, "isabstract"),
	}
}

func ToHealthSnapshot(node dbtype.Node) entities.HealthSnapshot {
	props := node.Props
	return entities.HealthSnapshot{
		ID:                   String(props, "id"),
		CreatedAt:            Time(props, "createdAt"),
		Details:              String(props, "details"),
		Immutable:            Bool(props, "immutable"),
		HealthStateSummary:   String(props, "healthStateSummary"),
		HealthRecommendation: String(props, "healthRecommendation"),
	}
}
