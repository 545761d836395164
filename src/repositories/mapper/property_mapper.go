package mapper

import (
	"healthgraph/src/domain/entities"
)

// Property maps always carry every key of the entity's schema. Timestamps are
// written as zoned datetimes in UTC, dateOfBirth as a calendar date.

func baseProperties(b entities.BaseEntity) map[string]any {
	return map[string]any{
		"id":        b.ID,
		"createdAt": b.CreatedAt.UTC(),
		"updatedAt": b.UpdatedAt.UTC(),
		"active":    b.Active,
	}
}

func DoctorProperties(d entities.Doctor) map[string]any {
	props := baseProperties(d.BaseEntity)
	props["firstName"] = d.FirstName
	props["lastName"] = d.LastName
	props["startYear"] = d.StartYear
	props["gender"] = string(d.Gender)
	props["licenseNumber"] = d.LicenseNumber
	props["specialization"] = d.Specialization
	return props
}

func PatientProperties(p entities.Patient) map[string]any {
	props := baseProperties(p.BaseEntity)
	props["firstName"] = p.FirstName
	props["lastName"] = p.LastName
	if p.DateOfBirth.IsZero() {
		props["dateOfBirth"] = nil
	} else {
		props["dateOfBirth"] = DateValue(p.DateOfBirth)
	}
	props["gender"] = string(p.Gender)
	props["healthCardNumber"] = p.HealthCardNumber
	return props
}

// FacilityProperties leaves contacts out; they are separate ContactInfo nodes.
func FacilityProperties(f entities.Facility) map[string]any {
	services := make([]string, 0, len(f.ServicesOffered))
	for _, service := range f.ServicesOffered {
		services = append(services, string(service))
	}

	props := baseProperties(f.BaseEntity)
	props["name"] = f.Name
	props["type"] = string(f.Type)
	props["capacity"] = int64(f.Capacity)
	props["servicesOffered"] = services
	return props
}

func ContactInfoProperties(c entities.ContactInfo) map[string]any {
	return map[string]any{
		"id":    c.ID,
		"type":  c.Type,
		"value": c.Value,
	}
}

func AbstractTreatmentProperties(t entities.AbstractTreatment) map[string]any {
	props := baseProperties(t.BaseEntity)
	props["type"] = t.Type
	props["isabstract"] = t.IsAbstract
	return props
}

// TreatmentProperties leaves the snapshot out; it is a separate node.
func TreatmentProperties(t entities.Treatment) map[string]any {
	props := baseProperties(t.BaseEntity)
	props["type"] = t.Type
	props["date"] = t.Date.UTC()
	props["doctorId"] = t.DoctorID
	props["patientId"] = t.PatientID
	props["followUpAction"] = t.FollowUpAction
	props["isabstract"] = t.IsAbstract
	return props
}

func HealthSnapshotProperties(hs entities.HealthSnapshot) map[string]any {
	return map[string]any{
		"id":                   hs.ID,
		"createdAt":            hs.CreatedAt.UTC(),
		"details":              hs.Details,
		"immutable":            hs.Immutable,
		"healthStateSummary":   hs.HealthStateSummary,
		"healthRecommendation": hs.HealthRecommendation,
	}
}
