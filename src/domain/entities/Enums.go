package entities

import "strings"

type Gender string

const (
	GenderMale      Gender = "Male"
	GenderFemale    Gender = "Female"
	GenderNonBinary Gender = "NonBinary"
	GenderOther     Gender = "Other"
	GenderUnknown   Gender = "Unknown"
)

var genders = []Gender{GenderMale, GenderFemale, GenderNonBinary, GenderOther}

// ParseGender matches value case-insensitively and falls back to GenderUnknown.
func ParseGender(value string) Gender {
	return parseEnum(value, genders, GenderUnknown)
}

type FacilityType string

const (
	FacilityTypeHospital             FacilityType = "Hospital"
	FacilityTypeClinic               FacilityType = "Clinic"
	FacilityTypeLaboratory           FacilityType = "Laboratory"
	FacilityTypePharmacy             FacilityType = "Pharmacy"
	FacilityTypeRehabilitationCenter FacilityType = "RehabilitationCenter"
	FacilityTypeUnknown              FacilityType = "Unknown"
)

var facilityTypes = []FacilityType{
	FacilityTypeHospital,
	FacilityTypeClinic,
	FacilityTypeLaboratory,
	FacilityTypePharmacy,
	FacilityTypeRehabilitationCenter,
}

func ParseFacilityType(value string) FacilityType {
	return parseEnum(value, facilityTypes, FacilityTypeUnknown)
}

type ServiceType string

const (
	ServiceTypeEmergency       ServiceType = "Emergency"
	ServiceTypeGeneralPractice ServiceType = "GeneralPractice"
	ServiceTypeCardiology      ServiceType = "Cardiology"
	ServiceTypeRadiology       ServiceType = "Radiology"
	ServiceTypeSurgery         ServiceType = "Surgery"
	ServiceTypePediatrics      ServiceType = "Pediatrics"
	ServiceTypeLaboratory      ServiceType = "Laboratory"
	ServiceTypePharmacy        ServiceType = "Pharmacy"
	ServiceTypeUnknown         ServiceType = "Unknown"
)

var serviceTypes = []ServiceType{
	ServiceTypeEmergency,
	ServiceTypeGeneralPractice,
	ServiceTypeCardiology,
	ServiceTypeRadiology,
	ServiceTypeSurgery,
	ServiceTypePediatrics,
	ServiceTypeLaboratory,
	ServiceTypePharmacy,
}

func ParseServiceType(value string) ServiceType {
	return parseEnum(value, serviceTypes, ServiceTypeUnknown)
}

// Genders, FacilityTypes and ServiceTypes list the known members, without Unknown.
func Genders() []Gender { return append([]Gender(nil), genders...) }

func FacilityTypes() []FacilityType { return append([]FacilityType(nil), facilityTypes...) }

func ServiceTypes() []ServiceType { return append([]ServiceType(nil), serviceTypes...) }

func parseEnum[E ~string](value string, known []E, unknown E) E {
	value = strings.TrimSpace(value)
	if value == "" {
		return unknown
	}
	for _, candidate := range known {
		if strings.EqualFold(string(candidate), value) {
			return candidate
		}
	}
	return unknown
}
