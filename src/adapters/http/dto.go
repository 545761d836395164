package http

import (
	"regexp"
	"time"

	"healthgraph/src/domain"
	"healthgraph/src/domain/entities"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const dateLayout = "2006-01-02"

var yearPattern = regexp.MustCompile(`^\d{4}$`)

// required applies validation.Required only to create requests; updates are partial.
func required(partial bool) validation.Rule {
	return validation.When(!partial, validation.Required)
}

// ############################################################
// ########################## DOCTOR ##########################
// ############################################################

type DoctorRequest struct {
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	StartYear      string `json:"startYear"`
	Gender         string `json:"gender"`
	LicenseNumber  string `json:"licenseNumber"`
	Specialization string `json:"specialization"`

	partial bool
}

func (r *DoctorRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.FirstName, required(r.partial), validation.Length(1, 100)),
		validation.Field(&r.LastName, required(r.partial), validation.Length(1, 100)),
		validation.Field(&r.StartYear, validation.Match(yearPattern)),
		validation.Field(&r.LicenseNumber, required(r.partial), validation.Length(1, 50)),
		validation.Field(&r.Specialization, validation.Length(1, 100)),
	)
}

// ToEntity leaves Gender empty when it was not sent so that updates do not overwrite it.
func (r *DoctorRequest) ToEntity(id string) entities.Doctor {
	doctor := entities.Doctor{
		BaseEntity:     entities.BaseEntity{ID: id},
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		StartYear:      r.StartYear,
		LicenseNumber:  r.LicenseNumber,
		Specialization: r.Specialization,
	}
	if r.Gender != "" {
		doctor.Gender = entities.ParseGender(r.Gender)
	}
	return doctor
}

// ############################################################
// ########################## PATIENT #########################
// ############################################################

type PatientRequest struct {
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	DateOfBirth      string `json:"dateOfBirth"`
	Gender           string `json:"gender"`
	HealthCardNumber string `json:"healthCardNumber"`

	partial bool
}

func (r *PatientRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.FirstName, required(r.partial), validation.Length(1, 100)),
		validation.Field(&r.LastName, required(r.partial), validation.Length(1, 100)),
		validation.Field(&r.DateOfBirth, validation.Date(dateLayout).Max(time.Now())),
		validation.Field(&r.HealthCardNumber, validation.Length(1, 50)),
	)
}

func (r *PatientRequest) ToEntity(id string) entities.Patient {
	patient := entities.Patient{
		BaseEntity:       entities.BaseEntity{ID: id},
		FirstName:        r.FirstName,
		LastName:         r.LastName,
		HealthCardNumber: r.HealthCardNumber,
	}
	if r.Gender != "" {
		patient.Gender = entities.ParseGender(r.Gender)
	}
	if dateOfBirth, err := time.Parse(dateLayout, r.DateOfBirth); err == nil {
		patient.DateOfBirth = dateOfBirth
	}
	return patient
}

// ############################################################
// ######################### FACILITY #########################
// ############################################################

type ContactRequest struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

func (r ContactRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Type, validation.Required),
		validation.Field(&r.Value, validation.Required),
	)
}

type FacilityRequest struct {
	Name            string           `json:"name"`
	Type            string           `json:"type"`
	Capacity        int              `json:"capacity"`
	ServicesOffered []string         `json:"servicesOffered"`
	Contacts        []ContactRequest `json:"contacts"`

	partial bool
}

func (r *FacilityRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name, required(r.partial), validation.Length(1, 200)),
		validation.Field(&r.Type, required(r.partial)),
		validation.Field(&r.Capacity, validation.Min(0)),
		validation.Field(&r.Contacts),
	)
}

func (r *FacilityRequest) ToEntity(id string) entities.Facility {
	facility := entities.Facility{
		BaseEntity: entities.BaseEntity{ID: id},
		Name:       r.Name,
		Capacity:   r.Capacity,
	}
	if r.Type != "" {
		facility.Type = entities.ParseFacilityType(r.Type)
	}
	for _, service := range r.ServicesOffered {
		facility.ServicesOffered = append(facility.ServicesOffered, entities.ParseServiceType(service))
	}
	for _, contact := range r.Contacts {
		facility.Contacts = append(facility.Contacts, entities.ContactInfo{Type: contact.Type, Value: contact.Value})
	}
	return facility
}

// ############################################################
// ######################## TREATMENT #########################
// ############################################################

type CreateTreatmentRequest struct {
	PatientID      string `json:"patientId"`
	DoctorID       string `json:"doctorId"`
	Type           string `json:"type"`
	FollowUpAction string `json:"followUpAction"`
}

func (r *CreateTreatmentRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.PatientID, validation.Required),
		validation.Field(&r.DoctorID, validation.Required),
		validation.Field(&r.Type, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.FollowUpAction, validation.Length(0, 2000)),
	)
}

type CreateAbstractTreatmentRequest struct {
	Type string `json:"type"`
}

func (r *CreateAbstractTreatmentRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Type, validation.Required, validation.Length(1, 200)),
	)
}

// ############################################################
// ########################## NETWORK #########################
// ############################################################

type NetworkNodeDTO struct {
	ElementID  string         `json:"elementId"`
	Labels     []string       `json:"labels"`
	Properties map[string]any `json:"properties"`
}

type NetworkEdgeDTO struct {
	ElementID          string `json:"elementId"`
	Type               string `json:"type"`
	StartNodeElementID string `json:"startNodeElementId"`
	EndNodeElementID   string `json:"endNodeElementId"`
}

type NetworkDTO struct {
	Nodes []NetworkNodeDTO `json:"nodes"`
	Edges []NetworkEdgeDTO `json:"edges"`
}

func MapNetworkToResponse(network domain.Network) NetworkDTO {
	response := NetworkDTO{
		Nodes: make([]NetworkNodeDTO, 0, len(network.Nodes)),
		Edges: make([]NetworkEdgeDTO, 0, len(network.Edges)),
	}

	for _, node := range network.Nodes {
		response.Nodes = append(response.Nodes, NetworkNodeDTO{
			ElementID:  node.ElementID,
			Labels:     node.Labels,
			Properties: node.Properties,
		})
	}

	for _, edge := range network.Edges {
		response.Edges = append(response.Edges, NetworkEdgeDTO{
			ElementID:          edge.ElementID,
			Type:               edge.Type,
			StartNodeElementID: edge.StartElementID,
			EndNodeElementID:   edge.EndElementID,
		})
	}

	return response
}
