package entities

import (
	"fmt"
)

// Label is the node label attached to an entity kind in the graph.
type Label string

const (
	LabelDoctor         Label = "Doctor"
	LabelPatient        Label = "Patient"
	LabelFacility       Label = "Facility"
	LabelTreatment      Label = "Treatment"
	LabelHealthSnapshot Label = "HealthSnapshot"
	LabelContactInfo    Label = "ContactInfo"
)

// EntityKind is the type tag used to look a label up in the registry.
type EntityKind string

const (
	KindDoctor         EntityKind = "doctor"
	KindPatient        EntityKind = "patient"
	KindFacility       EntityKind = "facility"
	KindTreatment      EntityKind = "treatment"
	KindHealthSnapshot EntityKind = "health_snapshot"
	KindContactInfo    EntityKind = "contact_info"
)

var labelRegistry = map[EntityKind]Label{
	KindDoctor:         LabelDoctor,
	KindPatient:        LabelPatient,
	KindFacility:       LabelFacility,
	KindTreatment:      LabelTreatment,
	KindHealthSnapshot: LabelHealthSnapshot,
	KindContactInfo:    LabelContactInfo,
}

// LabelFor resolves the node label registered for kind.
func LabelFor(kind EntityKind) (Label, error) {
	label, ok := labelRegistry[kind]
	if !ok {
		return "", fmt.Errorf("no label registered for entity kind %q", kind)
	}
	return label, nil
}

// MustLabelFor is LabelFor for compiled-in kinds. It panics on an unregistered kind.
func MustLabelFor(kind EntityKind) Label {
	label, err := LabelFor(kind)
	if err != nil {
		panic(err)
	}
	return label
}

// IsKnown reports whether l is one of the registered labels.
func (l Label) IsKnown() bool {
	for _, registered := range labelRegistry {
		if registered == l {
			return true
		}
	}
	return false
}
