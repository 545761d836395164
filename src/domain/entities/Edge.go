package entities

// RelationshipType is the type of a directed edge between two nodes.
// Edges carry no properties of their own.
type RelationshipType string

const (
	RelTreatedBy              RelationshipType = "TREATED_BY"               // Patient -> Doctor
	RelSpecializesInTreatment RelationshipType = "SPECIALIZES_IN_TREATMENT" // Doctor -> Treatment
	RelWorksAt                RelationshipType = "WORKS_AT"                 // Doctor -> Facility
	RelAvailableAt            RelationshipType = "AVAILABLE_AT"             // Treatment -> Facility
	RelUndergoes              RelationshipType = "UNDERGOES"                // Patient -> Treatment
	RelIssues                 RelationshipType = "ISSUES"                   // Doctor -> Treatment
	RelGenerates              RelationshipType = "GENERATES"                // Treatment -> HealthSnapshot
	RelHasContact             RelationshipType = "HAS_CONTACT"              // Facility -> ContactInfo
)

var relationshipTypes = []RelationshipType{
	RelTreatedBy,
	RelSpecializesInTreatment,
	RelWorksAt,
	RelAvailableAt,
	RelUndergoes,
	RelIssues,
	RelGenerates,
	RelHasContact,
}

// IsKnown reports whether r is one of the compiled-in relationship types.
func (r RelationshipType) IsKnown() bool {
	for _, known := range relationshipTypes {
		if known == r {
			return true
		}
	}
	return false
}
