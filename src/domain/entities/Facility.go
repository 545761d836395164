package entities

type Facility struct {
	BaseEntity

	Name            string        `json:"name"`
	Type            FacilityType  `json:"type"`
	Capacity        int           `json:"capacity"`
	ServicesOffered []ServiceType `json:"servicesOffered"`
	// Contacts live in their own ContactInfo nodes linked by HAS_CONTACT.
	Contacts []ContactInfo `json:"contacts"`
}

type ContactInfo struct {
	ID    string `json:"id"`
	Type  string `json:"type"`
	Value string `json:"value"`
}
