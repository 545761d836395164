package entities

type Doctor struct {
	BaseEntity

	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	StartYear      string `json:"startYear"`
	Gender         Gender `json:"gender"`
	LicenseNumber  string `json:"licenseNumber"`
	Specialization string `json:"specialization"`
}
