package entities_test

import (
	"strings"
	"time"

	"healthgraph/src/domain/entities"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Enums", func() {
	DescribeTable("ParseGender",
		func(value string, expected entities.Gender) {
			Expect(entities.ParseGender(value)).To(Equal(expected))
		},
		Entry("exact match", "Female", entities.GenderFemale),
		Entry("different case", "nonbinary", entities.GenderNonBinary),
		Entry("surrounding spaces", "  Male ", entities.GenderMale),
		Entry("empty value", "", entities.GenderUnknown),
		Entry("unrecognised value", "robot", entities.GenderUnknown),
	)

	DescribeTable("ParseFacilityType",
		func(value string, expected entities.FacilityType) {
			Expect(entities.ParseFacilityType(value)).To(Equal(expected))
		},
		Entry("exact match", "Hospital", entities.FacilityTypeHospital),
		Entry("different case", "REHABILITATIONCENTER", entities.FacilityTypeRehabilitationCenter),
		Entry("unrecognised value", "Spa", entities.FacilityTypeUnknown),
	)

	DescribeTable("ParseServiceType",
		func(value string, expected entities.ServiceType) {
			Expect(entities.ParseServiceType(value)).To(Equal(expected))
		},
		Entry("exact match", "Cardiology", entities.ServiceTypeCardiology),
		Entry("different case", "generalpractice", entities.ServiceTypeGeneralPractice),
		Entry("unrecognised value", "Astrology", entities.ServiceTypeUnknown),
	)

	It("lists known members without the Unknown fallback", func() {
		Expect(entities.Genders()).NotTo(ContainElement(entities.GenderUnknown))
		Expect(entities.FacilityTypes()).NotTo(ContainElement(entities.FacilityTypeUnknown))
		Expect(entities.ServiceTypes()).NotTo(ContainElement(entities.ServiceTypeUnknown))
	})

	It("returns copies of the known members", func() {
		// ARRANGE
		genders := entities.Genders()

		// ACT
		genders[0] = "Tampered"

		// ASSERT
		Expect(entities.Genders()).NotTo(ContainElement(entities.Gender("Tampered")))
	})
})

var _ = Describe("Labels", func() {
	It("resolves every registered kind", func() {
		for kind, expected := range map[entities.EntityKind]entities.Label{
			entities.KindDoctor:         entities.LabelDoctor,
			entities.KindPatient:        entities.LabelPatient,
			entities.KindFacility:       entities.LabelFacility,
			entities.KindTreatment:      entities.LabelTreatment,
			entities.KindHealthSnapshot: entities.LabelHealthSnapshot,
			entities.KindContactInfo:    entities.LabelContactInfo,
		} {
			label, err := entities.LabelFor(kind)
			Expect(err).NotTo(HaveOccurred())
			Expect(label).To(Equal(expected))
		}
	})

	It("fails for an unregistered kind", func() {
		// ACT
		_, err := entities.LabelFor("spaceship")

		// ASSERT
		Expect(err).To(MatchError(ContainSubstring("spaceship")))
		Expect(func() { entities.MustLabelFor("spaceship") }).To(Panic())
	})

	It("knows only the registered labels", func() {
		Expect(entities.LabelDoctor.IsKnown()).To(BeTrue())
		Expect(entities.Label("Doctor) DETACH DELETE (x").IsKnown()).To(BeFalse())
		Expect(entities.Label("doctor").IsKnown()).To(BeFalse())
	})

	It("knows only the compiled-in relationship types", func() {
		Expect(entities.RelTreatedBy.IsKnown()).To(BeTrue())
		Expect(entities.RelHasContact.IsKnown()).To(BeTrue())
		Expect(entities.RelationshipType("FRIENDS_WITH").IsKnown()).To(BeFalse())
	})
})

var _ = Describe("BaseEntity", func() {
	It("starts active with both timestamps set to the creation instant in UTC", func() {
		// ARRANGE
		now := time.Date(2024, time.March, 3, 10, 0, 0, 0, time.FixedZone("BRT", -3*3600))

		// ACT
		base := entities.NewBaseEntity("D-1", now)

		// ASSERT
		Expect(base.ID).To(Equal("D-1"))
		Expect(base.Active).To(BeTrue())
		Expect(base.CreatedAt.Location()).To(Equal(time.UTC))
		Expect(base.CreatedAt.Equal(now)).To(BeTrue())
		Expect(base.UpdatedAt).To(Equal(base.CreatedAt))
	})

	It("prefixes generated ids by kind", func() {
		Expect(entities.NewPatientID()).To(HavePrefix(entities.PatientIDPrefix))
		Expect(entities.NewTreatmentID()).To(HavePrefix(entities.TreatmentIDPrefix))
		Expect(strings.TrimPrefix(entities.NewPatientID(), entities.PatientIDPrefix)).To(HaveLen(36))
	})
})
