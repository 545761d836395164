package repositories_test

import (
	"context"

	"healthgraph/src/domain/entities"
	"healthgraph/src/repositories"
	"healthgraph/src/test_artefacts/stubs"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("FacilityRepository", func() {
	var (
		ctx                context.Context
		facilityRepository *repositories.FacilityRepository
		doctorRepository   *repositories.DoctorRepository
	)

	BeforeEach(func() {
		ctx = context.Background()
		facilityRepository = repositories.NewFacilityRepository(graphClient)
		doctorRepository = repositories.NewDoctorRepository(graphClient)

		seeder.WipeGraph(ctx)
	})

	Describe("Create", func() {
		It("stores contacts as linked ContactInfo nodes", func() {
			// ARRANGE
			facility := stubs.NewFacilityStub().WithContacts(
				entities.ContactInfo{ID: "C-1", Type: "phone", Value: "555-0100"},
				entities.ContactInfo{ID: "C-2", Type: "email", Value: "desk@clinic.test"},
			).Get()

			// ACT
			err := facilityRepository.Create(ctx, facility)

			// ASSERT
			Expect(err).NotTo(HaveOccurred())
			Expect(seeder.CountNodes(ctx, entities.LabelContactInfo)).To(Equal(int64(2)))
			Expect(seeder.CountRelationships(ctx, entities.RelHasContact)).To(Equal(int64(2)))

			found, err := facilityRepository.GetByID(ctx, facility.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(found.Name).To(Equal(facility.Name))
			Expect(found.Type).To(Equal(facility.Type))
			Expect(found.Capacity).To(Equal(facility.Capacity))
			Expect(found.ServicesOffered).To(Equal(facility.ServicesOffered))
			Expect(found.Contacts).To(ConsistOf(facility.Contacts))
		})

		It("accepts a facility without contacts", func() {
			// ARRANGE
			facility := stubs.NewFacilityStub().WithContacts().Get()

			// ACT
			Expect(facilityRepository.Create(ctx, facility)).To(Succeed())
			found, err := facilityRepository.GetByID(ctx, facility.ID)

			// ASSERT
			Expect(err).NotTo(HaveOccurred())
			Expect(found.Contacts).To(BeEmpty())
		})
	})

	Describe("GetDoctorsByFacilityID", func() {
		It("lists the active doctors working at the facility", func() {
			// ARRANGE
			facility := stubs.NewFacilityStub().Get()
			doctor := stubs.NewDoctorStub().Get()
			Expect(facilityRepository.Create(ctx, facility)).To(Succeed())
			Expect(doctorRepository.Create(ctx, doctor)).To(Succeed())
			Expect(facilityRepository.AssignRelationship(ctx, doctor.ID, facility.ID, entities.RelWorksAt, entities.LabelDoctor, entities.LabelFacility)).To(Succeed())

			// ACT
			doctors, err := facilityRepository.GetDoctorsByFacilityID(ctx, facility.ID)

			// ASSERT
			Expect(err).NotTo(HaveOccurred())
			Expect(doctors).To(ConsistOf(HaveField("BaseEntity.ID", doctor.ID)))
		})
	})
})
