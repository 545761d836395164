package repositories_test

import (
	"context"
	"time"

	"healthgraph/src/domain"
	"healthgraph/src/domain/entities"
	"healthgraph/src/repositories"
	"healthgraph/src/repositories/mapper"
	"healthgraph/src/test_artefacts/comparer"
	"healthgraph/src/test_artefacts/stubs"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("GraphRepository", func() {
	var (
		ctx                 context.Context
		doctorRepository    *repositories.DoctorRepository
		patientRepository   *repositories.PatientRepository
		treatmentRepository *repositories.TreatmentRepository
	)

	BeforeEach(func() {
		ctx = context.Background()
		doctorRepository = repositories.NewDoctorRepository(graphClient)
		patientRepository = repositories.NewPatientRepository(graphClient)
		treatmentRepository = repositories.NewTreatmentRepository(graphClient)

		seeder.WipeGraph(ctx)
	})

	Describe("Create and GetByID", func() {
		It("reads back what was written", func() {
			// ARRANGE
			doctor := stubs.NewDoctorStub().Get()

			// ACT
			err := doctorRepository.Create(ctx, doctor)
			Expect(err).NotTo(HaveOccurred())

			found, err := doctorRepository.GetByID(ctx, doctor.ID)

			// ASSERT
			Expect(err).NotTo(HaveOccurred())
			Expect(found).NotTo(BeNil())
			Expect(*found).To(BeComparableTo(doctor, comparer.TimeWithinTolerance(1)))
		})

		It("keeps a patient's date of birth as a calendar date", func() {
			// ARRANGE
			patient := stubs.NewPatientStub().
				WithDateOfBirth(time.Date(1990, time.March, 14, 0, 0, 0, 0, time.UTC)).
				Get()

			// ACT
			Expect(patientRepository.Create(ctx, patient)).To(Succeed())
			found, err := patientRepository.GetByID(ctx, patient.ID)

			// ASSERT
			Expect(err).NotTo(HaveOccurred())
			Expect(found.DateOfBirth).To(Equal(time.Date(1990, time.March, 14, 0, 0, 0, 0, time.UTC)))
		})

		It("returns nil for an unknown id", func() {
			// ACT
			found, err := doctorRepository.GetByID(ctx, "unknown")

			// ASSERT
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(BeNil())
		})

		It("maps missing properties to their defaults", func() {
			// ARRANGE
			seeder.InsertNode(ctx, entities.LabelDoctor, map[string]any{"id": "D-bare"})

			// ACT
			found, err := doctorRepository.GetByID(ctx, "D-bare")

			// ASSERT
			Expect(err).NotTo(HaveOccurred())
			Expect(*found).To(Equal(entities.Doctor{
				BaseEntity: entities.BaseEntity{ID: "D-bare", CreatedAt: entities.MinTime, UpdatedAt: entities.MinTime},
				Gender:     entities.GenderUnknown,
			}))
		})
	})

	Describe("GetAll", func() {
		It("returns only active nodes of the repository label", func() {
			// ARRANGE
			active := stubs.NewDoctorStub().Get()
			inactive := stubs.NewDoctorStub().Inactive().Get()
			Expect(doctorRepository.Create(ctx, active)).To(Succeed())
			Expect(doctorRepository.Create(ctx, inactive)).To(Succeed())
			Expect(patientRepository.Create(ctx, stubs.NewPatientStub().Get())).To(Succeed())

			// ACT
			all, err := doctorRepository.GetAll(ctx)

			// ASSERT
			Expect(err).NotTo(HaveOccurred())
			Expect(all).To(HaveLen(1))
			Expect(all[0].ID).To(Equal(active.ID))
		})
	})

	Describe("Update", func() {
		It("changes only the supplied fields and refreshes updatedAt", func() {
			// ARRANGE
			doctor := stubs.NewDoctorStub().Get()
			doctor.CreatedAt = time.Now().Add(-time.Hour).UTC()
			doctor.UpdatedAt = doctor.CreatedAt
			Expect(doctorRepository.Create(ctx, doctor)).To(Succeed())

			patch := entities.Doctor{
				BaseEntity:     entities.BaseEntity{ID: doctor.ID},
				Specialization: "Geriatrics",
			}

			// ACT
			err := doctorRepository.Update(ctx, patch)

			// ASSERT
			Expect(err).NotTo(HaveOccurred())

			found, err := doctorRepository.GetByID(ctx, doctor.ID)
			Expect(err).NotTo(HaveOccurred())
			expected := doctor
			expected.Specialization = "Geriatrics"
			Expect(*found).To(BeComparableTo(expected, comparer.IgnoreStoreTimestamps()))
			Expect(found.CreatedAt).To(BeTemporally("~", doctor.CreatedAt, time.Millisecond))
			Expect(found.UpdatedAt).To(BeTemporally(">", doctor.UpdatedAt))
		})

		It("does nothing for an unknown id", func() {
			// ACT
			err := doctorRepository.Update(ctx, stubs.NewDoctorStub().WithID("ghost").Get())

			// ASSERT
			Expect(err).NotTo(HaveOccurred())
			Expect(seeder.CountNodes(ctx, entities.LabelDoctor)).To(BeZero())
		})
	})

	Describe("Delete", func() {
		It("deactivates the node without removing it", func() {
			// ARRANGE
			doctor := stubs.NewDoctorStub().Get()
			Expect(doctorRepository.Create(ctx, doctor)).To(Succeed())

			// ACT
			err := doctorRepository.Delete(ctx, doctor.ID)

			// ASSERT
			Expect(err).NotTo(HaveOccurred())
			Expect(seeder.CountNodes(ctx, entities.LabelDoctor)).To(Equal(int64(1)))
			Expect(seeder.SelectNodeProperties(ctx, entities.LabelDoctor, doctor.ID)).To(HaveKeyWithValue("active", false))

			found, err := doctorRepository.GetByID(ctx, doctor.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(found.Active).To(BeFalse())

			all, err := doctorRepository.GetAll(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(all).To(BeEmpty())
		})
	})

	Describe("AssignRelationship", func() {
		It("creates a single relationship however often it is called", func() {
			// ARRANGE
			patient := stubs.NewPatientStub().Get()
			doctor := stubs.NewDoctorStub().Get()
			Expect(patientRepository.Create(ctx, patient)).To(Succeed())
			Expect(doctorRepository.Create(ctx, doctor)).To(Succeed())

			// ACT
			for range 3 {
				err := patientRepository.AssignRelationship(ctx, patient.ID, doctor.ID, entities.RelTreatedBy, entities.LabelPatient, entities.LabelDoctor)
				Expect(err).NotTo(HaveOccurred())
			}

			// ASSERT
			Expect(seeder.CountRelationships(ctx, entities.RelTreatedBy)).To(Equal(int64(1)))
		})

		It("fails with not found when an endpoint is missing", func() {
			// ARRANGE
			patient := stubs.NewPatientStub().Get()
			Expect(patientRepository.Create(ctx, patient)).To(Succeed())

			// ACT
			err := patientRepository.AssignRelationship(ctx, patient.ID, "ghost", entities.RelTreatedBy, entities.LabelPatient, entities.LabelDoctor)

			// ASSERT
			Expect(err).To(MatchError(domain.ErrEntityNotFound))
			Expect(seeder.CountRelationships(ctx, entities.RelTreatedBy)).To(BeZero())
		})

		It("refuses labels and relationship types outside the known set", func() {
			// ACT
			labelErr := patientRepository.AssignRelationship(ctx, "a", "b", entities.RelTreatedBy, entities.Label("Patient) DETACH DELETE (x"), entities.LabelDoctor)
			typeErr := patientRepository.AssignRelationship(ctx, "a", "b", entities.RelationshipType("KNOWS"), entities.LabelPatient, entities.LabelDoctor)

			// ASSERT
			Expect(labelErr).To(MatchError(domain.ErrUnknownGraphIdentifier))
			Expect(typeErr).To(MatchError(domain.ErrUnknownGraphIdentifier))
		})
	})

	Describe("sources and targets", func() {
		var (
			doctor      entities.Doctor
			patient     entities.Patient
			dropped     entities.Patient
			specialty   entities.AbstractTreatment
			unpublished entities.AbstractTreatment
		)

		BeforeEach(func() {
			doctor = stubs.NewDoctorStub().Get()
			patient = stubs.NewPatientStub().Get()
			dropped = stubs.NewPatientStub().Inactive().Get()
			specialty = stubs.NewAbstractTreatmentStub()
			unpublished = stubs.NewAbstractTreatmentStub()
			unpublished.Active = false

			Expect(doctorRepository.Create(ctx, doctor)).To(Succeed())
			Expect(patientRepository.Create(ctx, patient)).To(Succeed())
			Expect(patientRepository.Create(ctx, dropped)).To(Succeed())
			Expect(treatmentRepository.Create(ctx, specialty)).To(Succeed())
			Expect(treatmentRepository.Create(ctx, unpublished)).To(Succeed())

			seeder.InsertRelationship(ctx, entities.LabelPatient, patient.ID, entities.RelTreatedBy, entities.LabelDoctor, doctor.ID)
			seeder.InsertRelationship(ctx, entities.LabelPatient, dropped.ID, entities.RelTreatedBy, entities.LabelDoctor, doctor.ID)
			seeder.InsertRelationship(ctx, entities.LabelDoctor, doctor.ID, entities.RelSpecializesInTreatment, entities.LabelTreatment, specialty.ID)
			seeder.InsertRelationship(ctx, entities.LabelDoctor, doctor.ID, entities.RelSpecializesInTreatment, entities.LabelTreatment, unpublished.ID)
		})

		It("lists the active sources pointing at a node", func() {
			// ACT
			patients, err := doctorRepository.GetPatientsByDoctorID(ctx, doctor.ID)

			// ASSERT
			Expect(err).NotTo(HaveOccurred())
			Expect(patients).To(HaveLen(1))
			Expect(patients[0].ID).To(Equal(patient.ID))
		})

		It("lists the active targets a node points at", func() {
			// ACT
			treatments, err := doctorRepository.GetTreatmentsByDoctorID(ctx, doctor.ID)

			// ASSERT
			Expect(err).NotTo(HaveOccurred())
			Expect(treatments).To(HaveLen(1))
			Expect(treatments[0].ID).To(Equal(specialty.ID))
		})

		It("sees the same edge from both ends", func() {
			// ACT
			sources, err := repositories.GetAllSourcesByCriteria(ctx, doctorRepository.GraphRepository, entities.RelTreatedBy, entities.LabelDoctor, doctor.ID, mapper.ToPatient)
			Expect(err).NotTo(HaveOccurred())

			targets, err := repositories.GetAllTargetsByCriteria(ctx, doctorRepository.GraphRepository, entities.RelTreatedBy, entities.LabelPatient, patient.ID, mapper.ToDoctor)
			Expect(err).NotTo(HaveOccurred())

			// ASSERT
			Expect(sources).To(ContainElement(HaveField("BaseEntity.ID", patient.ID)))
			Expect(targets).To(ConsistOf(HaveField("BaseEntity.ID", doctor.ID)))
		})

		It("returns an empty list for an unknown node", func() {
			// ACT
			patients, err := doctorRepository.GetPatientsByDoctorID(ctx, "ghost")

			// ASSERT
			Expect(err).NotTo(HaveOccurred())
			Expect(patients).To(BeEmpty())
		})
	})
})
