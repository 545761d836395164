package treatments_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"healthgraph/src/domain"
	"healthgraph/src/domain/entities"
	"healthgraph/src/services/events"
	"healthgraph/src/services/insights"
	"healthgraph/src/services/treatments"
	"healthgraph/src/test_artefacts/comparer"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("TreatmentService", func() {
	var (
		ctx       context.Context
		store     *fakeStore
		generator *stubGenerator
		publisher *recordingPublisher
		service   *treatments.TreatmentService
	)

	BeforeEach(func() {
		ctx = context.Background()
		store = newFakeStore()
		generator = &stubGenerator{insight: insights.Insight{Summary: "Improving", Recommendation: "Keep exercising"}}
		publisher = &recordingPublisher{}

		service = treatments.NewTreatmentService(
			slog.New(slog.NewTextHandler(io.Discard, nil)),
			store,
			fakeEndpoint{label: entities.LabelPatient, ids: map[string]bool{"P-1": true}},
			fakeEndpoint{label: entities.LabelDoctor, ids: map[string]bool{"D-1": true}},
			generator,
			publisher,
		)
	})

	Describe("CreateTreatment", func() {
		It("stores the treatment with an immutable snapshot built from the insight", func() {
			// ACT
			treatment, err := service.CreateTreatment(ctx, "P-1", "D-1", "Physiotherapy", "Stretch twice a day")

			// ASSERT
			Expect(err).NotTo(HaveOccurred())
			Expect(treatment.ID).To(HavePrefix(entities.TreatmentIDPrefix))
			Expect(treatment.PatientID).To(Equal("P-1"))
			Expect(treatment.DoctorID).To(Equal("D-1"))
			Expect(treatment.Active).To(BeTrue())
			Expect(treatment.Date).To(BeComparableTo(time.Now().UTC(), comparer.TimeWithinTolerance(1000)))

			Expect(treatment.HealthSnapshot).NotTo(BeNil())
			Expect(treatment.HealthSnapshot.ID).NotTo(BeEmpty())
			Expect(treatment.HealthSnapshot.Details).To(Equal("Stretch twice a day"))
			Expect(treatment.HealthSnapshot.Immutable).To(BeTrue())
			Expect(treatment.HealthSnapshot.HealthStateSummary).To(Equal("Improving"))
			Expect(treatment.HealthSnapshot.HealthRecommendation).To(Equal("Keep exercising"))
			Expect(treatment.HealthSnapshot.CreatedAt).To(Equal(treatment.CreatedAt))

			Expect(store.created).To(HaveLen(1))
			Expect(publisher.events).To(ConsistOf(And(
				HaveField("EventType", events.EventTreatmentCreated),
				HaveField("EntityID", treatment.ID),
			)))
		})

		It("rejects blank ids and types before any lookup", func() {
			_, err := service.CreateTreatment(ctx, "", "D-1", "Physiotherapy", "")
			Expect(err).To(MatchError(domain.ErrValidation))

			_, err = service.CreateTreatment(ctx, "P-1", "D-1", "  ", "")
			Expect(err).To(MatchError(domain.ErrValidation))

			Expect(generator.calls).To(BeZero())
		})

		It("reports a missing patient before a missing doctor", func() {
			// ACT
			_, err := service.CreateTreatment(ctx, "P-404", "D-404", "Physiotherapy", "")

			// ASSERT
			Expect(err).To(MatchError(domain.ErrEntityNotFound))
			Expect(err.Error()).To(ContainSubstring("Patient 'P-404'"))
		})

		It("reports a missing doctor", func() {
			// ACT
			_, err := service.CreateTreatment(ctx, "P-1", "D-404", "Physiotherapy", "")

			// ASSERT
			Expect(err).To(MatchError(domain.ErrEntityNotFound))
			Expect(err.Error()).To(ContainSubstring("Doctor 'D-404'"))
			Expect(generator.calls).To(BeZero())
		})

		It("writes nothing when the insight cannot be generated", func() {
			// ARRANGE
			generator.err = errors.New("rate limited")

			// ACT
			_, err := service.CreateTreatment(ctx, "P-1", "D-1", "Physiotherapy", "")

			// ASSERT
			Expect(err).To(MatchError(ContainSubstring("rate limited")))
			Expect(store.created).To(BeEmpty())
			Expect(publisher.events).To(BeEmpty())
		})

		It("passes store failures through", func() {
			// ARRANGE
			store.createErr = domain.ErrEntityNotFound

			// ACT
			_, err := service.CreateTreatment(ctx, "P-1", "D-1", "Physiotherapy", "")

			// ASSERT
			Expect(err).To(MatchError(domain.ErrEntityNotFound))
			Expect(publisher.events).To(BeEmpty())
		})
	})

	Describe("CreateAbstractTreatment", func() {
		It("adds a catalog treatment", func() {
			// ACT
			treatment, err := service.CreateAbstractTreatment(ctx, "Dialysis")

			// ASSERT
			Expect(err).NotTo(HaveOccurred())
			Expect(treatment.IsAbstract).To(BeTrue())
			Expect(treatment.ID).To(HavePrefix(entities.TreatmentIDPrefix))

			found, err := service.GetAbstractTreatmentByID(ctx, treatment.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(found.Type).To(Equal("Dialysis"))
		})

		It("rejects a blank type", func() {
			_, err := service.CreateAbstractTreatment(ctx, "")

			Expect(err).To(MatchError(domain.ErrValidation))
		})
	})

	Describe("lookups", func() {
		It("reports an unknown treatment as not found", func() {
			_, err := service.GetTreatmentByID(ctx, "T-404")

			Expect(err).To(MatchError(domain.ErrEntityNotFound))
		})

		It("reports a patient without snapshots as not found", func() {
			_, err := service.GetLatestHealthSnapshot(ctx, "P-1")

			Expect(err).To(MatchError(domain.ErrEntityNotFound))
		})

		It("returns the latest snapshot when there is one", func() {
			// ARRANGE
			store.latest = &entities.HealthSnapshot{ID: "HS-9"}

			// ACT
			snapshot, err := service.GetLatestHealthSnapshot(ctx, "P-1")

			// ASSERT
			Expect(err).NotTo(HaveOccurred())
			Expect(snapshot.ID).To(Equal("HS-9"))
		})

		It("lists the treatments of a patient", func() {
			// ARRANGE
			created, err := service.CreateTreatment(ctx, "P-1", "D-1", "Physiotherapy", "")
			Expect(err).NotTo(HaveOccurred())

			// ACT
			list, err := service.GetTreatmentsByPatientID(ctx, "P-1")

			// ASSERT
			Expect(err).NotTo(HaveOccurred())
			Expect(list).To(ConsistOf(HaveField("BaseEntity.ID", created.ID)))
		})
	})
})
