package repositories_test

import (
	"context"

	"healthgraph/src/domain/entities"
	"healthgraph/src/repositories"
	"healthgraph/src/test_artefacts/stubs"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("PatientRepository.GetNetworkByPatientID", func() {
	var (
		ctx               context.Context
		patientRepository *repositories.PatientRepository
	)

	nodeIDs := func(nodes []map[string]any) []any {
		ids := make([]any, 0, len(nodes))
		for _, props := range nodes {
			ids = append(ids, props["id"])
		}
		return ids
	}

	BeforeEach(func() {
		ctx = context.Background()
		patientRepository = repositories.NewPatientRepository(graphClient)

		seeder.WipeGraph(ctx)
	})

	It("returns an empty network for an unknown patient", func() {
		// ACT
		network, err := patientRepository.GetNetworkByPatientID(ctx, "P-ghost")

		// ASSERT
		Expect(err).NotTo(HaveOccurred())
		Expect(network.IsEmpty()).To(BeTrue())
		Expect(network.Edges).To(BeEmpty())
	})

	It("returns only the patient when it has no relationships", func() {
		// ARRANGE
		patient := stubs.NewPatientStub().Get()
		Expect(patientRepository.Create(ctx, patient)).To(Succeed())

		// ACT
		network, err := patientRepository.GetNetworkByPatientID(ctx, patient.ID)

		// ASSERT
		Expect(err).NotTo(HaveOccurred())
		Expect(network.Nodes).To(HaveLen(1))
		Expect(network.Nodes[0].Labels).To(Equal([]string{string(entities.LabelPatient)}))
		Expect(network.Nodes[0].Properties).To(HaveKeyWithValue("id", patient.ID))
		Expect(network.Edges).To(BeEmpty())
	})

	It("stops two hops away from the patient and follows both directions", func() {
		// ARRANGE
		// P -TREATED_BY-> D -WORKS_AT-> F -HAS_CONTACT-> C
		patient := stubs.NewPatientStub().Get()
		seeder.InsertNode(ctx, entities.LabelPatient, map[string]any{"id": patient.ID, "active": true})
		seeder.InsertNode(ctx, entities.LabelDoctor, map[string]any{"id": "D-1", "active": true})
		seeder.InsertNode(ctx, entities.LabelFacility, map[string]any{"id": "F-1", "active": true})
		seeder.InsertNode(ctx, entities.LabelContactInfo, map[string]any{"id": "C-1", "type": "phone", "value": "555"})
		seeder.InsertRelationship(ctx, entities.LabelPatient, patient.ID, entities.RelTreatedBy, entities.LabelDoctor, "D-1")
		seeder.InsertRelationship(ctx, entities.LabelDoctor, "D-1", entities.RelWorksAt, entities.LabelFacility, "F-1")
		seeder.InsertRelationship(ctx, entities.LabelFacility, "F-1", entities.RelHasContact, entities.LabelContactInfo, "C-1")

		// ACT
		network, err := patientRepository.GetNetworkByPatientID(ctx, patient.ID)

		// ASSERT
		Expect(err).NotTo(HaveOccurred())

		props := make([]map[string]any, 0, len(network.Nodes))
		for _, node := range network.Nodes {
			props = append(props, node.Properties)
		}
		Expect(nodeIDs(props)).To(ConsistOf(patient.ID, "D-1", "F-1"))
		Expect(network.Edges).To(ConsistOf(
			HaveField("Type", string(entities.RelTreatedBy)),
			HaveField("Type", string(entities.RelWorksAt)),
		))
	})

	It("lists every node and edge once when several paths reach them", func() {
		// ARRANGE
		// P -TREATED_BY-> D1, P -TREATED_BY-> D2, both work at F
		patient := stubs.NewPatientStub().Get()
		Expect(patientRepository.Create(ctx, patient)).To(Succeed())
		for _, id := range []string{"D-1", "D-2"} {
			seeder.InsertNode(ctx, entities.LabelDoctor, map[string]any{"id": id, "active": true})
			seeder.InsertRelationship(ctx, entities.LabelPatient, patient.ID, entities.RelTreatedBy, entities.LabelDoctor, id)
		}
		seeder.InsertNode(ctx, entities.LabelFacility, map[string]any{"id": "F-1", "active": true})
		seeder.InsertRelationship(ctx, entities.LabelDoctor, "D-1", entities.RelWorksAt, entities.LabelFacility, "F-1")
		seeder.InsertRelationship(ctx, entities.LabelDoctor, "D-2", entities.RelWorksAt, entities.LabelFacility, "F-1")

		// ACT
		network, err := patientRepository.GetNetworkByPatientID(ctx, patient.ID)

		// ASSERT
		Expect(err).NotTo(HaveOccurred())
		Expect(network.Nodes).To(HaveLen(4))
		Expect(network.Edges).To(HaveLen(4))

		endpoints := map[string]bool{}
		for _, node := range network.Nodes {
			endpoints[node.ElementID] = true
		}
		for _, edge := range network.Edges {
			Expect(endpoints).To(HaveKey(edge.StartElementID))
			Expect(endpoints).To(HaveKey(edge.EndElementID))
		}
	})

	It("returns the date of birth as a plain date string", func() {
		// ARRANGE
		patient := stubs.NewPatientStub().Get()
		Expect(patientRepository.Create(ctx, patient)).To(Succeed())

		// ACT
		network, err := patientRepository.GetNetworkByPatientID(ctx, patient.ID)

		// ASSERT
		Expect(err).NotTo(HaveOccurred())
		Expect(network.Nodes[0].Properties).To(HaveKeyWithValue("dateOfBirth", patient.DateOfBirth.Format("2006-01-02")))
	})
})
