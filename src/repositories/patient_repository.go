package repositories

import (
	"context"
	"fmt"

	"healthgraph/src/domain"
	"healthgraph/src/domain/entities"
	"healthgraph/src/infra/graphdb"
	"healthgraph/src/repositories/mapper"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j/dbtype"
)

type PatientRepository struct {
	*GraphRepository[entities.Patient]
}

func NewPatientRepository(client *graphdb.GraphClient) *PatientRepository {
	return &PatientRepository{
		GraphRepository: NewGraphRepository(client, entities.KindPatient, mapper.PatientProperties, mapper.ToPatient),
	}
}

// GetNetworkByPatientID returns every node and relationship within two hops of
// the patient, following relationships of any type in either direction. The
// bound is fixed. An isolated patient yields a network holding only itself; an
// unknown id yields an empty network.
func (r *PatientRepository) GetNetworkByPatientID(ctx context.Context, patientID string) (domain.Network, error) {
	query := fmt.Sprintf(`
		MATCH (p:%s {id: $patientId})
		OPTIONAL MATCH (p)-[r*1..2]-(n)
		RETURN p, r, n
	`, entities.LabelPatient)

	records, err := runRead(ctx, r.client, query, map[string]any{"patientId": patientID})
	if err != nil {
		return domain.Network{}, fmt.Errorf("PatientRepository.GetNetworkByPatientID - failed to traverse from patient '%s': %w", patientID, err)
	}

	builder := newNetworkBuilder()
	for _, record := range records {
		if node, ok := nodeFrom(record, "p"); ok {
			builder.addNode(node)
		}
		if node, ok := nodeFrom(record, "n"); ok {
			builder.addNode(node)
		}

		value, _ := record.Get("r")
		if path, ok := value.([]any); ok {
			for _, item := range path {
				if relationship, ok := item.(dbtype.Relationship); ok {
					builder.addEdge(relationship)
				}
			}
		}
	}

	return builder.network, nil
}

type networkBuilder struct {
	network   domain.Network
	seenNodes map[string]struct{}
	seenEdges map[string]struct{}
}

func newNetworkBuilder() *networkBuilder {
	return &networkBuilder{
		network: domain.Network{
			Nodes: []domain.NetworkNode{},
			Edges: []domain.NetworkEdge{},
		},
		seenNodes: make(map[string]struct{}),
		seenEdges: make(map[string]struct{}),
	}
}

func (b *networkBuilder) addNode(node dbtype.Node) {
	if _, seen := b.seenNodes[node.ElementId]; seen {
		return
	}
	b.seenNodes[node.ElementId] = struct{}{}

	b.network.Nodes = append(b.network.Nodes, domain.NetworkNode{
		ElementID:  node.ElementId,
		Labels:     append([]string{}, node.Labels...),
		Properties: mapper.PlainProperties(node.Props),
	})
}

func (b *networkBuilder) addEdge(relationship dbtype.Relationship) {
	if _, seen := b.seenEdges[relationship.ElementId]; seen {
		return
	}
	b.seenEdges[relationship.ElementId] = struct{}{}

	b.network.Edges = append(b.network.Edges, domain.NetworkEdge{
		ElementID:      relationship.ElementId,
		Type:           relationship.Type,
		StartElementID: relationship.StartElementId,
		EndElementID:   relationship.EndElementId,
	})
}
