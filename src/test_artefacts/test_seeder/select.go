package test_seeder

import (
	"context"
	"fmt"

	"healthgraph/src/domain/entities"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j/dbtype"
)

func (ts TestSeeder) CountNodes(ctx context.Context, label entities.Label) int64 {
	records := ts.read(ctx, fmt.Sprintf("MATCH (n:%s) RETURN count(n) AS total", label), nil)
	total, _ := records[0].Get("total")
	return total.(int64)
}

func (ts TestSeeder) CountRelationships(ctx context.Context, relationship entities.RelationshipType) int64 {
	records := ts.read(ctx, fmt.Sprintf("MATCH ()-[r:%s]->() RETURN count(r) AS total", relationship), nil)
	total, _ := records[0].Get("total")
	return total.(int64)
}

// SelectNodeProperties returns the raw stored properties, or nil when no node matches.
func (ts TestSeeder) SelectNodeProperties(ctx context.Context, label entities.Label, id string) map[string]any {
	records := ts.read(ctx, fmt.Sprintf("MATCH (n:%s {id: $id}) RETURN n", label), map[string]any{"id": id})
	if len(records) == 0 {
		return nil
	}

	value, _ := records[0].Get("n")
	return value.(dbtype.Node).Props
}
