package test_seeder

import (
	"context"
	"fmt"

	"healthgraph/src/domain/entities"
)

// InsertNode creates a node with the given label and properties, bypassing the repositories.
func (ts TestSeeder) InsertNode(ctx context.Context, label entities.Label, properties map[string]any) {
	ts.write(ctx, fmt.Sprintf("CREATE (n:%s $props)", label), map[string]any{"props": properties})
}

// InsertRelationship links two existing nodes matched by id.
func (ts TestSeeder) InsertRelationship(
	ctx context.Context,
	sourceLabel entities.Label,
	sourceID string,
	relationship entities.RelationshipType,
	targetLabel entities.Label,
	targetID string,
) {
	query := fmt.Sprintf(`
		MATCH (s:%s {id: $sourceId})
		MATCH (t:%s {id: $targetId})
		CREATE (s)-[:%s]->(t)
		RETURN s
	`, sourceLabel, targetLabel, relationship)

	records := ts.write(ctx, query, map[string]any{"sourceId": sourceID, "targetId": targetID})
	if len(records) == 0 {
		panic(fmt.Sprintf("Seeder.InsertRelationship: %s '%s' or %s '%s' not found", sourceLabel, sourceID, targetLabel, targetID))
	}
}
