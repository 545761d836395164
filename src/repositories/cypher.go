package repositories

import (
	"context"
	"fmt"

	"healthgraph/src/domain"
	"healthgraph/src/domain/entities"
	"healthgraph/src/infra/graphdb"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j/dbtype"
)

// NodeMapper converts a raw node into a typed value.
type NodeMapper[R any] func(node dbtype.Node) R

// Each statement runs as an auto-commit transaction on its own session, so the
// driver never retries it and the session is released on every return path.

func runRead(ctx context.Context, client *graphdb.GraphClient, query string, params map[string]any) ([]*neo4j.Record, error) {
	session := client.ReadSession(ctx)
	defer session.Close(ctx)

	return run(ctx, session, query, params)
}

func runWrite(ctx context.Context, client *graphdb.GraphClient, query string, params map[string]any) ([]*neo4j.Record, error) {
	session := client.WriteSession(ctx)
	defer session.Close(ctx)

	return run(ctx, session, query, params)
}

func run(ctx context.Context, session neo4j.SessionWithContext, query string, params map[string]any) ([]*neo4j.Record, error) {
	result, err := session.Run(ctx, query, params)
	if err != nil {
		return nil, err
	}

	return result.Collect(ctx)
}

// nodeFrom returns the node stored under key, or false when it is null.
func nodeFrom(record *neo4j.Record, key string) (dbtype.Node, bool) {
	value, ok := record.Get(key)
	if !ok || value == nil {
		return dbtype.Node{}, false
	}
	node, ok := value.(dbtype.Node)
	return node, ok
}

func nodesFrom(record *neo4j.Record, key string) []dbtype.Node {
	value, ok := record.Get(key)
	if !ok || value == nil {
		return nil
	}
	list, ok := value.([]any)
	if !ok {
		return nil
	}

	nodes := make([]dbtype.Node, 0, len(list))
	for _, item := range list {
		if node, ok := item.(dbtype.Node); ok {
			nodes = append(nodes, node)
		}
	}
	return nodes
}

func mapRecords[R any](records []*neo4j.Record, key string, mapper NodeMapper[R]) []R {
	result := make([]R, 0, len(records))
	for _, record := range records {
		if node, ok := nodeFrom(record, key); ok {
			result = append(result, mapper(node))
		}
	}
	return result
}

// Labels and relationship types are the only values ever interpolated into
// query text, and only once they are confirmed to belong to the closed set.

func checkLabels(labels ...entities.Label) error {
	for _, label := range labels {
		if !label.IsKnown() {
			return fmt.Errorf("label %q: %w", label, domain.ErrUnknownGraphIdentifier)
		}
	}
	return nil
}

func checkRelationship(relationship entities.RelationshipType) error {
	if !relationship.IsKnown() {
		return fmt.Errorf("relationship type %q: %w", relationship, domain.ErrUnknownGraphIdentifier)
	}
	return nil
}
