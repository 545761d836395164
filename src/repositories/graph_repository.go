package repositories

import (
	"context"
	"fmt"
	"time"

	"healthgraph/src/domain"
	"healthgraph/src/domain/entities"
	"healthgraph/src/infra/graphdb"
)

// GraphRepository performs CRUD on the nodes of one label and creates typed
// relationships between arbitrary labelled nodes.
type GraphRepository[T entities.Entity] struct {
	client       *graphdb.GraphClient
	label        entities.Label
	toProperties func(T) map[string]any
	fromNode     NodeMapper[T]
}

// NewGraphRepository resolves the label of kind through the label registry.
// It panics when kind is not registered.
func NewGraphRepository[T entities.Entity](
	client *graphdb.GraphClient,
	kind entities.EntityKind,
	toProperties func(T) map[string]any,
	fromNode NodeMapper[T],
) *GraphRepository[T] {
	return &GraphRepository[T]{
		client:       client,
		label:        entities.MustLabelFor(kind),
		toProperties: toProperties,
		fromNode:     fromNode,
	}
}

func (r *GraphRepository[T]) Label() entities.Label {
	return r.label
}

// GetAll returns the active nodes of the repository label, in no particular order.
func (r *GraphRepository[T]) GetAll(ctx context.Context) ([]T, error) {
	query := fmt.Sprintf(`MATCH (n:%s) WHERE n.active = true RETURN n`, r.label)

	records, err := runRead(ctx, r.client, query, nil)
	if err != nil {
		return nil, fmt.Errorf("GraphRepository.GetAll - failed to query %s nodes: %w", r.label, err)
	}

	return mapRecords(records, "n", r.fromNode), nil
}

// GetByID returns the node with id whatever its active flag, or nil when absent.
func (r *GraphRepository[T]) GetByID(ctx context.Context, id string) (*T, error) {
	query := fmt.Sprintf(`MATCH (n:%s {id: $id}) RETURN n`, r.label)

	records, err := runRead(ctx, r.client, query, map[string]any{"id": id})
	if err != nil {
		return nil, fmt.Errorf("GraphRepository.GetByID - failed to query %s '%s': %w", r.label, id, err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	node, ok := nodeFrom(records[0], "n")
	if !ok {
		return nil, nil
	}

	entity := r.fromNode(node)
	return &entity, nil
}

func (r *GraphRepository[T]) Exists(ctx context.Context, id string) (bool, error) {
	entity, err := r.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	return entity != nil, nil
}

// Create writes a new node with the full property map of entity.
// Duplicate ids are not detected.
func (r *GraphRepository[T]) Create(ctx context.Context, entity T) error {
	query := fmt.Sprintf(`CREATE (n:%s $props)`, r.label)

	_, err := runWrite(ctx, r.client, query, map[string]any{"props": r.toProperties(entity)})
	if err != nil {
		return fmt.Errorf("GraphRepository.Create - failed to create %s '%s': %w", r.label, entity.GetID(), err)
	}

	return nil
}

// Update merges the supplied fields of entity into the stored node and stamps
// updatedAt with the store clock. Unset fields (empty strings, zero times,
// zero numbers, false, nil or empty lists) are treated as not supplied and
// keep their stored value, as do id and updatedAt. Nothing happens when no
// node has the id.
func (r *GraphRepository[T]) Update(ctx context.Context, entity T) error {
	props := suppliedProperties(r.toProperties(entity))
	delete(props, "id")
	delete(props, "updatedAt")

	query := fmt.Sprintf(`
		MATCH (n:%s {id: $id})
		SET n += $props, n.updatedAt = datetime()
	`, r.label)

	_, err := runWrite(ctx, r.client, query, map[string]any{
		"id":    entity.GetID(),
		"props": props,
	})
	if err != nil {
		return fmt.Errorf("GraphRepository.Update - failed to update %s '%s': %w", r.label, entity.GetID(), err)
	}

	return nil
}

// Delete flips active to false. Nodes are never removed.
func (r *GraphRepository[T]) Delete(ctx context.Context, id string) error {
	query := fmt.Sprintf(`MATCH (n:%s {id: $id}) SET n.active = false`, r.label)

	_, err := runWrite(ctx, r.client, query, map[string]any{"id": id})
	if err != nil {
		return fmt.Errorf("GraphRepository.Delete - failed to delete %s '%s': %w", r.label, id, err)
	}

	return nil
}

// AssignRelationship merges one relationship of the given type from the source
// node to the target node. Calling it again with the same arguments leaves a
// single relationship. It fails with domain.ErrEntityNotFound when either
// endpoint is missing; it does not check which one.
func (r *GraphRepository[T]) AssignRelationship(
	ctx context.Context,
	sourceID string,
	targetID string,
	relationship entities.RelationshipType,
	sourceLabel entities.Label,
	targetLabel entities.Label,
) error {
	if err := checkLabels(sourceLabel, targetLabel); err != nil {
		return fmt.Errorf("GraphRepository.AssignRelationship - %w", err)
	}
	if err := checkRelationship(relationship); err != nil {
		return fmt.Errorf("GraphRepository.AssignRelationship - %w", err)
	}

	query := fmt.Sprintf(`
		MATCH (source:%s {id: $sourceId})
		MATCH (target:%s {id: $targetId})
		MERGE (source)-[r:%s]->(target)
		RETURN type(r) AS type
	`, sourceLabel, targetLabel, relationship)

	records, err := runWrite(ctx, r.client, query, map[string]any{
		"sourceId": sourceID,
		"targetId": targetID,
	})
	if err != nil {
		return fmt.Errorf("GraphRepository.AssignRelationship - failed to merge %s from %s '%s' to %s '%s': %w",
			relationship, sourceLabel, sourceID, targetLabel, targetID, err)
	}

	if len(records) == 0 {
		return fmt.Errorf("GraphRepository.AssignRelationship - %s '%s' or %s '%s' does not exist: %w",
			sourceLabel, sourceID, targetLabel, targetID, domain.ErrEntityNotFound)
	}

	return nil
}

// GetAllSourcesByCriteria returns the active nodes holding a relationship of
// the given type that points at the target node, converted by mapper. The
// result type is independent of the repository's own entity type.
func GetAllSourcesByCriteria[T entities.Entity, R any](
	ctx context.Context,
	repository *GraphRepository[T],
	relationship entities.RelationshipType,
	targetLabel entities.Label,
	targetID string,
	mapper NodeMapper[R],
) ([]R, error) {
	if err := checkLabels(targetLabel); err != nil {
		return nil, fmt.Errorf("GetAllSourcesByCriteria - %w", err)
	}
	if err := checkRelationship(relationship); err != nil {
		return nil, fmt.Errorf("GetAllSourcesByCriteria - %w", err)
	}

	query := fmt.Sprintf(`
		MATCH (s)-[:%s]->(t:%s {id: $targetId})
		WHERE s.active = true
		RETURN DISTINCT s
	`, relationship, targetLabel)

	records, err := runRead(ctx, repository.client, query, map[string]any{"targetId": targetID})
	if err != nil {
		return nil, fmt.Errorf("GetAllSourcesByCriteria - failed to query %s sources of %s '%s': %w",
			relationship, targetLabel, targetID, err)
	}

	return mapRecords(records, "s", mapper), nil
}

// GetAllTargetsByCriteria mirrors GetAllSourcesByCriteria: it returns the active
// nodes the source node points at through one relationship of the given type.
func GetAllTargetsByCriteria[T entities.Entity, R any](
	ctx context.Context,
	repository *GraphRepository[T],
	relationship entities.RelationshipType,
	sourceLabel entities.Label,
	sourceID string,
	mapper NodeMapper[R],
) ([]R, error) {
	if err := checkLabels(sourceLabel); err != nil {
		return nil, fmt.Errorf("GetAllTargetsByCriteria - %w", err)
	}
	if err := checkRelationship(relationship); err != nil {
		return nil, fmt.Errorf("GetAllTargetsByCriteria - %w", err)
	}

	query := fmt.Sprintf(`
		MATCH (s:%s {id: $sourceId})-[:%s]->(t)
		WHERE t.active = true
		RETURN DISTINCT t
	`, sourceLabel, relationship)

	records, err := runRead(ctx, repository.client, query, map[string]any{"sourceId": sourceID})
	if err != nil {
		return nil, fmt.Errorf("GetAllTargetsByCriteria - failed to query %s targets of %s '%s': %w",
			relationship, sourceLabel, sourceID, err)
	}

	return mapRecords(records, "t", mapper), nil
}

// suppliedProperties drops the entries whose value is the zero value of its kind.
func suppliedProperties(props map[string]any) map[string]any {
	supplied := make(map[string]any, len(props))
	for key, value := range props {
		if isUnset(value) {
			continue
		}
		supplied[key] = value
	}
	return supplied
}

func isUnset(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case bool:
		return !v
	case int:
		return v == 0
	case int64:
		return v == 0
	case float64:
		return v == 0
	case time.Time:
		return v.IsZero()
	case []string:
		return len(v) == 0
	case []any:
		return len(v) == 0
	default:
		return false
	}
}
