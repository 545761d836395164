package relationships

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"healthgraph/src/domain"
	"healthgraph/src/domain/entities"
	"healthgraph/src/services/events"
)

// Endpoint is one side of a relationship: a label and a way to confirm that a
// node with a given id exists under it.
type Endpoint interface {
	Label() entities.Label
	Exists(ctx context.Context, id string) (bool, error)
}

type RelationshipWriter interface {
	AssignRelationship(
		ctx context.Context,
		sourceID string,
		targetID string,
		relationship entities.RelationshipType,
		sourceLabel entities.Label,
		targetLabel entities.Label,
	) error
}

// Assigner creates one relationship type between two endpoint kinds after
// checking that both nodes exist. The checks and the write are separate
// statements, so an endpoint deleted in between still receives the edge.
// Only existence is checked; an inactive endpoint is accepted.
type Assigner struct {
	logger       *slog.Logger
	source       Endpoint
	target       Endpoint
	relationship entities.RelationshipType
	writer       RelationshipWriter
	publisher    events.Publisher
}

func NewAssigner(
	logger *slog.Logger,
	source Endpoint,
	target Endpoint,
	relationship entities.RelationshipType,
	writer RelationshipWriter,
	publisher events.Publisher,
) *Assigner {
	return &Assigner{
		logger:       logger,
		source:       source,
		target:       target,
		relationship: relationship,
		writer:       writer,
		publisher:    publisher,
	}
}

func (a *Assigner) Assign(ctx context.Context, sourceID string, targetID string) error {
	sourceLabel := a.source.Label()
	targetLabel := a.target.Label()

	if strings.TrimSpace(sourceID) == "" {
		return fmt.Errorf("Assigner.Assign - %s id must not be empty: %w", sourceLabel, domain.ErrValidation)
	}
	if strings.TrimSpace(targetID) == "" {
		return fmt.Errorf("Assigner.Assign - %s id must not be empty: %w", targetLabel, domain.ErrValidation)
	}

	if err := a.ensureExists(ctx, "source", a.source, sourceID); err != nil {
		return err
	}
	if err := a.ensureExists(ctx, "target", a.target, targetID); err != nil {
		return err
	}

	if err := a.writer.AssignRelationship(ctx, sourceID, targetID, a.relationship, sourceLabel, targetLabel); err != nil {
		return fmt.Errorf("Assigner.Assign - failed to assign %s: %w", a.relationship, err)
	}

	a.logger.Info("Relationship assigned",
		"relationship", a.relationship,
		"source_label", sourceLabel,
		"source_id", sourceID,
		"target_label", targetLabel,
		"target_id", targetID)

	event := events.NewRelationshipEvent(string(a.relationship), string(sourceLabel), sourceID, string(targetLabel), targetID)
	if err := a.publisher.Publish(ctx, event); err != nil {
		a.logger.Warn("Failed to publish relationship event", "error", err, "event_id", event.EventID)
	}

	return nil
}

func (a *Assigner) ensureExists(ctx context.Context, role string, endpoint Endpoint, id string) error {
	exists, err := endpoint.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("Assigner.Assign - failed to look up %s %s '%s': %w", role, endpoint.Label(), id, err)
	}
	if !exists {
		return fmt.Errorf("Assigner.Assign - %s %s '%s' not found: %w", role, endpoint.Label(), id, domain.ErrEntityNotFound)
	}
	return nil
}
