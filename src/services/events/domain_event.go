package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventEntityCreated        = "entity.created"
	EventEntityUpdated        = "entity.updated"
	EventEntityDeleted        = "entity.deleted"
	EventRelationshipAssigned = "relationship.assigned"
	EventTreatmentCreated     = "treatment.created"
)

const (
	sourceService = "healthgraph-api"
	schemaVersion = "v1"
)

type DomainEvent struct {
	EventID    string         `json:"event_id"`
	EventType  string         `json:"event_type"`
	OccurredAt time.Time      `json:"occurred_at"`
	Label      string         `json:"label"`
	EntityID   string         `json:"entity_id"`
	Data       map[string]any `json:"data,omitempty"`
}

func NewDomainEvent(eventType string, label string, entityID string, data map[string]any) DomainEvent {
	return DomainEvent{
		EventID:    uuid.NewString(),
		EventType:  eventType,
		OccurredAt: time.Now().UTC(),
		Label:      label,
		EntityID:   entityID,
		Data:       data,
	}
}

// NewRelationshipEvent keys the event by the source node so all events of one
// node land on the same partition.
func NewRelationshipEvent(relationshipType string, sourceLabel string, sourceID string, targetLabel string, targetID string) DomainEvent {
	return NewDomainEvent(EventRelationshipAssigned, sourceLabel, sourceID, map[string]any{
		"relationship_type": relationshipType,
		"target_label":      targetLabel,
		"target_id":         targetID,
	})
}
