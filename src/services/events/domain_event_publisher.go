package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"healthgraph/src/infra/kafka"
)

// Publisher delivers domain events to whoever listens for graph mutations.
type Publisher interface {
	Publish(ctx context.Context, events ...DomainEvent) error
}

type MessageProducer interface {
	Produce(messages []kafka.Message, topic string) error
}

type DomainEventPublisher struct {
	logger   *slog.Logger
	producer MessageProducer
	topic    string
}

func NewDomainEventPublisher(
	logger *slog.Logger,
	producer MessageProducer,
	topic string,
) *DomainEventPublisher {
	return &DomainEventPublisher{
		logger:   logger,
		producer: producer,
		topic:    topic,
	}
}

// Publish sends the events as one batch. Events that cannot be serialized are
// logged and skipped.
func (p *DomainEventPublisher) Publish(ctx context.Context, events ...DomainEvent) error {
	if len(events) == 0 {
		return nil
	}

	messages := make([]kafka.Message, 0, len(events))

	for _, event := range events {
		eventBytes, err := json.Marshal(event)
		if err != nil {
			p.logger.Error("Failed to marshal domain event",
				"error", err,
				"event_id", event.EventID,
				"entity_id", event.EntityID)
			continue
		}

		messages = append(messages, kafka.Message{
			Key:     event.EntityID,
			Value:   eventBytes,
			Headers: p.createEventHeaders(event),
		})
	}

	if err := p.producer.Produce(messages, p.topic); err != nil {
		return fmt.Errorf("DomainEventPublisher.Publish - failed to publish %d events to topic %s: %w", len(messages), p.topic, err)
	}

	p.logger.Debug("Published domain events", "topic", p.topic, "events_count", len(messages))
	return nil
}

// createEventHeaders exposes the fields consumers filter on without decoding the payload.
func (p *DomainEventPublisher) createEventHeaders(event DomainEvent) map[string]string {
	headers := map[string]string{
		"event_type":     event.EventType,
		"source_service": sourceService,
		"schema_version": schemaVersion,
		"event_id":       event.EventID,
		"label":          event.Label,
	}

	if relationshipType, ok := event.Data["relationship_type"].(string); ok {
		headers["relation_type"] = relationshipType
	}

	if len(event.Data) > 0 {
		fields := make([]string, 0, len(event.Data))
		for field := range event.Data {
			fields = append(fields, field)
		}
		sort.Strings(fields)
		headers["fields_changed"] = strings.Join(fields, ",")
	}

	return headers
}

// NoopPublisher is used when no broker is configured.
type NoopPublisher struct {
	logger *slog.Logger
}

func NewNoopPublisher(logger *slog.Logger) *NoopPublisher {
	return &NoopPublisher{logger: logger}
}

func (p *NoopPublisher) Publish(_ context.Context, events ...DomainEvent) error {
	for _, event := range events {
		p.logger.Debug("Domain event not published, no broker configured",
			"event_type", event.EventType,
			"entity_id", event.EntityID)
	}
	return nil
}
