package events_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"

	"healthgraph/src/infra/kafka"
	"healthgraph/src/services/events"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type fakeProducer struct {
	messages []kafka.Message
	topic    string
	calls    int
	err      error
}

func (p *fakeProducer) Produce(messages []kafka.Message, topic string) error {
	p.calls++
	p.messages = append(p.messages, messages...)
	p.topic = topic
	return p.err
}

var _ = Describe("DomainEventPublisher", func() {
	var (
		ctx       context.Context
		producer  *fakeProducer
		publisher *events.DomainEventPublisher
	)

	BeforeEach(func() {
		ctx = context.Background()
		producer = &fakeProducer{}
		publisher = events.NewDomainEventPublisher(slog.New(slog.NewTextHandler(io.Discard, nil)), producer, "healthgraph.events")
	})

	It("sends every event keyed by its entity in one batch", func() {
		// ARRANGE
		created := events.NewDomainEvent(events.EventEntityCreated, "Doctor", "D-1", nil)
		deleted := events.NewDomainEvent(events.EventEntityDeleted, "Patient", "P-1", nil)

		// ACT
		err := publisher.Publish(ctx, created, deleted)

		// ASSERT
		Expect(err).NotTo(HaveOccurred())
		Expect(producer.calls).To(Equal(1))
		Expect(producer.topic).To(Equal("healthgraph.events"))
		Expect(producer.messages).To(HaveLen(2))
		Expect(producer.messages[0].Key).To(Equal("D-1"))
		Expect(producer.messages[1].Key).To(Equal("P-1"))

		var decoded events.DomainEvent
		Expect(json.Unmarshal(producer.messages[0].Value, &decoded)).To(Succeed())
		Expect(decoded.EventID).To(Equal(created.EventID))
		Expect(decoded.EventType).To(Equal(events.EventEntityCreated))
	})

	It("describes the event in headers", func() {
		// ARRANGE
		event := events.NewRelationshipEvent("TREATED_BY", "Patient", "P-1", "Doctor", "D-1")

		// ACT
		Expect(publisher.Publish(ctx, event)).To(Succeed())

		// ASSERT
		Expect(producer.messages[0].Headers).To(Equal(map[string]string{
			"event_type":     events.EventRelationshipAssigned,
			"source_service": "healthgraph-api",
			"schema_version": "v1",
			"event_id":       event.EventID,
			"label":          "Patient",
			"relation_type":  "TREATED_BY",
			"fields_changed": "relationship_type,target_id,target_label",
		}))
	})

	It("leaves relationship headers out of entity events", func() {
		// ACT
		Expect(publisher.Publish(ctx, events.NewDomainEvent(events.EventEntityUpdated, "Doctor", "D-1", nil))).To(Succeed())

		// ASSERT
		Expect(producer.messages[0].Headers).NotTo(HaveKey("relation_type"))
		Expect(producer.messages[0].Headers).NotTo(HaveKey("fields_changed"))
	})

	It("does not call the producer without events", func() {
		Expect(publisher.Publish(ctx)).To(Succeed())
		Expect(producer.calls).To(BeZero())
	})

	It("wraps producer failures", func() {
		// ARRANGE
		producer.err = errors.New("leader not available")

		// ACT
		err := publisher.Publish(ctx, events.NewDomainEvent(events.EventEntityCreated, "Doctor", "D-1", nil))

		// ASSERT
		Expect(err).To(MatchError(producer.err))
		Expect(err.Error()).To(ContainSubstring("healthgraph.events"))
	})
})

var _ = Describe("NoopPublisher", func() {
	It("accepts every event", func() {
		publisher := events.NewNoopPublisher(slog.New(slog.NewTextHandler(io.Discard, nil)))

		Expect(publisher.Publish(context.Background(), events.NewDomainEvent(events.EventEntityCreated, "Doctor", "D-1", nil))).To(Succeed())
	})
})
