package kafka

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/IBM/sarama"
)

type KafkaProducer struct {
	logger   *slog.Logger
	producer sarama.SyncProducer
	brokers  []string
}

type Message struct {
	Key     string
	Value   []byte
	Headers map[string]string
}

func NewKafkaProducer(logger *slog.Logger, brokers []string) (*KafkaProducer, error) {
	config := sarama.NewConfig()
	config.Version = sarama.V2_8_0_0

	config.Producer.RequiredAcks = sarama.WaitForLocal
	config.Producer.Retry.Max = 3
	config.Producer.Return.Successes = true
	config.Producer.Compression = sarama.CompressionSnappy
	config.Producer.Flush.Frequency = 50 * time.Millisecond
	config.Producer.Flush.Messages = 50
	config.Producer.MaxMessageBytes = 1024 * 1024

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create producer: %w", err)
	}

	logger.Info("Kafka producer initialized", "brokers", brokers)

	return &KafkaProducer{
		logger:   logger,
		producer: producer,
		brokers:  brokers,
	}, nil
}

// Produce sends the messages concurrently and waits for every acknowledgement.
// It fails when at least one message was not accepted.
func (k *KafkaProducer) Produce(messages []Message, topic string) error {
	if len(messages) == 0 {
		return nil
	}

	batchSize := len(messages)

	type result struct {
		err   error
		index int
	}

	resultChan := make(chan result, batchSize)

	for i, msg := range messages {
		go func(idx int, msg *sarama.ProducerMessage) {
			_, _, err := k.producer.SendMessage(msg)
			resultChan <- result{err: err, index: idx}
		}(i, toProducerMessage(msg, topic))
	}

	var errs []error
	for i := 0; i < batchSize; i++ {
		res := <-resultChan
		if res.err != nil {
			errs = append(errs, fmt.Errorf("message %d failed: %w", res.index, res.err))
		}
	}

	if len(errs) > 0 {
		for _, err := range errs {
			k.logger.Error("Kafka message not delivered", "topic", topic, "error", err)
		}
		return fmt.Errorf("batch send failed: %d/%d messages failed", len(errs), batchSize)
	}

	k.logger.Debug("Kafka batch delivered", "topic", topic, "messages", batchSize)
	return nil
}

func toProducerMessage(msg Message, topic string) *sarama.ProducerMessage {
	headers := make([]sarama.RecordHeader, 0, len(msg.Headers))
	for key, value := range msg.Headers {
		headers = append(headers, sarama.RecordHeader{Key: []byte(key), Value: []byte(value)})
	}

	return &sarama.ProducerMessage{
		Topic:   topic,
		Key:     sarama.StringEncoder(msg.Key),
		Value:   sarama.ByteEncoder(msg.Value),
		Headers: headers,
	}
}

func (k *KafkaProducer) Close() error {
	if err := k.producer.Close(); err != nil {
		return fmt.Errorf("failed to close producer: %w", err)
	}
	return nil
}
