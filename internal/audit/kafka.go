package audit

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/twmb/franz-go/pkg/kgo"
)

// DefaultTopic is the audit topic unless config overrides it.
const DefaultTopic = "idcheck.audit"

// KafkaStore ships events to a Kafka (or Redpanda) topic. Events are keyed by
// input digest so repeated checks of the same ID land in one partition, in
// order.
type KafkaStore struct {
	client *kgo.Client
	topic  string
}

// NewKafkaStore connects a producer to the given brokers.
func NewKafkaStore(brokers []string, topic string) (*KafkaStore, error) {
	if topic == "" {
		topic = DefaultTopic
	}
	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.DefaultProduceTopic(topic),
		kgo.ProducerBatchCompression(kgo.SnappyCompression()),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka audit client: %w", err)
	}
	return &KafkaStore{client: client, topic: topic}, nil
}

// Append implements Store. Production is synchronous so a returned nil means
// the broker accepted the event.
func (s *KafkaStore) Append(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal audit event: %w", err)
	}
	record := &kgo.Record{
		Topic: s.topic,
		Key:   []byte(event.InputDigest),
		Value: payload,
	}
	if err := s.client.ProduceSync(ctx, record).FirstErr(); err != nil {
		return fmt.Errorf("produce audit event: %w", err)
	}
	return nil
}

// Close flushes pending records and releases the producer.
func (s *KafkaStore) Close(ctx context.Context) error {
	if err := s.client.Flush(ctx); err != nil {
		return fmt.Errorf("flush audit producer: %w", err)
	}
	s.client.Close()
	return nil
}
