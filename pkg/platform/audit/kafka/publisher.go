// Package kafka publishes audit events to a Kafka topic using franz-go.
// Events are keyed by organization so per-organization ordering is preserved.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"

	id "regate/pkg/domain"
	audit "regate/pkg/platform/audit"
)

const defaultTopic = "regate.audit.v1"

// Producer is the subset of kgo.Client the publisher needs; narrowed for
// testability.
type Producer interface {
	ProduceSync(ctx context.Context, rs ...*kgo.Record) kgo.ProduceResults
}

// Store publishes audit events to Kafka. It satisfies audit.Store for the
// append side; reads go through a separate consumer pipeline.
type Store struct {
	producer Producer
	topic    string
}

// New builds a Kafka-backed audit store from broker seeds.
func New(seeds []string, opts ...Option) (*Store, error) {
	client, err := kgo.NewClient(
		kgo.SeedBrokers(seeds...),
		kgo.ProducerBatchCompression(kgo.SnappyCompression()),
		kgo.RecordRetries(3),
	)
	if err != nil {
		return nil, fmt.Errorf("create kafka client: %w", err)
	}
	return NewWithProducer(client, opts...), nil
}

// NewWithProducer wires an existing producer, used by tests.
func NewWithProducer(producer Producer, opts ...Option) *Store {
	s := &Store{producer: producer, topic: defaultTopic}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Option configures the Kafka store.
type Option func(*Store)

// WithTopic overrides the destination topic.
func WithTopic(topic string) Option {
	return func(s *Store) { s.topic = topic }
}

// payload is the wire structure. Field names are part of the consumer
// contract; extend, never rename.
type payload struct {
	Category       string   `json:"category"`
	Timestamp      string   `json:"timestamp"`
	OrganizationID string   `json:"organization_id"`
	Action         string   `json:"action"`
	Email          string   `json:"email,omitempty"`
	Fields         []string `json:"fields,omitempty"`
	RequestID      string   `json:"request_id,omitempty"`
	ClientIP       string   `json:"client_ip,omitempty"`
}

// Append publishes one event synchronously. Delivery failure is returned to
// the caller; audit loss is not silent.
func (s *Store) Append(ctx context.Context, event audit.Event) error {
	body, err := json.Marshal(payload{
		Category:       string(event.Category),
		Timestamp:      event.Timestamp.Format(time.RFC3339Nano),
		OrganizationID: event.OrganizationID.String(),
		Action:         string(event.Action),
		Email:          event.Email,
		Fields:         event.Fields,
		RequestID:      event.RequestID,
		ClientIP:       event.ClientIP,
	})
	if err != nil {
		return fmt.Errorf("marshal audit event: %w", err)
	}

	record := &kgo.Record{
		Topic: s.topic,
		Key:   []byte(event.OrganizationID.String()),
		Value: body,
	}
	if err := s.producer.ProduceSync(ctx, record).FirstErr(); err != nil {
		return fmt.Errorf("produce audit event: %w", err)
	}
	return nil
}

// ListByOrganization is not supported on the Kafka sink; reads happen in the
// downstream consumer. Satisfies audit.Store so wiring stays uniform.
func (s *Store) ListByOrganization(_ context.Context, _ id.OrganizationID) ([]audit.Event, error) {
	return nil, fmt.Errorf("kafka audit store is write-only")
}
