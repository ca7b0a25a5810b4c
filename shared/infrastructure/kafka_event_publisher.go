package infrastructure

import (
	"context"

	"github.com/flowcart/order-system/shared/outbox"
	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
)

var _ outbox.Sender = (*KafkaEventPublisher)(nil)

// KafkaEventPublisher hands serialized envelopes to Kafka. Messages are keyed
// by aggregate id and hashed to a partition, which is what preserves
// per-order ordering on every topic.
type KafkaEventPublisher struct {
	writer *kafka.Writer
}

// NewKafkaEventPublisher creates a publisher for the given brokers
func NewKafkaEventPublisher(brokers []string) *KafkaEventPublisher {
	return &KafkaEventPublisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireAll,
			AllowAutoTopicCreation: true,
		},
	}
}

// Send writes one message and reports only confirmed handoffs as success
func (p *KafkaEventPublisher) Send(ctx context.Context, topic, key string, payload []byte) error {
	err := p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: payload,
	})
	if err != nil {
		return errors.Wrapf(err, "failed to write message to topic %s", topic)
	}

	return nil
}

// Close closes the underlying writer
func (p *KafkaEventPublisher) Close() error {
	return p.writer.Close()
}
