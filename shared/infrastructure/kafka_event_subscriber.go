package infrastructure

import (
	"context"
	"time"

	"github.com/flowcart/order-system/shared/events"
	"github.com/flowcart/order-system/shared/outbox"
	"github.com/flowcart/order-system/shared/telemetry"
	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// KafkaEventSubscriber consumes one (topic, consumer group) pair serially per
// partition. Handler failures are retried a bounded number of times with a
// fixed delay; exhausting the bound routes the raw message, unmodified, to the
// topic's dead-letter destination and the offset is committed so a poison
// message cannot block the partition. Malformed payloads are dead-lettered
// immediately, without retry.
type KafkaEventSubscriber struct {
	reader      *kafka.Reader
	topic       string
	handler     events.Handler
	deadLetters outbox.Sender
	options     *subscriberOptions

	log     *zap.Logger
	metrics *telemetry.EventMetrics
}

type subscriberOptions struct {
	maxAttempts int
	retryDelay  time.Duration
}

type SubscriberOption func(*subscriberOptions)

func WithMaxAttempts(maxAttempts int) SubscriberOption {
	return func(o *subscriberOptions) {
		o.maxAttempts = maxAttempts
	}
}

func WithRetryDelay(retryDelay time.Duration) SubscriberOption {
	return func(o *subscriberOptions) {
		o.retryDelay = retryDelay
	}
}

// NewKafkaEventSubscriber creates a subscriber for one topic and group
func NewKafkaEventSubscriber(
	brokers []string,
	topic string,
	groupID string,
	handler events.Handler,
	deadLetters outbox.Sender,
	log *zap.Logger,
	metrics *telemetry.EventMetrics,
	opts ...SubscriberOption,
) *KafkaEventSubscriber {
	options := &subscriberOptions{
		maxAttempts: 3,
		retryDelay:  time.Second,
	}

	for _, opt := range opts {
		opt(options)
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: brokers,
		Topic:   topic,
		GroupID: groupID,
		MaxWait: 500 * time.Millisecond,
	})

	return &KafkaEventSubscriber{
		reader:      reader,
		topic:       topic,
		handler:     handler,
		deadLetters: deadLetters,
		options:     options,
		log: log.With(
			zap.String("topic", topic),
			zap.String("group", groupID),
			zap.String("handler", handler.HandlerID()),
		),
		metrics:     metrics,
	}
}

// Run consumes until the context is cancelled. A message's offset is
// committed only after it was fully handled, skipped as a duplicate, or
// dead-lettered; otherwise it is left uncommitted for redelivery.
func (s *KafkaEventSubscriber) Run(ctx context.Context) error {
	defer s.reader.Close()

	for {
		msg, err := s.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return errors.Wrap(err, "failed to fetch message")
		}

		if err := s.processMessage(ctx, msg); err != nil {
			s.log.Error("message left uncommitted for redelivery", zap.Error(err))
			continue
		}

		if err := s.reader.CommitMessages(ctx, msg); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			s.log.Error("failed to commit offset", zap.Error(err))
		}
	}
}

// processMessage applies the retry/dead-letter policy to a single delivery.
// A nil return means the offset may be committed.
func (s *KafkaEventSubscriber) processMessage(ctx context.Context, msg kafka.Message) error {
	envelope, err := events.FromJSON(msg.Value)
	if err != nil {
		s.log.Warn("malformed message, routing to dead letter",
			zap.String("key", string(msg.Key)),
			zap.Error(err))
		return s.deadLetter(ctx, msg)
	}

	var handleErr error
	for attempt := 1; attempt <= s.options.maxAttempts; attempt++ {
		handleErr = s.handler.Handle(ctx, envelope)
		if handleErr == nil {
			s.metrics.EventConsumed(ctx, s.topic)
			return nil
		}

		s.metrics.EventRetried(ctx, s.topic)
		s.log.Warn("handler attempt failed",
			zap.String("event_id", envelope.EventID.String()),
			zap.String("event_type", envelope.EventType),
			zap.Int("attempt", attempt),
			zap.Error(handleErr))

		if attempt < s.options.maxAttempts {
			select {
			case <-time.After(s.options.retryDelay):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}

	s.log.Error("retries exhausted, routing to dead letter",
		zap.String("event_id", envelope.EventID.String()),
		zap.String("event_type", envelope.EventType),
		zap.Int("attempts", s.options.maxAttempts),
		zap.Error(handleErr))

	return s.deadLetter(ctx, msg)
}

func (s *KafkaEventSubscriber) deadLetter(ctx context.Context, msg kafka.Message) error {
	topic := events.DeadLetterTopic(s.topic)
	if err := s.deadLetters.Send(ctx, topic, string(msg.Key), msg.Value); err != nil {
		return errors.Wrapf(err, "failed to dead letter message to %s", topic)
	}

	s.metrics.EventDeadLettered(ctx, s.topic)
	return nil
}

// Close releases the underlying reader and its group membership
func (s *KafkaEventSubscriber) Close() error {
	return s.reader.Close()
}
