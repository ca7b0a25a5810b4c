package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// EventMetrics counts event traffic through the outbox and the consumers.
// A nil *EventMetrics is valid and records nothing, so callers do not need
// to guard for disabled telemetry.
type EventMetrics struct {
	published    metric.Int64Counter
	consumed     metric.Int64Counter
	retried      metric.Int64Counter
	deadLettered metric.Int64Counter
}

// NewEventMetrics creates the event-flow counters on the given meter
func NewEventMetrics(meter metric.Meter) (*EventMetrics, error) {
	published, err := meter.Int64Counter("events_published_total",
		metric.WithDescription("Events handed to the bus by the outbox publisher"))
	if err != nil {
		return nil, err
	}

	consumed, err := meter.Int64Counter("events_consumed_total",
		metric.WithDescription("Events successfully handled by a consumer"))
	if err != nil {
		return nil, err
	}

	retried, err := meter.Int64Counter("events_retried_total",
		metric.WithDescription("Consumer handler attempts that failed and were retried"))
	if err != nil {
		return nil, err
	}

	deadLettered, err := meter.Int64Counter("events_dead_lettered_total",
		metric.WithDescription("Messages routed to a dead-letter topic"))
	if err != nil {
		return nil, err
	}

	return &EventMetrics{
		published:    published,
		consumed:     consumed,
		retried:      retried,
		deadLettered: deadLettered,
	}, nil
}

func (m *EventMetrics) EventPublished(ctx context.Context, topic string) {
	if m == nil {
		return
	}
	m.published.Add(ctx, 1, metric.WithAttributes(attribute.String("topic", topic)))
}

func (m *EventMetrics) EventConsumed(ctx context.Context, topic string) {
	if m == nil {
		return
	}
	m.consumed.Add(ctx, 1, metric.WithAttributes(attribute.String("topic", topic)))
}

func (m *EventMetrics) EventRetried(ctx context.Context, topic string) {
	if m == nil {
		return
	}
	m.retried.Add(ctx, 1, metric.WithAttributes(attribute.String("topic", topic)))
}

func (m *EventMetrics) EventDeadLettered(ctx context.Context, topic string) {
	if m == nil {
		return
	}
	m.deadLettered.Add(ctx, 1, metric.WithAttributes(attribute.String("topic", topic)))
}
