package outbox

import (
	"context"
	"time"

	"github.com/flowcart/order-system/shared/events"
	"github.com/flowcart/order-system/shared/telemetry"
	"go.uber.org/zap"
)

// Publisher polls the outbox on a fixed interval and forwards unsent rows to
// the bus. Publish failures leave the row untouched for the next cycle, so
// publication is at-least-once: the bus is assumed to recover eventually and
// duplicates are absorbed downstream by each consumer's idempotency ledger.
type Publisher struct {
	store   Store
	sender  Sender
	options *publisherOptions

	log     *zap.Logger
	metrics *telemetry.EventMetrics
}

type publisherOptions struct {
	interval  time.Duration
	batchSize int
}

type PublisherOption func(*publisherOptions)

func WithInterval(interval time.Duration) PublisherOption {
	return func(o *publisherOptions) {
		o.interval = interval
	}
}

func WithBatchSize(batchSize int) PublisherOption {
	return func(o *publisherOptions) {
		o.batchSize = batchSize
	}
}

// NewPublisher creates a new outbox publisher
func NewPublisher(store Store, sender Sender, log *zap.Logger, metrics *telemetry.EventMetrics, opts ...PublisherOption) *Publisher {
	options := &publisherOptions{
		interval:  5 * time.Second,
		batchSize: 100,
	}

	for _, opt := range opts {
		opt(options)
	}

	return &Publisher{
		store:   store,
		sender:  sender,
		options: options,
		log:     log,
		metrics: metrics,
	}
}

// Start runs the polling loop until the context is cancelled
func (p *Publisher) Start(ctx context.Context) {
	ticker := time.NewTicker(p.options.interval)
	defer ticker.Stop()

	p.log.Info("outbox publisher started", zap.Duration("interval", p.options.interval))

	for {
		select {
		case <-ctx.Done():
			p.log.Info("outbox publisher stopped")
			return
		case <-ticker.C:
			p.PublishPending(ctx)
		}
	}
}

// PublishPending forwards one batch of unsent rows to the bus
func (p *Publisher) PublishPending(ctx context.Context) {
	rows, err := p.store.FindUnsent(ctx, p.options.batchSize)
	if err != nil {
		p.log.Warn("failed to fetch unsent outbox rows", zap.Error(err))
		return
	}

	for _, row := range rows {
		p.publishRow(ctx, row)
	}
}

func (p *Publisher) publishRow(ctx context.Context, row Row) {
	topic, err := events.TopicFor(row.EventType)
	if err != nil {
		// Unroutable rows stay unsent so they surface in monitoring instead
		// of being silently lost.
		p.log.Error("outbox row has unroutable event type",
			zap.Int64("outbox_id", row.ID),
			zap.String("event_type", row.EventType))
		return
	}

	if err := p.sender.Send(ctx, topic, row.AggregateID, row.Payload); err != nil {
		p.log.Warn("failed to publish outbox row, will retry next cycle",
			zap.Int64("outbox_id", row.ID),
			zap.String("topic", topic),
			zap.Error(err))
		return
	}

	if err := p.store.MarkSent(ctx, row.ID); err != nil {
		// The event reached the bus but the flag did not commit; the next
		// cycle republishes and consumers deduplicate by event id.
		p.log.Warn("failed to mark outbox row sent",
			zap.Int64("outbox_id", row.ID),
			zap.Error(err))
		return
	}

	p.metrics.EventPublished(ctx, topic)
	p.log.Info("published outbox row",
		zap.Int64("outbox_id", row.ID),
		zap.String("topic", topic),
		zap.String("aggregate_id", row.AggregateID),
		zap.String("event_type", row.EventType))
}
