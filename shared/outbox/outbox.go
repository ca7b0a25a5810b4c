// Package outbox implements the transactional-outbox side of event
// publication: events are appended to a per-service table inside the same
// local transaction as the business state change, then forwarded to the bus
// by a background publisher.
package outbox

import (
	"context"
	"time"

	"github.com/flowcart/order-system/shared/events"
	"github.com/flowcart/order-system/shared/models"
)

// Row is a single event awaiting publication. Sent transitions false to true
// exactly once, after a confirmed bus handoff; rows are never deleted.
type Row struct {
	ID          int64     `db:"id"`
	AggregateID string    `db:"aggregate_id"`
	EventType   string    `db:"event_type"`
	Payload     []byte    `db:"payload"`
	CreatedAt   time.Time `db:"created_at"`
	Sent        bool      `db:"sent"`
}

// Store is the durable outbox owned by a single service
type Store interface {
	// Enqueue appends the envelope for later publication. It joins the
	// caller's transaction when one is carried in the context, which is what
	// makes the aggregate mutation and the outbox insert atomic.
	Enqueue(ctx context.Context, aggregateID models.ID, envelope *events.Envelope) error
	FindUnsent(ctx context.Context, limit int) ([]Row, error)
	MarkSent(ctx context.Context, id int64) error
}

// Sender hands a serialized envelope to the event bus, keyed for
// per-aggregate ordering
type Sender interface {
	Send(ctx context.Context, topic, key string, payload []byte) error
}
