// Package inbox implements the idempotent-consumer side of at-least-once
// delivery: each service keeps its own durable record of processed event ids
// and checks it before applying a side effect.
package inbox

import (
	"context"
	"time"

	"github.com/flowcart/order-system/shared/models"
)

// Record marks one event as processed by this service
type Record struct {
	EventID     string    `db:"event_id"`
	ProcessedAt time.Time `db:"processed_at"`
}

// Ledger is the processed-event record of a single consuming service.
// IsProcessed and MarkProcessed must run inside the same local transaction as
// the consumer's side effect, so "effect applied" and "marked processed" are
// atomic.
type Ledger interface {
	IsProcessed(ctx context.Context, eventID models.ID) (bool, error)
	MarkProcessed(ctx context.Context, eventID models.ID) error
}
