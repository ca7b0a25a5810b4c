package inbox

import (
	"context"
	"time"

	"github.com/flowcart/order-system/shared/database"
	"github.com/flowcart/order-system/shared/models"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

// PostgresLedger implements Ledger using PostgreSQL
type PostgresLedger struct {
	db *sqlx.DB
}

// NewPostgresLedger creates a new PostgresLedger
func NewPostgresLedger(db *sqlx.DB) *PostgresLedger {
	return &PostgresLedger{db: db}
}

// IsProcessed reports whether this service already handled the event
func (l *PostgresLedger) IsProcessed(ctx context.Context, eventID models.ID) (bool, error) {
	var exists bool
	err := database.GetTx(ctx, l.db).GetContext(ctx, &exists,
		`SELECT EXISTS (SELECT 1 FROM processed_events WHERE event_id = $1)`, eventID.String())
	if err != nil {
		return false, errors.Wrap(err, "failed to check processed event")
	}

	return exists, nil
}

// MarkProcessed records the event id within the caller's transaction
func (l *PostgresLedger) MarkProcessed(ctx context.Context, eventID models.ID) error {
	_, err := database.GetTx(ctx, l.db).ExecContext(ctx,
		`INSERT INTO processed_events (event_id, processed_at) VALUES ($1, $2)`,
		eventID.String(), time.Now())
	if err != nil {
		return errors.Wrap(err, "failed to mark event processed")
	}

	return nil
}
