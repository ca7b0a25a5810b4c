package outbox

import (
	"context"
	"time"

	"github.com/flowcart/order-system/shared/database"
	"github.com/flowcart/order-system/shared/events"
	"github.com/flowcart/order-system/shared/models"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

// PostgresStore implements Store using PostgreSQL
type PostgresStore struct {
	db *sqlx.DB
}

// NewPostgresStore creates a new PostgresStore
func NewPostgresStore(db *sqlx.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Enqueue appends the envelope within the caller's transaction
func (s *PostgresStore) Enqueue(ctx context.Context, aggregateID models.ID, envelope *events.Envelope) error {
	payload, err := envelope.ToJSON()
	if err != nil {
		return errors.Wrap(err, "failed to serialize envelope")
	}

	query := `
		INSERT INTO outbox (aggregate_id, event_type, payload, created_at, sent)
		VALUES ($1, $2, $3, $4, false)`

	_, err = database.GetTx(ctx, s.db).ExecContext(ctx, query,
		aggregateID.String(), envelope.EventType, payload, time.Now())
	if err != nil {
		return errors.Wrap(err, "failed to insert outbox row")
	}

	return nil
}

// FindUnsent returns the oldest rows that have not been confirmed published
func (s *PostgresStore) FindUnsent(ctx context.Context, limit int) ([]Row, error) {
	query := `
		SELECT id, aggregate_id, event_type, payload, created_at, sent
		FROM outbox
		WHERE sent = false
		ORDER BY id ASC
		LIMIT $1`

	var rows []Row
	err := database.GetTx(ctx, s.db).SelectContext(ctx, &rows, query, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to select unsent outbox rows")
	}

	return rows, nil
}

// MarkSent records a confirmed bus handoff for the row
func (s *PostgresStore) MarkSent(ctx context.Context, id int64) error {
	res, err := database.GetTx(ctx, s.db).ExecContext(ctx,
		`UPDATE outbox SET sent = true WHERE id = $1 AND sent = false`, id)
	if err != nil {
		return errors.Wrap(err, "failed to mark outbox row sent")
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "failed to read rows affected")
	}
	if affected == 0 {
		return errors.Errorf("outbox row %d not found or already sent", id)
	}

	return nil
}
