package outbox

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/flowcart/order-system/shared/events"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestPostgresStore_Enqueue(t *testing.T) {
	db, mock := newMockDB(t)
	store := NewPostgresStore(db)

	envelope, err := events.NewEnvelope(
		events.InventoryStatusEventType,
		events.InventoryStatusData{OrderID: "order-1", Status: events.InventoryReserved},
		"corr-1",
	)
	require.NoError(t, err)
	payload, err := envelope.ToJSON()
	require.NoError(t, err)

	mock.ExpectExec(`INSERT INTO outbox`).
		WithArgs("order-1", events.InventoryStatusEventType, payload, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, store.Enqueue(context.Background(), "order-1", envelope))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_FindUnsent(t *testing.T) {
	db, mock := newMockDB(t)
	store := NewPostgresStore(db)

	rows := sqlmock.NewRows([]string{"id", "aggregate_id", "event_type", "payload", "created_at", "sent"}).
		AddRow(int64(7), "order-1", events.OrderCreatedEventType, []byte(`{}`), time.Now(), false)
	mock.ExpectQuery(`SELECT id, aggregate_id, event_type, payload, created_at, sent`).
		WithArgs(100).
		WillReturnRows(rows)

	found, err := store.FindUnsent(context.Background(), 100)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, int64(7), found[0].ID)
	assert.Equal(t, "order-1", found[0].AggregateID)
	assert.False(t, found[0].Sent)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_MarkSent(t *testing.T) {
	db, mock := newMockDB(t)
	store := NewPostgresStore(db)

	mock.ExpectExec(`UPDATE outbox SET sent = true`).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, store.MarkSent(context.Background(), 7))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_MarkSent_AlreadySent(t *testing.T) {
	db, mock := newMockDB(t)
	store := NewPostgresStore(db)

	mock.ExpectExec(`UPDATE outbox SET sent = true`).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.Error(t, store.MarkSent(context.Background(), 7))
	assert.NoError(t, mock.ExpectationsWereMet())
}
