package infrastructure

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/flowcart/order-system/payment-service/domain"
	"github.com/flowcart/order-system/shared/models"
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

func TestPostgresPaymentRepository_Save(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresPaymentRepository(db)

	payment, err := domain.ProcessPayment(models.GenerateUUID(), models.NewMoney(25000, "USD"), domain.NewAuthorizationPolicy(50000))
	require.NoError(t, err)

	mock.ExpectExec(`INSERT INTO payments`).
		WithArgs(payment.ID.String(), payment.OrderID.String(), int64(25000), "USD", "SUCCEEDED",
			sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.Save(context.Background(), payment))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresPaymentRepository_FindByOrderID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresPaymentRepository(db)

	paymentID := models.GenerateUUID()
	orderID := models.GenerateUUID()

	rows := sqlmock.NewRows([]string{"id", "order_id", "amount", "currency", "status", "created_at", "updated_at"}).
		AddRow(paymentID.String(), orderID.String(), int64(60000), "USD", "FAILED", time.Now(), time.Now())
	mock.ExpectQuery(`SELECT id, order_id, amount`).
		WithArgs(orderID.String()).
		WillReturnRows(rows)

	payment, err := repo.FindByOrderID(context.Background(), orderID)
	require.NoError(t, err)
	require.NotNil(t, payment)
	assert.Equal(t, orderID, payment.OrderID)
	assert.Equal(t, domain.PaymentStatusFailed, payment.Status)
	assert.Equal(t, int64(60000), payment.Amount.Amount)
}

func TestPostgresPaymentRepository_FindByOrderIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresPaymentRepository(db)
	orderID := models.GenerateUUID()

	mock.ExpectQuery(`SELECT id, order_id, amount`).
		WithArgs(orderID.String()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	payment, err := repo.FindByOrderID(context.Background(), orderID)
	require.NoError(t, err)
	assert.Nil(t, payment)
}
