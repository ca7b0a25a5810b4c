package infrastructure

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/flowcart/order-system/inventory-service/domain"
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

func TestPostgresInventoryRepository_Save(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresInventoryRepository(db)

	stock, err := domain.NewProductInventory("laptop", 10)
	require.NoError(t, err)

	mock.ExpectExec(`INSERT INTO product_inventory`).
		WithArgs("laptop", 10, sqlmock.AnyArg(), sqlmock.AnyArg(), 1).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.Save(context.Background(), stock))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresInventoryRepository_UpdateUsesOptimisticLock(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresInventoryRepository(db)

	stock, err := domain.NewProductInventory("laptop", 10)
	require.NoError(t, err)
	require.NoError(t, stock.SetQuantity(8))

	mock.ExpectExec(`UPDATE product_inventory`).
		WithArgs(8, sqlmock.AnyArg(), 2, "laptop", 1).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Update(context.Background(), stock))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresInventoryRepository_UpdateVersionConflict(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresInventoryRepository(db)

	stock, err := domain.NewProductInventory("laptop", 10)
	require.NoError(t, err)
	require.NoError(t, stock.SetQuantity(8))

	mock.ExpectExec(`UPDATE product_inventory`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Update(context.Background(), stock), ErrVersionConflict)
}

func TestPostgresInventoryRepository_FindByProductID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresInventoryRepository(db)

	rows := sqlmock.NewRows([]string{"product_id", "available_quantity", "created_at", "updated_at", "version"}).
		AddRow("laptop", 10, time.Now(), time.Now(), 3)
	mock.ExpectQuery(`SELECT product_id, available_quantity`).
		WithArgs("laptop").
		WillReturnRows(rows)

	stock, err := repo.FindByProductID(context.Background(), "laptop")
	require.NoError(t, err)
	require.NotNil(t, stock)
	assert.Equal(t, "laptop", stock.ProductID)
	assert.Equal(t, 10, stock.AvailableQuantity)
	assert.Equal(t, 3, stock.Version.Value)
}

func TestPostgresInventoryRepository_FindByProductIDForUpdateLocksRow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresInventoryRepository(db)

	rows := sqlmock.NewRows([]string{"product_id", "available_quantity", "created_at", "updated_at", "version"}).
		AddRow("laptop", 10, time.Now(), time.Now(), 1)
	mock.ExpectQuery(`(?s)SELECT product_id, available_quantity.+FOR UPDATE`).
		WithArgs("laptop").
		WillReturnRows(rows)

	stock, err := repo.FindByProductIDForUpdate(context.Background(), "laptop")
	require.NoError(t, err)
	require.NotNil(t, stock)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresInventoryRepository_FindByProductIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresInventoryRepository(db)

	mock.ExpectQuery(`SELECT product_id, available_quantity`).
		WithArgs("keyboard").
		WillReturnRows(sqlmock.NewRows([]string{"product_id"}))

	stock, err := repo.FindByProductID(context.Background(), "keyboard")
	require.NoError(t, err)
	assert.Nil(t, stock)
}
