package infrastructure

import (
	"context"
	"database/sql"
	"time"

	"github.com/flowcart/order-system/inventory-service/domain"
	"github.com/flowcart/order-system/shared/database"
	"github.com/flowcart/order-system/shared/models"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

// ErrVersionConflict is returned when an optimistic-lock update misses
var ErrVersionConflict = errors.New("inventory was modified concurrently")

// PostgresInventoryRepository implements InventoryRepository using PostgreSQL
type PostgresInventoryRepository struct {
	db *sqlx.DB
}

// NewPostgresInventoryRepository creates a new PostgresInventoryRepository
func NewPostgresInventoryRepository(db *sqlx.DB) *PostgresInventoryRepository {
	return &PostgresInventoryRepository{db: db}
}

// postgresInventory represents a product inventory in the database
type postgresInventory struct {
	ProductID         string    `db:"product_id"`
	AvailableQuantity int       `db:"available_quantity"`
	CreatedAt         time.Time `db:"created_at"`
	UpdatedAt         time.Time `db:"updated_at"`
	Version           int       `db:"version"`
}

func (r *PostgresInventoryRepository) q(ctx context.Context) database.Querier {
	return database.GetTx(ctx, r.db)
}

// Save inserts a new product inventory record
func (r *PostgresInventoryRepository) Save(ctx context.Context, inventory *domain.ProductInventory) error {
	query := `
		INSERT INTO product_inventory (
			product_id, available_quantity, created_at, updated_at, version
		) VALUES (
			:product_id, :available_quantity, :created_at, :updated_at, :version
		)`

	if _, err := r.q(ctx).NamedExecContext(ctx, query, r.toPostgres(inventory)); err != nil {
		return errors.Wrap(err, "failed to insert product inventory")
	}

	return nil
}

// Update persists a quantity change with optimistic locking
func (r *PostgresInventoryRepository) Update(ctx context.Context, inventory *domain.ProductInventory) error {
	query := `
		UPDATE product_inventory
		SET available_quantity = :available_quantity, updated_at = :updated_at, version = :version
		WHERE product_id = :product_id AND version = :old_version`

	result, err := r.q(ctx).NamedExecContext(ctx, query, map[string]interface{}{
		"product_id":         inventory.ProductID,
		"available_quantity": inventory.AvailableQuantity,
		"updated_at":         inventory.Timestamps.UpdatedAt,
		"version":            inventory.Version.Value,
		"old_version":        inventory.Version.Value - 1,
	})
	if err != nil {
		return errors.Wrap(err, "failed to update product inventory")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "failed to read update result")
	}
	if affected == 0 {
		return ErrVersionConflict
	}

	return nil
}

// FindByProductID finds a product inventory by product ID
func (r *PostgresInventoryRepository) FindByProductID(ctx context.Context, productID string) (*domain.ProductInventory, error) {
	return r.find(ctx, productID, false)
}

// FindByProductIDForUpdate finds a product inventory and locks the row for
// the duration of the surrounding transaction
func (r *PostgresInventoryRepository) FindByProductIDForUpdate(ctx context.Context, productID string) (*domain.ProductInventory, error) {
	return r.find(ctx, productID, true)
}

func (r *PostgresInventoryRepository) find(ctx context.Context, productID string, forUpdate bool) (*domain.ProductInventory, error) {
	query := `
		SELECT product_id, available_quantity, created_at, updated_at, version
		FROM product_inventory
		WHERE product_id = $1`
	if forUpdate {
		query += " FOR UPDATE"
	}

	var pgInventory postgresInventory
	if err := r.q(ctx).GetContext(ctx, &pgInventory, query, productID); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // Product not found
		}
		return nil, errors.Wrap(err, "failed to find product inventory")
	}

	return r.toDomain(&pgInventory), nil
}

// toPostgres converts a domain inventory to the postgres model
func (r *PostgresInventoryRepository) toPostgres(inventory *domain.ProductInventory) *postgresInventory {
	return &postgresInventory{
		ProductID:         inventory.ProductID,
		AvailableQuantity: inventory.AvailableQuantity,
		CreatedAt:         inventory.Timestamps.CreatedAt,
		UpdatedAt:         inventory.Timestamps.UpdatedAt,
		Version:           inventory.Version.Value,
	}
}

// toDomain converts the postgres model to a domain inventory
func (r *PostgresInventoryRepository) toDomain(pgInventory *postgresInventory) *domain.ProductInventory {
	return &domain.ProductInventory{
		ProductID:         pgInventory.ProductID,
		AvailableQuantity: pgInventory.AvailableQuantity,
		Timestamps: models.Timestamps{
			CreatedAt: pgInventory.CreatedAt,
			UpdatedAt: pgInventory.UpdatedAt,
		},
		Version: models.Version{Value: pgInventory.Version},
	}
}
