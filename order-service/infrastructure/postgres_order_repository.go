package infrastructure

import (
	"context"
	"database/sql"
	"time"

	"github.com/flowcart/order-system/order-service/domain"
	"github.com/flowcart/order-system/shared/database"
	"github.com/flowcart/order-system/shared/models"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

// ErrVersionConflict is returned when an optimistic-lock update misses
var ErrVersionConflict = errors.New("order was modified concurrently")

// PostgresOrderRepository implements OrderRepository using PostgreSQL.
// Every query goes through database.GetTx so the repository joins the
// caller's transaction when one is open.
type PostgresOrderRepository struct {
	db *sqlx.DB
}

// NewPostgresOrderRepository creates a new PostgresOrderRepository
func NewPostgresOrderRepository(db *sqlx.DB) *PostgresOrderRepository {
	return &PostgresOrderRepository{db: db}
}

// postgresOrder represents an order in the database
type postgresOrder struct {
	ID          string    `db:"id"`
	CustomerID  string    `db:"customer_id"`
	TotalAmount int64     `db:"total_amount"`
	Currency    string    `db:"currency"`
	Status      string    `db:"status"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
	Version     int       `db:"version"`
}

// postgresOrderItem represents an order line item in the database
type postgresOrderItem struct {
	OrderID     string `db:"order_id"`
	ProductID   string `db:"product_id"`
	ProductName string `db:"product_name"`
	UnitPrice   int64  `db:"unit_price"`
	Quantity    int    `db:"quantity"`
}

func (r *PostgresOrderRepository) q(ctx context.Context) database.Querier {
	return database.GetTx(ctx, r.db)
}

// Save inserts a new order and its line items
func (r *PostgresOrderRepository) Save(ctx context.Context, order *domain.Order) error {
	q := r.q(ctx)

	query := `
		INSERT INTO orders (
			id, customer_id, total_amount, currency, status,
			created_at, updated_at, version
		) VALUES (
			:id, :customer_id, :total_amount, :currency, :status,
			:created_at, :updated_at, :version
		)`

	if _, err := q.NamedExecContext(ctx, query, r.toPostgres(order)); err != nil {
		return errors.Wrap(err, "failed to insert order")
	}

	itemQuery := `
		INSERT INTO order_items (order_id, product_id, product_name, unit_price, quantity)
		VALUES (:order_id, :product_id, :product_name, :unit_price, :quantity)`

	for _, item := range order.Items {
		pgItem := &postgresOrderItem{
			OrderID:     order.ID.String(),
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			UnitPrice:   item.UnitPrice,
			Quantity:    item.Quantity,
		}
		if _, err := q.NamedExecContext(ctx, itemQuery, pgItem); err != nil {
			return errors.Wrap(err, "failed to insert order item")
		}
	}

	return nil
}

// Update persists a status change with optimistic locking
func (r *PostgresOrderRepository) Update(ctx context.Context, order *domain.Order) error {
	query := `
		UPDATE orders
		SET status = :status, updated_at = :updated_at, version = :version
		WHERE id = :id AND version = :old_version`

	result, err := r.q(ctx).NamedExecContext(ctx, query, map[string]interface{}{
		"id":          order.ID.String(),
		"status":      string(order.Status),
		"updated_at":  order.Timestamps.UpdatedAt,
		"version":     order.Version.Value,
		"old_version": order.Version.Value - 1,
	})
	if err != nil {
		return errors.Wrap(err, "failed to update order")
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

// FindByID finds an order by ID, items included
func (r *PostgresOrderRepository) FindByID(ctx context.Context, id models.ID) (*domain.Order, error) {
	q := r.q(ctx)

	query := `
		SELECT id, customer_id, total_amount, currency, status,
			   created_at, updated_at, version
		FROM orders
		WHERE id = $1`

	var pgOrder postgresOrder
	if err := q.GetContext(ctx, &pgOrder, query, id.String()); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // Order not found
		}
		return nil, errors.Wrap(err, "failed to find order")
	}

	items, err := r.findItems(ctx, id.String())
	if err != nil {
		return nil, err
	}

	return r.toDomain(&pgOrder, items)
}

// FindAll returns every stored order, items included
func (r *PostgresOrderRepository) FindAll(ctx context.Context) ([]*domain.Order, error) {
	q := r.q(ctx)

	query := `
		SELECT id, customer_id, total_amount, currency, status,
			   created_at, updated_at, version
		FROM orders
		ORDER BY created_at DESC`

	var pgOrders []postgresOrder
	if err := q.SelectContext(ctx, &pgOrders, query); err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*domain.Order, 0, len(pgOrders))
	for i := range pgOrders {
		items, err := r.findItems(ctx, pgOrders[i].ID)
		if err != nil {
			return nil, err
		}
		order, err := r.toDomain(&pgOrders[i], items)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}

	return orders, nil
}

func (r *PostgresOrderRepository) findItems(ctx context.Context, orderID string) ([]postgresOrderItem, error) {
	query := `
		SELECT order_id, product_id, product_name, unit_price, quantity
		FROM order_items
		WHERE order_id = $1`

	var pgItems []postgresOrderItem
	if err := r.q(ctx).SelectContext(ctx, &pgItems, query, orderID); err != nil {
		return nil, errors.Wrap(err, "failed to find order items")
	}

	return pgItems, nil
}

// toPostgres converts a domain order to the postgres model
func (r *PostgresOrderRepository) toPostgres(order *domain.Order) *postgresOrder {
	return &postgresOrder{
		ID:          order.ID.String(),
		CustomerID:  order.CustomerID,
		TotalAmount: order.TotalAmount.Amount,
		Currency:    order.TotalAmount.Currency,
		Status:      string(order.Status),
		CreatedAt:   order.Timestamps.CreatedAt,
		UpdatedAt:   order.Timestamps.UpdatedAt,
		Version:     order.Version.Value,
	}
}

// toDomain converts the postgres model to a domain order
func (r *PostgresOrderRepository) toDomain(pgOrder *postgresOrder, pgItems []postgresOrderItem) (*domain.Order, error) {
	id, err := models.NewID(pgOrder.ID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid order ID")
	}

	items := make([]domain.OrderItem, len(pgItems))
	for i, pgItem := range pgItems {
		items[i] = domain.OrderItem{
			ProductID:   pgItem.ProductID,
			ProductName: pgItem.ProductName,
			UnitPrice:   pgItem.UnitPrice,
			Quantity:    pgItem.Quantity,
		}
	}

	return &domain.Order{
		ID:          id,
		CustomerID:  pgOrder.CustomerID,
		TotalAmount: models.NewMoney(pgOrder.TotalAmount, pgOrder.Currency),
		Status:      domain.OrderStatus(pgOrder.Status),
		Items:       items,
		Timestamps: models.Timestamps{
			CreatedAt: pgOrder.CreatedAt,
			UpdatedAt: pgOrder.UpdatedAt,
		},
		Version: models.Version{Value: pgOrder.Version},
	}, nil
}
