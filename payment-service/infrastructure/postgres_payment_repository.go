package infrastructure

import (
	"context"
	"database/sql"
	"time"

	"github.com/flowcart/order-system/payment-service/domain"
	"github.com/flowcart/order-system/shared/database"
	"github.com/flowcart/order-system/shared/models"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

// PostgresPaymentRepository implements PaymentRepository using PostgreSQL
type PostgresPaymentRepository struct {
	db *sqlx.DB
}

// NewPostgresPaymentRepository creates a new PostgresPaymentRepository
func NewPostgresPaymentRepository(db *sqlx.DB) *PostgresPaymentRepository {
	return &PostgresPaymentRepository{db: db}
}

// postgresPayment represents a payment in the database
type postgresPayment struct {
	ID        string    `db:"id"`
	OrderID   string    `db:"order_id"`
	Amount    int64     `db:"amount"`
	Currency  string    `db:"currency"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r *PostgresPaymentRepository) q(ctx context.Context) database.Querier {
	return database.GetTx(ctx, r.db)
}

// Save inserts a new payment record
func (r *PostgresPaymentRepository) Save(ctx context.Context, payment *domain.Payment) error {
	query := `
		INSERT INTO payments (
			id, order_id, amount, currency, status, created_at, updated_at
		) VALUES (
			:id, :order_id, :amount, :currency, :status, :created_at, :updated_at
		)`

	pgPayment := &postgresPayment{
		ID:        payment.ID.String(),
		OrderID:   payment.OrderID.String(),
		Amount:    payment.Amount.Amount,
		Currency:  payment.Amount.Currency,
		Status:    string(payment.Status),
		CreatedAt: payment.Timestamps.CreatedAt,
		UpdatedAt: payment.Timestamps.UpdatedAt,
	}

	if _, err := r.q(ctx).NamedExecContext(ctx, query, pgPayment); err != nil {
		return errors.Wrap(err, "failed to insert payment")
	}

	return nil
}

// FindByOrderID finds the payment recorded for an order
func (r *PostgresPaymentRepository) FindByOrderID(ctx context.Context, orderID models.ID) (*domain.Payment, error) {
	query := `
		SELECT id, order_id, amount, currency, status, created_at, updated_at
		FROM payments
		WHERE order_id = $1
		LIMIT 1`

	var pgPayment postgresPayment
	if err := r.q(ctx).GetContext(ctx, &pgPayment, query, orderID.String()); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // Payment not found
		}
		return nil, errors.Wrap(err, "failed to find payment")
	}

	return r.toDomain(&pgPayment)
}

// toDomain converts the postgres model to a domain payment
func (r *PostgresPaymentRepository) toDomain(pgPayment *postgresPayment) (*domain.Payment, error) {
	id, err := models.NewID(pgPayment.ID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid payment ID")
	}

	orderID, err := models.NewID(pgPayment.OrderID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid order ID")
	}

	return &domain.Payment{
		ID:      id,
		OrderID: orderID,
		Amount:  models.NewMoney(pgPayment.Amount, pgPayment.Currency),
		Status:  domain.PaymentStatus(pgPayment.Status),
		Timestamps: models.Timestamps{
			CreatedAt: pgPayment.CreatedAt,
			UpdatedAt: pgPayment.UpdatedAt,
		},
	}, nil
}
