package application

import (
	"context"

	"github.com/flowcart/order-system/payment-service/domain"
	"github.com/flowcart/order-system/shared/database"
	"github.com/flowcart/order-system/shared/events"
	"github.com/flowcart/order-system/shared/inbox"
	"github.com/flowcart/order-system/shared/models"
	"github.com/flowcart/order-system/shared/outbox"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// AuthorizePayment reacts to an order creation by running the authorization
// policy over the order total. The payment record, the outcome outbox row and
// the ledger mark commit in one local transaction.
type AuthorizePayment struct {
	paymentRepository domain.PaymentRepository
	policy            domain.AuthorizationPolicy
	outboxStore       outbox.Store
	ledger            inbox.Ledger
	tx                database.TxManager
	log               *zap.Logger
}

// NewAuthorizePayment creates a new AuthorizePayment use case
func NewAuthorizePayment(
	paymentRepository domain.PaymentRepository,
	policy domain.AuthorizationPolicy,
	outboxStore outbox.Store,
	ledger inbox.Ledger,
	tx database.TxManager,
	log *zap.Logger,
) *AuthorizePayment {
	return &AuthorizePayment{
		paymentRepository: paymentRepository,
		policy:            policy,
		outboxStore:       outboxStore,
		ledger:            ledger,
		tx:                tx,
		log:               log,
	}
}

// Execute executes the use case
func (uc *AuthorizePayment) Execute(ctx context.Context, envelope *events.Envelope) error {
	var data events.OrderCreatedData
	if err := envelope.UnmarshalPayload(&data); err != nil {
		return errors.Wrap(err, "failed to parse order created payload")
	}

	orderID, err := models.NewID(data.OrderID)
	if err != nil {
		return errors.Wrap(err, "invalid order ID in order created event")
	}

	return uc.tx.WithTx(ctx, func(ctx context.Context) error {
		processed, err := uc.ledger.IsProcessed(ctx, envelope.EventID)
		if err != nil {
			return errors.Wrap(err, "failed to check idempotency ledger")
		}
		if processed {
			uc.log.Info("skipping duplicate order created event",
				zap.String("event_id", envelope.EventID.String()),
				zap.String("order_id", data.OrderID))
			return nil
		}

		payment, err := domain.ProcessPayment(orderID, models.NewMoney(data.TotalAmount, data.Currency), uc.policy)
		if err != nil {
			return errors.Wrap(err, "failed to process payment")
		}

		if err := uc.paymentRepository.Save(ctx, payment); err != nil {
			return errors.Wrap(err, "failed to save payment")
		}

		outcome, err := events.NewEnvelope(events.PaymentStatusEventType, payment.StatusEventData(),
			events.CorrelationIDFromContext(ctx))
		if err != nil {
			return errors.Wrap(err, "failed to build payment status event")
		}

		if err := uc.outboxStore.Enqueue(ctx, orderID, outcome); err != nil {
			return errors.Wrap(err, "failed to enqueue payment status event")
		}

		uc.log.Info("payment authorization processed",
			zap.String("order_id", data.OrderID),
			zap.String("status", string(payment.Status)))

		return errors.Wrap(uc.ledger.MarkProcessed(ctx, envelope.EventID), "failed to mark event processed")
	})
}

// ErrPaymentNotFound is returned when an order has no payment record
var ErrPaymentNotFound = errors.New("payment not found")

// GetPayment reads the payment record for an order
type GetPayment struct {
	paymentRepository domain.PaymentRepository
}

// NewGetPayment creates a new GetPayment use case
func NewGetPayment(paymentRepository domain.PaymentRepository) *GetPayment {
	return &GetPayment{paymentRepository: paymentRepository}
}

// Execute returns the payment recorded for the given order
func (uc *GetPayment) Execute(ctx context.Context, orderID string) (*domain.Payment, error) {
	id, err := models.NewID(orderID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid order ID")
	}

	payment, err := uc.paymentRepository.FindByOrderID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find payment")
	}
	if payment == nil {
		return nil, ErrPaymentNotFound
	}

	return payment, nil
}
