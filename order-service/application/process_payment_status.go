package application

import (
	"context"

	"github.com/flowcart/order-system/order-service/domain"
	"github.com/flowcart/order-system/shared/database"
	"github.com/flowcart/order-system/shared/events"
	"github.com/flowcart/order-system/shared/inbox"
	"github.com/flowcart/order-system/shared/models"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// ProcessPaymentStatus advances the order state machine on a payment outcome
// event. Outcomes may arrive in any order relative to inventory events, so a
// payment success completes the order regardless of the current non-terminal
// state.
type ProcessPaymentStatus struct {
	orderRepository domain.OrderRepository
	ledger          inbox.Ledger
	tx              database.TxManager
	log             *zap.Logger
}

// NewProcessPaymentStatus creates a new ProcessPaymentStatus use case
func NewProcessPaymentStatus(
	orderRepository domain.OrderRepository,
	ledger inbox.Ledger,
	tx database.TxManager,
	log *zap.Logger,
) *ProcessPaymentStatus {
	return &ProcessPaymentStatus{
		orderRepository: orderRepository,
		ledger:          ledger,
		tx:              tx,
		log:             log,
	}
}

// Execute executes the use case
func (uc *ProcessPaymentStatus) Execute(ctx context.Context, envelope *events.Envelope) error {
	var data events.PaymentStatusData
	if err := envelope.UnmarshalPayload(&data); err != nil {
		return errors.Wrap(err, "failed to parse payment status payload")
	}

	return uc.tx.WithTx(ctx, func(ctx context.Context) error {
		processed, err := uc.ledger.IsProcessed(ctx, envelope.EventID)
		if err != nil {
			return errors.Wrap(err, "failed to check idempotency ledger")
		}
		if processed {
			uc.log.Info("skipping duplicate payment event",
				zap.String("event_id", envelope.EventID.String()),
				zap.String("order_id", data.OrderID))
			return nil
		}

		if err := uc.applyOutcome(ctx, &data); err != nil {
			return err
		}

		return errors.Wrap(uc.ledger.MarkProcessed(ctx, envelope.EventID), "failed to mark event processed")
	})
}

func (uc *ProcessPaymentStatus) applyOutcome(ctx context.Context, data *events.PaymentStatusData) error {
	orderID, err := models.NewID(data.OrderID)
	if err != nil {
		return errors.Wrap(err, "invalid order ID in payment event")
	}

	order, err := uc.orderRepository.FindByID(ctx, orderID)
	if err != nil {
		return errors.Wrap(err, "failed to find order")
	}
	if order == nil {
		uc.log.Warn("payment event for unknown order absorbed",
			zap.String("order_id", data.OrderID))
		return nil
	}

	if !order.ApplyPaymentStatus(data.Status) {
		uc.log.Info("payment event for terminal order absorbed",
			zap.String("order_id", data.OrderID),
			zap.String("status", string(order.Status)),
			zap.String("payment_status", string(data.Status)))
		return nil
	}

	if err := uc.orderRepository.Update(ctx, order); err != nil {
		return errors.Wrap(err, "failed to update order status")
	}

	uc.log.Info("order status updated",
		zap.String("order_id", data.OrderID),
		zap.String("status", string(order.Status)))
	return nil
}
