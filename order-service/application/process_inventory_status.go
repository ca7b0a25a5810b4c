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

// ProcessInventoryStatus advances the order state machine on an inventory
// outcome event. The duplicate check, the status mutation and the ledger mark
// commit in one local transaction, so a redelivered event is a clean no-op.
type ProcessInventoryStatus struct {
	orderRepository domain.OrderRepository
	ledger          inbox.Ledger
	tx              database.TxManager
	log             *zap.Logger
}

// NewProcessInventoryStatus creates a new ProcessInventoryStatus use case
func NewProcessInventoryStatus(
	orderRepository domain.OrderRepository,
	ledger inbox.Ledger,
	tx database.TxManager,
	log *zap.Logger,
) *ProcessInventoryStatus {
	return &ProcessInventoryStatus{
		orderRepository: orderRepository,
		ledger:          ledger,
		tx:              tx,
		log:             log,
	}
}

// Execute executes the use case
func (uc *ProcessInventoryStatus) Execute(ctx context.Context, envelope *events.Envelope) error {
	var data events.InventoryStatusData
	if err := envelope.UnmarshalPayload(&data); err != nil {
		return errors.Wrap(err, "failed to parse inventory status payload")
	}

	return uc.tx.WithTx(ctx, func(ctx context.Context) error {
		processed, err := uc.ledger.IsProcessed(ctx, envelope.EventID)
		if err != nil {
			return errors.Wrap(err, "failed to check idempotency ledger")
		}
		if processed {
			uc.log.Info("skipping duplicate inventory event",
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

func (uc *ProcessInventoryStatus) applyOutcome(ctx context.Context, data *events.InventoryStatusData) error {
	orderID, err := models.NewID(data.OrderID)
	if err != nil {
		return errors.Wrap(err, "invalid order ID in inventory event")
	}

	order, err := uc.orderRepository.FindByID(ctx, orderID)
	if err != nil {
		return errors.Wrap(err, "failed to find order")
	}
	if order == nil {
		uc.log.Warn("inventory event for unknown order absorbed",
			zap.String("order_id", data.OrderID))
		return nil
	}

	if !order.ApplyInventoryStatus(data.Status) {
		uc.log.Info("inventory event for terminal order absorbed",
			zap.String("order_id", data.OrderID),
			zap.String("status", string(order.Status)),
			zap.String("inventory_status", string(data.Status)))
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
