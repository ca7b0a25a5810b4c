package application

import (
	"context"

	"github.com/flowcart/order-system/inventory-service/domain"
	"github.com/flowcart/order-system/shared/database"
	"github.com/flowcart/order-system/shared/events"
	"github.com/flowcart/order-system/shared/inbox"
	"github.com/flowcart/order-system/shared/models"
	"github.com/flowcart/order-system/shared/outbox"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// ReserveStock reacts to an order creation by reserving stock for every line
// item. The reservation, the outcome outbox row and the ledger mark commit in
// one local transaction; a reservation that cannot be fully satisfied leaves
// stock untouched and reports a failed outcome instead of an error.
type ReserveStock struct {
	inventoryRepository domain.InventoryRepository
	outboxStore         outbox.Store
	ledger              inbox.Ledger
	tx                  database.TxManager
	log                 *zap.Logger
}

// NewReserveStock creates a new ReserveStock use case
func NewReserveStock(
	inventoryRepository domain.InventoryRepository,
	outboxStore outbox.Store,
	ledger inbox.Ledger,
	tx database.TxManager,
	log *zap.Logger,
) *ReserveStock {
	return &ReserveStock{
		inventoryRepository: inventoryRepository,
		outboxStore:         outboxStore,
		ledger:              ledger,
		tx:                  tx,
		log:                 log,
	}
}

// Execute executes the use case
func (uc *ReserveStock) Execute(ctx context.Context, envelope *events.Envelope) error {
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

		status, err := uc.reserve(ctx, &data)
		if err != nil {
			return err
		}

		outcome, err := events.NewEnvelope(events.InventoryStatusEventType, events.InventoryStatusData{
			OrderID: data.OrderID,
			Status:  status,
		}, events.CorrelationIDFromContext(ctx))
		if err != nil {
			return errors.Wrap(err, "failed to build inventory status event")
		}

		if err := uc.outboxStore.Enqueue(ctx, orderID, outcome); err != nil {
			return errors.Wrap(err, "failed to enqueue inventory status event")
		}

		uc.log.Info("inventory reservation processed",
			zap.String("order_id", data.OrderID),
			zap.String("status", string(status)))

		return errors.Wrap(uc.ledger.MarkProcessed(ctx, envelope.EventID), "failed to mark event processed")
	})
}

func (uc *ReserveStock) reserve(ctx context.Context, data *events.OrderCreatedData) (events.InventoryStatus, error) {
	items := make([]domain.ReservationItem, len(data.Items))
	stocks := make(map[string]*domain.ProductInventory, len(data.Items))

	seen := make(map[string]bool, len(data.Items))
	for i, item := range data.Items {
		items[i] = domain.ReservationItem{ProductID: item.ProductID, Quantity: item.Quantity}

		// Each product is locked and loaded once, even when it appears
		// on several line items.
		if seen[item.ProductID] {
			continue
		}
		seen[item.ProductID] = true

		stock, err := uc.inventoryRepository.FindByProductIDForUpdate(ctx, item.ProductID)
		if err != nil {
			return "", errors.Wrap(err, "failed to load product inventory")
		}
		if stock != nil {
			stocks[item.ProductID] = stock
		}
	}

	if err := domain.Reserve(stocks, items); err != nil {
		if errors.Is(err, domain.ErrInsufficientStock) {
			uc.log.Warn("reservation failed", zap.String("order_id", data.OrderID), zap.Error(err))
			return events.InventoryFailed, nil
		}
		return "", err
	}

	for _, stock := range stocks {
		if err := uc.inventoryRepository.Update(ctx, stock); err != nil {
			return "", errors.Wrap(err, "failed to persist stock decrement")
		}
	}

	return events.InventoryReserved, nil
}
