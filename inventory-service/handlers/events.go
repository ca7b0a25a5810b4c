package handlers

import (
	"context"

	"github.com/flowcart/order-system/inventory-service/application"
	"github.com/flowcart/order-system/shared/events"
	"github.com/pkg/errors"
)

// InventoryEventHandlers routes order events into the reservation use case
type InventoryEventHandlers struct {
	reserveStock *application.ReserveStock
}

// NewInventoryEventHandlers creates new inventory event handlers
func NewInventoryEventHandlers(reserveStock *application.ReserveStock) *InventoryEventHandlers {
	return &InventoryEventHandlers{reserveStock: reserveStock}
}

// OrderEventsHandler handles events from the order topic
func (h *InventoryEventHandlers) OrderEventsHandler() events.Handler {
	return events.NewHandlerFunc("inventory-service-order-handler", func(ctx context.Context, envelope *events.Envelope) error {
		ctx = events.ContextWithCorrelationID(ctx, envelope.CorrelationID)
		switch envelope.EventType {
		case events.OrderCreatedEventType:
			return h.reserveStock.Execute(ctx, envelope)
		default:
			return errors.Errorf("unexpected event type %s on order topic", envelope.EventType)
		}
	})
}
