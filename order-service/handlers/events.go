package handlers

import (
	"context"

	"github.com/flowcart/order-system/order-service/application"
	"github.com/flowcart/order-system/shared/events"
	"github.com/pkg/errors"
)

// SagaEventHandlers routes inventory and payment outcome events into the
// order state machine use cases.
type SagaEventHandlers struct {
	processInventoryStatus *application.ProcessInventoryStatus
	processPaymentStatus   *application.ProcessPaymentStatus
}

// NewSagaEventHandlers creates new saga event handlers
func NewSagaEventHandlers(
	processInventoryStatus *application.ProcessInventoryStatus,
	processPaymentStatus *application.ProcessPaymentStatus,
) *SagaEventHandlers {
	return &SagaEventHandlers{
		processInventoryStatus: processInventoryStatus,
		processPaymentStatus:   processPaymentStatus,
	}
}

// InventoryStatusHandler handles inventory outcome events
func (h *SagaEventHandlers) InventoryStatusHandler() events.Handler {
	return events.NewHandlerFunc("order-service-inventory-handler", func(ctx context.Context, envelope *events.Envelope) error {
		ctx = events.ContextWithCorrelationID(ctx, envelope.CorrelationID)
		switch envelope.EventType {
		case events.InventoryStatusEventType:
			return h.processInventoryStatus.Execute(ctx, envelope)
		default:
			return errors.Errorf("unexpected event type %s on inventory topic", envelope.EventType)
		}
	})
}

// PaymentStatusHandler handles payment outcome events
func (h *SagaEventHandlers) PaymentStatusHandler() events.Handler {
	return events.NewHandlerFunc("order-service-payment-handler", func(ctx context.Context, envelope *events.Envelope) error {
		ctx = events.ContextWithCorrelationID(ctx, envelope.CorrelationID)
		switch envelope.EventType {
		case events.PaymentStatusEventType:
			return h.processPaymentStatus.Execute(ctx, envelope)
		default:
			return errors.Errorf("unexpected event type %s on payment topic", envelope.EventType)
		}
	})
}
