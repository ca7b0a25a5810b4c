package handlers

import (
	"context"

	"github.com/flowcart/order-system/payment-service/application"
	"github.com/flowcart/order-system/shared/events"
	"github.com/pkg/errors"
)

// PaymentEventHandlers routes order events into the authorization use case
type PaymentEventHandlers struct {
	authorizePayment *application.AuthorizePayment
}

// NewPaymentEventHandlers creates new payment event handlers
func NewPaymentEventHandlers(authorizePayment *application.AuthorizePayment) *PaymentEventHandlers {
	return &PaymentEventHandlers{authorizePayment: authorizePayment}
}

// OrderEventsHandler handles events from the order topic
func (h *PaymentEventHandlers) OrderEventsHandler() events.Handler {
	return events.NewHandlerFunc("payment-service-order-handler", func(ctx context.Context, envelope *events.Envelope) error {
		ctx = events.ContextWithCorrelationID(ctx, envelope.CorrelationID)
		switch envelope.EventType {
		case events.OrderCreatedEventType:
			return h.authorizePayment.Execute(ctx, envelope)
		default:
			return errors.Errorf("unexpected event type %s on order topic", envelope.EventType)
		}
	})
}
