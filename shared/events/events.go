package events

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"time"

	"github.com/flowcart/order-system/shared/models"
)

var (
	ErrInvalidEnvelope = errors.New("invalid event envelope")
	ErrUnknownType     = errors.New("unknown event type")
	ErrInvalidReceiver = errors.New("receiver should be a pointer")
)

// Topic names. Every message carries a serialized Envelope and is keyed by
// order id, so the bus preserves per-order ordering within a topic.
const (
	OrderEventsTopic     = "orders.events"
	InventoryEventsTopic = "inventory.events"
	PaymentEventsTopic   = "payment.events"

	// DeadLetterSuffix mirrors each source topic into its dead-letter topic.
	DeadLetterSuffix = ".DLT"
)

// Event types
const (
	OrderCreatedEventType    = "OrderCreatedEvent_V1"
	InventoryStatusEventType = "InventoryStatusEvent_V1"
	PaymentStatusEventType   = "PaymentStatusEvent_V1"
)

// Consumer group ids, one per (service, topic) pair
const (
	InventoryOrdersGroup       = "inventory-orders-group"
	PaymentServiceGroup        = "payment-service-group"
	OrderServiceInventoryGroup = "order-service-inventory-group"
	OrderServicePaymentGroup   = "order-service-payment-group"
)

// TopicFor resolves the topic an event type is published on
func TopicFor(eventType string) (string, error) {
	switch eventType {
	case OrderCreatedEventType:
		return OrderEventsTopic, nil
	case InventoryStatusEventType:
		return InventoryEventsTopic, nil
	case PaymentStatusEventType:
		return PaymentEventsTopic, nil
	default:
		return "", ErrUnknownType
	}
}

// DeadLetterTopic returns the dead-letter topic for a source topic
func DeadLetterTopic(topic string) string {
	return topic + DeadLetterSuffix
}

// Envelope wraps every domain event crossing the bus. EventID is generated
// once at creation and travels unchanged through retries and redeliveries;
// CorrelationID threads the causal chain and is propagated, never
// regenerated, by downstream consumers.
type Envelope struct {
	EventID       models.ID       `json:"eventId"`
	EventType     string          `json:"eventType"`
	Timestamp     time.Time       `json:"timestamp"`
	CorrelationID string          `json:"correlationId"`
	Payload       json.RawMessage `json:"payload"`
}

// NewEnvelope creates an envelope for the given payload
func NewEnvelope(eventType string, payload interface{}, correlationID string) (*Envelope, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return &Envelope{
		EventID:       models.GenerateUUID(),
		EventType:     eventType,
		Timestamp:     time.Now(),
		CorrelationID: correlationID,
		Payload:       raw,
	}, nil
}

// UnmarshalPayload unmarshals the envelope payload into the given receiver
func (e *Envelope) UnmarshalPayload(v interface{}) error {
	if reflect.ValueOf(v).Kind() != reflect.Ptr {
		return ErrInvalidReceiver
	}
	return json.Unmarshal(e.Payload, v)
}

// ToJSON converts the envelope to its wire representation
func (e *Envelope) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// FromJSON parses an envelope from its wire representation
func FromJSON(data []byte) (*Envelope, error) {
	var envelope Envelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, err
	}

	if envelope.EventID == "" || envelope.EventType == "" {
		return nil, ErrInvalidEnvelope
	}

	return &envelope, nil
}

// Handler handles envelopes delivered from the bus
type Handler interface {
	HandlerID() string
	Handle(ctx context.Context, envelope *Envelope) error
}

// HandlerFunc creates a handler from a function
type HandlerFunc struct {
	id string
	fn func(ctx context.Context, envelope *Envelope) error
}

func NewHandlerFunc(id string, fn func(ctx context.Context, envelope *Envelope) error) *HandlerFunc {
	return &HandlerFunc{
		id: id,
		fn: fn,
	}
}

func (h *HandlerFunc) HandlerID() string {
	return h.id
}

func (h *HandlerFunc) Handle(ctx context.Context, envelope *Envelope) error {
	return h.fn(ctx, envelope)
}
