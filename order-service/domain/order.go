package domain

import (
	"context"

	"github.com/flowcart/order-system/shared/events"
	"github.com/flowcart/order-system/shared/models"
	"github.com/pkg/errors"
)

// OrderStatus represents the status of an order
type OrderStatus string

const (
	OrderStatusCreated           OrderStatus = "CREATED"
	OrderStatusInventoryReserved OrderStatus = "INVENTORY_RESERVED"
	OrderStatusPaymentCompleted  OrderStatus = "PAYMENT_COMPLETED"
	OrderStatusFailed            OrderStatus = "FAILED"
)

// OrderItem is a value-type line item owned by its order. Items reference the
// order only through OrderID, never through a back-pointer.
type OrderItem struct {
	ProductID   string
	ProductName string
	UnitPrice   int64
	Quantity    int
}

// Order aggregate root. Status is derived from independently-arriving
// inventory and payment outcome events; FAILED and PAYMENT_COMPLETED are
// terminal and no later event may change the status once reached.
type Order struct {
	ID          models.ID
	CustomerID  string
	TotalAmount models.Money
	Status      OrderStatus
	Items       []OrderItem
	Timestamps  models.Timestamps
	Version     models.Version
}

// CreateOrder factory method
func CreateOrder(customerID string, totalAmount models.Money, items []OrderItem) (*Order, error) {
	if customerID == "" {
		return nil, errors.New("customer ID is required")
	}
	if !totalAmount.IsPositive() {
		return nil, errors.New("total amount must be positive")
	}
	if len(items) == 0 {
		return nil, errors.New("order requires at least one item")
	}
	for _, item := range items {
		if item.ProductID == "" {
			return nil, errors.New("item product ID is required")
		}
		if item.Quantity <= 0 {
			return nil, errors.New("item quantity must be positive")
		}
	}

	return &Order{
		ID:          models.GenerateUUID(),
		CustomerID:  customerID,
		TotalAmount: totalAmount,
		Status:      OrderStatusCreated,
		Items:       items,
		Timestamps:  models.NewTimestamps(),
		Version:     models.NewVersion(),
	}, nil
}

// IsTerminal reports whether the status can no longer change
func (o *Order) IsTerminal() bool {
	return o.Status == OrderStatusFailed || o.Status == OrderStatusPaymentCompleted
}

// ApplyInventoryStatus advances the order on an inventory outcome. It returns
// false when the order is already terminal and the event is absorbed.
func (o *Order) ApplyInventoryStatus(status events.InventoryStatus) bool {
	if o.IsTerminal() {
		return false
	}

	if status == events.InventoryReserved {
		o.setStatus(OrderStatusInventoryReserved)
	} else {
		o.setStatus(OrderStatusFailed)
	}

	return true
}

// ApplyPaymentStatus advances the order on a payment outcome. It returns
// false when the order is already terminal and the event is absorbed.
func (o *Order) ApplyPaymentStatus(status events.PaymentStatus) bool {
	if o.IsTerminal() {
		return false
	}

	if status == events.PaymentSucceeded {
		o.setStatus(OrderStatusPaymentCompleted)
	} else {
		o.setStatus(OrderStatusFailed)
	}

	return true
}

func (o *Order) setStatus(status OrderStatus) {
	o.Status = status
	o.Timestamps = o.Timestamps.Update()
	o.Version = o.Version.Update()
}

// CreatedEventData builds the OrderCreatedEvent_V1 payload for this order
func (o *Order) CreatedEventData() events.OrderCreatedData {
	items := make([]events.OrderItemPayload, len(o.Items))
	for i, item := range o.Items {
		items[i] = events.OrderItemPayload{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			UnitPrice:   item.UnitPrice,
			Quantity:    item.Quantity,
		}
	}

	return events.OrderCreatedData{
		OrderID:     o.ID.String(),
		CustomerID:  o.CustomerID,
		TotalAmount: o.TotalAmount.Amount,
		Currency:    o.TotalAmount.Currency,
		Items:       items,
	}
}

// OrderRepository interface
type OrderRepository interface {
	Save(ctx context.Context, order *Order) error
	Update(ctx context.Context, order *Order) error
	FindByID(ctx context.Context, id models.ID) (*Order, error)
	FindAll(ctx context.Context) ([]*Order, error)
}
