package application

import (
	"context"

	"github.com/flowcart/order-system/order-service/domain"
	"github.com/flowcart/order-system/shared/database"
	"github.com/flowcart/order-system/shared/events"
	"github.com/flowcart/order-system/shared/models"
	"github.com/flowcart/order-system/shared/outbox"
	"github.com/pkg/errors"
)

// CreateOrderCommand represents the command to create an order
type CreateOrderCommand struct {
	CustomerID  string            `json:"customer_id"`
	TotalAmount int64             `json:"total_amount"`
	Currency    string            `json:"currency"`
	Items       []CreateOrderItem `json:"items"`
}

// CreateOrderItem is one requested line item
type CreateOrderItem struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	UnitPrice   int64  `json:"unit_price"`
	Quantity    int    `json:"quantity"`
}

// CreateOrderResponse represents the response after creating an order
type CreateOrderResponse struct {
	OrderID string `json:"order_id"`
}

// CreateOrder persists a new order and its order-created outbox row in one
// local transaction. Nothing is published here; the outbox publisher forwards
// the event asynchronously.
type CreateOrder struct {
	orderRepository domain.OrderRepository
	outboxStore     outbox.Store
	tx              database.TxManager
}

// NewCreateOrder creates a new CreateOrder use case
func NewCreateOrder(orderRepository domain.OrderRepository, outboxStore outbox.Store, tx database.TxManager) *CreateOrder {
	return &CreateOrder{
		orderRepository: orderRepository,
		outboxStore:     outboxStore,
		tx:              tx,
	}
}

// Execute executes the create order use case
func (uc *CreateOrder) Execute(ctx context.Context, cmd *CreateOrderCommand) (*CreateOrderResponse, error) {
	items := make([]domain.OrderItem, len(cmd.Items))
	for i, item := range cmd.Items {
		items[i] = domain.OrderItem{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			UnitPrice:   item.UnitPrice,
			Quantity:    item.Quantity,
		}
	}

	order, err := domain.CreateOrder(cmd.CustomerID, models.NewMoney(cmd.TotalAmount, cmd.Currency), items)
	if err != nil {
		return nil, errors.Wrap(err, "invalid command")
	}

	envelope, err := events.NewEnvelope(
		events.OrderCreatedEventType,
		order.CreatedEventData(),
		events.CorrelationIDFromContext(ctx),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build order created envelope")
	}

	err = uc.tx.WithTx(ctx, func(ctx context.Context) error {
		if err := uc.orderRepository.Save(ctx, order); err != nil {
			return errors.Wrap(err, "failed to save order")
		}
		return errors.Wrap(uc.outboxStore.Enqueue(ctx, order.ID, envelope), "failed to enqueue order created event")
	})
	if err != nil {
		return nil, err
	}

	return &CreateOrderResponse{OrderID: order.ID.String()}, nil
}
