package application

import (
	"context"

	"github.com/flowcart/order-system/order-service/domain"
	"github.com/flowcart/order-system/shared/models"
	"github.com/pkg/errors"
)

// ErrOrderNotFound is returned when an order does not exist
var ErrOrderNotFound = errors.New("order not found")

// GetOrder reads the current order state, eventually consistent with the
// saga's outcome events
type GetOrder struct {
	orderRepository domain.OrderRepository
}

// NewGetOrder creates a new GetOrder use case
func NewGetOrder(orderRepository domain.OrderRepository) *GetOrder {
	return &GetOrder{orderRepository: orderRepository}
}

// Execute returns the order with the given id
func (uc *GetOrder) Execute(ctx context.Context, orderID string) (*domain.Order, error) {
	id, err := models.NewID(orderID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid order ID")
	}

	order, err := uc.orderRepository.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find order")
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	return order, nil
}

// ListOrders returns all orders
type ListOrders struct {
	orderRepository domain.OrderRepository
}

// NewListOrders creates a new ListOrders use case
func NewListOrders(orderRepository domain.OrderRepository) *ListOrders {
	return &ListOrders{orderRepository: orderRepository}
}

// Execute returns every stored order
func (uc *ListOrders) Execute(ctx context.Context) ([]*domain.Order, error) {
	orders, err := uc.orderRepository.FindAll(ctx)
	return orders, errors.Wrap(err, "failed to list orders")
}
