package application

import (
	"context"
	"testing"

	"github.com/flowcart/order-system/order-service/domain"
	ordermocks "github.com/flowcart/order-system/order-service/mocks"
	"github.com/flowcart/order-system/shared/events"
	"github.com/flowcart/order-system/shared/mocks"
	"github.com/flowcart/order-system/shared/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// passthroughTx runs the callback without a real transaction so use case
// tests exercise the transactional body directly.
type passthroughTx struct{}

func (passthroughTx) WithTx(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

func validCommand() *CreateOrderCommand {
	return &CreateOrderCommand{
		CustomerID:  "customer-1",
		TotalAmount: 25000,
		Currency:    "USD",
		Items: []CreateOrderItem{
			{ProductID: "laptop", ProductName: "Laptop", UnitPrice: 25000, Quantity: 1},
		},
	}
}

func TestCreateOrder_SavesOrderAndOutboxRowTogether(t *testing.T) {
	repo := ordermocks.NewMockOrderRepository(t)
	store := mocks.NewMockStore(t)
	uc := NewCreateOrder(repo, store, passthroughTx{})

	var savedOrder *domain.Order
	repo.EXPECT().Save(mock.Anything, mock.Anything).Run(func(ctx context.Context, order *domain.Order) {
		savedOrder = order
	}).Return(nil)

	var enqueued *events.Envelope
	store.EXPECT().Enqueue(mock.Anything, mock.Anything, mock.Anything).Run(func(ctx context.Context, aggregateID models.ID, envelope *events.Envelope) {
		enqueued = envelope
	}).Return(nil)

	resp, err := uc.Execute(context.Background(), validCommand())
	require.NoError(t, err)
	require.NotNil(t, savedOrder)
	require.NotNil(t, enqueued)

	assert.Equal(t, savedOrder.ID.String(), resp.OrderID)
	assert.Equal(t, domain.OrderStatusCreated, savedOrder.Status)
	assert.Equal(t, events.OrderCreatedEventType, enqueued.EventType)

	var data events.OrderCreatedData
	require.NoError(t, enqueued.UnmarshalPayload(&data))
	assert.Equal(t, savedOrder.ID.String(), data.OrderID)
	assert.Equal(t, "customer-1", data.CustomerID)
	assert.Equal(t, int64(25000), data.TotalAmount)
	assert.Len(t, data.Items, 1)
}

func TestCreateOrder_InvalidCommandTouchesNothing(t *testing.T) {
	repo := ordermocks.NewMockOrderRepository(t)
	store := mocks.NewMockStore(t)
	uc := NewCreateOrder(repo, store, passthroughTx{})

	cmd := validCommand()
	cmd.Items = nil

	resp, err := uc.Execute(context.Background(), cmd)
	assert.Error(t, err)
	assert.Nil(t, resp)
}

func TestCreateOrder_SaveFailureAbortsEnqueue(t *testing.T) {
	repo := ordermocks.NewMockOrderRepository(t)
	store := mocks.NewMockStore(t)
	uc := NewCreateOrder(repo, store, passthroughTx{})

	repo.EXPECT().Save(mock.Anything, mock.Anything).Return(assert.AnError)

	resp, err := uc.Execute(context.Background(), validCommand())
	assert.Error(t, err)
	assert.Nil(t, resp)
}
