package application

import (
	"context"
	"testing"

	"github.com/flowcart/order-system/inventory-service/domain"
	invmocks "github.com/flowcart/order-system/inventory-service/mocks"
	"github.com/flowcart/order-system/shared/events"
	"github.com/flowcart/order-system/shared/mocks"
	"github.com/flowcart/order-system/shared/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type passthroughTx struct{}

func (passthroughTx) WithTx(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

func orderCreatedEnvelope(t *testing.T, items ...events.OrderItemPayload) (*events.Envelope, string) {
	t.Helper()
	orderID := models.GenerateUUID().String()

	var total int64
	for _, item := range items {
		total += item.UnitPrice * int64(item.Quantity)
	}

	envelope, err := events.NewEnvelope(events.OrderCreatedEventType, events.OrderCreatedData{
		OrderID:     orderID,
		CustomerID:  "customer-1",
		TotalAmount: total,
		Currency:    "USD",
		Items:       items,
	}, "corr-1")
	require.NoError(t, err)

	return envelope, orderID
}

func stockOf(t *testing.T, productID string, quantity int) *domain.ProductInventory {
	t.Helper()
	stock, err := domain.NewProductInventory(productID, quantity)
	require.NoError(t, err)
	return stock
}

func TestReserveStock_ReservesAndReportsSuccess(t *testing.T) {
	repo := invmocks.NewMockInventoryRepository(t)
	store := mocks.NewMockStore(t)
	ledger := mocks.NewMockLedger(t)
	uc := NewReserveStock(repo, store, ledger, passthroughTx{}, zap.NewNop())

	envelope, orderID := orderCreatedEnvelope(t,
		events.OrderItemPayload{ProductID: "laptop", ProductName: "Laptop", UnitPrice: 25000, Quantity: 2},
	)
	stock := stockOf(t, "laptop", 10)

	ledger.EXPECT().IsProcessed(mock.Anything, envelope.EventID).Return(false, nil)
	repo.EXPECT().FindByProductIDForUpdate(mock.Anything, "laptop").Return(stock, nil)
	repo.EXPECT().Update(mock.Anything, stock).Return(nil)

	var outcome *events.Envelope
	store.EXPECT().Enqueue(mock.Anything, models.ID(orderID), mock.Anything).Run(func(ctx context.Context, aggregateID models.ID, e *events.Envelope) {
		outcome = e
	}).Return(nil)
	ledger.EXPECT().MarkProcessed(mock.Anything, envelope.EventID).Return(nil)

	require.NoError(t, uc.Execute(context.Background(), envelope))
	assert.Equal(t, 8, stock.AvailableQuantity)

	var data events.InventoryStatusData
	require.NoError(t, outcome.UnmarshalPayload(&data))
	assert.Equal(t, orderID, data.OrderID)
	assert.Equal(t, events.InventoryReserved, data.Status)
}

func TestReserveStock_InsufficientStockReportsFailureWithoutDecrement(t *testing.T) {
	repo := invmocks.NewMockInventoryRepository(t)
	store := mocks.NewMockStore(t)
	ledger := mocks.NewMockLedger(t)
	uc := NewReserveStock(repo, store, ledger, passthroughTx{}, zap.NewNop())

	envelope, orderID := orderCreatedEnvelope(t,
		events.OrderItemPayload{ProductID: "laptop", ProductName: "Laptop", UnitPrice: 25000, Quantity: 1},
		events.OrderItemPayload{ProductID: "mouse", ProductName: "Mouse", UnitPrice: 2000, Quantity: 5},
	)
	laptop := stockOf(t, "laptop", 10)
	mouse := stockOf(t, "mouse", 0)

	ledger.EXPECT().IsProcessed(mock.Anything, envelope.EventID).Return(false, nil)
	repo.EXPECT().FindByProductIDForUpdate(mock.Anything, "laptop").Return(laptop, nil)
	repo.EXPECT().FindByProductIDForUpdate(mock.Anything, "mouse").Return(mouse, nil)

	var outcome *events.Envelope
	store.EXPECT().Enqueue(mock.Anything, models.ID(orderID), mock.Anything).Run(func(ctx context.Context, aggregateID models.ID, e *events.Envelope) {
		outcome = e
	}).Return(nil)
	ledger.EXPECT().MarkProcessed(mock.Anything, envelope.EventID).Return(nil)

	require.NoError(t, uc.Execute(context.Background(), envelope))
	assert.Equal(t, 10, laptop.AvailableQuantity)
	assert.Equal(t, 0, mouse.AvailableQuantity)

	var data events.InventoryStatusData
	require.NoError(t, outcome.UnmarshalPayload(&data))
	assert.Equal(t, events.InventoryFailed, data.Status)
}

func TestReserveStock_DuplicateLinesLockAndUpdateProductOnce(t *testing.T) {
	repo := invmocks.NewMockInventoryRepository(t)
	store := mocks.NewMockStore(t)
	ledger := mocks.NewMockLedger(t)
	uc := NewReserveStock(repo, store, ledger, passthroughTx{}, zap.NewNop())

	envelope, orderID := orderCreatedEnvelope(t,
		events.OrderItemPayload{ProductID: "laptop", ProductName: "Laptop", UnitPrice: 25000, Quantity: 3},
		events.OrderItemPayload{ProductID: "laptop", ProductName: "Laptop", UnitPrice: 25000, Quantity: 3},
	)
	stock := stockOf(t, "laptop", 6)

	ledger.EXPECT().IsProcessed(mock.Anything, envelope.EventID).Return(false, nil)
	repo.EXPECT().FindByProductIDForUpdate(mock.Anything, "laptop").Return(stock, nil).Once()
	repo.EXPECT().Update(mock.Anything, stock).Return(nil).Once()

	var outcome *events.Envelope
	store.EXPECT().Enqueue(mock.Anything, models.ID(orderID), mock.Anything).Run(func(ctx context.Context, aggregateID models.ID, e *events.Envelope) {
		outcome = e
	}).Return(nil)
	ledger.EXPECT().MarkProcessed(mock.Anything, envelope.EventID).Return(nil)

	require.NoError(t, uc.Execute(context.Background(), envelope))
	assert.Equal(t, 0, stock.AvailableQuantity)

	var data events.InventoryStatusData
	require.NoError(t, outcome.UnmarshalPayload(&data))
	assert.Equal(t, events.InventoryReserved, data.Status)
}

func TestReserveStock_DuplicateLinesExceedingStockReportFailure(t *testing.T) {
	repo := invmocks.NewMockInventoryRepository(t)
	store := mocks.NewMockStore(t)
	ledger := mocks.NewMockLedger(t)
	uc := NewReserveStock(repo, store, ledger, passthroughTx{}, zap.NewNop())

	envelope, orderID := orderCreatedEnvelope(t,
		events.OrderItemPayload{ProductID: "laptop", ProductName: "Laptop", UnitPrice: 25000, Quantity: 3},
		events.OrderItemPayload{ProductID: "laptop", ProductName: "Laptop", UnitPrice: 25000, Quantity: 3},
	)
	stock := stockOf(t, "laptop", 5)

	ledger.EXPECT().IsProcessed(mock.Anything, envelope.EventID).Return(false, nil)
	repo.EXPECT().FindByProductIDForUpdate(mock.Anything, "laptop").Return(stock, nil).Once()

	var outcome *events.Envelope
	store.EXPECT().Enqueue(mock.Anything, models.ID(orderID), mock.Anything).Run(func(ctx context.Context, aggregateID models.ID, e *events.Envelope) {
		outcome = e
	}).Return(nil)
	ledger.EXPECT().MarkProcessed(mock.Anything, envelope.EventID).Return(nil)

	require.NoError(t, uc.Execute(context.Background(), envelope))
	assert.Equal(t, 5, stock.AvailableQuantity)

	var data events.InventoryStatusData
	require.NoError(t, outcome.UnmarshalPayload(&data))
	assert.Equal(t, events.InventoryFailed, data.Status)
}

func TestReserveStock_UnknownProductReportsFailure(t *testing.T) {
	repo := invmocks.NewMockInventoryRepository(t)
	store := mocks.NewMockStore(t)
	ledger := mocks.NewMockLedger(t)
	uc := NewReserveStock(repo, store, ledger, passthroughTx{}, zap.NewNop())

	envelope, orderID := orderCreatedEnvelope(t,
		events.OrderItemPayload{ProductID: "keyboard", ProductName: "Keyboard", UnitPrice: 5000, Quantity: 1},
	)

	ledger.EXPECT().IsProcessed(mock.Anything, envelope.EventID).Return(false, nil)
	repo.EXPECT().FindByProductIDForUpdate(mock.Anything, "keyboard").Return(nil, nil)

	var outcome *events.Envelope
	store.EXPECT().Enqueue(mock.Anything, models.ID(orderID), mock.Anything).Run(func(ctx context.Context, aggregateID models.ID, e *events.Envelope) {
		outcome = e
	}).Return(nil)
	ledger.EXPECT().MarkProcessed(mock.Anything, envelope.EventID).Return(nil)

	require.NoError(t, uc.Execute(context.Background(), envelope))

	var data events.InventoryStatusData
	require.NoError(t, outcome.UnmarshalPayload(&data))
	assert.Equal(t, events.InventoryFailed, data.Status)
}

func TestReserveStock_DuplicateEventIsNoOp(t *testing.T) {
	repo := invmocks.NewMockInventoryRepository(t)
	store := mocks.NewMockStore(t)
	ledger := mocks.NewMockLedger(t)
	uc := NewReserveStock(repo, store, ledger, passthroughTx{}, zap.NewNop())

	envelope, _ := orderCreatedEnvelope(t,
		events.OrderItemPayload{ProductID: "laptop", ProductName: "Laptop", UnitPrice: 25000, Quantity: 1},
	)

	ledger.EXPECT().IsProcessed(mock.Anything, envelope.EventID).Return(true, nil)

	require.NoError(t, uc.Execute(context.Background(), envelope))
}

func TestReserveStock_OutcomeCarriesCorrelationID(t *testing.T) {
	repo := invmocks.NewMockInventoryRepository(t)
	store := mocks.NewMockStore(t)
	ledger := mocks.NewMockLedger(t)
	uc := NewReserveStock(repo, store, ledger, passthroughTx{}, zap.NewNop())

	envelope, orderID := orderCreatedEnvelope(t,
		events.OrderItemPayload{ProductID: "laptop", ProductName: "Laptop", UnitPrice: 25000, Quantity: 1},
	)
	stock := stockOf(t, "laptop", 3)

	ledger.EXPECT().IsProcessed(mock.Anything, envelope.EventID).Return(false, nil)
	repo.EXPECT().FindByProductIDForUpdate(mock.Anything, "laptop").Return(stock, nil)
	repo.EXPECT().Update(mock.Anything, stock).Return(nil)

	var outcome *events.Envelope
	store.EXPECT().Enqueue(mock.Anything, models.ID(orderID), mock.Anything).Run(func(ctx context.Context, aggregateID models.ID, e *events.Envelope) {
		outcome = e
	}).Return(nil)
	ledger.EXPECT().MarkProcessed(mock.Anything, envelope.EventID).Return(nil)

	ctx := events.ContextWithCorrelationID(context.Background(), "corr-42")
	require.NoError(t, uc.Execute(ctx, envelope))
	assert.Equal(t, "corr-42", outcome.CorrelationID)
}

func TestReserveStock_UpdateFailureAbortsOutcome(t *testing.T) {
	repo := invmocks.NewMockInventoryRepository(t)
	store := mocks.NewMockStore(t)
	ledger := mocks.NewMockLedger(t)
	uc := NewReserveStock(repo, store, ledger, passthroughTx{}, zap.NewNop())

	envelope, _ := orderCreatedEnvelope(t,
		events.OrderItemPayload{ProductID: "laptop", ProductName: "Laptop", UnitPrice: 25000, Quantity: 1},
	)
	stock := stockOf(t, "laptop", 3)

	ledger.EXPECT().IsProcessed(mock.Anything, envelope.EventID).Return(false, nil)
	repo.EXPECT().FindByProductIDForUpdate(mock.Anything, "laptop").Return(stock, nil)
	repo.EXPECT().Update(mock.Anything, stock).Return(assert.AnError)

	assert.Error(t, uc.Execute(context.Background(), envelope))
}
