package outbox_test

import (
	"context"
	"testing"

	"github.com/flowcart/order-system/shared/events"
	"github.com/flowcart/order-system/shared/mocks"
	"github.com/flowcart/order-system/shared/outbox"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func unsentRow(t *testing.T, id int64, orderID string) outbox.Row {
	t.Helper()

	envelope, err := events.NewEnvelope(
		events.OrderCreatedEventType,
		events.OrderCreatedData{OrderID: orderID, CustomerID: "customer-1", TotalAmount: 25000, Currency: "USD"},
		"corr-1",
	)
	require.NoError(t, err)

	payload, err := envelope.ToJSON()
	require.NoError(t, err)

	return outbox.Row{
		ID:          id,
		AggregateID: orderID,
		EventType:   events.OrderCreatedEventType,
		Payload:     payload,
	}
}

func TestPublisher_PublishPending_MarksSentOnSuccess(t *testing.T) {
	store := mocks.NewMockStore(t)
	sender := mocks.NewMockSender(t)
	row := unsentRow(t, 1, "order-1")

	store.EXPECT().FindUnsent(mock.Anything, 100).Return([]outbox.Row{row}, nil).Once()
	sender.EXPECT().Send(mock.Anything, events.OrderEventsTopic, "order-1", row.Payload).Return(nil).Once()
	store.EXPECT().MarkSent(mock.Anything, int64(1)).Return(nil).Once()

	publisher := outbox.NewPublisher(store, sender, zap.NewNop(), nil)
	publisher.PublishPending(context.Background())
}

func TestPublisher_PublishPending_KeyedByAggregateID(t *testing.T) {
	store := mocks.NewMockStore(t)
	sender := mocks.NewMockSender(t)
	first := unsentRow(t, 1, "order-1")
	second := unsentRow(t, 2, "order-2")

	store.EXPECT().FindUnsent(mock.Anything, 100).Return([]outbox.Row{first, second}, nil).Once()
	sender.EXPECT().Send(mock.Anything, events.OrderEventsTopic, "order-1", first.Payload).Return(nil).Once()
	sender.EXPECT().Send(mock.Anything, events.OrderEventsTopic, "order-2", second.Payload).Return(nil).Once()
	store.EXPECT().MarkSent(mock.Anything, int64(1)).Return(nil).Once()
	store.EXPECT().MarkSent(mock.Anything, int64(2)).Return(nil).Once()

	publisher := outbox.NewPublisher(store, sender, zap.NewNop(), nil)
	publisher.PublishPending(context.Background())
}

func TestPublisher_PublishPending_LeavesRowOnSendFailure(t *testing.T) {
	store := mocks.NewMockStore(t)
	sender := mocks.NewMockSender(t)
	row := unsentRow(t, 1, "order-1")

	store.EXPECT().FindUnsent(mock.Anything, 100).Return([]outbox.Row{row}, nil).Once()
	sender.EXPECT().Send(mock.Anything, events.OrderEventsTopic, "order-1", row.Payload).
		Return(errors.New("broker unavailable")).Once()
	// No MarkSent expectation: the row stays unsent for the next cycle.

	publisher := outbox.NewPublisher(store, sender, zap.NewNop(), nil)
	publisher.PublishPending(context.Background())
}

func TestPublisher_PublishPending_ContinuesAfterFailedRow(t *testing.T) {
	store := mocks.NewMockStore(t)
	sender := mocks.NewMockSender(t)
	failing := unsentRow(t, 1, "order-1")
	healthy := unsentRow(t, 2, "order-2")

	store.EXPECT().FindUnsent(mock.Anything, 100).Return([]outbox.Row{failing, healthy}, nil).Once()
	sender.EXPECT().Send(mock.Anything, events.OrderEventsTopic, "order-1", failing.Payload).
		Return(errors.New("broker unavailable")).Once()
	sender.EXPECT().Send(mock.Anything, events.OrderEventsTopic, "order-2", healthy.Payload).Return(nil).Once()
	store.EXPECT().MarkSent(mock.Anything, int64(2)).Return(nil).Once()

	publisher := outbox.NewPublisher(store, sender, zap.NewNop(), nil)
	publisher.PublishPending(context.Background())
}

func TestPublisher_PublishPending_SkipsUnroutableEventType(t *testing.T) {
	store := mocks.NewMockStore(t)
	sender := mocks.NewMockSender(t)
	row := unsentRow(t, 1, "order-1")
	row.EventType = "RetiredEvent_V0"

	store.EXPECT().FindUnsent(mock.Anything, 100).Return([]outbox.Row{row}, nil).Once()
	// Neither sent nor marked: the row stays visible in monitoring.

	publisher := outbox.NewPublisher(store, sender, zap.NewNop(), nil)
	publisher.PublishPending(context.Background())
}
