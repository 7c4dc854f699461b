package workflows_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"orderflow/internal/core/application/workflows"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCollaborators struct{ mock.Mock }

func (m *MockCollaborators) ValidateAddress(ctx context.Context, aggregate *order.Order) (string, error) {
	args := m.Called(ctx, aggregate)
	return args.String(0), args.Error(1)
}

func (m *MockCollaborators) AuthorizePayment(ctx context.Context, aggregate *order.Order) (string, error) {
	args := m.Called(ctx, aggregate)
	return args.String(0), args.Error(1)
}

func (m *MockCollaborators) CompletePayment(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockCollaborators) RefundPayment(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockCollaborators) ShipOrder(ctx context.Context, aggregate *order.Order, pickupAddress string) error {
	args := m.Called(ctx, aggregate, pickupAddress)
	return args.Error(0)
}

func (m *MockCollaborators) TrackShipment(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockCollaborators) VerifyDelivery(ctx context.Context, aggregate *order.Order) (string, error) {
	args := m.Called(ctx, aggregate)
	return args.String(0), args.Error(1)
}

func (m *MockCollaborators) FillOrder(ctx context.Context, aggregate *order.Order) (string, error) {
	args := m.Called(ctx, aggregate)
	return args.String(0), args.Error(1)
}

// capturingBus records subscriptions and lets the test fire delivery events
// synchronously.
type capturingBus struct {
	mu   sync.Mutex
	subs []struct {
		filter   ports.EventFilter
		callback func(ports.Event)
	}
}

func (b *capturingBus) Listen(_ context.Context, _ string, filter ports.EventFilter, callback func(ports.Event)) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs = append(b.subs, struct {
		filter   ports.EventFilter
		callback func(ports.Event)
	}{filter, callback})
	return nil
}

func (b *capturingBus) Notify(_ context.Context, event ports.Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, sub := range b.subs {
		if sub.filter(event) {
			sub.callback(event)
		}
	}
	return nil
}

func (b *capturingBus) subscriberCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}

func newPendingOrder(t *testing.T) *order.Order {
	t.Helper()
	aggregate, err := order.NewOrder(kernel.NewUUID(), map[string]any{
		order.PropCustomerInfo: "ACME Corp",
		order.PropOrderItems: []order.Item{
			{ItemID: "widget", Price: 90.22},
		},
		order.PropShippingAddress:  "123 Main Street",
		order.PropBillingAddress:   "123 Main Street",
		order.PropCreditCardNumber: "4111111111111111",
	})
	require.NoError(t, err)
	return aggregate
}

func advance(t *testing.T, aggregate *order.Order, statuses ...order.Status) *order.Order {
	t.Helper()
	var err error
	for _, status := range statuses {
		aggregate, err = aggregate.Apply(map[string]any{order.PropOrderStatus: status})
		require.NoError(t, err)
	}
	return aggregate
}

type dispatcherFixture struct {
	dispatcher    *workflows.Dispatcher
	runner        *workflows.Runner
	collaborators *MockCollaborators
	bus           *capturingBus
	updates       chan appliedUpdate
}

func newDispatcherFixture(t *testing.T) *dispatcherFixture {
	t.Helper()

	updates := make(chan appliedUpdate, 8)
	runner := workflows.NewRunner(recordingApply(updates, nil), testLogger())
	collaborators := new(MockCollaborators)
	bus := &capturingBus{}

	dispatcher := workflows.NewDispatcher(
		collaborators,
		collaborators,
		collaborators,
		collaborators,
		collaborators,
		bus,
		runner,
		testLogger(),
	)

	runner.Start(context.Background())
	t.Cleanup(runner.Stop)

	return &dispatcherFixture{
		dispatcher:    dispatcher,
		runner:        runner,
		collaborators: collaborators,
		bus:           bus,
		updates:       updates,
	}
}

func (f *dispatcherFixture) waitForUpdates(t *testing.T, n int) []appliedUpdate {
	t.Helper()
	applied := make([]appliedUpdate, 0, n)
	for i := 0; i < n; i++ {
		applied = append(applied, waitForUpdate(t, f.updates))
	}
	return applied
}

func TestDispatcher_Pending(t *testing.T) {
	t.Run("should validate the address and authorize payment", func(t *testing.T) {
		f := newDispatcherFixture(t)
		aggregate := newPendingOrder(t)

		f.collaborators.On("ValidateAddress", mock.Anything, aggregate).
			Return("123 MAIN STREET", nil).Once()
		f.collaborators.On("AuthorizePayment", mock.Anything, aggregate).
			Return("AUTH-42", nil).Once()

		require.NoError(t, f.dispatcher.Dispatch(context.Background(), aggregate))

		merged := map[string]any{}
		for _, u := range f.waitForUpdates(t, 2) {
			assert.True(t, u.orderNo.IsEqual(aggregate.OrderNo()))
			for k, v := range u.changes {
				merged[k] = v
			}
		}

		assert.Equal(t, "123 MAIN STREET", merged[order.PropShippingAddress])
		assert.Equal(t, "AUTH-42", merged[order.PropPaymentAuthorization])
		f.collaborators.AssertExpectations(t)
	})

	t.Run("should keep authorizing when address validation fails", func(t *testing.T) {
		f := newDispatcherFixture(t)
		aggregate := newPendingOrder(t)

		f.collaborators.On("ValidateAddress", mock.Anything, aggregate).
			Return("", assert.AnError).Once()
		f.collaborators.On("AuthorizePayment", mock.Anything, aggregate).
			Return("AUTH-42", nil).Once()

		require.NoError(t, f.dispatcher.Dispatch(context.Background(), aggregate))

		applied := f.waitForUpdates(t, 1)
		assert.Equal(t, "AUTH-42", applied[0].changes[order.PropPaymentAuthorization])
		f.collaborators.AssertExpectations(t)
	})
}

func TestDispatcher_Approved(t *testing.T) {
	t.Run("should fill the order and ship from the returned pickup address", func(t *testing.T) {
		f := newDispatcherFixture(t)
		aggregate := advance(t, newPendingOrder(t), order.Approved)

		f.collaborators.On("FillOrder", mock.Anything, aggregate).
			Return("1 WAREHOUSE WAY", nil).Once()
		f.collaborators.On("ShipOrder", mock.Anything, aggregate, "1 WAREHOUSE WAY").
			Return(nil).Once()

		require.NoError(t, f.dispatcher.Dispatch(context.Background(), aggregate))

		applied := f.waitForUpdates(t, 1)
		assert.Equal(t, order.Shipping, applied[0].changes[order.PropOrderStatus])
		f.collaborators.AssertExpectations(t)
	})

	t.Run("should ship even when the step queue is saturated during fulfillment", func(t *testing.T) {
		f := newDispatcherFixture(t)
		aggregate := advance(t, newPendingOrder(t), order.Approved)

		started := make(chan struct{})
		release := make(chan struct{})
		f.collaborators.On("FillOrder", mock.Anything, aggregate).
			Run(func(mock.Arguments) {
				close(started)
				<-release
			}).
			Return("1 WAREHOUSE WAY", nil).Once()
		f.collaborators.On("ShipOrder", mock.Anything, aggregate, "1 WAREHOUSE WAY").
			Return(nil).Once()

		require.NoError(t, f.dispatcher.Dispatch(context.Background(), aggregate))

		select {
		case <-started:
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for fulfillment to start")
		}

		// Fill the step queue to capacity while the worker is inside
		// FillOrder; its shipment continuation must still get through.
		for range 64 {
			f.runner.Enqueue(workflows.Step{
				Name:    "filler",
				OrderNo: aggregate.OrderNo(),
				Run:     func(context.Context) (map[string]any, error) { return nil, nil },
			})
		}
		close(release)

		applied := f.waitForUpdates(t, 1)
		assert.Equal(t, order.Shipping, applied[0].changes[order.PropOrderStatus])
		f.collaborators.AssertExpectations(t)
	})

	t.Run("should not ship when fulfillment fails", func(t *testing.T) {
		f := newDispatcherFixture(t)
		aggregate := advance(t, newPendingOrder(t), order.Approved)

		f.collaborators.On("FillOrder", mock.Anything, aggregate).
			Return("", assert.AnError).Once()

		require.NoError(t, f.dispatcher.Dispatch(context.Background(), aggregate))

		select {
		case err := <-f.runner.Failures():
			assert.ErrorIs(t, err, assert.AnError)
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for the fulfillment failure")
		}
		f.collaborators.AssertNotCalled(t, "ShipOrder", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestDispatcher_Shipping(t *testing.T) {
	t.Run("should complete the order once delivery is announced", func(t *testing.T) {
		f := newDispatcherFixture(t)
		aggregate := advance(t, newPendingOrder(t), order.Approved, order.Shipping)

		tracked := make(chan struct{})
		f.collaborators.On("TrackShipment", mock.Anything, aggregate).
			Run(func(mock.Arguments) { close(tracked) }).
			Return(nil).Once()
		f.collaborators.On("VerifyDelivery", mock.Anything, aggregate).
			Return("POD-9000", nil).Once()
		f.collaborators.On("CompletePayment", mock.Anything, aggregate).
			Return(nil).Once()

		require.NoError(t, f.dispatcher.Dispatch(context.Background(), aggregate))

		select {
		case <-tracked:
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for tracking to start")
		}

		// The subscription is registered after TrackShipment returns.
		require.Eventually(t, func() bool { return f.bus.subscriberCount() == 1 },
			2*time.Second, 10*time.Millisecond)

		require.NoError(t, f.bus.Notify(context.Background(), ports.Event{
			Topic:   workflows.TopicOrderDelivered,
			OrderNo: aggregate.OrderNo().String(),
		}))

		u := waitForUpdate(t, f.updates)
		assert.Equal(t, order.Complete, u.changes[order.PropOrderStatus])
		assert.Equal(t, "POD-9000", u.changes[order.PropProofOfDelivery])
		f.collaborators.AssertExpectations(t)
	})

	t.Run("should ignore deliveries for other orders", func(t *testing.T) {
		f := newDispatcherFixture(t)
		aggregate := advance(t, newPendingOrder(t), order.Approved, order.Shipping)

		tracked := make(chan struct{})
		f.collaborators.On("TrackShipment", mock.Anything, aggregate).
			Run(func(mock.Arguments) { close(tracked) }).
			Return(nil).Once()

		require.NoError(t, f.dispatcher.Dispatch(context.Background(), aggregate))
		<-tracked

		require.Eventually(t, func() bool { return f.bus.subscriberCount() == 1 },
			2*time.Second, 10*time.Millisecond)

		_ = f.bus.Notify(context.Background(), ports.Event{
			Topic:   workflows.TopicOrderDelivered,
			OrderNo: kernel.NewUUID().String(),
		})

		f.collaborators.AssertNotCalled(t, "VerifyDelivery", mock.Anything, mock.Anything)
	})
}

func TestDispatcher_Canceled(t *testing.T) {
	t.Run("should refund the payment", func(t *testing.T) {
		f := newDispatcherFixture(t)
		aggregate := advance(t, newPendingOrder(t), order.Canceled)

		refunded := make(chan struct{})
		f.collaborators.On("RefundPayment", mock.Anything, aggregate).
			Run(func(mock.Arguments) { close(refunded) }).
			Return(nil).Once()

		require.NoError(t, f.dispatcher.Dispatch(context.Background(), aggregate))

		select {
		case <-refunded:
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for the refund")
		}
		assert.Empty(t, f.updates)
	})
}

func TestDispatcher_Complete(t *testing.T) {
	t.Run("should enqueue nothing for a completed order", func(t *testing.T) {
		f := newDispatcherFixture(t)
		aggregate := advance(t, newPendingOrder(t), order.Approved, order.Shipping)
		aggregate, err := aggregate.Apply(map[string]any{
			order.PropOrderStatus:     order.Complete,
			order.PropProofOfDelivery: "POD-1",
		})
		require.NoError(t, err)

		require.NoError(t, f.dispatcher.Dispatch(context.Background(), aggregate))
		assert.Empty(t, f.updates)
	})
}

func TestDispatcher_Validation(t *testing.T) {
	t.Run("should reject an unconstructed order", func(t *testing.T) {
		f := newDispatcherFixture(t)

		var zero order.Order
		err := f.dispatcher.Dispatch(context.Background(), &zero)
		assert.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
	})
}
