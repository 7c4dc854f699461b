package commands_test

import (
	"context"
	"errors"
	"testing"

	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, orderNo kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, orderNo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, orderNo kernel.UUID) error {
	args := m.Called(ctx, orderNo)
	return args.Error(0)
}

func (m *MockOrderRepository) GetAllIncomplete(_ context.Context) ([]*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}

func (m *MockOrderRepository) GetStalledPending(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockWorkflowDispatcher struct{ mock.Mock }

func (m *MockWorkflowDispatcher) Dispatch(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func validAttributes() commands.CreateOrderAttributes {
	return commands.CreateOrderAttributes{
		CustomerInfo: "ACME Corp",
		OrderItems: []order.Item{
			{ItemID: "widget", Price: 90.22},
			{ItemID: "gadget", Price: 87.60},
		},
		ShippingAddress:  "123 Main Street",
		BillingAddress:   "123 Main Street",
		CreditCardNumber: "4111111111111111",
	}
}

func newTestOrder(t *testing.T, orderNo kernel.UUID) *order.Order {
	t.Helper()
	cmd, err := commands.NewCreateOrderCommand(orderNo, validAttributes())
	require.NoError(t, err)
	aggregate, err := order.NewOrder(orderNo, cmd.Attributes())
	require.NoError(t, err)
	return aggregate
}
