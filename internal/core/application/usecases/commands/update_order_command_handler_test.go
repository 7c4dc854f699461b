package commands_test

import (
	"testing"

	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stretchr/testify/mock"
)

func TestUpdateOrderCommandHandler_Handle_StatusChangeDispatches(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	existing := newTestOrder(t, id)
	cmd, _ := commands.NewUpdateOrderCommand(id, map[string]any{
		order.PropOrderStatus: order.Approved,
	})

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(existing, nil).Once(),
		repo.On("Update", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	dispatcher := new(MockWorkflowDispatcher)
	dispatcher.On("Dispatch", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()

	h := commands.NewUpdateOrderCommandHandler(factory, dispatcher)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	dispatcher.AssertExpectations(t)

	updated := repo.Calls[1].Arguments.Get(1).(*order.Order)
	assert.Equal(t, order.Approved, updated.Status())
}

func TestUpdateOrderCommandHandler_Handle_NoStatusChangeSkipsDispatch(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	existing := newTestOrder(t, id)
	cmd, _ := commands.NewUpdateOrderCommand(id, map[string]any{
		order.PropCustomerInfo: "ACME Corp, attn. shipping dept.",
	})

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(existing, nil).Once(),
		repo.On("Update", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	dispatcher := new(MockWorkflowDispatcher)

	h := commands.NewUpdateOrderCommandHandler(factory, dispatcher)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	dispatcher.AssertNotCalled(t, "Dispatch")
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateOrderCommandHandler_Handle_EmptyChangeSetIsIdempotent(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	existing := newTestOrder(t, id)
	cmd, _ := commands.NewUpdateOrderCommand(id, map[string]any{})

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(existing, nil).Once(),
		repo.On("Update", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	dispatcher := new(MockWorkflowDispatcher)

	h := commands.NewUpdateOrderCommandHandler(factory, dispatcher)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	updated := repo.Calls[1].Arguments.Get(1).(*order.Order)
	assert.Equal(t, existing.Status(), updated.Status())
	assert.Equal(t, existing.CustomerInfo(), updated.CustomerInfo())
	dispatcher.AssertNotCalled(t, "Dispatch")
}

func TestUpdateOrderCommandHandler_Handle_GetError(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewUpdateOrderCommand(id, map[string]any{
		order.PropCustomerInfo: "someone else",
	})

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(nil, errs.NewObjectNotFoundError("orderNo", id)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	dispatcher := new(MockWorkflowDispatcher)

	h := commands.NewUpdateOrderCommandHandler(factory, dispatcher)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestUpdateOrderCommandHandler_Handle_GuardRejectionAborts(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	existing := newTestOrder(t, id)
	approved, err := existing.Apply(map[string]any{order.PropOrderStatus: order.Approved})
	require.NoError(t, err)

	// creditCardNumber froze when the order left Pending
	cmd, _ := commands.NewUpdateOrderCommand(id, map[string]any{
		order.PropCreditCardNumber: "5555444433331111",
	})

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(approved, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	dispatcher := new(MockWorkflowDispatcher)

	h := commands.NewUpdateOrderCommandHandler(factory, dispatcher)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrImmutableProperty)
	repo.AssertNotCalled(t, "Update")
	dispatcher.AssertNotCalled(t, "Dispatch")
}

func TestUpdateOrderCommandHandler_Handle_VersionConflict(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	existing := newTestOrder(t, id)
	cmd, _ := commands.NewUpdateOrderCommand(id, map[string]any{
		order.PropOrderStatus: order.Canceled,
	})

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(existing, nil).Once(),
		repo.On("Update", mock.Anything, mock.AnythingOfType("*order.Order")).
			Return(errs.NewVersionIsInvalidError("version", nil)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	dispatcher := new(MockWorkflowDispatcher)

	h := commands.NewUpdateOrderCommandHandler(factory, dispatcher)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrVersionIsInvalid)
	dispatcher.AssertNotCalled(t, "Dispatch")
}
