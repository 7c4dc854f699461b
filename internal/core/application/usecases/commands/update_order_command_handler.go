package commands

import (
	"context"
)

// UpdateOrderCommandHandler applies a change set to a persisted order.
// Reads the latest snapshot, runs the pipeline, and writes the successor back
// under optimistic concurrency; when the accepted update changed the status,
// the matching workflow step is dispatched after commit.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	dispatcher WorkflowDispatcher
}

// NewUpdateOrderCommandHandler creates a handler for order update operations.
func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory, dispatcher WorkflowDispatcher) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

// Handle processes the order update command.
// Any guard failure aborts before anything is written: the stored snapshot
// stays authoritative. A concurrent writer surfaces as a version error from
// the repository, and the caller is expected to re-read and retry.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	current, err := repo.Get(ctx, cmd.OrderNo())
	if err != nil {
		return err
	}

	updated, err := current.Apply(cmd.Changes())
	if err != nil {
		return err
	}

	if err = repo.Update(ctx, updated); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if updated.Status() != current.Status() {
		return h.dispatcher.Dispatch(ctx, updated)
	}

	return nil
}
