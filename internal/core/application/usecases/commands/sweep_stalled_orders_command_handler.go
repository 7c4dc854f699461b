package commands

import (
	"context"

	"go.uber.org/multierr"
)

// SweepStalledOrdersCommandHandler re-dispatches the Pending workflow for
// orders whose asynchronous steps were lost, for example across a process
// restart. Dispatch is idempotent per step: a step that already resolved
// merges the same field value again and the order is unchanged.
type SweepStalledOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	dispatcher WorkflowDispatcher
}

// NewSweepStalledOrdersCommandHandler creates a handler for the workflow sweep.
func NewSweepStalledOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	dispatcher WorkflowDispatcher,
) SweepStalledOrdersCommandHandler {
	return SweepStalledOrdersCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

// Handle processes the sweep command. Returns ErrNoStalledOrdersFound when
// nothing needed re-driving. A dispatch failure for one order does not stop
// the others; failures are aggregated.
func (h *SweepStalledOrdersCommandHandler) Handle(ctx context.Context, cmd SweepStalledOrdersCommand) error {
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

	stalled, err := uow.OrderRepository().GetStalledPending(ctx)
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if len(stalled) == 0 {
		return ErrNoStalledOrdersFound
	}

	var dispatchErr error
	for _, aggregate := range stalled {
		dispatchErr = multierr.Append(dispatchErr, h.dispatcher.Dispatch(ctx, aggregate))
	}

	return dispatchErr
}
