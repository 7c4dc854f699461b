package workflows

import (
	"context"
	"log/slog"
	"sync"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"
)

// Step is one unit of asynchronous workflow work. Run performs the external
// call and returns the follow-up change set to merge back into the order, or
// nil when the step produces no follow-up. Each follow-up supplies only the
// fields the step owns, so steps resolving in any order commute under the
// pipeline's shallow merge.
type Step struct {
	Name    string
	OrderNo kernel.UUID
	Run     func(ctx context.Context) (map[string]any, error)
}

// ApplyFunc feeds a step's follow-up change set back through the update
// pipeline of the order it belongs to.
type ApplyFunc func(ctx context.Context, orderNo kernel.UUID, changes map[string]any) error

// Runner executes workflow steps on a background worker. Failures are logged
// with the originating step's identity, wrapped as WorkflowStepError, and
// reported on the Errors channel; they are never retried here and never
// silently dropped.
type Runner struct {
	apply  ApplyFunc
	logger *slog.Logger

	steps    chan Step
	failures chan error

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	once   sync.Once
}

// NewRunner creates a runner delivering follow-up updates through apply.
func NewRunner(apply ApplyFunc, logger *slog.Logger) *Runner {
	return &Runner{
		apply:    apply,
		logger:   logger.With("component", "workflow_runner"),
		steps:    make(chan Step, 64),
		failures: make(chan error, 64),
	}
}

// Start launches the worker. Steps enqueued before Start wait in the buffer.
func (r *Runner) Start(ctx context.Context) {
	r.ctx, r.cancel = context.WithCancel(ctx)
	r.wg.Add(1)
	go r.work()
	r.logger.InfoContext(ctx, "Workflow runner started")
}

// Stop drains no further steps and waits for the in-flight step to finish.
// The steps channel is never closed: event-bus callbacks and request handlers
// may still race an Enqueue against shutdown, and those late steps are
// dropped, not panicked on.
func (r *Runner) Stop() {
	r.once.Do(func() {
		r.cancel()
		r.wg.Wait()
		r.logger.InfoContext(context.Background(), "Workflow runner stopped")
	})
}

// Context returns the runner's lifecycle context. Long-lived subscriptions
// spawned by steps (shipment tracking) bind to it rather than to the
// request context that triggered the dispatch.
func (r *Runner) Context() context.Context {
	return r.ctx
}

// Enqueue schedules a step for execution. Steps enqueued before Start wait in
// the buffer until the worker comes up.
func (r *Runner) Enqueue(step Step) {
	if r.ctx == nil {
		r.steps <- step
		return
	}
	select {
	case r.steps <- step:
	case <-r.ctx.Done():
		r.logger.Warn("Step dropped, runner is stopping", "step", step.Name, "orderNo", step.OrderNo.String())
	}
}

// Failures reports wrapped step errors for observers; the buffer is bounded
// and old failures are dropped once nobody reads them.
func (r *Runner) Failures() <-chan error {
	return r.failures
}

func (r *Runner) work() {
	defer r.wg.Done()
	for {
		select {
		case <-r.ctx.Done():
			return
		case step := <-r.steps:
			if err := r.Execute(r.ctx, step); err != nil {
				select {
				case r.failures <- err:
				default:
				}
			}
		}
	}
}

// Execute runs one step synchronously: the external call, then the follow-up
// update. Any failure is logged with the step's identity and returned as a
// WorkflowStepError.
func (r *Runner) Execute(ctx context.Context, step Step) error {
	changes, err := step.Run(ctx)
	if err != nil {
		r.logger.ErrorContext(ctx, "Workflow step failed",
			"step", step.Name, "orderNo", step.OrderNo.String(), "error", err)
		return errs.NewWorkflowStepError(step.Name, err)
	}

	if len(changes) == 0 {
		return nil
	}

	if err := r.apply(ctx, step.OrderNo, changes); err != nil {
		r.logger.ErrorContext(ctx, "Workflow follow-up update failed",
			"step", step.Name, "orderNo", step.OrderNo.String(), "error", err)
		return errs.NewWorkflowStepError(step.Name, err)
	}

	return nil
}
