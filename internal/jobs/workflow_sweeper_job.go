// Package jobs provides scheduled background tasks. Jobs are cron-driven
// (github.com/robfig/cron/v3) and coordinated through JobManager, which the
// composition root starts after the workflow runner and stops before it.
package jobs

import (
	"context"
	"errors"
	"log/slog"

	"orderflow/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// WorkflowSweeperJob periodically re-drives the workflow for Pending orders
// whose asynchronous steps were lost, typically across a process restart.
// Dispatching is idempotent, so sweeping an order whose steps are still in
// flight is harmless.
type WorkflowSweeperJob struct {
	handler  commands.SweepStalledOrdersCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewWorkflowSweeperJob creates the sweeper running on the given cron
// schedule (with a seconds field).
func NewWorkflowSweeperJob(
	handler commands.SweepStalledOrdersCommandHandler,
	schedule string,
	logger *slog.Logger,
) *WorkflowSweeperJob {
	return &WorkflowSweeperJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "workflow_sweeper_job"),
	}
}

// Start begins the sweeper on its schedule.
func (j *WorkflowSweeperJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		cmd, cmdErr := commands.NewSweepStalledOrdersCommand()
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Workflow sweep setup failed", "error", cmdErr)
			return
		}

		if sweepErr := j.handler.Handle(ctx, cmd); sweepErr != nil {
			// An empty sweep is the expected steady state
			if !errors.Is(sweepErr, commands.ErrNoStalledOrdersFound) {
				j.logger.ErrorContext(ctx, "Workflow sweep failed", "error", sweepErr)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Workflow sweeper job started", "schedule", j.schedule)
	return nil
}

// Stop stops the sweeper.
func (j *WorkflowSweeperJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Workflow sweeper job stopped")
}
