package commands

import (
	"errors"

	"orderflow/internal/pkg/guard"
)

var (
	ErrSweepStalledOrdersCommandIsNotConstructed = errors.New(
		"SweepStalledOrdersCommand must be created via NewSweepStalledOrdersCommand constructor",
	)

	// ErrNoStalledOrdersFound signals a sweep that had nothing to re-drive.
	// The scheduled job treats it as a clean run.
	ErrNoStalledOrdersFound = errors.New("no stalled orders found")
)

// SweepStalledOrdersCommand requests a re-dispatch of workflow steps for
// Pending orders whose payment authorization never arrived, typically because
// the process restarted while the step was in flight.
type SweepStalledOrdersCommand struct { //nolint:recvcheck //using for validation
	guard guard.ConstructorGuard
}

// NewSweepStalledOrdersCommand creates a command to sweep stalled orders.
func NewSweepStalledOrdersCommand() (SweepStalledOrdersCommand, error) {
	return SweepStalledOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SweepStalledOrdersCommand) Validate() error {
	return c.guard.Validate(ErrSweepStalledOrdersCommandIsNotConstructed)
}
