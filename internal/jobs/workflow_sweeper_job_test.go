package jobs_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/ports"
	"orderflow/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sweepProbe is an OrderUoW whose Begin signals the channel, which is enough
// to observe that the sweeper fired its command handler.
type sweepProbe struct {
	began chan struct{}
}

func (p *sweepProbe) Begin(context.Context) error {
	select {
	case p.began <- struct{}{}:
	default:
	}
	return nil
}

func (p *sweepProbe) Commit(context.Context) error   { return nil }
func (p *sweepProbe) Rollback(context.Context) error { return nil }

func (p *sweepProbe) OrderRepository() ports.OrderRepository { return emptyRepo{} }

type emptyRepo struct{}

func (emptyRepo) Add(context.Context, *order.Order) error    { return nil }
func (emptyRepo) Update(context.Context, *order.Order) error { return nil }
func (emptyRepo) Get(context.Context, kernel.UUID) (*order.Order, error) {
	return nil, nil
}
func (emptyRepo) Delete(context.Context, kernel.UUID) error { return nil }
func (emptyRepo) GetAllIncomplete(context.Context) ([]*order.Order, error) {
	return nil, nil
}
func (emptyRepo) GetStalledPending(context.Context) ([]*order.Order, error) {
	return nil, nil
}

type probeFactory struct{ uow *sweepProbe }

func (f probeFactory) Create() commands.OrderUoW { return f.uow }

type noopDispatcher struct{}

func (noopDispatcher) Dispatch(context.Context, *order.Order) error { return nil }

func newSweepHandler(probe *sweepProbe) commands.SweepStalledOrdersCommandHandler {
	return commands.NewSweepStalledOrdersCommandHandler(probeFactory{uow: probe}, noopDispatcher{})
}

func TestWorkflowSweeperJob(t *testing.T) {
	t.Run("should reject an invalid schedule", func(t *testing.T) {
		probe := &sweepProbe{began: make(chan struct{}, 1)}
		job := jobs.NewWorkflowSweeperJob(newSweepHandler(probe), "not a schedule", testLogger())

		err := job.Start()
		assert.Error(t, err)
	})

	t.Run("should run the sweep on its schedule", func(t *testing.T) {
		probe := &sweepProbe{began: make(chan struct{}, 1)}
		job := jobs.NewWorkflowSweeperJob(newSweepHandler(probe), "* * * * * *", testLogger())

		require.NoError(t, job.Start())
		defer job.Stop()

		select {
		case <-probe.began:
		case <-time.After(3 * time.Second):
			t.Fatal("timed out waiting for the sweep to fire")
		}
	})
}

func TestJobManager(t *testing.T) {
	t.Run("should start and stop all jobs", func(t *testing.T) {
		probe := &sweepProbe{began: make(chan struct{}, 1)}
		manager := jobs.NewJobManager(newSweepHandler(probe), "* * * * * *", testLogger())

		require.NoError(t, manager.StartAll())
		manager.StopAll()
	})

	t.Run("should surface a failing job on start", func(t *testing.T) {
		probe := &sweepProbe{began: make(chan struct{}, 1)}
		manager := jobs.NewJobManager(newSweepHandler(probe), "bad", testLogger())

		assert.Error(t, manager.StartAll())
	})
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
