package cmd

import (
	"context"
	"log/slog"

	"orderflow/internal/adapters/out/crypto"
	"orderflow/internal/adapters/out/local"
	"orderflow/internal/adapters/out/postgres"
	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/application/usecases/queries"
	"orderflow/internal/core/application/workflows"
	"orderflow/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into the application's use cases. Workflow
// follow-up updates are routed back through the update command handler, so
// asynchronous steps obey the same property guards as API callers.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	runner     *workflows.Runner
	dispatcher *workflows.Dispatcher
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	codec, err := crypto.NewCodec([]byte(config.EncryptionKey))
	if err != nil {
		return nil, err
	}

	root := &CompositionRoot{
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, codec),
		logger:     logger,
	}

	root.runner = workflows.NewRunner(root.applyWorkflowUpdate, logger)

	collaborators := local.NewCollaborators(logger)
	root.dispatcher = workflows.NewDispatcher(
		collaborators,
		collaborators,
		collaborators,
		collaborators,
		collaborators,
		local.NewInProcessEventBus(),
		root.runner,
		logger,
	)

	return root, nil
}

// Runner exposes the workflow runner so main can manage its lifecycle.
func (c *CompositionRoot) Runner() *workflows.Runner {
	return c.runner
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.dispatcher)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderCommandHandler(f, c.dispatcher)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateSweepStalledOrdersCommandHandler() commands.SweepStalledOrdersCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSweepStalledOrdersCommandHandler(f, c.dispatcher)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetIncompleteOrdersQueryHandler() queries.GetIncompleteOrdersQueryHandler {
	return queries.NewGetIncompleteOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) applyWorkflowUpdate(ctx context.Context, orderNo kernel.UUID, changes map[string]any) error {
	cmd, err := commands.NewUpdateOrderCommand(orderNo, changes)
	if err != nil {
		return err
	}
	handler := c.CreateUpdateOrderCommandHandler()
	return handler.Handle(ctx, cmd)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
