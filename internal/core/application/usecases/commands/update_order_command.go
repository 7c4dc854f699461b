package commands

import (
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/guard"
)

var (
	ErrUpdateOrderCommandIsNotConstructed = errors.New(
		"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
	)
)

// UpdateOrderCommand represents a request to apply a change set to an
// existing order. The change set is carried verbatim: the order pipeline
// decides what is allowed, frozen, required, and valid. An empty change set
// is legal and leaves the visible order state unchanged.
//
// Both operators (status changes, cancellations) and resolving workflow
// steps (address validation results, payment authorizations) issue their
// follow-ups through this command; each carries only the fields it owns, so
// concurrent updates to different fields commute.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderNo kernel.UUID
	changes map[string]any

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to update an order.
func NewUpdateOrderCommand(orderNo kernel.UUID, changes map[string]any) (UpdateOrderCommand, error) {
	if err := orderNo.Validate(); err != nil {
		return UpdateOrderCommand{}, err
	}

	copied := make(map[string]any, len(changes))
	for k, v := range changes {
		copied[k] = v
	}

	return UpdateOrderCommand{
		orderNo: orderNo,
		changes: copied,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderNo returns the identifier of the order to update.
func (c UpdateOrderCommand) OrderNo() kernel.UUID {
	return c.orderNo
}

// Changes returns the proposed change set.
func (c UpdateOrderCommand) Changes() map[string]any {
	copied := make(map[string]any, len(c.changes))
	for k, v := range c.changes {
		copied[k] = v
	}
	return copied
}
