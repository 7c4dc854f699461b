package ports

import (
	"context"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// The engine itself keeps no durable state: it reads the latest persisted
// snapshot, applies the pipeline, and writes the successor back. Writes use
// optimistic concurrency on the order's version; two updates racing on the
// same field are resolved here, not by the pipeline.
type OrderRepository interface {
	// Add persists a newly created order.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists an updated order using compare-and-swap on the version
	// the aggregate was loaded at. Returns VersionIsInvalidError when another
	// writer got there first.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its identifier.
	Get(ctx context.Context, orderNo kernel.UUID) (*order.Order, error)

	// Delete removes a terminal order. The delete guard must have been
	// checked by the caller.
	Delete(ctx context.Context, orderNo kernel.UUID) error

	// GetAllIncomplete retrieves every order that has not reached a terminal
	// status.
	GetAllIncomplete(ctx context.Context) ([]*order.Order, error)

	// GetStalledPending retrieves Pending orders still missing a payment
	// authorization, so the workflow sweeper can re-drive them.
	GetStalledPending(ctx context.Context) ([]*order.Order, error)
}
