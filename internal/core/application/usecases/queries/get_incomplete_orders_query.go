package queries

import (
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/guard"
)

var (
	ErrGetIncompleteOrdersQueryIsNotConstructed = errors.New(
		"GetIncompleteOrdersQuery must be created via NewGetIncompleteOrdersQuery constructor",
	)
)

// GetIncompleteOrdersQuery retrieves every order still moving through
// fulfillment, for monitoring and operator dashboards.
type GetIncompleteOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetIncompleteOrdersQuery creates a query to retrieve in-flight orders.
func NewGetIncompleteOrdersQuery() GetIncompleteOrdersQuery {
	return GetIncompleteOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetIncompleteOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetIncompleteOrdersQueryIsNotConstructed)
}

// GetIncompleteOrdersQueryResponse is the read model for one in-flight order.
type GetIncompleteOrdersQueryResponse struct {
	OrderNo kernel.UUID
	Status  order.Status
	Total   float64
}
