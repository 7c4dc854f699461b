// Package queries contains read-only operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries bypass the domain pipeline and read projections straight from the
// database; sensitive payment data never leaves the write side.
package queries

import (
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves a single order by its identifier.
type GetOrderQuery struct {
	orderNo kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query to retrieve an order.
func NewGetOrderQuery(orderNo kernel.UUID) (GetOrderQuery, error) {
	if err := orderNo.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderNo: orderNo,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderNo returns the identifier of the order to retrieve.
func (q GetOrderQuery) OrderNo() kernel.UUID {
	return q.orderNo
}

// GetOrderQueryResponse is the read model for a single order. The credit
// card number is stored encrypted and is not part of any read model.
type GetOrderQueryResponse struct {
	OrderNo           kernel.UUID
	CustomerInfo      string
	OrderItems        []order.Item
	ShippingAddress   string
	BillingAddress    string
	ProofOfDelivery   string
	SignatureRequired bool
	Status            order.Status
	Total             float64
	Version           int
}
