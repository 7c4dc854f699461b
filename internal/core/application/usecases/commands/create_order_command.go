package commands

import (
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to create a new order. It carries
// the initial attributes verbatim; which of them are required, and whether
// they are valid, is the order pipeline's authority, so a rejected creation
// reports every missing or invalid property at once instead of the first one
// a setter happens to see.
//
// Example:
//
//	orderNo := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderNo, CreateOrderAttributes{
//	    CustomerInfo:     "ACME Corp",
//	    OrderItems:       []order.Item{{ItemID: "item1", Price: 90.22}},
//	    ShippingAddress:  "123 Main Street",
//	    BillingAddress:   "123 Main Street",
//	    CreditCardNumber: "4111111111111111",
//	})
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderNo kernel.UUID
	attrs   CreateOrderAttributes

	guard guard.ConstructorGuard
}

// CreateOrderAttributes are the caller-supplied initial properties of an order.
type CreateOrderAttributes struct {
	CustomerInfo      string
	OrderItems        []order.Item
	ShippingAddress   string
	BillingAddress    string
	CreditCardNumber  string
	SignatureRequired bool
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates the identifier; the attributes are judged by the order pipeline.
func NewCreateOrderCommand(orderNo kernel.UUID, attrs CreateOrderAttributes) (CreateOrderCommand, error) {
	if err := orderNo.Validate(); err != nil {
		return CreateOrderCommand{}, err
	}

	return CreateOrderCommand{
		orderNo: orderNo,
		attrs:   attrs,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderNo returns the identifier the order will be created under.
func (c CreateOrderCommand) OrderNo() kernel.UUID {
	return c.orderNo
}

// Attributes returns the initial properties as a change set for the pipeline.
func (c CreateOrderCommand) Attributes() map[string]any {
	return map[string]any{
		order.PropCustomerInfo:      c.attrs.CustomerInfo,
		order.PropOrderItems:        c.attrs.OrderItems,
		order.PropShippingAddress:   c.attrs.ShippingAddress,
		order.PropBillingAddress:    c.attrs.BillingAddress,
		order.PropCreditCardNumber:  c.attrs.CreditCardNumber,
		order.PropSignatureRequired: c.attrs.SignatureRequired,
	}
}
