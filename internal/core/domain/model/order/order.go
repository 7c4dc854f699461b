package order

import (
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/pipeline"
	"orderflow/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods. This ensures all
	// orders passed through the guard pipeline at least once.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order is the aggregate root of the fulfillment lifecycle. It wraps an
// immutable snapshot produced by the order guard pipeline and exposes typed
// accessors over the snapshot's enumerable properties.
//
// Order follows these invariants:
//   - Every instance went through the guard pipeline (factory or Apply)
//   - orderTotal equals the sum of the current orderItems' prices
//   - orderStatus only moves along the legal transition edges
//   - Properties frozen by the previous status are never changed
//
// An Order is never mutated: Apply returns a new Order holding the successor
// snapshot, and the previous instance stays valid for whoever holds it.
type Order struct {
	// snapshot is the immutable property view at this version
	snapshot *pipeline.Snapshot

	// version is the optimistic-concurrency version the snapshot was
	// loaded at; the persistence layer compares it on write
	version int

	// isConstructed ensures the order was created via a factory
	isConstructed bool
}

// NewOrder creates an order from its initial attributes. The factory assigns
// the identifier and the initial Pending status, then runs the full guard
// pipeline: required properties are checked, the total is derived from the
// items, and post-merge validation applies.
//
// Returns the created order, or the guard error that rejected the attributes.
func NewOrder(orderNo kernel.UUID, attrs map[string]any) (*Order, error) {
	if err := orderNo.Validate(); err != nil {
		return nil, err
	}

	changes := make(map[string]any, len(attrs)+2)
	for k, v := range attrs {
		changes[k] = v
	}
	changes[PropOrderNo] = orderNo
	changes[PropOrderStatus] = Pending

	snapshot, err := orderPipeline.Process(nil, changes)
	if err != nil {
		return nil, err
	}

	return &Order{snapshot: snapshot, version: 1, isConstructed: true}, nil
}

// RestoreOrder reconstructs an order from persisted state without re-running
// the creation pipeline. Used by repositories; the stored state is trusted to
// have passed the pipeline when it was written.
func RestoreOrder(values map[string]any, version int) (*Order, error) {
	restored := &Order{snapshot: pipeline.NewSnapshot(values), version: version, isConstructed: true}

	orderNo, ok := values[PropOrderNo].(kernel.UUID)
	if !ok {
		return nil, errs.NewValueIsRequiredError(PropOrderNo)
	}
	if err := orderNo.Validate(); err != nil {
		return nil, err
	}
	if err := restored.Status().Validate(); err != nil {
		return nil, err
	}
	if version < 1 {
		return nil, errs.NewVersionIsInvalidErrorWithCause("order version")
	}

	return restored, nil
}

// Validate ensures the Order instance was produced by a factory.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// Apply runs a change set through the guard pipeline against this order's
// snapshot and returns the successor order. On any guard failure the receiver
// is untouched and remains authoritative.
func (o *Order) Apply(changes map[string]any) (*Order, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	snapshot, err := orderPipeline.Process(o.snapshot, changes)
	if err != nil {
		return nil, err
	}

	return &Order{snapshot: snapshot, version: o.version, isConstructed: true}, nil
}

// ValidateDelete checks the delete guard: an order may only be deleted once
// its status is terminal.
func (o *Order) ValidateDelete() error {
	if err := o.Validate(); err != nil {
		return err
	}
	return o.Status().CanDelete()
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.OrderNo().IsEqual(other.OrderNo())
}

// OrderNo returns the order's immutable identifier.
func (o *Order) OrderNo() kernel.UUID {
	if v, ok := o.snapshot.Get(PropOrderNo); ok {
		if id, isUUID := v.(kernel.UUID); isUUID {
			return id
		}
	}
	return kernel.UUID{}
}

// Status returns the order's lifecycle status.
func (o *Order) Status() Status {
	return statusOf(o.snapshot)
}

// Items returns the order's line items.
func (o *Order) Items() []Item {
	if v, ok := o.snapshot.Get(PropOrderItems); ok {
		if items, isItems := v.([]Item); isItems {
			return append([]Item(nil), items...)
		}
	}
	return nil
}

// Total returns the derived order total.
func (o *Order) Total() float64 {
	if v, ok := o.snapshot.Get(PropOrderTotal); ok {
		if total, isFloat := v.(float64); isFloat {
			return total
		}
	}
	return 0
}

// CustomerInfo returns the customer information attached to the order.
func (o *Order) CustomerInfo() string {
	return o.getString(PropCustomerInfo)
}

// ShippingAddress returns the delivery address.
func (o *Order) ShippingAddress() string {
	return o.getString(PropShippingAddress)
}

// BillingAddress returns the billing address.
func (o *Order) BillingAddress() string {
	return o.getString(PropBillingAddress)
}

// CreditCardNumber returns the payment card number.
func (o *Order) CreditCardNumber() string {
	return o.getString(PropCreditCardNumber)
}

// PaymentAuthorization returns the payment authorization token, or "" while
// payment has not been authorized yet.
func (o *Order) PaymentAuthorization() string {
	return o.getString(PropPaymentAuthorization)
}

// ProofOfDelivery returns the delivery proof, or "" before delivery.
func (o *Order) ProofOfDelivery() string {
	return o.getString(PropProofOfDelivery)
}

// SignatureRequired reports whether delivery requires a signature.
func (o *Order) SignatureRequired() bool {
	if v, ok := o.snapshot.Get(PropSignatureRequired); ok {
		if b, isBool := v.(bool); isBool {
			return b
		}
	}
	return false
}

// Version returns the optimistic-concurrency version this order was loaded at.
func (o *Order) Version() int {
	return o.version
}

// Snapshot returns the order's current immutable snapshot.
func (o *Order) Snapshot() *pipeline.Snapshot {
	return o.snapshot
}

func (o *Order) getString(prop string) string {
	if v, ok := o.snapshot.Get(prop); ok {
		if s, isString := v.(string); isString {
			return s
		}
	}
	return ""
}
