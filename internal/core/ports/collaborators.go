package ports

import (
	"context"

	"orderflow/internal/core/domain/model/order"
)

// The collaborator ports are the asynchronous external parties of the order
// workflow. They are opaque to the core: only call signatures and
// success/failure semantics matter. Timeouts, retries, and delivery
// guarantees are the adapters' responsibility.

// AddressVerifier validates and normalizes shipping addresses.
type AddressVerifier interface {
	// ValidateAddress returns the normalized form of the order's shipping
	// address, or an error when the address cannot be validated.
	ValidateAddress(ctx context.Context, aggregate *order.Order) (string, error)
}

// PaymentGateway authorizes, captures, and refunds payments.
type PaymentGateway interface {
	// AuthorizePayment authorizes the order's total against its card and
	// returns the authorization token.
	AuthorizePayment(ctx context.Context, aggregate *order.Order) (string, error)

	// CompletePayment captures a previously authorized payment.
	CompletePayment(ctx context.Context, aggregate *order.Order) error

	// RefundPayment refunds a previously authorized or captured payment.
	RefundPayment(ctx context.Context, aggregate *order.Order) error
}

// ShippingCarrier hands orders to a carrier and exposes tracking.
type ShippingCarrier interface {
	// ShipOrder requests shipment pickup at the given address.
	ShipOrder(ctx context.Context, aggregate *order.Order, pickupAddress string) error

	// TrackShipment subscribes the carrier's tracking feed for the order;
	// delivery is announced on the event bus.
	TrackShipment(ctx context.Context, aggregate *order.Order) error
}

// DeliveryVerifier confirms a reported delivery and produces the proof.
type DeliveryVerifier interface {
	// VerifyDelivery returns the proof of delivery for the order.
	VerifyDelivery(ctx context.Context, aggregate *order.Order) (string, error)
}

// Inventory requests fulfillment of an order's items.
type Inventory interface {
	// FillOrder picks and packs the order's items and returns the warehouse
	// pickup address for the carrier.
	FillOrder(ctx context.Context, aggregate *order.Order) (string, error)
}
