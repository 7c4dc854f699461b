// Package local provides in-process implementations of the workflow
// collaborator ports and the event bus. They approve every request and log
// what a real integration would do; intended for development and testing.
package local

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"orderflow/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// Collaborators implements every collaborator port against no external
// system. Addresses normalize to upper case, payments always authorize, and
// delivery proofs are generated on the spot.
type Collaborators struct {
	logger *slog.Logger
}

// NewCollaborators creates the local collaborator set.
func NewCollaborators(logger *slog.Logger) *Collaborators {
	return &Collaborators{logger: logger.With("component", "local_collaborators")}
}

// ValidateAddress normalizes the order's shipping address.
func (c *Collaborators) ValidateAddress(ctx context.Context, aggregate *order.Order) (string, error) {
	normalized := strings.ToUpper(strings.TrimSpace(aggregate.ShippingAddress()))
	c.logger.InfoContext(ctx, "Address validated",
		"orderNo", aggregate.OrderNo().String(), "address", normalized)
	return normalized, nil
}

// AuthorizePayment issues a fresh authorization token for the order's total.
func (c *Collaborators) AuthorizePayment(ctx context.Context, aggregate *order.Order) (string, error) {
	token := fmt.Sprintf("AUTH-%s", uuid.NewString())
	c.logger.InfoContext(ctx, "Payment authorized",
		"orderNo", aggregate.OrderNo().String(), "total", aggregate.Total())
	return token, nil
}

// CompletePayment captures the order's authorized payment.
func (c *Collaborators) CompletePayment(ctx context.Context, aggregate *order.Order) error {
	c.logger.InfoContext(ctx, "Payment captured",
		"orderNo", aggregate.OrderNo().String(),
		"authorization", aggregate.PaymentAuthorization())
	return nil
}

// RefundPayment refunds the order's payment.
func (c *Collaborators) RefundPayment(ctx context.Context, aggregate *order.Order) error {
	c.logger.InfoContext(ctx, "Payment refunded",
		"orderNo", aggregate.OrderNo().String(), "total", aggregate.Total())
	return nil
}

// ShipOrder accepts the shipment request.
func (c *Collaborators) ShipOrder(ctx context.Context, aggregate *order.Order, pickupAddress string) error {
	c.logger.InfoContext(ctx, "Shipment requested",
		"orderNo", aggregate.OrderNo().String(), "pickupAddress", pickupAddress)
	return nil
}

// TrackShipment accepts the tracking subscription.
func (c *Collaborators) TrackShipment(ctx context.Context, aggregate *order.Order) error {
	c.logger.InfoContext(ctx, "Shipment tracking started",
		"orderNo", aggregate.OrderNo().String())
	return nil
}

// VerifyDelivery produces a proof of delivery, signed when the order asks for
// a signature.
func (c *Collaborators) VerifyDelivery(ctx context.Context, aggregate *order.Order) (string, error) {
	proof := fmt.Sprintf("POD-%s", uuid.NewString())
	if aggregate.SignatureRequired() {
		proof += "-SIGNED"
	}
	c.logger.InfoContext(ctx, "Delivery verified",
		"orderNo", aggregate.OrderNo().String(), "proof", proof)
	return proof, nil
}

// FillOrder confirms fulfillment and returns the warehouse pickup address.
func (c *Collaborators) FillOrder(ctx context.Context, aggregate *order.Order) (string, error) {
	c.logger.InfoContext(ctx, "Order filled",
		"orderNo", aggregate.OrderNo().String(), "items", len(aggregate.Items()))
	return "1 WAREHOUSE WAY", nil
}
