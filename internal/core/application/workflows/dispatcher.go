package workflows

import (
	"context"
	"log/slog"

	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/ports"
	"orderflow/internal/pkg/errs"
)

// Step names, used to tag workflow failures with their origin.
const (
	StepValidateAddress  = "validateAddress"
	StepAuthorizePayment = "authorizePayment"
	StepFillOrder        = "fillOrder"
	StepShipOrder        = "shipOrder"
	StepTrackShipment    = "trackShipment"
	StepVerifyDelivery   = "verifyDelivery"
	StepCompletePayment  = "completePayment"
	StepRefundPayment    = "refundPayment"
)

// TopicOrderDelivered is the event-bus topic carriers announce deliveries on.
const TopicOrderDelivered = "order.delivered"

// Dispatcher maps each accepted status change to exactly one asynchronous
// workflow step and hands it to the runner. Steps resolve by issuing a
// follow-up update through the runner's apply function; each follow-up
// carries only the fields its step owns, so concurrently resolving steps
// commute.
type Dispatcher struct {
	addresses  ports.AddressVerifier
	payments   ports.PaymentGateway
	carrier    ports.ShippingCarrier
	deliveries ports.DeliveryVerifier
	inventory  ports.Inventory
	bus        ports.EventBus
	runner     *Runner
	logger     *slog.Logger
}

// NewDispatcher creates a dispatcher over the given collaborator ports.
func NewDispatcher(
	addresses ports.AddressVerifier,
	payments ports.PaymentGateway,
	carrier ports.ShippingCarrier,
	deliveries ports.DeliveryVerifier,
	inventory ports.Inventory,
	bus ports.EventBus,
	runner *Runner,
	logger *slog.Logger,
) *Dispatcher {
	return &Dispatcher{
		addresses:  addresses,
		payments:   payments,
		carrier:    carrier,
		deliveries: deliveries,
		inventory:  inventory,
		bus:        bus,
		runner:     runner,
		logger:     logger.With("component", "workflow_dispatcher"),
	}
}

// Dispatch schedules the workflow step keyed by the order's (new) status.
// Called after an order is created or after an accepted status change.
func (d *Dispatcher) Dispatch(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	status := aggregate.Status()
	switch status {
	case order.Pending:
		d.dispatchPending(aggregate)
	case order.Approved:
		d.dispatchApproved(aggregate)
	case order.Shipping:
		d.dispatchShipping(aggregate)
	case order.Canceled:
		d.dispatchCanceled(aggregate)
	case order.Complete:
		// Terminal; hook point for analytics.
		d.logger.InfoContext(ctx, "Order completed", "orderNo", aggregate.OrderNo().String())
	case order.Unknown:
		return errs.NewValueIsInvalidError("orderStatus")
	}

	return nil
}

// dispatchPending validates the shipping address and authorizes payment for
// the derived total. The two steps are independent: each merges back only the
// field it owns, in whichever order they resolve.
func (d *Dispatcher) dispatchPending(aggregate *order.Order) {
	d.runner.Enqueue(Step{
		Name:    StepValidateAddress,
		OrderNo: aggregate.OrderNo(),
		Run: func(ctx context.Context) (map[string]any, error) {
			normalized, err := d.addresses.ValidateAddress(ctx, aggregate)
			if err != nil {
				return nil, err
			}
			return map[string]any{order.PropShippingAddress: normalized}, nil
		},
	})

	d.runner.Enqueue(Step{
		Name:    StepAuthorizePayment,
		OrderNo: aggregate.OrderNo(),
		Run: func(ctx context.Context) (map[string]any, error) {
			token, err := d.payments.AuthorizePayment(ctx, aggregate)
			if err != nil {
				return nil, err
			}
			return map[string]any{order.PropPaymentAuthorization: token}, nil
		},
	})
}

// dispatchApproved requests fulfillment; the confirmation carries the
// warehouse pickup address, which continues into the shipment request. The
// pickup address is workflow state, not order state, so it rides the
// continuation instead of a follow-up update.
func (d *Dispatcher) dispatchApproved(aggregate *order.Order) {
	d.runner.Enqueue(Step{
		Name:    StepFillOrder,
		OrderNo: aggregate.OrderNo(),
		Run: func(ctx context.Context) (map[string]any, error) {
			pickupAddress, err := d.inventory.FillOrder(ctx, aggregate)
			if err != nil {
				return nil, err
			}
			// Enqueued off the worker goroutine; a full queue must never
			// block the worker on itself.
			go d.runner.Enqueue(d.shipStep(aggregate, pickupAddress))
			return nil, nil
		},
	})
}

func (d *Dispatcher) shipStep(aggregate *order.Order, pickupAddress string) Step {
	return Step{
		Name:    StepShipOrder,
		OrderNo: aggregate.OrderNo(),
		Run: func(ctx context.Context) (map[string]any, error) {
			if err := d.carrier.ShipOrder(ctx, aggregate, pickupAddress); err != nil {
				return nil, err
			}
			return map[string]any{order.PropOrderStatus: order.Shipping}, nil
		},
	}
}

// dispatchShipping subscribes to shipment tracking; the delivered event
// triggers delivery verification, which triggers payment completion, which
// transitions the order to Complete.
func (d *Dispatcher) dispatchShipping(aggregate *order.Order) {
	orderNo := aggregate.OrderNo().String()

	d.runner.Enqueue(Step{
		Name:    StepTrackShipment,
		OrderNo: aggregate.OrderNo(),
		Run: func(ctx context.Context) (map[string]any, error) {
			if err := d.carrier.TrackShipment(ctx, aggregate); err != nil {
				return nil, err
			}

			// The subscription outlives this step; bind it to the runner's
			// lifecycle, not the dispatch context.
			err := d.bus.Listen(d.runner.Context(), TopicOrderDelivered,
				func(e ports.Event) bool { return e.OrderNo == orderNo },
				func(ports.Event) {
					d.runner.Enqueue(d.verifyDeliveryStep(aggregate))
				},
			)
			return nil, err
		},
	})
}

func (d *Dispatcher) verifyDeliveryStep(aggregate *order.Order) Step {
	return Step{
		Name:    StepVerifyDelivery,
		OrderNo: aggregate.OrderNo(),
		Run: func(ctx context.Context) (map[string]any, error) {
			proof, err := d.deliveries.VerifyDelivery(ctx, aggregate)
			if err != nil {
				return nil, err
			}
			// Enqueued off the worker goroutine; a full queue must never
			// block the worker on itself.
			go d.runner.Enqueue(d.completePaymentStep(aggregate, proof))
			return nil, nil
		},
	}
}

func (d *Dispatcher) completePaymentStep(aggregate *order.Order, proof string) Step {
	return Step{
		Name:    StepCompletePayment,
		OrderNo: aggregate.OrderNo(),
		Run: func(ctx context.Context) (map[string]any, error) {
			if err := d.payments.CompletePayment(ctx, aggregate); err != nil {
				return nil, err
			}
			return map[string]any{
				order.PropOrderStatus:     order.Complete,
				order.PropProofOfDelivery: proof,
			}, nil
		},
	}
}

// dispatchCanceled requests a payment refund.
func (d *Dispatcher) dispatchCanceled(aggregate *order.Order) {
	d.runner.Enqueue(Step{
		Name:    StepRefundPayment,
		OrderNo: aggregate.OrderNo(),
		Run: func(ctx context.Context) (map[string]any, error) {
			return nil, d.payments.RefundPayment(ctx, aggregate)
		},
	})
}
