package order

import (
	"fmt"
	"regexp"

	"orderflow/internal/core/domain/pipeline"
)

// Property names of the order model. These are the enumerable keys carried by
// an order snapshot; PropOrderNo is the reserved identifier key, assigned by
// the factory and frozen forever after.
const (
	PropOrderNo              = "orderNo"
	PropCustomerInfo         = "customerInfo"
	PropOrderItems           = "orderItems"
	PropShippingAddress      = "shippingAddress"
	PropBillingAddress       = "billingAddress"
	PropCreditCardNumber     = "creditCardNumber"
	PropPaymentAuthorization = "paymentAuthorization"
	PropProofOfDelivery      = "proofOfDelivery"
	PropSignatureRequired    = "signatureRequired"
	PropOrderStatus          = "orderStatus"
	PropOrderTotal           = "orderTotal"
)

// MaxTotal is the ceiling an order's total must not exceed.
const MaxTotal = 99999.99

// cardNumberPattern accepts plain 13 to 19 digit card numbers.
var cardNumberPattern = regexp.MustCompile(`^[0-9]{13,19}$`)

// orderPipeline is the static guard configuration of the order entity type.
// It is assembled once and shared by every order update; guard order within
// each phase is part of the contract (requirements are checked before derived
// fields are recomputed).
var orderPipeline = newPipeline()

func newPipeline() *pipeline.Pipeline {
	return pipeline.New().
		Pre("requireOrderProps", pipeline.Require(
			pipeline.Key(PropCustomerInfo),
			pipeline.Key(PropOrderItems),
			pipeline.Key(PropShippingAddress),
			pipeline.Key(PropBillingAddress),
			pipeline.Key(PropCreditCardNumber),
			pipeline.KeyFunc(proofOfDeliveryWhenCompleting),
		)).
		Pre("freezeGuardedProps", pipeline.Freeze(
			frozenOncePastPending(PropOrderItems),
			frozenOncePastPending(PropCreditCardNumber),
			frozenOncePastPending(PropShippingAddress),
			frozenOncePastPending(PropBillingAddress),
			pipeline.KeyFunc(statusWhenTerminal),
			pipeline.Key(PropOrderNo),
		)).
		Pre("allowOrderProps", pipeline.Allow(
			PropOrderNo,
			PropCustomerInfo,
			PropOrderItems,
			PropShippingAddress,
			PropBillingAddress,
			PropCreditCardNumber,
			PropPaymentAuthorization,
			PropProofOfDelivery,
			PropSignatureRequired,
			PropOrderStatus,
			PropOrderTotal,
		)).
		Pre("deriveOrderTotal", pipeline.Derive(pipeline.UpdaterSpec{
			Prop:   PropOrderItems,
			Update: recomputeTotal,
		})).
		Post("validateOrder", pipeline.Validate(
			pipeline.ValidationSpec{
				Prop:   PropOrderStatus,
				Values: ValidStatuses(),
				Check:  checkStatusChange,
			},
			pipeline.ValidationSpec{
				Prop:   PropOrderTotal,
				MaxNum: MaxTotal,
			},
			pipeline.ValidationSpec{
				Prop:    PropCreditCardNumber,
				Pattern: cardNumberPattern,
			},
			pipeline.ValidationSpec{
				Prop: PropSignatureRequired,
				Type: "bool",
			},
		))
}

// proofOfDeliveryWhenCompleting requires proofOfDelivery only when the change
// set proposes moving the order to Complete.
func proofOfDeliveryWhenCompleting(changes *pipeline.Snapshot) string {
	if v, ok := changes.Get(PropOrderStatus); ok {
		if st, isStatus := v.(Status); isStatus && st == Complete {
			return PropProofOfDelivery
		}
	}
	return ""
}

// frozenOncePastPending freezes a property once the previous snapshot's
// status is anything other than Pending.
func frozenOncePastPending(prop string) pipeline.PropKey {
	return pipeline.KeyFunc(func(changes *pipeline.Snapshot) string {
		if previousStatus(changes) != Pending {
			return prop
		}
		return ""
	})
}

// statusWhenTerminal freezes orderStatus itself once the previous snapshot's
// status is terminal.
func statusWhenTerminal(changes *pipeline.Snapshot) string {
	if previousStatus(changes).IsTerminal() {
		return PropOrderStatus
	}
	return ""
}

// checkStatusChange validates the proposed status transition against the
// previous snapshot's status. The predecessor, not the caller's intent, is
// authoritative. Creation has no predecessor and is exempt: the factory
// controls the initial status.
func checkStatusChange(merged *pipeline.Snapshot, v any) error {
	next, ok := v.(Status)
	if !ok {
		return fmt.Errorf("orderStatus holds %T, want order.Status", v)
	}
	prev := merged.Prev()
	if prev == nil {
		return nil
	}
	return statusOf(prev).CanTransitionTo(next)
}

// recomputeTotal derives orderTotal from the proposed orderItems.
func recomputeTotal(_ *pipeline.Snapshot, v any) map[string]any {
	items, ok := v.([]Item)
	if !ok {
		return nil
	}
	return map[string]any{PropOrderTotal: Sum(items)}
}

func statusOf(s *pipeline.Snapshot) Status {
	if v, ok := s.Get(PropOrderStatus); ok {
		if st, isStatus := v.(Status); isStatus {
			return st
		}
	}
	return Unknown
}

// previousStatus reads the status of the snapshot a change set is applied
// against. Unknown means the entity is being created.
func previousStatus(changes *pipeline.Snapshot) Status {
	prev := changes.Prev()
	if prev == nil {
		return Unknown
	}
	return statusOf(prev)
}
