package order

import (
	"fmt"

	"orderflow/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with an explicit set of illegal transitions;
// everything outside that set, including re-proposing the current status, is
// legal.
//
// State transitions:
//
//	Pending ──> Approved ──> Shipping ──> Complete
//	   │            │            │
//	   └────────────┴────────────┴──────> Canceled
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status: the order awaits address validation and
	// payment authorization.
	Pending

	// Approved indicates payment was authorized and fulfillment may begin.
	Approved

	// Shipping indicates the order has been handed to a carrier.
	Shipping

	// Complete indicates the order was delivered and paid. Terminal for the
	// forward workflow.
	Complete

	// Canceled indicates the order was abandoned and any payment refunded.
	// Terminal for the forward workflow.
	Canceled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:  "Unknown",
		Pending:  "Pending",
		Approved: "Approved",
		Shipping: "Shipping",
		Complete: "Complete",
		Canceled: "Canceled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:  "Pending",
		Approved: "Approved",
		Shipping: "Shipping",
		Complete: "Complete",
		Canceled: "Canceled",
	}
}

// ValidStatuses returns every valid status as an untyped slice, shaped for
// the pipeline's enum-membership validation spec.
func ValidStatuses() []any {
	valid := make([]any, 0, len(getValidStatusStrings()))
	for s := range getValidStatusStrings() {
		valid = append(valid, s)
	}
	return valid
}

// ParseStatus converts a status name into its Status value.
// Returns ValueIsInvalidError for names outside the valid set.
func ParseStatus(name string) (Status, error) {
	for s, str := range getValidStatusStrings() {
		if str == name {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("orderStatus",
		fmt.Errorf("%q is not a valid status", name))
}

// Validate checks if the Status value is valid.
// Valid statuses are Pending, Approved, Shipping, Complete, and Canceled;
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// It implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status ends the forward workflow.
func (s Status) IsTerminal() bool {
	return s == Complete || s == Canceled
}

// CanTransitionTo checks whether the transition from s to next is legal.
//
// The illegal edges are explicit; any other transition, including proposing
// the current status again, is allowed:
//
//	Approved -> Pending     (cannot regress past approval)
//	Shipping -> Pending     (cannot regress past shipment)
//	Shipping -> Approved    (cannot regress past shipment)
//	Pending  -> Shipping    (cannot skip approval)
//	Pending  -> Complete    (cannot skip approval and shipment)
//
// Returns InvalidStatusChangeError on an illegal edge.
func (s Status) CanTransitionTo(next Status) error {
	if err := next.Validate(); err != nil {
		return err
	}

	illegal := false
	switch s {
	case Approved:
		illegal = next == Pending
	case Shipping:
		illegal = next == Pending || next == Approved
	case Pending:
		illegal = next == Shipping || next == Complete
	case Unknown, Complete, Canceled:
		// Terminal statuses are guarded by the freeze on orderStatus; the
		// transition table itself keeps exactly the edges listed above.
	}

	if illegal {
		return errs.NewInvalidStatusChangeError(s.String(), next.String())
	}
	return nil
}

// CanDelete checks whether an order in this status may be deleted.
// Only terminal orders (Complete, Canceled) are deletable; any other status
// returns OrderNotReadyError.
func (s Status) CanDelete() error {
	if !s.IsTerminal() {
		return errs.NewOrderNotReadyError(s.String())
	}
	return nil
}
