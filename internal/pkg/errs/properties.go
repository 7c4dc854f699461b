package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingProperty is the sentinel error for required properties absent from a change set.
	ErrMissingProperty = errors.New("missing required property")

	// ErrImmutableProperty is the sentinel error for attempts to change a frozen property.
	ErrImmutableProperty = errors.New("immutable property")

	// ErrUnknownProperty is the sentinel error for properties outside the allow-list.
	ErrUnknownProperty = errors.New("unknown property")

	// ErrValidationFailed is the sentinel error for post-merge validation failures.
	ErrValidationFailed = errors.New("validation failed")

	// ErrInvalidStatusChange is the sentinel error for illegal order status transitions.
	ErrInvalidStatusChange = errors.New("invalid status change")

	// ErrInvalidMixinPhase is the sentinel error for guard attachment to an unknown phase.
	ErrInvalidMixinPhase = errors.New("invalid mixin phase")

	// ErrOrderNotReady is the sentinel error for deleting an order that is still in flight.
	ErrOrderNotReady = errors.New("order is not ready")

	// ErrWorkflowStep is the sentinel error wrapping failures of asynchronous workflow steps.
	ErrWorkflowStep = errors.New("workflow step failed")
)

// MissingPropertyError lists every required property absent (or empty) in a change set.
type MissingPropertyError struct {
	Props []string
}

// NewMissingPropertyError creates a MissingPropertyError naming every missing property.
func NewMissingPropertyError(props ...string) *MissingPropertyError {
	return &MissingPropertyError{Props: props}
}

func (e *MissingPropertyError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingProperty, strings.Join(e.Props, ", "))
}

func (e *MissingPropertyError) Unwrap() error {
	return ErrMissingProperty
}

// ImmutablePropertyError lists every frozen property a change set attempted to modify.
type ImmutablePropertyError struct {
	Props []string
}

// NewImmutablePropertyError creates an ImmutablePropertyError naming every frozen property.
func NewImmutablePropertyError(props ...string) *ImmutablePropertyError {
	return &ImmutablePropertyError{Props: props}
}

func (e *ImmutablePropertyError) Error() string {
	return fmt.Sprintf("%s: %s", ErrImmutableProperty, strings.Join(e.Props, ", "))
}

func (e *ImmutablePropertyError) Unwrap() error {
	return ErrImmutableProperty
}

// UnknownPropertyError lists every property in a change set that is not allow-listed.
type UnknownPropertyError struct {
	Props []string
}

// NewUnknownPropertyError creates an UnknownPropertyError naming every unknown property.
func NewUnknownPropertyError(props ...string) *UnknownPropertyError {
	return &UnknownPropertyError{Props: props}
}

func (e *UnknownPropertyError) Error() string {
	return fmt.Sprintf("%s: %s", ErrUnknownProperty, strings.Join(e.Props, ", "))
}

func (e *UnknownPropertyError) Unwrap() error {
	return ErrUnknownProperty
}

// ValidationError names every field that failed post-merge validation. Cause
// aggregates the individual check failures so callers can match domain errors
// (for example ErrInvalidStatusChange) with errors.Is.
type ValidationError struct {
	Props []string
	Cause error
}

// NewValidationError creates a ValidationError naming every invalid field.
func NewValidationError(props []string, cause error) *ValidationError {
	return &ValidationError{Props: props, Cause: cause}
}

func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("%s: %s", ErrValidationFailed, strings.Join(e.Props, ", "))
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %s)", msg, sanitize(e.Cause.Error()))
	}
	return msg
}

func (e *ValidationError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrValidationFailed}
	}
	return []error{ErrValidationFailed, e.Cause}
}

// InvalidStatusChangeError reports an order status transition outside the legal edge set.
type InvalidStatusChangeError struct {
	From string
	To   string
}

// NewInvalidStatusChangeError creates an InvalidStatusChangeError for the given edge.
func NewInvalidStatusChangeError(from, to string) *InvalidStatusChangeError {
	return &InvalidStatusChangeError{From: from, To: to}
}

func (e *InvalidStatusChangeError) Error() string {
	return fmt.Sprintf("%s: %s to %s", ErrInvalidStatusChange, e.From, e.To)
}

func (e *InvalidStatusChangeError) Unwrap() error {
	return ErrInvalidStatusChange
}

// InvalidMixinPhaseError reports a guard attachment against a phase that is neither pre nor post.
type InvalidMixinPhaseError struct {
	Phase string
}

// NewInvalidMixinPhaseError creates an InvalidMixinPhaseError for the given phase.
func NewInvalidMixinPhaseError(phase string) *InvalidMixinPhaseError {
	return &InvalidMixinPhaseError{Phase: phase}
}

func (e *InvalidMixinPhaseError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidMixinPhase, e.Phase)
}

func (e *InvalidMixinPhaseError) Unwrap() error {
	return ErrInvalidMixinPhase
}

// OrderNotReadyError reports an attempt to delete an order before it reached a terminal status.
type OrderNotReadyError struct {
	Status string
}

// NewOrderNotReadyError creates an OrderNotReadyError for the order's current status.
func NewOrderNotReadyError(status string) *OrderNotReadyError {
	return &OrderNotReadyError{Status: status}
}

func (e *OrderNotReadyError) Error() string {
	return fmt.Sprintf("%s: status is %s", ErrOrderNotReady, e.Status)
}

func (e *OrderNotReadyError) Unwrap() error {
	return ErrOrderNotReady
}

// WorkflowStepError wraps the failure of an asynchronous workflow step,
// tagged with the originating step's name.
type WorkflowStepError struct {
	Step  string
	Cause error
}

// NewWorkflowStepError creates a WorkflowStepError for the named step.
func NewWorkflowStepError(step string, cause error) *WorkflowStepError {
	return &WorkflowStepError{Step: step, Cause: cause}
}

func (e *WorkflowStepError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrWorkflowStep, e.Step, sanitize(e.Cause.Error()))
	}
	return fmt.Sprintf("%s: %s", ErrWorkflowStep, e.Step)
}

func (e *WorkflowStepError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrWorkflowStep}
	}
	return []error{ErrWorkflowStep, e.Cause}
}
