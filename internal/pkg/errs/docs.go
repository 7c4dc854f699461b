// Package errs provides standardized error types for the orderflow application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// Two families of errors live here:
//
//   - General-purpose value errors shared by value objects and adapters:
//     ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError,
//     ObjectNotFoundError, VersionIsInvalidError.
//
//   - Update-pipeline and order-lifecycle errors raised by guards and the
//     state machine: MissingPropertyError, ImmutablePropertyError,
//     UnknownPropertyError, ValidationError, InvalidStatusChangeError,
//     InvalidMixinPhaseError, OrderNotReadyError, WorkflowStepError.
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Guard errors that carry an underlying cause (ValidationError,
// WorkflowStepError) unwrap to both their sentinel and the cause, so
// errors.Is can match either sentinel or domain error.
package errs
