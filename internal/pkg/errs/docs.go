// Package errs provides the standardized error types for the fulfillment
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the application.
//
// Two families of errors live here:
//
//   - Generic validation errors (ValueIsRequiredError, ValueIsInvalidError,
//     ObjectNotFoundError, ...) used by value objects and repositories.
//   - Fulfillment domain errors (InvalidStateTransitionError, RouteClosedError,
//     OrderAlreadyRoutedError, RouteNotEmptyError, ReturnWindowExpiredError,
//     RefundFailedError, AlreadyRefundedError, ConflictError) raised by the
//     order/route state machines, the assignment operations, and the refund
//     orchestration.
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrRouteClosed)
//   - A struct type with fields for error details
//   - Constructor functions, with and without cause where applicable
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is matches the sentinel
//
// Callers classify errors exclusively with errors.Is against the sentinels;
// the inbound HTTP adapter maps each sentinel to a distinct status code so
// business-rule violations are never collapsed into a generic failure.
package errs
