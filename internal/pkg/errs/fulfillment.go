package errs

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors for the fulfillment domain. Every business-rule
// violation raised by the order and route workflows unwraps to exactly
// one of these, so the inbound adapters can map each kind to a distinct
// response instead of a generic failure.
var (
	ErrInvalidStateTransition = errors.New("invalid state transition")
	ErrRouteClosed            = errors.New("route is closed for assignments")
	ErrOrderAlreadyRouted     = errors.New("order is already assigned to a route")
	ErrRouteNotEmpty          = errors.New("route still has assigned orders")
	ErrReturnWindowExpired    = errors.New("return window has expired")
	ErrRefundFailed           = errors.New("refund failed")
	ErrAlreadyRefunded        = errors.New("order is already refunded")
	ErrConflict               = errors.New("concurrent modification conflict")
)

// InvalidStateTransitionError indicates that a requested lifecycle event
// is not permitted from the entity's current status.
type InvalidStateTransitionError struct {
	Entity string
	From   string
	Event  string
}

// NewInvalidStateTransitionError creates an InvalidStateTransitionError
// describing which event was rejected and from which status.
func NewInvalidStateTransitionError(entity, from, event string) *InvalidStateTransitionError {
	return &InvalidStateTransitionError{Entity: entity, From: from, Event: event}
}

func (e *InvalidStateTransitionError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s cannot %s from %s",
		ErrInvalidStateTransition, e.Entity, e.Event, e.From))
}

func (e *InvalidStateTransitionError) Unwrap() error {
	return ErrInvalidStateTransition
}

// RouteClosedError indicates an assignment attempt against a route that
// no longer accepts orders (shipped or delivered).
type RouteClosedError struct {
	RouteID string
	Status  string
}

// NewRouteClosedError creates a RouteClosedError for the given route and
// its current status.
func NewRouteClosedError(routeID, status string) *RouteClosedError {
	return &RouteClosedError{RouteID: routeID, Status: status}
}

func (e *RouteClosedError) Error() string {
	return sanitize(fmt.Sprintf("%s: route is: %s, status is: %s", ErrRouteClosed, e.RouteID, e.Status))
}

func (e *RouteClosedError) Unwrap() error {
	return ErrRouteClosed
}

// OrderAlreadyRoutedError indicates that an order already carries a
// different route reference. The caller must unassign explicitly first.
type OrderAlreadyRoutedError struct {
	OrderID string
	RouteID string
}

// NewOrderAlreadyRoutedError creates an OrderAlreadyRoutedError naming
// the order and the route it is currently attached to.
func NewOrderAlreadyRoutedError(orderID, routeID string) *OrderAlreadyRoutedError {
	return &OrderAlreadyRoutedError{OrderID: orderID, RouteID: routeID}
}

func (e *OrderAlreadyRoutedError) Error() string {
	return sanitize(fmt.Sprintf("%s: order is: %s, route is: %s", ErrOrderAlreadyRouted, e.OrderID, e.RouteID))
}

func (e *OrderAlreadyRoutedError) Unwrap() error {
	return ErrOrderAlreadyRouted
}

// RouteNotEmptyError indicates a deletion attempt against a route that
// still has orders attached.
type RouteNotEmptyError struct {
	RouteID    string
	OrderCount int
}

// NewRouteNotEmptyError creates a RouteNotEmptyError with the number of
// orders still attached to the route.
func NewRouteNotEmptyError(routeID string, orderCount int) *RouteNotEmptyError {
	return &RouteNotEmptyError{RouteID: routeID, OrderCount: orderCount}
}

func (e *RouteNotEmptyError) Error() string {
	return sanitize(fmt.Sprintf("%s: route is: %s, attached orders: %d", ErrRouteNotEmpty, e.RouteID, e.OrderCount))
}

func (e *RouteNotEmptyError) Unwrap() error {
	return ErrRouteNotEmpty
}

// ReturnWindowExpiredError indicates a return request made after the
// permitted window following delivery.
type ReturnWindowExpiredError struct {
	OrderID     string
	DeliveredAt time.Time
	RequestedAt time.Time
}

// NewReturnWindowExpiredError creates a ReturnWindowExpiredError with the
// delivery and request timestamps that violated the window.
func NewReturnWindowExpiredError(orderID string, deliveredAt, requestedAt time.Time) *ReturnWindowExpiredError {
	return &ReturnWindowExpiredError{OrderID: orderID, DeliveredAt: deliveredAt, RequestedAt: requestedAt}
}

func (e *ReturnWindowExpiredError) Error() string {
	return sanitize(fmt.Sprintf("%s: order is: %s, delivered at: %s, requested at: %s",
		ErrReturnWindowExpired,
		e.OrderID,
		e.DeliveredAt.Format(time.RFC3339),
		e.RequestedAt.Format(time.RFC3339)))
}

func (e *ReturnWindowExpiredError) Unwrap() error {
	return ErrReturnWindowExpired
}

// RefundFailedError indicates a payment-gateway refund call that did not
// succeed. The operation is safe to retry; no state was changed.
type RefundFailedError struct {
	OrderID string
	Cause   error
}

// NewRefundFailedError creates a RefundFailedError wrapping the gateway error.
func NewRefundFailedError(orderID string, cause error) *RefundFailedError {
	return &RefundFailedError{OrderID: orderID, Cause: cause}
}

func (e *RefundFailedError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: order is: %s (cause: %s)", ErrRefundFailed, e.OrderID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: order is: %s", ErrRefundFailed, e.OrderID))
}

func (e *RefundFailedError) Unwrap() error {
	return ErrRefundFailed
}

// AlreadyRefundedError indicates a refund attempt against an order whose
// payment was already refunded. No gateway call is made in this case.
type AlreadyRefundedError struct {
	OrderID string
}

// NewAlreadyRefundedError creates an AlreadyRefundedError for the given order.
func NewAlreadyRefundedError(orderID string) *AlreadyRefundedError {
	return &AlreadyRefundedError{OrderID: orderID}
}

func (e *AlreadyRefundedError) Error() string {
	return sanitize(fmt.Sprintf("%s: order is: %s", ErrAlreadyRefunded, e.OrderID))
}

func (e *AlreadyRefundedError) Unwrap() error {
	return ErrAlreadyRefunded
}

// ConflictError indicates that an optimistic-concurrency update lost
// against a concurrent writer. The caller should reload and retry.
type ConflictError struct {
	ParamName string
	ID        string
}

// NewConflictError creates a ConflictError naming the entity kind and identifier.
func NewConflictError(paramName, id string) *ConflictError {
	return &ConflictError{ParamName: paramName, ID: id}
}

func (e *ConflictError) Error() string {
	return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s", ErrConflict, e.ParamName, e.ID))
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}
